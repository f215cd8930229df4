package services

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/mkalvins/taskboard/internal/common"
	"github.com/mkalvins/taskboard/internal/server/models"
)

// fakeTasksRepo is an in-memory task store with owner scoping and due-date
// ordering matching the Mongo implementation.
type fakeTasksRepo struct {
	mu    sync.Mutex
	byID  map[string]*models.Task
	fail  error
}

func newFakeTasksRepo() *fakeTasksRepo {
	return &fakeTasksRepo{byID: make(map[string]*models.Task)}
}

func (f *fakeTasksRepo) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *task
	f.byID[task.ID] = &cp
	return task, nil
}

func (f *fakeTasksRepo) List(ctx context.Context, userID string) ([]*models.Task, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*models.Task, 0)
	for _, t := range f.byID {
		if t.UserID == userID {
			cp := *t
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Due.Before(out[j].Due) })
	return out, nil
}

func (f *fakeTasksRepo) Update(ctx context.Context, userID, id string, patch *models.TaskPatch) (*models.Task, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.byID[id]
	if !ok || t.UserID != userID {
		return nil, common.ErrorNotFound
	}
	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Status != nil {
		t.Status = *patch.Status
	}
	if patch.Due != nil {
		t.Due = *patch.Due
	}
	t.UpdatedAt = time.Now().UTC()
	cp := *t
	return &cp, nil
}

func (f *fakeTasksRepo) Delete(ctx context.Context, userID, id string) error {
	if f.fail != nil {
		return f.fail
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.byID[id]
	if !ok || t.UserID != userID {
		return common.ErrorNotFound
	}
	delete(f.byID, id)
	return nil
}

func due(daysFromNow int) time.Time {
	return time.Now().UTC().AddDate(0, 0, daysFromNow)
}

func TestTaskCreate_ValidationAndDefaults(t *testing.T) {
	s := NewTaskService(newFakeTasksRepo())
	ctx := context.Background()

	if _, err := s.Create(ctx, "u1", "", models.StatusPending, due(1)); !errors.Is(err, common.ErrorValidation) {
		t.Fatalf("empty title: want ErrorValidation, got %v", err)
	}
	if _, err := s.Create(ctx, "u1", "write report", models.StatusPending, time.Time{}); !errors.Is(err, common.ErrorValidation) {
		t.Fatalf("zero due: want ErrorValidation, got %v", err)
	}

	task, err := s.Create(ctx, "u1", "write report", "", due(1))
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if task.Status != models.StatusPending {
		t.Fatalf("empty status must default to Pending, got %v", task.Status)
	}
	if task.ID == "" || task.UserID != "u1" {
		t.Fatalf("unexpected task: %+v", task)
	}
}

func TestTaskList_ScopedAndSorted(t *testing.T) {
	repo := newFakeTasksRepo()
	s := NewTaskService(repo)
	ctx := context.Background()

	if _, err := s.Create(ctx, "u1", "later", models.StatusPending, due(5)); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if _, err := s.Create(ctx, "u1", "sooner", models.StatusOngoing, due(1)); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if _, err := s.Create(ctx, "u2", "other user's", models.StatusPending, due(2)); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	list, err := s.List(ctx, "u1")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("want 2 tasks for u1, got %d", len(list))
	}
	if list[0].Title != "sooner" || list[1].Title != "later" {
		t.Fatalf("tasks must be sorted by due ascending: %q, %q", list[0].Title, list[1].Title)
	}
}

func TestTaskUpdate_Flows(t *testing.T) {
	repo := newFakeTasksRepo()
	s := NewTaskService(repo)
	ctx := context.Background()

	task, err := s.Create(ctx, "u1", "draft", models.StatusPending, due(3))
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	// empty patch → validation
	if _, err := s.Update(ctx, "u1", task.ID, &models.TaskPatch{}); !errors.Is(err, common.ErrorValidation) {
		t.Fatalf("empty patch: want ErrorValidation, got %v", err)
	}

	// blank title → validation
	blank := ""
	if _, err := s.Update(ctx, "u1", task.ID, &models.TaskPatch{Title: &blank}); !errors.Is(err, common.ErrorValidation) {
		t.Fatalf("blank title: want ErrorValidation, got %v", err)
	}

	// another user's id → not found, never another user's data
	st := models.StatusCompleted
	if _, err := s.Update(ctx, "u2", task.ID, &models.TaskPatch{Status: &st}); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("cross-user update: want ErrorNotFound, got %v", err)
	}

	updated, err := s.Update(ctx, "u1", task.ID, &models.TaskPatch{Status: &st})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.Status != models.StatusCompleted || updated.Title != "draft" {
		t.Fatalf("partial update wrong: %+v", updated)
	}

	// repo failure → internal
	repo.fail = errBoom{}
	if _, err := s.Update(ctx, "u1", task.ID, &models.TaskPatch{Status: &st}); !errors.Is(err, common.ErrorInternal) {
		t.Fatalf("repo failure: want ErrorInternal, got %v", err)
	}
}

func TestTaskDelete_Flows(t *testing.T) {
	s := NewTaskService(newFakeTasksRepo())
	ctx := context.Background()

	task, err := s.Create(ctx, "u1", "obsolete", models.StatusPending, due(1))
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if err := s.Delete(ctx, "u2", task.ID); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("cross-user delete: want ErrorNotFound, got %v", err)
	}
	if err := s.Delete(ctx, "u1", task.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if err := s.Delete(ctx, "u1", task.ID); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("second delete: want ErrorNotFound, got %v", err)
	}
}
