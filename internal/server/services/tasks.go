package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/mkalvins/taskboard/internal/common"
	"github.com/mkalvins/taskboard/internal/server/models"
	"github.com/mkalvins/taskboard/internal/server/repositories/tasks"
)

type TaskService struct {
	repo tasks.Repository
}

func NewTaskService(repo tasks.Repository) *TaskService {
	return &TaskService{repo: repo}
}

// Create inserts a task for the given owner. Title and due date are
// required; an empty status defaults to Pending.
func (s *TaskService) Create(ctx context.Context, userID, title string, status models.Status, due time.Time) (*models.Task, error) {
	if title == "" || due.IsZero() {
		return nil, common.ErrorValidation
	}
	if status == "" {
		status = models.StatusPending
	}

	now := time.Now().UTC()
	task := &models.Task{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     title,
		Status:    status,
		Due:       due,
		CreatedAt: now,
		UpdatedAt: now,
	}

	task, err := s.repo.Create(ctx, task)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return task, nil
}

// List returns the owner's tasks sorted by due date ascending.
func (s *TaskService) List(ctx context.Context, userID string) ([]*models.Task, error) {
	list, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return list, nil
}

// Update applies a partial update to the owner's task. Setting the title to
// an empty string is rejected.
func (s *TaskService) Update(ctx context.Context, userID, id string, patch *models.TaskPatch) (*models.Task, error) {
	if patch == nil || (patch.Title == nil && patch.Status == nil && patch.Due == nil) {
		return nil, common.ErrorValidation
	}
	if patch.Title != nil && *patch.Title == "" {
		return nil, common.ErrorValidation
	}

	task, err := s.repo.Update(ctx, userID, id, patch)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}
	return task, nil
}

// Delete removes the owner's task.
func (s *TaskService) Delete(ctx context.Context, userID, id string) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return common.ErrorInternal
	}
	return nil
}
