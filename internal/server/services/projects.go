package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/mkalvins/taskboard/internal/common"
	"github.com/mkalvins/taskboard/internal/server/models"
	"github.com/mkalvins/taskboard/internal/server/repositories/projects"
)

type ProjectService struct {
	repo projects.Repository
}

func NewProjectService(repo projects.Repository) *ProjectService {
	return &ProjectService{repo: repo}
}

// Create inserts a project for the given owner. Name and due date are
// required; an empty status defaults to Pending.
func (s *ProjectService) Create(ctx context.Context, userID, name string, status models.Status, due time.Time) (*models.Project, error) {
	if name == "" || due.IsZero() {
		return nil, common.ErrorValidation
	}
	if status == "" {
		status = models.StatusPending
	}

	now := time.Now().UTC()
	project := &models.Project{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      name,
		Status:    status,
		Due:       due,
		CreatedAt: now,
		UpdatedAt: now,
	}

	project, err := s.repo.Create(ctx, project)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return project, nil
}

// List returns the owner's projects sorted by due date ascending.
func (s *ProjectService) List(ctx context.Context, userID string) ([]*models.Project, error) {
	list, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return list, nil
}

// Update applies a partial update to the owner's project. Setting the name
// to an empty string is rejected.
func (s *ProjectService) Update(ctx context.Context, userID, id string, patch *models.ProjectPatch) (*models.Project, error) {
	if patch == nil || (patch.Name == nil && patch.Status == nil && patch.Due == nil) {
		return nil, common.ErrorValidation
	}
	if patch.Name != nil && *patch.Name == "" {
		return nil, common.ErrorValidation
	}

	project, err := s.repo.Update(ctx, userID, id, patch)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}
	return project, nil
}

// Delete removes the owner's project.
func (s *ProjectService) Delete(ctx context.Context, userID, id string) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return common.ErrorInternal
	}
	return nil
}
