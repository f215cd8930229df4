// Package projects persists project records with the same ownership scoping
// rules as tasks.
package projects

import (
	"context"

	"github.com/mkalvins/taskboard/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, project *models.Project) (*models.Project, error)

	// List returns the user's projects sorted by due date ascending.
	List(ctx context.Context, userID string) ([]*models.Project, error)

	// Update applies the non-nil patch fields to the user's project with the
	// given id. Returns the updated project or common.ErrorNotFound.
	Update(ctx context.Context, userID, id string, patch *models.ProjectPatch) (*models.Project, error)

	// Delete removes the user's project with the given id, or returns
	// common.ErrorNotFound.
	Delete(ctx context.Context, userID, id string) error
}
