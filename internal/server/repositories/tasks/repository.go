// Package tasks persists task records. Every operation takes the owner's
// user ID and filters by it; a task that exists but belongs to someone else
// is indistinguishable from one that does not exist.
package tasks

import (
	"context"

	"github.com/mkalvins/taskboard/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, task *models.Task) (*models.Task, error)

	// List returns the user's tasks sorted by due date ascending.
	List(ctx context.Context, userID string) ([]*models.Task, error)

	// Update applies the non-nil patch fields to the user's task with the
	// given id. Returns the updated task or common.ErrorNotFound.
	Update(ctx context.Context, userID, id string, patch *models.TaskPatch) (*models.Task, error)

	// Delete removes the user's task with the given id, or returns
	// common.ErrorNotFound.
	Delete(ctx context.Context, userID, id string) error
}
