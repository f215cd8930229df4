// Package users persists account records. This is the credential store:
// the only component allowed to read password hashes.
package users

import (
	"context"

	"github.com/mkalvins/taskboard/internal/server/models"
)

type Repository interface {
	// Create inserts a new user. A duplicate username fails with
	// common.ErrorAlreadyExists, enforced by a unique index so concurrent
	// registrations cannot both succeed.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByUsername returns the user with the given username, or
	// common.ErrorNotFound.
	GetByUsername(ctx context.Context, username string) (*models.User, error)

	// GetByID returns the user with the given id, or common.ErrorNotFound.
	GetByID(ctx context.Context, id string) (*models.User, error)
}
