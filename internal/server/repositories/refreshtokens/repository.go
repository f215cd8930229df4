// Package refreshtokens persists opaque refresh tokens. Deleting a token
// revokes the session it belongs to.
package refreshtokens

import (
	"context"
	"time"

	"github.com/mkalvins/taskboard/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, userID string, token string, validity time.Duration) error

	// Find returns the stored token or common.ErrorNotFound.
	Find(ctx context.Context, token string) (*models.RefreshToken, error)

	// Delete removes the token. Deleting a token that is already gone is
	// not an error.
	Delete(ctx context.Context, token string) error
}
