package repository

import (
	"context"

	"github.com/jey-uki/users-api/internal/models"
)

// Users is the storage boundary for the User collection. Implementations
// translate driver errors into the storage package sentinels: a malformed
// identifier is storage.ErrInvalidID, a missing document is
// storage.ErrNotFound, and a unique-index collision on email is
// storage.ErrDuplicateEmail.
type Users interface {
	Create(ctx context.Context, u models.User) (models.User, error)
	GetByID(ctx context.Context, id string) (models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, id string, in models.UpdateUserInput) (models.User, error)
	Delete(ctx context.Context, id string) error
}
