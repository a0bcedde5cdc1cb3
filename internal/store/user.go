package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/gatherhq/gather-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store. The user must already carry a
	// hashed password. Returns ErrUsernameExists or ErrEmailExists if the
	// corresponding unique constraint is violated.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmail retrieves a user by their email address.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// UsernameExists reports whether a user with the given username exists.
	UsernameExists(ctx context.Context, username string) (bool, error)

	// EmailExists reports whether a user with the given email exists.
	EmailExists(ctx context.Context, email string) (bool, error)
}
