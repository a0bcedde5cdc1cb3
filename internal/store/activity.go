package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/gatherhq/gather-api/internal/domain"
)

// ActivityStore defines the interface for activity data persistence.
type ActivityStore interface {
	// List retrieves all activities ordered by date. An empty result is not
	// an error.
	List(ctx context.Context) ([]domain.Activity, error)

	// GetByID retrieves an activity by its unique ID.
	// Returns ErrActivityNotFound if the activity does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Activity, error)

	// Create saves a new activity. The caller must have assigned an ID.
	Create(ctx context.Context, activity *domain.Activity) error

	// Update overwrites an existing activity's fields.
	// Returns ErrUpdateFailed if no row was affected.
	Update(ctx context.Context, activity *domain.Activity) error

	// Delete removes an activity by its ID.
	// Returns ErrDeleteFailed if no row was affected.
	Delete(ctx context.Context, id uuid.UUID) error
}
