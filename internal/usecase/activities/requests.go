package activities

import (
	"github.com/google/uuid"

	"github.com/gatherhq/gather-api/internal/domain"
)

// ListQuery requests all activities.
type ListQuery struct{}

// DetailsQuery requests a single activity by ID.
type DetailsQuery struct {
	ID uuid.UUID
}

// CreateCommand requests creation of a new activity. An absent (nil) ID is
// assigned by the server.
type CreateCommand struct {
	Activity domain.Activity
}

// EditCommand requests a sparse-patch update of an existing activity. The
// HTTP adapter sets Activity.ID from the URL path before dispatch, so a
// conflicting ID in the request body never wins.
type EditCommand struct {
	Activity domain.Activity
}

// DeleteCommand requests removal of an activity by ID.
type DeleteCommand struct {
	ID uuid.UUID
}
