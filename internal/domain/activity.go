package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrEmptyActivityTitle is returned when an activity has no title.
var ErrEmptyActivityTitle = errors.New("activity title cannot be empty")

// Activity represents a social event. The ID is server-generated on create
// when the client does not supply one.
type Activity struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Date        time.Time `json:"date"`
	City        string    `json:"city"`
	Venue       string    `json:"venue"`
}

// Validate checks if the Activity has valid data.
func (a *Activity) Validate() error {
	if a.Title == "" {
		return ErrEmptyActivityTitle
	}
	return nil
}

// Merge applies the non-zero fields of incoming onto a, leaving the rest
// untouched. This is a sparse patch: a blank incoming field keeps the stored
// value, so Edit cannot clear a field to empty.
func (a *Activity) Merge(incoming *Activity) {
	if incoming.Title != "" {
		a.Title = incoming.Title
	}
	if incoming.Description != "" {
		a.Description = incoming.Description
	}
	if incoming.Category != "" {
		a.Category = incoming.Category
	}
	if !incoming.Date.IsZero() {
		a.Date = incoming.Date
	}
	if incoming.City != "" {
		a.City = incoming.City
	}
	if incoming.Venue != "" {
		a.Venue = incoming.Venue
	}
}
