// Package api provides HTTP handlers for the API. Handlers construct typed
// requests, dispatch them through the mediator, and translate the returned
// Result envelope into an HTTP response via HandleResult.
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/gatherhq/gather-api/internal/api/shared"
	"github.com/gatherhq/gather-api/internal/domain"
	"github.com/gatherhq/gather-api/internal/mediator"
	"github.com/gatherhq/gather-api/internal/usecase/activities"
)

// ActivityHandler handles activity-related HTTP requests.
type ActivityHandler struct {
	dispatcher *mediator.Dispatcher
	logger     *slog.Logger
}

// NewActivityHandler creates a new ActivityHandler.
func NewActivityHandler(dispatcher *mediator.Dispatcher, logger *slog.Logger) *ActivityHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ActivityHandler")
	}

	return &ActivityHandler{
		dispatcher: dispatcher,
		logger:     logger.With(slog.String("component", "activity_handler")),
	}
}

// List handles GET /api/activities. The request context is canceled when the
// client disconnects, which aborts the dispatched query.
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	result, err := mediator.Send[activities.ListQuery, []domain.Activity](
		r.Context(), h.dispatcher, activities.ListQuery{})
	HandleResult(w, r, result, err)
}

// Get handles GET /api/activities/{id}.
func (h *ActivityHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	result, err := mediator.Send[activities.DetailsQuery, domain.Activity](
		r.Context(), h.dispatcher, activities.DetailsQuery{ID: id})
	HandleResult(w, r, result, err)
}

// Create handles POST /api/activities.
func (h *ActivityHandler) Create(w http.ResponseWriter, r *http.Request) {
	var activity domain.Activity
	if err := shared.DecodeJSON(r, &activity); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := mediator.Send[activities.CreateCommand, mediator.Unit](
		r.Context(), h.dispatcher, activities.CreateCommand{Activity: activity})
	HandleResult(w, r, result, err)
}

// Edit handles PUT /api/activities/{id}. The path ID overwrites any ID
// embedded in the request body before dispatch.
func (h *ActivityHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var activity domain.Activity
	if err := shared.DecodeJSON(r, &activity); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	activity.ID = id

	result, err := mediator.Send[activities.EditCommand, mediator.Unit](
		r.Context(), h.dispatcher, activities.EditCommand{Activity: activity})
	HandleResult(w, r, result, err)
}

// Delete handles DELETE /api/activities/{id}.
func (h *ActivityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	result, err := mediator.Send[activities.DeleteCommand, mediator.Unit](
		r.Context(), h.dispatcher, activities.DeleteCommand{ID: id})
	HandleResult(w, r, result, err)
}

// pathID extracts and parses the {id} URL parameter, writing a 400 response
// on failure.
func (h *ActivityHandler) pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := chi.URLParam(r, "id")
	if raw == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Activity ID is required")
		return uuid.Nil, false
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		h.logger.Warn("invalid activity ID format", slog.String("activity_id", raw))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid activity ID format")
		return uuid.Nil, false
	}
	return id, true
}
