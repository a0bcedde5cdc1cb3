package activities

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/gatherhq/gather-api/internal/domain"
	"github.com/gatherhq/gather-api/internal/mediator"
	"github.com/gatherhq/gather-api/internal/platform/logger"
	"github.com/gatherhq/gather-api/internal/store"
)

// ListHandler returns all activities.
type ListHandler struct {
	activityStore store.ActivityStore
}

// NewListHandler creates a ListHandler.
func NewListHandler(activityStore store.ActivityStore) *ListHandler {
	return &ListHandler{activityStore: activityStore}
}

// Handle implements mediator.Handler. An empty result set is a success.
func (h *ListHandler) Handle(
	ctx context.Context,
	_ ListQuery,
) (mediator.Result[[]domain.Activity], error) {
	list, err := h.activityStore.List(ctx)
	if err != nil {
		return mediator.Result[[]domain.Activity]{}, err
	}
	if list == nil {
		list = []domain.Activity{}
	}
	return mediator.Ok(list), nil
}

// DetailsHandler looks up a single activity by ID.
type DetailsHandler struct {
	activityStore store.ActivityStore
}

// NewDetailsHandler creates a DetailsHandler.
func NewDetailsHandler(activityStore store.ActivityStore) *DetailsHandler {
	return &DetailsHandler{activityStore: activityStore}
}

// Handle implements mediator.Handler.
func (h *DetailsHandler) Handle(
	ctx context.Context,
	q DetailsQuery,
) (mediator.Result[domain.Activity], error) {
	activity, err := h.activityStore.GetByID(ctx, q.ID)
	if err != nil {
		if store.IsNotFoundError(err) {
			return mediator.NotFound[domain.Activity](), nil
		}
		return mediator.Result[domain.Activity]{}, err
	}
	return mediator.Ok(*activity), nil
}

// CreateHandler persists a new activity, assigning a server-generated ID
// when the client did not supply one.
type CreateHandler struct {
	activityStore store.ActivityStore
}

// NewCreateHandler creates a CreateHandler.
func NewCreateHandler(activityStore store.ActivityStore) *CreateHandler {
	return &CreateHandler{activityStore: activityStore}
}

// Handle implements mediator.Handler.
func (h *CreateHandler) Handle(
	ctx context.Context,
	cmd CreateCommand,
) (mediator.Result[mediator.Unit], error) {
	activity := cmd.Activity
	if activity.ID == uuid.Nil {
		activity.ID = uuid.New()
	}

	if err := activity.Validate(); err != nil {
		return mediator.Fail[mediator.Unit](err.Error()), nil
	}

	// Commit point: once past this check the insert runs to completion.
	if err := ctx.Err(); err != nil {
		return mediator.Result[mediator.Unit]{}, err
	}

	if err := h.activityStore.Create(ctx, &activity); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return mediator.Result[mediator.Unit]{}, ctxErr
		}
		logger.FromContext(ctx).Error("failed to create activity",
			"activity_id", activity.ID,
			"error", err)
		return mediator.Fail[mediator.Unit]("Failed to create activity"), nil
	}

	return mediator.Ok(mediator.Unit{}), nil
}

// EditHandler applies a sparse patch to an existing activity: only non-zero
// incoming fields override stored values.
type EditHandler struct {
	activityStore store.ActivityStore
}

// NewEditHandler creates an EditHandler.
func NewEditHandler(activityStore store.ActivityStore) *EditHandler {
	return &EditHandler{activityStore: activityStore}
}

// Handle implements mediator.Handler.
func (h *EditHandler) Handle(
	ctx context.Context,
	cmd EditCommand,
) (mediator.Result[mediator.Unit], error) {
	existing, err := h.activityStore.GetByID(ctx, cmd.Activity.ID)
	if err != nil {
		if store.IsNotFoundError(err) {
			return mediator.NotFound[mediator.Unit](), nil
		}
		return mediator.Result[mediator.Unit]{}, err
	}

	existing.Merge(&cmd.Activity)

	// Commit point: abort here rather than after a partial write.
	if err := ctx.Err(); err != nil {
		return mediator.Result[mediator.Unit]{}, err
	}

	if err := h.activityStore.Update(ctx, existing); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return mediator.Result[mediator.Unit]{}, ctxErr
		}
		if errors.Is(err, store.ErrUpdateFailed) {
			return mediator.Fail[mediator.Unit]("Failed to update activity"), nil
		}
		return mediator.Result[mediator.Unit]{}, err
	}

	return mediator.Ok(mediator.Unit{}), nil
}

// DeleteHandler removes an activity by ID.
type DeleteHandler struct {
	activityStore store.ActivityStore
}

// NewDeleteHandler creates a DeleteHandler.
func NewDeleteHandler(activityStore store.ActivityStore) *DeleteHandler {
	return &DeleteHandler{activityStore: activityStore}
}

// Handle implements mediator.Handler.
func (h *DeleteHandler) Handle(
	ctx context.Context,
	cmd DeleteCommand,
) (mediator.Result[mediator.Unit], error) {
	if _, err := h.activityStore.GetByID(ctx, cmd.ID); err != nil {
		if store.IsNotFoundError(err) {
			return mediator.NotFound[mediator.Unit](), nil
		}
		return mediator.Result[mediator.Unit]{}, err
	}

	if err := ctx.Err(); err != nil {
		return mediator.Result[mediator.Unit]{}, err
	}

	if err := h.activityStore.Delete(ctx, cmd.ID); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return mediator.Result[mediator.Unit]{}, ctxErr
		}
		if errors.Is(err, store.ErrDeleteFailed) {
			return mediator.Fail[mediator.Unit]("Failed to delete activity"), nil
		}
		return mediator.Result[mediator.Unit]{}, err
	}

	return mediator.Ok(mediator.Unit{}), nil
}
