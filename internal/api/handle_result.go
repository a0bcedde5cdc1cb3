package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gatherhq/gather-api/internal/api/shared"
	"github.com/gatherhq/gather-api/internal/mediator"
	"github.com/gatherhq/gather-api/internal/usecase/accounts"
)

// HandleResult translates a dispatched Result envelope (and any handler
// error) into an HTTP response:
//
//	Success(Unit)            -> 200, empty body
//	Success(value)           -> 200, value as JSON
//	Failure(notFound)        -> 404
//	Failure                  -> 400, message as body
//	ErrInvalidCredentials    -> 401
//	caller canceled          -> no response written, connection is torn down
//	any other handler error  -> 500, sanitized
func HandleResult[T any](
	w http.ResponseWriter,
	r *http.Request,
	result mediator.Result[T],
	err error,
) {
	if err != nil {
		switch {
		case errors.Is(err, accounts.ErrInvalidCredentials):
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid credentials")
		case errors.Is(err, context.Canceled) && r.Context().Err() != nil:
			// Client disconnected mid-request. Nothing to write; the server
			// tears down the connection. Not a failure worth logging loudly.
			slog.Debug("request canceled by client",
				"path", r.URL.Path,
				"method", r.Method,
				"trace_id", shared.GetTraceID(r.Context()))
		default:
			shared.RespondWithErrorAndLog(
				w, r, http.StatusInternalServerError, "Internal server error", err)
		}
		return
	}

	if !result.IsSuccess() {
		if result.IsNotFound() {
			shared.RespondWithError(w, r, http.StatusNotFound, "Not found")
			return
		}
		shared.RespondWithError(w, r, http.StatusBadRequest, result.Message())
		return
	}

	// A success with no payload renders as an empty 200, distinct from any
	// failure state.
	if _, isUnit := any(result.Value()).(mediator.Unit); isUnit {
		w.WriteHeader(http.StatusOK)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, result.Value())
}
