package api

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/gatherhq/gather-api/internal/api/middleware"
	"github.com/gatherhq/gather-api/internal/api/shared"
	"github.com/gatherhq/gather-api/internal/mediator"
	"github.com/gatherhq/gather-api/internal/usecase/accounts"
)

// AccountHandler handles authentication-related API requests.
type AccountHandler struct {
	dispatcher *mediator.Dispatcher
	logger     *slog.Logger
}

// NewAccountHandler creates a new AccountHandler with the given dependencies.
func NewAccountHandler(dispatcher *mediator.Dispatcher, logger *slog.Logger) *AccountHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for AccountHandler")
	}

	return &AccountHandler{
		dispatcher: dispatcher,
		logger:     logger.With(slog.String("component", "account_handler")),
	}
}

// Login handles POST /api/account/login.
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error", validationFields(err)...)
		return
	}

	result, err := mediator.Send[accounts.LoginCommand, accounts.UserView](
		r.Context(), h.dispatcher, accounts.LoginCommand{
			Email:    req.Email,
			Password: req.Password,
		})
	HandleResult(w, r, result, err)
}

// Register handles POST /api/account/register.
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error", validationFields(err)...)
		return
	}

	result, err := mediator.Send[accounts.RegisterCommand, accounts.UserView](
		r.Context(), h.dispatcher, accounts.RegisterCommand{
			Username:    req.Username,
			Email:       req.Email,
			Password:    req.Password,
			DisplayName: req.DisplayName,
		})
	HandleResult(w, r, result, err)
}

// CurrentUser handles GET /api/account/me. The caller's identity comes from
// the verified token claims placed in the context by the auth middleware.
func (h *AccountHandler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok || userID == uuid.Nil {
		h.logger.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	result, err := mediator.Send[accounts.CurrentUserQuery, accounts.UserView](
		r.Context(), h.dispatcher, accounts.CurrentUserQuery{UserID: userID})
	HandleResult(w, r, result, err)
}
