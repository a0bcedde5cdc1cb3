package accounts

import (
	"context"
	"errors"
	"fmt"

	"github.com/gatherhq/gather-api/internal/domain"
	"github.com/gatherhq/gather-api/internal/mediator"
	"github.com/gatherhq/gather-api/internal/platform/logger"
	"github.com/gatherhq/gather-api/internal/service/auth"
	"github.com/gatherhq/gather-api/internal/store"
)

// ErrInvalidCredentials is returned on any authentication failure during
// login. A missing account and a wrong password are indistinguishable by
// design: the status returned must not reveal whether the email exists.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Duplicate-account failure messages returned to clients on Register.
const (
	msgUsernameTaken = "Username is already taken"
	msgEmailTaken    = "Email is already taken"
)

// newUserView assembles the shared response shape with a freshly issued
// token.
func newUserView(
	ctx context.Context,
	jwtService auth.JWTService,
	user *domain.User,
) (UserView, error) {
	token, err := jwtService.GenerateToken(ctx, user.ID, user.Username)
	if err != nil {
		return UserView{}, fmt.Errorf("failed to issue token: %w", err)
	}
	return UserView{
		DisplayName: user.DisplayName,
		Username:    user.Username,
		Token:       token,
		Image:       user.Image,
	}, nil
}

// LoginHandler authenticates a user by email and password.
type LoginHandler struct {
	userStore  store.UserStore
	jwtService auth.JWTService
	hasher     auth.PasswordHasher
}

// NewLoginHandler creates a LoginHandler.
func NewLoginHandler(
	userStore store.UserStore,
	jwtService auth.JWTService,
	hasher auth.PasswordHasher,
) *LoginHandler {
	return &LoginHandler{
		userStore:  userStore,
		jwtService: jwtService,
		hasher:     hasher,
	}
}

// Handle implements mediator.Handler.
func (h *LoginHandler) Handle(
	ctx context.Context,
	cmd LoginCommand,
) (mediator.Result[UserView], error) {
	user, err := h.userStore.GetByEmail(ctx, cmd.Email)
	if err != nil {
		if store.IsNotFoundError(err) {
			return mediator.Result[UserView]{}, ErrInvalidCredentials
		}
		return mediator.Result[UserView]{}, err
	}

	if err := h.hasher.Compare(user.HashedPassword, cmd.Password); err != nil {
		return mediator.Result[UserView]{}, ErrInvalidCredentials
	}

	view, err := newUserView(ctx, h.jwtService, user)
	if err != nil {
		return mediator.Result[UserView]{}, err
	}
	return mediator.Ok(view), nil
}

// RegisterHandler creates a new account. Username uniqueness is checked
// before email uniqueness; both checks are also backed by store-level unique
// constraints since read-then-write is race-prone on its own.
type RegisterHandler struct {
	userStore  store.UserStore
	jwtService auth.JWTService
	hasher     auth.PasswordHasher
}

// NewRegisterHandler creates a RegisterHandler.
func NewRegisterHandler(
	userStore store.UserStore,
	jwtService auth.JWTService,
	hasher auth.PasswordHasher,
) *RegisterHandler {
	return &RegisterHandler{
		userStore:  userStore,
		jwtService: jwtService,
		hasher:     hasher,
	}
}

// Handle implements mediator.Handler.
func (h *RegisterHandler) Handle(
	ctx context.Context,
	cmd RegisterCommand,
) (mediator.Result[UserView], error) {
	taken, err := h.userStore.UsernameExists(ctx, cmd.Username)
	if err != nil {
		return mediator.Result[UserView]{}, err
	}
	if taken {
		return mediator.Fail[UserView](msgUsernameTaken), nil
	}

	taken, err = h.userStore.EmailExists(ctx, cmd.Email)
	if err != nil {
		return mediator.Result[UserView]{}, err
	}
	if taken {
		return mediator.Fail[UserView](msgEmailTaken), nil
	}

	if err := domain.ValidatePassword(cmd.Password); err != nil {
		return mediator.Fail[UserView](err.Error()), nil
	}

	user, err := domain.NewUser(cmd.Username, cmd.Email, cmd.DisplayName)
	if err != nil {
		return mediator.Fail[UserView](err.Error()), nil
	}

	user.HashedPassword, err = h.hasher.Hash(cmd.Password)
	if err != nil {
		return mediator.Result[UserView]{}, fmt.Errorf("failed to hash password: %w", err)
	}

	if err := h.userStore.Create(ctx, user); err != nil {
		// The unique constraints catch registrations that raced past the
		// existence checks above.
		switch {
		case errors.Is(err, store.ErrUsernameExists):
			return mediator.Fail[UserView](msgUsernameTaken), nil
		case errors.Is(err, store.ErrEmailExists):
			return mediator.Fail[UserView](msgEmailTaken), nil
		}
		logger.FromContext(ctx).Error("failed to create user",
			"username", cmd.Username,
			"error", err)
		return mediator.Result[UserView]{}, err
	}

	view, err := newUserView(ctx, h.jwtService, user)
	if err != nil {
		return mediator.Result[UserView]{}, err
	}
	return mediator.Ok(view), nil
}

// CurrentUserHandler looks up the authenticated caller and returns the user
// view with a newly minted token.
type CurrentUserHandler struct {
	userStore  store.UserStore
	jwtService auth.JWTService
}

// NewCurrentUserHandler creates a CurrentUserHandler.
func NewCurrentUserHandler(
	userStore store.UserStore,
	jwtService auth.JWTService,
) *CurrentUserHandler {
	return &CurrentUserHandler{
		userStore:  userStore,
		jwtService: jwtService,
	}
}

// Handle implements mediator.Handler.
func (h *CurrentUserHandler) Handle(
	ctx context.Context,
	q CurrentUserQuery,
) (mediator.Result[UserView], error) {
	user, err := h.userStore.GetByID(ctx, q.UserID)
	if err != nil {
		if store.IsNotFoundError(err) {
			return mediator.NotFound[UserView](), nil
		}
		return mediator.Result[UserView]{}, err
	}

	view, err := newUserView(ctx, h.jwtService, user)
	if err != nil {
		return mediator.Result[UserView]{}, err
	}
	return mediator.Ok(view), nil
}
