package accounts

import "github.com/google/uuid"

// LoginCommand requests authentication by email and password.
type LoginCommand struct {
	Email    string
	Password string
}

// RegisterCommand requests creation of a new account.
type RegisterCommand struct {
	Username    string
	Email       string
	Password    string
	DisplayName string
}

// CurrentUserQuery requests the profile of the authenticated caller. The
// HTTP adapter fills UserID from the verified token claims, keeping the
// handler testable with an explicit caller identity.
type CurrentUserQuery struct {
	UserID uuid.UUID
}

// UserView is the response shape shared by Login, Register and CurrentUser.
// Token is freshly issued on every call.
type UserView struct {
	DisplayName string `json:"displayName"`
	Username    string `json:"username"`
	Token       string `json:"token"`
	Image       string `json:"image"`
}
