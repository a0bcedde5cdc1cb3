package api

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// LoginRequest is the request body for POST /api/account/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest is the request body for POST /api/account/register.
type RegisterRequest struct {
	Username    string `json:"username" validate:"required,alphanum"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8,max=72"`
	DisplayName string `json:"displayName" validate:"required"`
}

// validationFields extracts the offending field names from a validator
// error, for inclusion in 400 responses. Raw validator messages can echo
// user input, so only field names are exposed.
func validationFields(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return fields
}
