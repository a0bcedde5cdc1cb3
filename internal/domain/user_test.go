package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	user, err := NewUser("bob", "bob@example.com", "Bob")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "bob", user.Username)
	assert.Equal(t, "bob@example.com", user.Email)
	assert.Equal(t, "Bob", user.DisplayName)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestUserValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		modify  func(*User)
		wantErr error
	}{
		{"valid user", func(u *User) {}, nil},
		{"nil id", func(u *User) { u.ID = uuid.Nil }, ErrEmptyUserID},
		{"blank username", func(u *User) { u.Username = "   " }, ErrEmptyUsername},
		{"empty email", func(u *User) { u.Email = "" }, ErrEmptyEmail},
		{"email without at", func(u *User) { u.Email = "bobexample.com" }, ErrInvalidEmail},
		{"email without domain dot", func(u *User) { u.Email = "bob@example" }, ErrInvalidEmail},
		{"email ending in dot", func(u *User) { u.Email = "bob@example." }, ErrInvalidEmail},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			user, err := NewUser("bob", "bob@example.com", "Bob")
			require.NoError(t, err)
			tt.modify(user)

			err = user.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{"valid", "longenough", nil},
		{"empty", "", ErrEmptyPassword},
		{"too short", "short", ErrPasswordTooShort},
		{"too long", strings.Repeat("x", 73), ErrPasswordTooLong},
		{"at bcrypt limit", strings.Repeat("x", 72), nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidatePassword(tt.password)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
