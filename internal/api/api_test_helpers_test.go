package api

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/gatherhq/gather-api/internal/domain"
	"github.com/gatherhq/gather-api/internal/mediator"
	"github.com/gatherhq/gather-api/internal/service/auth"
	"github.com/gatherhq/gather-api/internal/store"
	"github.com/gatherhq/gather-api/internal/usecase/accounts"
	"github.com/gatherhq/gather-api/internal/usecase/activities"
)

// fakeActivityStore is an in-memory ActivityStore for HTTP adapter tests.
type fakeActivityStore struct {
	activities map[uuid.UUID]domain.Activity
}

func newFakeActivityStore(seed ...domain.Activity) *fakeActivityStore {
	s := &fakeActivityStore{activities: make(map[uuid.UUID]domain.Activity)}
	for _, a := range seed {
		s.activities[a.ID] = a
	}
	return s
}

func (s *fakeActivityStore) List(ctx context.Context) ([]domain.Activity, error) {
	var out []domain.Activity
	for _, a := range s.activities {
		out = append(out, a)
	}
	return out, nil
}

func (s *fakeActivityStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Activity, error) {
	a, ok := s.activities[id]
	if !ok {
		return nil, store.ErrActivityNotFound
	}
	return &a, nil
}

func (s *fakeActivityStore) Create(ctx context.Context, activity *domain.Activity) error {
	s.activities[activity.ID] = *activity
	return nil
}

func (s *fakeActivityStore) Update(ctx context.Context, activity *domain.Activity) error {
	if _, ok := s.activities[activity.ID]; !ok {
		return store.ErrUpdateFailed
	}
	s.activities[activity.ID] = *activity
	return nil
}

func (s *fakeActivityStore) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := s.activities[id]; !ok {
		return store.ErrDeleteFailed
	}
	delete(s.activities, id)
	return nil
}

// fakeUserStore is an in-memory UserStore for HTTP adapter tests.
type fakeUserStore struct {
	users map[uuid.UUID]*domain.User
}

func newFakeUserStore(seed ...*domain.User) *fakeUserStore {
	s := &fakeUserStore{users: make(map[uuid.UUID]*domain.User)}
	for _, u := range seed {
		s.users[u.ID] = u
	}
	return s
}

func (s *fakeUserStore) Create(ctx context.Context, user *domain.User) error {
	s.users[user.ID] = user
	return nil
}

func (s *fakeUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return u, nil
}

func (s *fakeUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, store.ErrUserNotFound
}

func (s *fakeUserStore) UsernameExists(ctx context.Context, username string) (bool, error) {
	for _, u := range s.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeUserStore) EmailExists(ctx context.Context, email string) (bool, error) {
	for _, u := range s.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// fakeJWTService issues predictable tokens.
type fakeJWTService struct {
	issued int
}

func (s *fakeJWTService) GenerateToken(
	ctx context.Context,
	userID uuid.UUID,
	username string,
) (string, error) {
	s.issued++
	return fmt.Sprintf("token-%d", s.issued), nil
}

func (s *fakeJWTService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	return nil, auth.ErrInvalidToken
}

// fakeHasher marks passwords instead of hashing them.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (fakeHasher) Compare(hashedPassword, password string) error {
	if hashedPassword != "hashed:"+password {
		return errors.New("mismatch")
	}
	return nil
}

// newTestDispatcher wires every use-case handler against the given fakes.
func newTestDispatcher(
	t *testing.T,
	activityStore store.ActivityStore,
	userStore store.UserStore,
) *mediator.Dispatcher {
	t.Helper()

	d := mediator.New()
	jwtService := &fakeJWTService{}
	hasher := fakeHasher{}

	require.NoError(t, mediator.Register[activities.ListQuery, []domain.Activity](
		d, activities.NewListHandler(activityStore)))
	require.NoError(t, mediator.Register[activities.DetailsQuery, domain.Activity](
		d, activities.NewDetailsHandler(activityStore)))
	require.NoError(t, mediator.Register[activities.CreateCommand, mediator.Unit](
		d, activities.NewCreateHandler(activityStore)))
	require.NoError(t, mediator.Register[activities.EditCommand, mediator.Unit](
		d, activities.NewEditHandler(activityStore)))
	require.NoError(t, mediator.Register[activities.DeleteCommand, mediator.Unit](
		d, activities.NewDeleteHandler(activityStore)))
	require.NoError(t, mediator.Register[accounts.LoginCommand, accounts.UserView](
		d, accounts.NewLoginHandler(userStore, jwtService, hasher)))
	require.NoError(t, mediator.Register[accounts.RegisterCommand, accounts.UserView](
		d, accounts.NewRegisterHandler(userStore, jwtService, hasher)))
	require.NoError(t, mediator.Register[accounts.CurrentUserQuery, accounts.UserView](
		d, accounts.NewCurrentUserHandler(userStore, jwtService)))

	return d
}
