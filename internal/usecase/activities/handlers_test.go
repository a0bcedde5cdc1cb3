package activities

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatherhq/gather-api/internal/domain"
	"github.com/gatherhq/gather-api/internal/store"
)

// fakeActivityStore is an in-memory ActivityStore for handler tests.
type fakeActivityStore struct {
	activities map[uuid.UUID]domain.Activity

	listErr   error
	getErr    error
	createErr error
	updateErr error
	deleteErr error

	createCalls int
	updateCalls int
	deleteCalls int
}

func newFakeActivityStore(seed ...domain.Activity) *fakeActivityStore {
	s := &fakeActivityStore{activities: make(map[uuid.UUID]domain.Activity)}
	for _, a := range seed {
		s.activities[a.ID] = a
	}
	return s
}

func (s *fakeActivityStore) List(ctx context.Context) ([]domain.Activity, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	var out []domain.Activity
	for _, a := range s.activities {
		out = append(out, a)
	}
	return out, nil
}

func (s *fakeActivityStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Activity, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	a, ok := s.activities[id]
	if !ok {
		return nil, store.ErrActivityNotFound
	}
	return &a, nil
}

func (s *fakeActivityStore) Create(ctx context.Context, activity *domain.Activity) error {
	s.createCalls++
	if s.createErr != nil {
		return s.createErr
	}
	s.activities[activity.ID] = *activity
	return nil
}

func (s *fakeActivityStore) Update(ctx context.Context, activity *domain.Activity) error {
	s.updateCalls++
	if s.updateErr != nil {
		return s.updateErr
	}
	s.activities[activity.ID] = *activity
	return nil
}

func (s *fakeActivityStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.deleteCalls++
	if s.deleteErr != nil {
		return s.deleteErr
	}
	delete(s.activities, id)
	return nil
}

func testActivity() domain.Activity {
	return domain.Activity{
		ID:          uuid.New(),
		Title:       "Morning Run",
		Description: "5k around the park",
		Category:    "fitness",
		Date:        time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
		City:        "Lisbon",
		Venue:       "Parque Eduardo VII",
	}
}

func TestListHandler(t *testing.T) {
	t.Parallel()

	t.Run("returns all activities", func(t *testing.T) {
		t.Parallel()
		a, b := testActivity(), testActivity()
		h := NewListHandler(newFakeActivityStore(a, b))

		result, err := h.Handle(context.Background(), ListQuery{})
		require.NoError(t, err)
		require.True(t, result.IsSuccess())
		assert.Len(t, result.Value(), 2)
	})

	t.Run("empty store is success with empty slice", func(t *testing.T) {
		t.Parallel()
		h := NewListHandler(newFakeActivityStore())

		result, err := h.Handle(context.Background(), ListQuery{})
		require.NoError(t, err)
		require.True(t, result.IsSuccess())
		assert.NotNil(t, result.Value())
		assert.Empty(t, result.Value())
	})

	t.Run("store error propagates", func(t *testing.T) {
		t.Parallel()
		s := newFakeActivityStore()
		s.listErr = errors.New("connection reset")
		h := NewListHandler(s)

		_, err := h.Handle(context.Background(), ListQuery{})
		require.Error(t, err)
	})
}

func TestDetailsHandler(t *testing.T) {
	t.Parallel()

	t.Run("found", func(t *testing.T) {
		t.Parallel()
		a := testActivity()
		h := NewDetailsHandler(newFakeActivityStore(a))

		result, err := h.Handle(context.Background(), DetailsQuery{ID: a.ID})
		require.NoError(t, err)
		require.True(t, result.IsSuccess())
		assert.Equal(t, a, result.Value())
	})

	t.Run("missing activity is a not-found failure", func(t *testing.T) {
		t.Parallel()
		h := NewDetailsHandler(newFakeActivityStore())

		result, err := h.Handle(context.Background(), DetailsQuery{ID: uuid.New()})
		require.NoError(t, err)
		assert.True(t, result.IsNotFound())
	})
}

func TestCreateHandler(t *testing.T) {
	t.Parallel()

	t.Run("assigns server id when absent and round-trips", func(t *testing.T) {
		t.Parallel()
		s := newFakeActivityStore()
		h := NewCreateHandler(s)

		result, err := h.Handle(context.Background(), CreateCommand{
			Activity: domain.Activity{Title: "Run"},
		})
		require.NoError(t, err)
		require.True(t, result.IsSuccess())

		require.Len(t, s.activities, 1)
		for id, stored := range s.activities {
			assert.NotEqual(t, uuid.Nil, id)
			assert.Equal(t, "Run", stored.Title)

			details, err := NewDetailsHandler(s).Handle(context.Background(), DetailsQuery{ID: id})
			require.NoError(t, err)
			assert.Equal(t, stored, details.Value())
		}
	})

	t.Run("keeps client-supplied id", func(t *testing.T) {
		t.Parallel()
		s := newFakeActivityStore()
		h := NewCreateHandler(s)

		a := testActivity()
		result, err := h.Handle(context.Background(), CreateCommand{Activity: a})
		require.NoError(t, err)
		require.True(t, result.IsSuccess())
		assert.Contains(t, s.activities, a.ID)
	})

	t.Run("missing title is a validation failure", func(t *testing.T) {
		t.Parallel()
		s := newFakeActivityStore()
		h := NewCreateHandler(s)

		result, err := h.Handle(context.Background(), CreateCommand{Activity: domain.Activity{}})
		require.NoError(t, err)
		assert.False(t, result.IsSuccess())
		assert.False(t, result.IsNotFound())
		assert.Zero(t, s.createCalls)
	})

	t.Run("store failure maps to failure envelope", func(t *testing.T) {
		t.Parallel()
		s := newFakeActivityStore()
		s.createErr = errors.New("insert failed")
		h := NewCreateHandler(s)

		result, err := h.Handle(context.Background(), CreateCommand{
			Activity: domain.Activity{Title: "Run"},
		})
		require.NoError(t, err)
		assert.False(t, result.IsSuccess())
		assert.Equal(t, "Failed to create activity", result.Message())
	})

	t.Run("canceled before commit writes nothing", func(t *testing.T) {
		t.Parallel()
		s := newFakeActivityStore()
		h := NewCreateHandler(s)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := h.Handle(ctx, CreateCommand{Activity: domain.Activity{Title: "Run"}})
		require.ErrorIs(t, err, context.Canceled)
		assert.Zero(t, s.createCalls)
		assert.Empty(t, s.activities)
	})
}

func TestEditHandler(t *testing.T) {
	t.Parallel()

	t.Run("sparse patch overrides non-empty fields only", func(t *testing.T) {
		t.Parallel()
		a := testActivity()
		s := newFakeActivityStore(a)
		h := NewEditHandler(s)

		result, err := h.Handle(context.Background(), EditCommand{
			Activity: domain.Activity{
				ID:    a.ID,
				Title: "Evening Run",
				// Description, Category, Date, City, Venue left blank
			},
		})
		require.NoError(t, err)
		require.True(t, result.IsSuccess())

		updated := s.activities[a.ID]
		assert.Equal(t, "Evening Run", updated.Title)
		assert.Equal(t, a.Description, updated.Description, "blank incoming field must keep stored value")
		assert.Equal(t, a.City, updated.City)
		assert.Equal(t, a.Date, updated.Date)
	})

	t.Run("missing activity is a not-found failure", func(t *testing.T) {
		t.Parallel()
		s := newFakeActivityStore()
		h := NewEditHandler(s)

		result, err := h.Handle(context.Background(), EditCommand{
			Activity: domain.Activity{ID: uuid.New(), Title: "x"},
		})
		require.NoError(t, err)
		assert.True(t, result.IsNotFound())
		assert.Zero(t, s.updateCalls)
	})

	t.Run("no-op commit is a plain failure", func(t *testing.T) {
		t.Parallel()
		a := testActivity()
		s := newFakeActivityStore(a)
		s.updateErr = store.ErrUpdateFailed
		h := NewEditHandler(s)

		result, err := h.Handle(context.Background(), EditCommand{
			Activity: domain.Activity{ID: a.ID, Title: "x"},
		})
		require.NoError(t, err)
		assert.False(t, result.IsSuccess())
		assert.False(t, result.IsNotFound())
	})

	t.Run("canceled before commit leaves activity unchanged", func(t *testing.T) {
		t.Parallel()
		a := testActivity()
		s := newFakeActivityStore(a)
		h := NewEditHandler(s)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := h.Handle(ctx, EditCommand{Activity: domain.Activity{ID: a.ID, Title: "x"}})
		require.ErrorIs(t, err, context.Canceled)
		assert.Zero(t, s.updateCalls)
		assert.Equal(t, a, s.activities[a.ID])
	})
}

func TestDeleteHandler(t *testing.T) {
	t.Parallel()

	t.Run("delete then details yields not found", func(t *testing.T) {
		t.Parallel()
		a := testActivity()
		s := newFakeActivityStore(a)

		result, err := NewDeleteHandler(s).Handle(context.Background(), DeleteCommand{ID: a.ID})
		require.NoError(t, err)
		require.True(t, result.IsSuccess())

		details, err := NewDetailsHandler(s).Handle(context.Background(), DetailsQuery{ID: a.ID})
		require.NoError(t, err)
		assert.True(t, details.IsNotFound())
	})

	t.Run("missing activity is a not-found failure", func(t *testing.T) {
		t.Parallel()
		s := newFakeActivityStore()

		result, err := NewDeleteHandler(s).Handle(context.Background(), DeleteCommand{ID: uuid.New()})
		require.NoError(t, err)
		assert.True(t, result.IsNotFound())
		assert.Zero(t, s.deleteCalls)
	})

	t.Run("no-op commit is a plain failure", func(t *testing.T) {
		t.Parallel()
		a := testActivity()
		s := newFakeActivityStore(a)
		s.deleteErr = store.ErrDeleteFailed

		result, err := NewDeleteHandler(s).Handle(context.Background(), DeleteCommand{ID: a.ID})
		require.NoError(t, err)
		assert.False(t, result.IsSuccess())
		assert.False(t, result.IsNotFound())
	})

	t.Run("canceled before commit deletes nothing", func(t *testing.T) {
		t.Parallel()
		a := testActivity()
		s := newFakeActivityStore(a)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := NewDeleteHandler(s).Handle(ctx, DeleteCommand{ID: a.ID})
		require.ErrorIs(t, err, context.Canceled)
		assert.Contains(t, s.activities, a.ID)
	})
}
