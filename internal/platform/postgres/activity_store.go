package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/gatherhq/gather-api/internal/domain"
	"github.com/gatherhq/gather-api/internal/platform/logger"
	"github.com/gatherhq/gather-api/internal/store"
)

// PostgresActivityStore implements the store.ActivityStore interface using a
// PostgreSQL database as the storage backend.
type PostgresActivityStore struct {
	db store.DBTX
}

// Ensure PostgresActivityStore implements store.ActivityStore interface
var _ store.ActivityStore = (*PostgresActivityStore)(nil)

// NewPostgresActivityStore creates a new PostgreSQL implementation of the
// ActivityStore interface.
func NewPostgresActivityStore(db store.DBTX) *PostgresActivityStore {
	return &PostgresActivityStore{db: db}
}

// List implements store.ActivityStore.List
func (s *PostgresActivityStore) List(ctx context.Context) ([]domain.Activity, error) {
	log := logger.FromContext(ctx)

	query := `
		SELECT id, title, description, category, date, city, venue
		FROM activities
		ORDER BY date ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list activities", "error", err)
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Warn("failed to close rows", "error", err)
		}
	}()

	activities := []domain.Activity{}
	for rows.Next() {
		var a domain.Activity
		if err := rows.Scan(
			&a.ID,
			&a.Title,
			&a.Description,
			&a.Category,
			&a.Date,
			&a.City,
			&a.Venue,
		); err != nil {
			return nil, MapError(err)
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return activities, nil
}

// GetByID implements store.ActivityStore.GetByID
func (s *PostgresActivityStore) GetByID(
	ctx context.Context,
	id uuid.UUID,
) (*domain.Activity, error) {
	query := `
		SELECT id, title, description, category, date, city, venue
		FROM activities
		WHERE id = $1
	`

	var a domain.Activity
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&a.ID,
		&a.Title,
		&a.Description,
		&a.Category,
		&a.Date,
		&a.City,
		&a.Venue,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrActivityNotFound
		}
		return nil, MapError(err)
	}

	return &a, nil
}

// Create implements store.ActivityStore.Create
func (s *PostgresActivityStore) Create(ctx context.Context, activity *domain.Activity) error {
	log := logger.FromContext(ctx)

	query := `
		INSERT INTO activities (id, title, description, category, date, city, venue)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := s.db.ExecContext(ctx, query,
		activity.ID,
		activity.Title,
		activity.Description,
		activity.Category,
		activity.Date,
		activity.City,
		activity.Venue,
	)
	if err != nil {
		log.Error("failed to create activity",
			"activity_id", activity.ID,
			"error", err)
		return MapError(err)
	}

	return nil
}

// Update implements store.ActivityStore.Update
func (s *PostgresActivityStore) Update(ctx context.Context, activity *domain.Activity) error {
	query := `
		UPDATE activities
		SET title = $1, description = $2, category = $3, date = $4, city = $5, venue = $6
		WHERE id = $7
	`

	result, err := s.db.ExecContext(ctx, query,
		activity.Title,
		activity.Description,
		activity.Category,
		activity.Date,
		activity.City,
		activity.Venue,
		activity.ID,
	)
	if err != nil {
		return MapError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return store.ErrUpdateFailed
	}

	return nil
}

// Delete implements store.ActivityStore.Delete
func (s *PostgresActivityStore) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM activities WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return MapError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return store.ErrDeleteFailed
	}

	return nil
}
