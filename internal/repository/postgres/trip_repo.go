package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"tripplanner/internal/domain"
)

type tripRepository struct {
	DB *sql.DB
}

func NewTripRepository(db *sql.DB) domain.TripRepository {
	return &tripRepository{
		DB: db,
	}
}

func (r *tripRepository) CreateWithParticipants(ctx context.Context, trip *domain.Trip, participants []*domain.Participant) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	tripQuery := `
		INSERT INTO trips (destination, starts_at, ends_at, is_confirmed, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	if err := tx.QueryRowContext(ctx, tripQuery,
		trip.Destination, trip.StartsAt, trip.EndsAt, trip.IsConfirmed, trip.CreatedAt,
	).Scan(&trip.ID); err != nil {
		return err
	}

	participantQuery := `
		INSERT INTO participants (trip_id, name, email, is_owner, is_confirmed)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	for _, p := range participants {
		p.TripID = trip.ID
		var name sql.NullString
		if p.Name != nil {
			name = sql.NullString{String: *p.Name, Valid: true}
		}
		if err := tx.QueryRowContext(ctx, participantQuery,
			p.TripID, name, p.Email, p.IsOwner, p.IsConfirmed,
		).Scan(&p.ID); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *tripRepository) GetByID(ctx context.Context, id string) (*domain.Trip, error) {
	query := `
		SELECT id, destination, starts_at, ends_at, is_confirmed, created_at
		FROM trips
		WHERE id = $1
	`
	t := &domain.Trip{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&t.ID, &t.Destination, &t.StartsAt, &t.EndsAt, &t.IsConfirmed, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func (r *tripRepository) Update(ctx context.Context, id, destination string, startsAt, endsAt time.Time) error {
	query := `
		UPDATE trips
		SET destination = $1, starts_at = $2, ends_at = $3
		WHERE id = $4
	`
	result, err := r.DB.ExecContext(ctx, query, destination, startsAt, endsAt, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Confirm is a single atomic check-and-set: the WHERE clause only matches an
// unconfirmed row, so of any number of concurrent confirms exactly one
// observes rows > 0.
func (r *tripRepository) Confirm(ctx context.Context, id string) (bool, error) {
	query := `UPDATE trips SET is_confirmed = TRUE WHERE id = $1 AND is_confirmed = FALSE`
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return false, err
	}
	rows, _ := result.RowsAffected()
	return rows > 0, nil
}
