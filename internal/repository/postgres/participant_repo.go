package postgres

import (
	"context"
	"database/sql"
	"errors"

	"tripplanner/internal/domain"
)

type participantRepository struct {
	DB *sql.DB
}

func NewParticipantRepository(db *sql.DB) domain.ParticipantRepository {
	return &participantRepository{
		DB: db,
	}
}

func (r *participantRepository) Create(ctx context.Context, p *domain.Participant) error {
	query := `
		INSERT INTO participants (trip_id, name, email, is_owner, is_confirmed)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	var name sql.NullString
	if p.Name != nil {
		name = sql.NullString{String: *p.Name, Valid: true}
	}
	return r.DB.QueryRowContext(ctx, query, p.TripID, name, p.Email, p.IsOwner, p.IsConfirmed).
		Scan(&p.ID)
}

func (r *participantRepository) GetByID(ctx context.Context, id string) (*domain.Participant, error) {
	query := `
		SELECT id, trip_id, name, email, is_owner, is_confirmed
		FROM participants
		WHERE id = $1
	`
	p := &domain.Participant{}
	var nameNull sql.NullString
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.TripID, &nameNull, &p.Email, &p.IsOwner, &p.IsConfirmed,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if nameNull.Valid {
		p.Name = &nameNull.String
	}
	return p, nil
}

func (r *participantRepository) ListByTripID(ctx context.Context, tripID string) ([]*domain.Participant, error) {
	query := `
		SELECT id, trip_id, name, email, is_owner, is_confirmed
		FROM participants
		WHERE trip_id = $1
		ORDER BY is_owner DESC, email ASC
	`
	return r.list(ctx, query, tripID)
}

func (r *participantRepository) ListInvitedByTripID(ctx context.Context, tripID string) ([]*domain.Participant, error) {
	query := `
		SELECT id, trip_id, name, email, is_owner, is_confirmed
		FROM participants
		WHERE trip_id = $1 AND is_owner = FALSE
		ORDER BY email ASC
	`
	return r.list(ctx, query, tripID)
}

func (r *participantRepository) list(ctx context.Context, query, tripID string) ([]*domain.Participant, error) {
	rows, err := r.DB.QueryContext(ctx, query, tripID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	participants := make([]*domain.Participant, 0)
	for rows.Next() {
		p := &domain.Participant{}
		var nameNull sql.NullString
		if err := rows.Scan(&p.ID, &p.TripID, &nameNull, &p.Email, &p.IsOwner, &p.IsConfirmed); err != nil {
			return nil, err
		}
		if nameNull.Valid {
			p.Name = &nameNull.String
		}
		participants = append(participants, p)
	}
	return participants, rows.Err()
}

// Confirm is the same atomic check-and-set used for trips, so two
// simultaneous confirmation clicks flip the flag exactly once.
func (r *participantRepository) Confirm(ctx context.Context, id string) (bool, error) {
	query := `UPDATE participants SET is_confirmed = TRUE WHERE id = $1 AND is_confirmed = FALSE`
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return false, err
	}
	rows, _ := result.RowsAffected()
	return rows > 0, nil
}
