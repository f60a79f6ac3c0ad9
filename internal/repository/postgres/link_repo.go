package postgres

import (
	"context"
	"database/sql"

	"tripplanner/internal/domain"
)

type linkRepository struct {
	DB *sql.DB
}

func NewLinkRepository(db *sql.DB) domain.LinkRepository {
	return &linkRepository{
		DB: db,
	}
}

func (r *linkRepository) Create(ctx context.Context, l *domain.Link) error {
	query := `
		INSERT INTO links (trip_id, title, url)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, l.TripID, l.Title, l.URL).
		Scan(&l.ID)
}

func (r *linkRepository) ListByTripID(ctx context.Context, tripID string) ([]*domain.Link, error) {
	query := `
		SELECT id, trip_id, title, url
		FROM links
		WHERE trip_id = $1
	`
	rows, err := r.DB.QueryContext(ctx, query, tripID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	links := make([]*domain.Link, 0)
	for rows.Next() {
		l := &domain.Link{}
		if err := rows.Scan(&l.ID, &l.TripID, &l.Title, &l.URL); err != nil {
			return nil, err
		}
		links = append(links, l)
	}
	return links, rows.Err()
}
