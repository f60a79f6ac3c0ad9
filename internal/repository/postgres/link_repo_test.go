package postgres

import (
	"context"
	"database/sql"
	"testing"

	"tripplanner/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestLinkRepository_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		link    *domain.Link
		mock    func(mock sqlmock.Sqlmock)
		wantID  string
		wantErr bool
	}{
		{
			name: "success",
			link: &domain.Link{TripID: "trip-1", Title: "Airbnb", URL: "https://airbnb.com/rooms/123"},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO links \(trip_id, title, url\)`).
					WithArgs("trip-1", "Airbnb", "https://airbnb.com/rooms/123").
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("link-uuid-1"))
			},
			wantID: "link-uuid-1",
		},
		{
			name: "db error",
			link: &domain.Link{TripID: "trip-1", Title: "Airbnb", URL: "https://airbnb.com/rooms/123"},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO links`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewLinkRepository(db)
			err = repo.Create(ctx, tt.link)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, tt.link.ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestLinkRepository_ListByTripID(t *testing.T) {
	ctx := context.Background()
	columns := []string{"id", "trip_id", "title", "url"}

	t.Run("returns the trip's links", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT id, trip_id, title, url`).
			WithArgs("trip-1").
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow("l1", "trip-1", "Airbnb", "https://airbnb.com/rooms/123").
				AddRow("l2", "trip-1", "Flight", "https://flights.example.com/xyz"))

		repo := NewLinkRepository(db)
		got, err := repo.ListByTripID(ctx, "trip-1")
		require.NoError(t, err)
		require.Len(t, got, 2)
		require.Equal(t, "Airbnb", got[0].Title)
	})

	t.Run("no links returns empty slice", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT id, trip_id, title, url`).
			WithArgs("trip-1").
			WillReturnRows(sqlmock.NewRows(columns))

		repo := NewLinkRepository(db)
		got, err := repo.ListByTripID(ctx, "trip-1")
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Empty(t, got)
	})
}
