package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"tripplanner/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestTripRepository_CreateWithParticipants(t *testing.T) {
	ctx := context.Background()
	startsAt := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	endsAt := time.Date(2025, 6, 5, 10, 0, 0, 0, time.UTC)
	createdAt := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		trip := &domain.Trip{Destination: "Lisbon", StartsAt: startsAt, EndsAt: endsAt, CreatedAt: createdAt}
		participants := []*domain.Participant{
			{Name: strPtr("Ana"), Email: "ana@example.com", IsOwner: true, IsConfirmed: true},
			{Email: "bob@example.com"},
		}

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO trips \(destination, starts_at, ends_at, is_confirmed, created_at\)`).
			WithArgs("Lisbon", startsAt, endsAt, false, createdAt).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("trip-uuid-1"))
		mock.ExpectQuery(`INSERT INTO participants \(trip_id, name, email, is_owner, is_confirmed\)`).
			WithArgs("trip-uuid-1", "Ana", "ana@example.com", true, true).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("part-uuid-1"))
		mock.ExpectQuery(`INSERT INTO participants \(trip_id, name, email, is_owner, is_confirmed\)`).
			WithArgs("trip-uuid-1", nil, "bob@example.com", false, false).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("part-uuid-2"))
		mock.ExpectCommit()

		repo := NewTripRepository(db)
		require.NoError(t, repo.CreateWithParticipants(ctx, trip, participants))
		require.Equal(t, "trip-uuid-1", trip.ID)
		require.Equal(t, "part-uuid-1", participants[0].ID)
		require.Equal(t, "part-uuid-2", participants[1].ID)
		require.Equal(t, "trip-uuid-1", participants[1].TripID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("trip insert failure rolls back", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO trips`).
			WillReturnError(sql.ErrConnDone)
		mock.ExpectRollback()

		repo := NewTripRepository(db)
		trip := &domain.Trip{Destination: "Lisbon", StartsAt: startsAt, EndsAt: endsAt, CreatedAt: createdAt}
		require.Error(t, repo.CreateWithParticipants(ctx, trip, nil))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("participant insert failure rolls back", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO trips`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("trip-uuid-1"))
		mock.ExpectQuery(`INSERT INTO participants`).
			WillReturnError(sql.ErrConnDone)
		mock.ExpectRollback()

		repo := NewTripRepository(db)
		trip := &domain.Trip{Destination: "Lisbon", StartsAt: startsAt, EndsAt: endsAt, CreatedAt: createdAt}
		participants := []*domain.Participant{{Email: "bob@example.com"}}
		require.Error(t, repo.CreateWithParticipants(ctx, trip, participants))
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTripRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	startsAt := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	endsAt := time.Date(2025, 6, 5, 10, 0, 0, 0, time.UTC)
	createdAt := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		id      string
		mock    func(mock sqlmock.Sqlmock)
		want    *domain.Trip
		wantErr error
	}{
		{
			name: "success",
			id:   "trip-1",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, destination, starts_at, ends_at, is_confirmed, created_at`).
					WithArgs("trip-1").
					WillReturnRows(sqlmock.NewRows([]string{"id", "destination", "starts_at", "ends_at", "is_confirmed", "created_at"}).
						AddRow("trip-1", "Lisbon", startsAt, endsAt, true, createdAt))
			},
			want: &domain.Trip{ID: "trip-1", Destination: "Lisbon", StartsAt: startsAt, EndsAt: endsAt, IsConfirmed: true, CreatedAt: createdAt},
		},
		{
			name: "not found maps to domain error",
			id:   "missing",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, destination, starts_at, ends_at, is_confirmed, created_at`).
					WithArgs("missing").
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: domain.ErrNotFound,
		},
		{
			name: "db error",
			id:   "trip-1",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, destination, starts_at, ends_at, is_confirmed, created_at`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: sql.ErrConnDone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewTripRepository(db)
			got, err := repo.GetByID(ctx, tt.id)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTripRepository_Update(t *testing.T) {
	ctx := context.Background()
	startsAt := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	endsAt := time.Date(2025, 6, 5, 10, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`UPDATE trips`).
			WithArgs("Porto", startsAt, endsAt, "trip-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewTripRepository(db)
		require.NoError(t, repo.Update(ctx, "trip-1", "Porto", startsAt, endsAt))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no rows affected maps to not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`UPDATE trips`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		repo := NewTripRepository(db)
		require.ErrorIs(t, repo.Update(ctx, "missing", "Porto", startsAt, endsAt), domain.ErrNotFound)
	})
}

func TestTripRepository_Confirm(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		want    bool
		wantErr bool
	}{
		{
			name: "flips the flag",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE trips SET is_confirmed = TRUE WHERE id = \$1 AND is_confirmed = FALSE`).
					WithArgs("trip-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			want: true,
		},
		{
			name: "already confirmed",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE trips SET is_confirmed = TRUE`).
					WithArgs("trip-1").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			want: false,
		},
		{
			name: "db error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE trips SET is_confirmed = TRUE`).
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
			repo := NewTripRepository(db)
			got, err := repo.Confirm(ctx, "trip-1")
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
