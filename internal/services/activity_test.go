package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"tripplanner/internal/domain"
)

type mockActivityRepo struct {
	activities []*domain.Activity
	created    *domain.Activity
	createErr  error
	listErr    error
}

func (m *mockActivityRepo) Create(ctx context.Context, a *domain.Activity) error {
	if m.createErr != nil {
		return m.createErr
	}
	a.ID = "activity-1"
	m.created = a
	return nil
}

func (m *mockActivityRepo) ListByTripID(ctx context.Context, tripID string) ([]*domain.Activity, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.activities, nil
}

func TestActivityService_CreateActivity(t *testing.T) {
	trip := &domain.Trip{
		ID:          "t1",
		Destination: "Lisbon",
		StartsAt:    time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC),
		EndsAt:      time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name     string
		tripID   string
		occursAt time.Time
		wantErr  error
	}{
		{
			name:     "trip not found",
			tripID:   "missing",
			occursAt: time.Date(2025, 3, 11, 10, 0, 0, 0, time.UTC),
			wantErr:  domain.ErrNotFound,
		},
		{
			name:     "mid range",
			tripID:   "t1",
			occursAt: time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC),
		},
		{
			name:   "first day before the trip's start time is still valid",
			tripID: "t1",
			// trip starts at noon; 8am same day passes the day-granularity check
			occursAt: time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC),
		},
		{
			name:     "last day after the trip's end time is still valid",
			tripID:   "t1",
			occursAt: time.Date(2025, 3, 15, 23, 30, 0, 0, time.UTC),
		},
		{
			name:     "day before the range",
			tripID:   "t1",
			occursAt: time.Date(2025, 3, 9, 23, 0, 0, 0, time.UTC),
			wantErr:  domain.ErrActivityOutOfRange,
		},
		{
			name:     "day after the range",
			tripID:   "t1",
			occursAt: time.Date(2025, 3, 16, 0, 30, 0, 0, time.UTC),
			wantErr:  domain.ErrActivityOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockActivityRepo{}
			svc := NewActivityService(repo, &mockTripRepo{trips: map[string]*domain.Trip{"t1": trip}}, time.Second)

			id, err := svc.CreateActivity(context.Background(), tt.tripID, "City tour", tt.occursAt)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected error %v, got %v", tt.wantErr, err)
				}
				if repo.created != nil {
					t.Fatalf("expected no activity to be persisted, got %+v", repo.created)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if id != "activity-1" {
				t.Fatalf("expected activity ID %q, got %q", "activity-1", id)
			}
			if repo.created.TripID != "t1" || repo.created.Title != "City tour" {
				t.Fatalf("created activity = %+v", repo.created)
			}
		})
	}
}

func TestActivityService_ListTripActivities(t *testing.T) {
	trip := &domain.Trip{
		ID:          "t1",
		Destination: "Lisbon",
		StartsAt:    time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
		EndsAt:      time.Date(2025, 3, 3, 18, 0, 0, 0, time.UTC),
	}
	activities := []*domain.Activity{
		{ID: "a1", TripID: "t1", Title: "Breakfast", OccursAt: time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)},
		{ID: "a2", TripID: "t1", Title: "Dinner", OccursAt: time.Date(2025, 3, 1, 20, 0, 0, 0, time.UTC)},
		{ID: "a3", TripID: "t1", Title: "Museum", OccursAt: time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC)},
	}

	t.Run("trip not found", func(t *testing.T) {
		svc := NewActivityService(&mockActivityRepo{}, &mockTripRepo{trips: map[string]*domain.Trip{}}, time.Second)
		if _, err := svc.ListTripActivities(context.Background(), "missing"); !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("one bucket per day with empty days included", func(t *testing.T) {
		svc := NewActivityService(
			&mockActivityRepo{activities: activities},
			&mockTripRepo{trips: map[string]*domain.Trip{"t1": trip}},
			time.Second,
		)

		got, err := svc.ListTripActivities(context.Background(), "t1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 3 {
			t.Fatalf("expected 3 day buckets, got %d", len(got))
		}

		wantDates := []time.Time{
			time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
		}
		wantCounts := []int{2, 0, 1}
		for i, bucket := range got {
			if !bucket.Date.Equal(wantDates[i]) {
				t.Fatalf("bucket %d date = %v, want %v", i, bucket.Date, wantDates[i])
			}
			if len(bucket.Activities) != wantCounts[i] {
				t.Fatalf("bucket %d has %d activities, want %d", i, len(bucket.Activities), wantCounts[i])
			}
			if bucket.Activities == nil {
				t.Fatalf("bucket %d activities must be an empty slice, not nil", i)
			}
		}

		// occurs_at order within the day is preserved
		if got[0].Activities[0].ID != "a1" || got[0].Activities[1].ID != "a2" {
			t.Fatalf("first day out of order: %v, %v", got[0].Activities[0].ID, got[0].Activities[1].ID)
		}
	})

	t.Run("single day trip has one bucket", func(t *testing.T) {
		oneDay := &domain.Trip{
			ID:       "t2",
			StartsAt: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
			EndsAt:   time.Date(2025, 3, 1, 22, 0, 0, 0, time.UTC),
		}
		svc := NewActivityService(
			&mockActivityRepo{},
			&mockTripRepo{trips: map[string]*domain.Trip{"t2": oneDay}},
			time.Second,
		)
		got, err := svc.ListTripActivities(context.Background(), "t2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 {
			t.Fatalf("expected 1 day bucket, got %d", len(got))
		}
	})
}
