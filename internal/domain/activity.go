package domain

import (
	"context"
	"time"
)

// Activity is a scheduled entry within a trip's date range.
// swagger:model Activity
type Activity struct {
	ID       string    `json:"id"`
	TripID   string    `json:"trip_id"`
	Title    string    `json:"title"`
	OccursAt time.Time `json:"occurs_at"`
}

// DayActivities is one calendar-day bucket of a trip's schedule. A trip
// spanning N inclusive days always produces N buckets, empty days included.
type DayActivities struct {
	Date       time.Time   `json:"date"`
	Activities []*Activity `json:"activities"`
}

// ActivityRepository defines the interface for activity storage.
type ActivityRepository interface {
	Create(ctx context.Context, a *Activity) error
	// ListByTripID returns the trip's activities in ascending occurs_at order.
	ListByTripID(ctx context.Context, tripID string) ([]*Activity, error)
}

// ActivityService defines activity-facing operations.
type ActivityService interface {
	// CreateActivity persists an activity after checking that occurs_at falls
	// within the trip's date range (UTC calendar-day granularity, inclusive).
	CreateActivity(ctx context.Context, tripID, title string, occursAt time.Time) (string, error)
	// ListTripActivities returns one bucket per calendar day from the trip's
	// start to its end, each holding that day's activities.
	ListTripActivities(ctx context.Context, tripID string) ([]DayActivities, error)
}
