package domain

import (
	"context"
	"time"
)

// Trip is the root entity: a planned journey with a date range and a
// one-way confirmation state.
// swagger:model Trip
type Trip struct {
	ID          string    `json:"id"`
	Destination string    `json:"destination"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	IsConfirmed bool      `json:"is_confirmed"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewTrip returns a new unconfirmed Trip. ID is set by the repository on create.
func NewTrip(destination string, startsAt, endsAt, createdAt time.Time) *Trip {
	return &Trip{
		Destination: destination,
		StartsAt:    startsAt,
		EndsAt:      endsAt,
		CreatedAt:   createdAt,
	}
}

// TripRepository defines the interface for trip storage.
type TripRepository interface {
	// CreateWithParticipants inserts the trip and its initial participants in
	// a single transaction. Trip and participant IDs are filled in on return.
	CreateWithParticipants(ctx context.Context, trip *Trip, participants []*Participant) error
	GetByID(ctx context.Context, id string) (*Trip, error)
	Update(ctx context.Context, id, destination string, startsAt, endsAt time.Time) error
	// Confirm flips is_confirmed to true only if it is still false.
	// Returns true when this call performed the transition, false when the
	// trip was already confirmed. Concurrent confirms cannot both win.
	Confirm(ctx context.Context, id string) (bool, error)
}

// CreateTripInput carries the fields for creating a trip together with its
// owner and the initially invited emails.
type CreateTripInput struct {
	Destination    string
	StartsAt       time.Time
	EndsAt         time.Time
	OwnerName      string
	OwnerEmail     string
	EmailsToInvite []string
}

// TripService defines trip-facing operations.
type TripService interface {
	// CreateTrip persists the trip plus its participant rows and emails a
	// confirmation link to the owner. Returns the new trip ID.
	CreateTrip(ctx context.Context, in CreateTripInput) (string, error)
	// ConfirmTrip transitions the trip to confirmed and fans out confirmation
	// emails to the invited participants. Confirming an already-confirmed
	// trip is a no-op and sends nothing.
	ConfirmTrip(ctx context.Context, tripID string) (*Trip, error)
	UpdateTrip(ctx context.Context, tripID, destination string, startsAt, endsAt time.Time) error
	GetTrip(ctx context.Context, tripID string) (*Trip, error)
}
