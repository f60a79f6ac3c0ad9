package domain

import "context"

// Participant is a person invited to or owning a trip, tracked by email and
// confirmation state. Exactly one participant per trip is the owner.
// swagger:model Participant
type Participant struct {
	ID          string  `json:"id"`
	TripID      string  `json:"trip_id"`
	Name        *string `json:"name"`
	Email       string  `json:"email"`
	IsOwner     bool    `json:"is_owner"`
	IsConfirmed bool    `json:"is_confirmed"`
}

// ParticipantRepository defines the interface for participant storage.
type ParticipantRepository interface {
	Create(ctx context.Context, p *Participant) error
	GetByID(ctx context.Context, id string) (*Participant, error)
	ListByTripID(ctx context.Context, tripID string) ([]*Participant, error)
	// ListInvitedByTripID returns the non-owner participants of the trip,
	// i.e. everyone who should receive a confirmation email.
	ListInvitedByTripID(ctx context.Context, tripID string) ([]*Participant, error)
	// Confirm flips is_confirmed to true only if it is still false.
	// Returns true when this call performed the transition.
	Confirm(ctx context.Context, id string) (bool, error)
}

// ParticipantService defines participant-facing operations.
type ParticipantService interface {
	// ConfirmParticipant transitions the participant to confirmed. Confirming
	// an already-confirmed participant is a no-op. The participant is
	// returned so the handler can redirect to its trip page.
	ConfirmParticipant(ctx context.Context, participantID string) (*Participant, error)
	ListTripParticipants(ctx context.Context, tripID string) ([]*Participant, error)
	// InviteParticipant adds an unconfirmed participant to the trip and
	// emails them a confirmation link. Returns the new participant ID.
	InviteParticipant(ctx context.Context, tripID, email string) (string, error)
	GetParticipant(ctx context.Context, participantID string) (*Participant, error)
}
