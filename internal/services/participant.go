package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tripplanner/internal/dates"
	"tripplanner/internal/domain"
)

type participantService struct {
	participantRepo domain.ParticipantRepository
	tripRepo        domain.TripRepository
	emailService    domain.EmailService
	apiBaseURL      string
	contextTimeout  time.Duration
}

// NewParticipantService creates a ParticipantService.
func NewParticipantService(
	participantRepo domain.ParticipantRepository,
	tripRepo domain.TripRepository,
	emailService domain.EmailService,
	apiBaseURL string,
	timeout time.Duration,
) domain.ParticipantService {
	return &participantService{
		participantRepo: participantRepo,
		tripRepo:        tripRepo,
		emailService:    emailService,
		apiBaseURL:      apiBaseURL,
		contextTimeout:  timeout,
	}
}

func (s *participantService) ConfirmParticipant(ctx context.Context, participantID string) (*domain.Participant, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	participant, err := s.participantRepo.GetByID(ctx, participantID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get participant: %w", err)
	}

	if participant.IsConfirmed {
		// Already confirmed: idempotent, no mutation.
		return participant, nil
	}

	if _, err := s.participantRepo.Confirm(ctx, participantID); err != nil {
		return nil, fmt.Errorf("confirm participant: %w", err)
	}
	participant.IsConfirmed = true
	return participant, nil
}

func (s *participantService) ListTripParticipants(ctx context.Context, tripID string) ([]*domain.Participant, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.tripRepo.GetByID(ctx, tripID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get trip: %w", err)
	}

	participants, err := s.participantRepo.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	return participants, nil
}

func (s *participantService) InviteParticipant(ctx context.Context, tripID, email string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	trip, err := s.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("get trip: %w", err)
	}

	participant := &domain.Participant{
		TripID: tripID,
		Email:  email,
	}
	if err := s.participantRepo.Create(ctx, participant); err != nil {
		return "", fmt.Errorf("create participant: %w", err)
	}

	data := &domain.ParticipantConfirmationEmailData{
		Email:              email,
		Destination:        trip.Destination,
		FormattedStartDate: dates.FormatLong(trip.StartsAt),
		FormattedEndDate:   dates.FormatLong(trip.EndsAt),
		ConfirmationLink:   fmt.Sprintf("%s/participants/%s/confirm", s.apiBaseURL, participant.ID),
	}
	if err := s.emailService.SendParticipantConfirmation(ctx, data); err != nil {
		return "", fmt.Errorf("send participant confirmation email: %w", err)
	}

	return participant.ID, nil
}

func (s *participantService) GetParticipant(ctx context.Context, participantID string) (*domain.Participant, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	participant, err := s.participantRepo.GetByID(ctx, participantID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get participant: %w", err)
	}
	return participant, nil
}
