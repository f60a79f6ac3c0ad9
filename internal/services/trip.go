package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"tripplanner/internal/dates"
	"tripplanner/internal/domain"
)

type tripService struct {
	tripRepo        domain.TripRepository
	participantRepo domain.ParticipantRepository
	emailService    domain.EmailService
	apiBaseURL      string
	contextTimeout  time.Duration
}

// NewTripService creates a TripService. apiBaseURL is the public base URL of
// this API, used to build the confirmation links embedded in emails.
func NewTripService(
	tripRepo domain.TripRepository,
	participantRepo domain.ParticipantRepository,
	emailService domain.EmailService,
	apiBaseURL string,
	timeout time.Duration,
) domain.TripService {
	return &tripService{
		tripRepo:        tripRepo,
		participantRepo: participantRepo,
		emailService:    emailService,
		apiBaseURL:      apiBaseURL,
		contextTimeout:  timeout,
	}
}

func (s *tripService) CreateTrip(ctx context.Context, in domain.CreateTripInput) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	now := time.Now()
	if in.StartsAt.Before(now) {
		return "", domain.ErrInvalidStartDate
	}
	if in.EndsAt.Before(in.StartsAt) {
		return "", domain.ErrInvalidEndDate
	}

	trip := domain.NewTrip(in.Destination, in.StartsAt, in.EndsAt, now)

	participants := make([]*domain.Participant, 0, len(in.EmailsToInvite)+1)
	ownerName := in.OwnerName
	participants = append(participants, &domain.Participant{
		Name:        &ownerName,
		Email:       in.OwnerEmail,
		IsOwner:     true,
		IsConfirmed: true,
	})
	for _, email := range in.EmailsToInvite {
		participants = append(participants, &domain.Participant{Email: email})
	}

	if err := s.tripRepo.CreateWithParticipants(ctx, trip, participants); err != nil {
		return "", fmt.Errorf("create trip: %w", err)
	}

	data := &domain.TripConfirmationEmailData{
		Name:               in.OwnerName,
		Email:              in.OwnerEmail,
		Destination:        in.Destination,
		FormattedStartDate: dates.FormatLong(in.StartsAt),
		FormattedEndDate:   dates.FormatLong(in.EndsAt),
		ConfirmationLink:   fmt.Sprintf("%s/trips/%s/confirm", s.apiBaseURL, trip.ID),
	}
	// A failed send surfaces to the caller; there is no retry or
	// delivery tracking for outbound mail.
	if err := s.emailService.SendTripConfirmation(ctx, data); err != nil {
		return "", fmt.Errorf("send trip confirmation email: %w", err)
	}

	return trip.ID, nil
}

func (s *tripService) ConfirmTrip(ctx context.Context, tripID string) (*domain.Trip, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	trip, err := s.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get trip: %w", err)
	}

	confirmed, err := s.tripRepo.Confirm(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("confirm trip: %w", err)
	}
	if !confirmed {
		// Already confirmed: idempotent, nothing is re-sent.
		return trip, nil
	}
	trip.IsConfirmed = true

	invited, err := s.participantRepo.ListInvitedByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("list invited participants: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, p := range invited {
		g.Go(func() error {
			data := &domain.ParticipantConfirmationEmailData{
				Email:              p.Email,
				Destination:        trip.Destination,
				FormattedStartDate: dates.FormatLong(trip.StartsAt),
				FormattedEndDate:   dates.FormatLong(trip.EndsAt),
				ConfirmationLink:   fmt.Sprintf("%s/participants/%s/confirm", s.apiBaseURL, p.ID),
			}
			return s.emailService.SendParticipantConfirmation(gctx, data)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("send participant confirmation emails: %w", err)
	}

	return trip, nil
}

func (s *tripService) UpdateTrip(ctx context.Context, tripID, destination string, startsAt, endsAt time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.tripRepo.GetByID(ctx, tripID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get trip: %w", err)
	}

	if startsAt.Before(time.Now()) {
		return domain.ErrInvalidStartDate
	}
	if endsAt.Before(startsAt) {
		return domain.ErrInvalidEndDate
	}

	if err := s.tripRepo.Update(ctx, tripID, destination, startsAt, endsAt); err != nil {
		return fmt.Errorf("update trip: %w", err)
	}
	return nil
}

func (s *tripService) GetTrip(ctx context.Context, tripID string) (*domain.Trip, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	trip, err := s.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get trip: %w", err)
	}
	return trip, nil
}
