package services

import (
	"context"
	"fmt"
	"log"

	"tripplanner/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
}

// NewEmailService returns an EmailService that uses the given Mailer and
// template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer}
}

// SendTripConfirmation emails the trip owner their confirmation link using
// the "trip_confirmation" template.
func (s *emailService) SendTripConfirmation(ctx context.Context, data *domain.TripConfirmationEmailData) error {
	if data == nil {
		return fmt.Errorf("trip confirmation data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("trip_confirmation", data)
	if err != nil {
		return fmt.Errorf("failed to render trip_confirmation template: %w", err)
	}
	if err := s.mailer.Send(ctx, data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send trip confirmation email: %w", err)
	}
	log.Printf("[EMAIL] Trip confirmation sent to %s", data.Email)
	return nil
}

// SendParticipantConfirmation emails an invited participant their attendance
// confirmation link using the "participant_confirmation" template.
func (s *emailService) SendParticipantConfirmation(ctx context.Context, data *domain.ParticipantConfirmationEmailData) error {
	if data == nil {
		return fmt.Errorf("participant confirmation data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("participant_confirmation", data)
	if err != nil {
		return fmt.Errorf("failed to render participant_confirmation template: %w", err)
	}
	if err := s.mailer.Send(ctx, data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send participant confirmation email: %w", err)
	}
	log.Printf("[EMAIL] Participant confirmation sent to %s", data.Email)
	return nil
}
