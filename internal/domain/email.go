package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
// Sends are fire-and-forget: no delivery tracking, no retries.
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the
// given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// TripConfirmationEmailData holds data for the trip confirmation email sent
// to the owner right after trip creation.
type TripConfirmationEmailData struct {
	Name               string
	Email              string
	Destination        string
	FormattedStartDate string
	FormattedEndDate   string
	ConfirmationLink   string
}

// ParticipantConfirmationEmailData holds data for the attendance
// confirmation email sent to an invited participant.
type ParticipantConfirmationEmailData struct {
	Email              string
	Destination        string
	FormattedStartDate string
	FormattedEndDate   string
	ConfirmationLink   string
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendTripConfirmation(ctx context.Context, data *TripConfirmationEmailData) error
	SendParticipantConfirmation(ctx context.Context, data *ParticipantConfirmationEmailData) error
}
