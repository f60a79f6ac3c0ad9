package email

import (
	"strings"
	"testing"

	"tripplanner/internal/domain"
)

func TestTemplateRenderer_TripConfirmation(t *testing.T) {
	r := NewTemplateRenderer()
	data := &domain.TripConfirmationEmailData{
		Name:               "Ana",
		Email:              "ana@example.com",
		Destination:        "Florianopolis, Brazil",
		FormattedStartDate: "June 1, 2025",
		FormattedEndDate:   "June 5, 2025",
		ConfirmationLink:   "http://localhost:8080/trips/t1/confirm",
	}

	subject, html, text, err := r.Render("trip_confirmation", data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if subject != "Confirm your trip to Florianopolis, Brazil on June 1, 2025" {
		t.Fatalf("subject = %q", subject)
	}
	if !strings.Contains(html, "Ana") {
		t.Fatalf("html missing owner name: %s", html)
	}
	if !strings.Contains(html, data.ConfirmationLink) {
		t.Fatalf("html missing confirmation link: %s", html)
	}
	if !strings.Contains(text, data.ConfirmationLink) {
		t.Fatalf("text missing confirmation link: %s", text)
	}
}

func TestTemplateRenderer_ParticipantConfirmation(t *testing.T) {
	r := NewTemplateRenderer()
	data := &domain.ParticipantConfirmationEmailData{
		Email:              "bob@example.com",
		Destination:        "Lisbon",
		FormattedStartDate: "June 1, 2025",
		FormattedEndDate:   "June 5, 2025",
		ConfirmationLink:   "http://localhost:8080/participants/p1/confirm",
	}

	subject, html, text, err := r.Render("participant_confirmation", data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(subject, "Lisbon") || !strings.Contains(subject, "June 1, 2025") {
		t.Fatalf("subject = %q", subject)
	}
	if !strings.Contains(html, data.ConfirmationLink) {
		t.Fatalf("html missing confirmation link: %s", html)
	}
	if !strings.Contains(text, data.ConfirmationLink) {
		t.Fatalf("text missing confirmation link: %s", text)
	}
}

func TestTemplateRenderer_UnknownTemplate(t *testing.T) {
	r := NewTemplateRenderer()
	if _, _, _, err := r.Render("no_such_template", nil); err == nil {
		t.Fatal("expected error for unknown template")
	}
}

func TestNewMailer_ProviderSelection(t *testing.T) {
	tests := []struct {
		name     string
		provider string
	}{
		{"noop", "noop"},
		{"unknown falls back to noop", "carrier-pigeon"},
		{"ses", "ses"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMailer(MailerConfig{
				Provider:    tt.provider,
				FromAddress: "planner@mail.com",
				FromName:    "Trip Planner",
				SES:         SESConfig{Region: "us-east-1"},
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if m == nil {
				t.Fatal("expected a mailer")
			}
		})
	}
}
