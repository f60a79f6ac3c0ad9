package controllers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"tripplanner/internal/delivery/http/helpers"
	"tripplanner/internal/domain"
)

// ParticipantDetails is the participant projection returned by the
// participant endpoints.
type ParticipantDetails struct {
	ID          string  `json:"id"`
	Name        *string `json:"name"`
	Email       string  `json:"email"`
	IsOwner     bool    `json:"is_owner"`
	IsConfirmed bool    `json:"is_confirmed"`
}

func newParticipantDetails(p *domain.Participant) ParticipantDetails {
	return ParticipantDetails{
		ID:          p.ID,
		Name:        p.Name,
		Email:       p.Email,
		IsOwner:     p.IsOwner,
		IsConfirmed: p.IsConfirmed,
	}
}

// ListParticipantsResponse is the response body for GET /trips/{tripID}/participants.
type ListParticipantsResponse struct {
	Participants []ParticipantDetails `json:"participants"`
}

// GetParticipantResponse is the response body for GET /participants/{participantID}.
type GetParticipantResponse struct {
	Participant ParticipantDetails `json:"participant"`
}

// InviteParticipantRequest is the request body for POST /trips/{tripID}/invites.
type InviteParticipantRequest struct {
	Email string `json:"email"`
}

// Validate implements helpers.Validator.
func (i InviteParticipantRequest) Validate() helpers.FieldErrors {
	errs := helpers.FieldErrors{}
	if !emailRegex.MatchString(i.Email) {
		errs["email"] = []string{"must be a valid email address"}
	}
	return errs
}

// InviteParticipantResponse is the response body for POST /trips/{tripID}/invites.
type InviteParticipantResponse struct {
	ParticipantID string `json:"participant_id"`
	Message       string `json:"message"`
}

type ParticipantController struct {
	Logger     *slog.Logger
	Service    domain.ParticipantService
	WebBaseURL string
}

func NewParticipantController(logger *slog.Logger, svc domain.ParticipantService, webBaseURL string) *ParticipantController {
	return &ParticipantController{
		Logger:     logger,
		Service:    svc,
		WebBaseURL: webBaseURL,
	}
}

// ConfirmParticipant godoc
// @Summary Confirm a participant
// @Description Flips the participant to confirmed (one-way, atomic) and redirects to the trip page. Confirming again redirects without mutation. No email is sent on this path.
// @Tags participants
// @Param participantID path string true "Participant ID (UUID)"
// @Success 302 "redirect to the web front-end's trip page"
// @Failure 400 {object} helpers.ErrorResponse "participant not found"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /participants/{participantID}/confirm [get]
func (c *ParticipantController) ConfirmParticipant(w http.ResponseWriter, r *http.Request) {
	participantID, ok := helpers.PathUUID(w, r, "participantID")
	if !ok {
		return
	}
	participant, err := c.Service.ConfirmParticipant(r.Context(), participantID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteClientError(w, "Participant not found.")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteInternalError(w)
		return
	}
	http.Redirect(w, r, fmt.Sprintf("%s/trips/%s", c.WebBaseURL, participant.TripID), http.StatusFound)
}

// ListTripParticipants godoc
// @Summary List a trip's participants
// @Tags participants
// @Produce json
// @Param tripID path string true "Trip ID (UUID)"
// @Success 200 {object} controllers.ListParticipantsResponse
// @Failure 400 {object} helpers.ErrorResponse "trip not found"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /trips/{tripID}/participants [get]
func (c *ParticipantController) ListTripParticipants(w http.ResponseWriter, r *http.Request) {
	tripID, ok := helpers.PathUUID(w, r, "tripID")
	if !ok {
		return
	}
	participants, err := c.Service.ListTripParticipants(r.Context(), tripID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteClientError(w, "Trip not found.")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteInternalError(w)
		return
	}
	details := make([]ParticipantDetails, 0, len(participants))
	for _, p := range participants {
		details = append(details, newParticipantDetails(p))
	}
	helpers.WriteJSON(w, http.StatusOK, ListParticipantsResponse{Participants: details})
}

// InviteParticipant godoc
// @Summary Invite a participant to a trip
// @Description Adds an unconfirmed participant and emails them a confirmation link.
// @Tags participants
// @Accept json
// @Produce json
// @Param tripID path string true "Trip ID (UUID)"
// @Param invite body InviteParticipantRequest true "Email to invite"
// @Success 200 {object} controllers.InviteParticipantResponse
// @Failure 400 {object} helpers.ErrorResponse "trip not found"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /trips/{tripID}/invites [post]
func (c *ParticipantController) InviteParticipant(w http.ResponseWriter, r *http.Request) {
	tripID, ok := helpers.PathUUID(w, r, "tripID")
	if !ok {
		return
	}
	var req InviteParticipantRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	participantID, err := c.Service.InviteParticipant(r.Context(), tripID, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteClientError(w, "Trip not found.")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteInternalError(w)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, InviteParticipantResponse{ParticipantID: participantID, Message: "Participant invited successfully."})
}

// GetParticipant godoc
// @Summary Get participant details
// @Tags participants
// @Produce json
// @Param participantID path string true "Participant ID (UUID)"
// @Success 200 {object} controllers.GetParticipantResponse
// @Failure 400 {object} helpers.ErrorResponse "participant not found"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /participants/{participantID} [get]
func (c *ParticipantController) GetParticipant(w http.ResponseWriter, r *http.Request) {
	participantID, ok := helpers.PathUUID(w, r, "participantID")
	if !ok {
		return
	}
	participant, err := c.Service.GetParticipant(r.Context(), participantID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteClientError(w, "Participant not found.")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteInternalError(w)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, GetParticipantResponse{Participant: newParticipantDetails(participant)})
}
