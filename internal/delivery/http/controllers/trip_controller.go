package controllers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"tripplanner/internal/delivery/http/helpers"
	"tripplanner/internal/domain"
)

// emailRegex matches a simple email format (local@domain with at least one
// dot in the domain).
var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

const (
	destinationMinLen = 3
	destinationMaxLen = 90
)

func validateDestination(destination string) []string {
	n := utf8.RuneCountInString(strings.TrimSpace(destination))
	if n < destinationMinLen || n > destinationMaxLen {
		return []string{fmt.Sprintf("must be between %d and %d characters", destinationMinLen, destinationMaxLen)}
	}
	return nil
}

// CreateTripRequest is the request body for POST /trips.
type CreateTripRequest struct {
	Destination    string    `json:"destination"`
	StartsAt       time.Time `json:"starts_at"`
	EndsAt         time.Time `json:"ends_at"`
	OwnerName      string    `json:"owner_name"`
	OwnerEmail     string    `json:"owner_email"`
	EmailsToInvite []string  `json:"emails_to_invite"`
}

// Validate implements helpers.Validator.
func (c CreateTripRequest) Validate() helpers.FieldErrors {
	errs := helpers.FieldErrors{}
	if msgs := validateDestination(c.Destination); msgs != nil {
		errs["destination"] = msgs
	}
	if c.StartsAt.IsZero() {
		errs["starts_at"] = []string{"is required and must be a valid date"}
	}
	if c.EndsAt.IsZero() {
		errs["ends_at"] = []string{"is required and must be a valid date"}
	}
	if c.OwnerName == "" {
		errs["owner_name"] = []string{"is required"}
	}
	if !emailRegex.MatchString(c.OwnerEmail) {
		errs["owner_email"] = []string{"must be a valid email address"}
	}
	for _, email := range c.EmailsToInvite {
		if !emailRegex.MatchString(email) {
			errs["emails_to_invite"] = append(errs["emails_to_invite"], fmt.Sprintf("%q must be a valid email address", email))
		}
	}
	return errs
}

// CreateTripResponse is the response body for POST /trips.
type CreateTripResponse struct {
	TripID  string `json:"trip_id"`
	Message string `json:"message"`
}

// UpdateTripRequest is the request body for PUT /trips/{tripID}.
type UpdateTripRequest struct {
	Destination string    `json:"destination"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
}

// Validate implements helpers.Validator.
func (u UpdateTripRequest) Validate() helpers.FieldErrors {
	errs := helpers.FieldErrors{}
	if msgs := validateDestination(u.Destination); msgs != nil {
		errs["destination"] = msgs
	}
	if u.StartsAt.IsZero() {
		errs["starts_at"] = []string{"is required and must be a valid date"}
	}
	if u.EndsAt.IsZero() {
		errs["ends_at"] = []string{"is required and must be a valid date"}
	}
	return errs
}

// UpdateTripResponse is the response body for PUT /trips/{tripID}.
type UpdateTripResponse struct {
	Message string `json:"message"`
}

// TripDetails is the trip projection returned by GET /trips/{tripID}.
type TripDetails struct {
	ID          string    `json:"id"`
	Destination string    `json:"destination"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	IsConfirmed bool      `json:"is_confirmed"`
}

// GetTripResponse is the response body for GET /trips/{tripID}.
type GetTripResponse struct {
	Trip TripDetails `json:"trip"`
}

type TripController struct {
	Logger     *slog.Logger
	Service    domain.TripService
	WebBaseURL string
}

func NewTripController(logger *slog.Logger, svc domain.TripService, webBaseURL string) *TripController {
	return &TripController{
		Logger:     logger,
		Service:    svc,
		WebBaseURL: webBaseURL,
	}
}

// CreateTrip godoc
// @Summary Create a trip
// @Description Creates a trip with its owner (auto-confirmed) and one unconfirmed participant per invited email, then emails the owner a confirmation link.
// @Tags trips
// @Accept json
// @Produce json
// @Param trip body CreateTripRequest true "Trip data"
// @Success 200 {object} controllers.CreateTripResponse
// @Failure 400 {object} helpers.ValidationErrorResponse "invalid input or dates"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /trips [post]
func (c *TripController) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var req CreateTripRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	tripID, err := c.Service.CreateTrip(r.Context(), domain.CreateTripInput{
		Destination:    req.Destination,
		StartsAt:       req.StartsAt,
		EndsAt:         req.EndsAt,
		OwnerName:      req.OwnerName,
		OwnerEmail:     req.OwnerEmail,
		EmailsToInvite: req.EmailsToInvite,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidStartDate) {
			helpers.WriteClientError(w, "Invalid trip start date.")
			return
		}
		if errors.Is(err, domain.ErrInvalidEndDate) {
			helpers.WriteClientError(w, "Invalid trip end date.")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteInternalError(w)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, CreateTripResponse{TripID: tripID, Message: "Trip created successfully."})
}

// ConfirmTrip godoc
// @Summary Confirm a trip
// @Description Flips the trip to confirmed (one-way, atomic) and emails every invited participant a confirmation link. Confirming again redirects without re-sending.
// @Tags trips
// @Param tripID path string true "Trip ID (UUID)"
// @Success 302 "redirect to the web front-end's trip page"
// @Failure 400 {object} helpers.ErrorResponse "trip not found"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /trips/{tripID}/confirm [get]
func (c *TripController) ConfirmTrip(w http.ResponseWriter, r *http.Request) {
	tripID, ok := helpers.PathUUID(w, r, "tripID")
	if !ok {
		return
	}
	if _, err := c.Service.ConfirmTrip(r.Context(), tripID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteClientError(w, "Trip not found.")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteInternalError(w)
		return
	}
	http.Redirect(w, r, fmt.Sprintf("%s/trips/%s", c.WebBaseURL, tripID), http.StatusFound)
}

// UpdateTrip godoc
// @Summary Update a trip
// @Description Updates destination and dates. The same date rules as creation apply. There is no confirmation-state guard.
// @Tags trips
// @Accept json
// @Produce json
// @Param tripID path string true "Trip ID (UUID)"
// @Param trip body UpdateTripRequest true "Fields to update"
// @Success 200 {object} controllers.UpdateTripResponse
// @Failure 400 {object} helpers.ErrorResponse "not found or invalid dates"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /trips/{tripID} [put]
func (c *TripController) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	tripID, ok := helpers.PathUUID(w, r, "tripID")
	if !ok {
		return
	}
	var req UpdateTripRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := c.Service.UpdateTrip(r.Context(), tripID, req.Destination, req.StartsAt, req.EndsAt); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteClientError(w, "Trip not found.")
			return
		}
		if errors.Is(err, domain.ErrInvalidStartDate) {
			helpers.WriteClientError(w, "Invalid trip start date.")
			return
		}
		if errors.Is(err, domain.ErrInvalidEndDate) {
			helpers.WriteClientError(w, "Invalid trip end date.")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteInternalError(w)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, UpdateTripResponse{Message: "Trip updated successfully."})
}

// GetTrip godoc
// @Summary Get trip details
// @Tags trips
// @Produce json
// @Param tripID path string true "Trip ID (UUID)"
// @Success 200 {object} controllers.GetTripResponse
// @Failure 400 {object} helpers.ErrorResponse "trip not found"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /trips/{tripID} [get]
func (c *TripController) GetTrip(w http.ResponseWriter, r *http.Request) {
	tripID, ok := helpers.PathUUID(w, r, "tripID")
	if !ok {
		return
	}
	trip, err := c.Service.GetTrip(r.Context(), tripID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteClientError(w, "Trip not found.")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteInternalError(w)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, GetTripResponse{Trip: TripDetails{
		ID:          trip.ID,
		Destination: trip.Destination,
		StartsAt:    trip.StartsAt,
		EndsAt:      trip.EndsAt,
		IsConfirmed: trip.IsConfirmed,
	}})
}
