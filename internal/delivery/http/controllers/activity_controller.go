package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"tripplanner/internal/delivery/http/helpers"
	"tripplanner/internal/domain"
)

const titleMinLen = 3

func validateTitle(title string) []string {
	if utf8.RuneCountInString(strings.TrimSpace(title)) < titleMinLen {
		return []string{"must be at least 3 characters"}
	}
	return nil
}

// CreateActivityRequest is the request body for POST /trips/{tripID}/activities.
type CreateActivityRequest struct {
	Title    string    `json:"title"`
	OccursAt time.Time `json:"occurs_at"`
}

// Validate implements helpers.Validator.
func (c CreateActivityRequest) Validate() helpers.FieldErrors {
	errs := helpers.FieldErrors{}
	if msgs := validateTitle(c.Title); msgs != nil {
		errs["title"] = msgs
	}
	if c.OccursAt.IsZero() {
		errs["occurs_at"] = []string{"is required and must be a valid date"}
	}
	return errs
}

// CreateActivityResponse is the response body for POST /trips/{tripID}/activities.
type CreateActivityResponse struct {
	ActivityID string `json:"activity_id"`
	Message    string `json:"message"`
}

// ListActivitiesResponse is the response body for GET /trips/{tripID}/activities:
// one entry per calendar day of the trip, empty days included.
type ListActivitiesResponse struct {
	Activities []domain.DayActivities `json:"activities"`
}

type ActivityController struct {
	Logger  *slog.Logger
	Service domain.ActivityService
}

func NewActivityController(logger *slog.Logger, svc domain.ActivityService) *ActivityController {
	return &ActivityController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateActivity godoc
// @Summary Create an activity
// @Description Creates an activity. occurs_at must fall within the trip's date range (calendar-day granularity, boundaries included).
// @Tags activities
// @Accept json
// @Produce json
// @Param tripID path string true "Trip ID (UUID)"
// @Param activity body CreateActivityRequest true "Activity data"
// @Success 200 {object} controllers.CreateActivityResponse
// @Failure 400 {object} helpers.ErrorResponse "trip not found or date out of range"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /trips/{tripID}/activities [post]
func (c *ActivityController) CreateActivity(w http.ResponseWriter, r *http.Request) {
	tripID, ok := helpers.PathUUID(w, r, "tripID")
	if !ok {
		return
	}
	var req CreateActivityRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	activityID, err := c.Service.CreateActivity(r.Context(), tripID, req.Title, req.OccursAt)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteClientError(w, "Trip not found.")
			return
		}
		if errors.Is(err, domain.ErrActivityOutOfRange) {
			helpers.WriteClientError(w, "Invalid activity date.")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteInternalError(w)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, CreateActivityResponse{ActivityID: activityID, Message: "Activity created successfully."})
}

// ListTripActivities godoc
// @Summary List a trip's activities grouped by day
// @Description Returns one bucket per calendar day from the trip's start to its end inclusive, each holding that day's activities in ascending occurs_at order.
// @Tags activities
// @Produce json
// @Param tripID path string true "Trip ID (UUID)"
// @Success 200 {object} controllers.ListActivitiesResponse
// @Failure 400 {object} helpers.ErrorResponse "trip not found"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /trips/{tripID}/activities [get]
func (c *ActivityController) ListTripActivities(w http.ResponseWriter, r *http.Request) {
	tripID, ok := helpers.PathUUID(w, r, "tripID")
	if !ok {
		return
	}
	activities, err := c.Service.ListTripActivities(r.Context(), tripID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteClientError(w, "Trip not found.")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteInternalError(w)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, ListActivitiesResponse{Activities: activities})
}
