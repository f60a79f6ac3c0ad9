package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"tripplanner/internal/delivery/http/helpers"
	"tripplanner/internal/domain"
)

// CreateLinkRequest is the request body for POST /trips/{tripID}/links.
type CreateLinkRequest struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Validate implements helpers.Validator.
func (c CreateLinkRequest) Validate() helpers.FieldErrors {
	errs := helpers.FieldErrors{}
	if msgs := validateTitle(c.Title); msgs != nil {
		errs["title"] = msgs
	}
	if u, err := url.Parse(c.URL); err != nil || !u.IsAbs() || u.Host == "" {
		errs["url"] = []string{"must be a valid URL"}
	}
	return errs
}

// CreateLinkResponse is the response body for POST /trips/{tripID}/links.
type CreateLinkResponse struct {
	LinkID  string `json:"link_id"`
	Message string `json:"message"`
}

// ListLinksResponse is the response body for GET /trips/{tripID}/links.
type ListLinksResponse struct {
	Links []*domain.Link `json:"links"`
}

type LinkController struct {
	Logger  *slog.Logger
	Service domain.LinkService
}

func NewLinkController(logger *slog.Logger, svc domain.LinkService) *LinkController {
	return &LinkController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateLink godoc
// @Summary Create a link
// @Tags links
// @Accept json
// @Produce json
// @Param tripID path string true "Trip ID (UUID)"
// @Param link body CreateLinkRequest true "Link data"
// @Success 200 {object} controllers.CreateLinkResponse
// @Failure 400 {object} helpers.ErrorResponse "trip not found"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /trips/{tripID}/links [post]
func (c *LinkController) CreateLink(w http.ResponseWriter, r *http.Request) {
	tripID, ok := helpers.PathUUID(w, r, "tripID")
	if !ok {
		return
	}
	var req CreateLinkRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	linkID, err := c.Service.CreateLink(r.Context(), tripID, req.Title, req.URL)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteClientError(w, "Trip not found.")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteInternalError(w)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, CreateLinkResponse{LinkID: linkID, Message: "Link created successfully."})
}

// ListTripLinks godoc
// @Summary List a trip's links
// @Tags links
// @Produce json
// @Param tripID path string true "Trip ID (UUID)"
// @Success 200 {object} controllers.ListLinksResponse
// @Failure 400 {object} helpers.ErrorResponse "trip not found"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /trips/{tripID}/links [get]
func (c *LinkController) ListTripLinks(w http.ResponseWriter, r *http.Request) {
	tripID, ok := helpers.PathUUID(w, r, "tripID")
	if !ok {
		return
	}
	links, err := c.Service.ListTripLinks(r.Context(), tripID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteClientError(w, "Trip not found.")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteInternalError(w)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, ListLinksResponse{Links: links})
}
