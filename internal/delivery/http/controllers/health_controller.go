package controllers

import (
	"net/http"

	"tripplanner/internal/delivery/http/helpers"
)

// HealthResponse is the response body for GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
}

type HealthController struct{}

func NewHealthController() *HealthController {
	return &HealthController{}
}

// Check godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} controllers.HealthResponse
// @Router /healthz [get]
func (c *HealthController) Check(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}
