package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"tripplanner/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all application routes.
func NewRouter(
	tripController *controllers.TripController,
	participantController *controllers.ParticipantController,
	activityController *controllers.ActivityController,
	linkController *controllers.LinkController,
	healthController *controllers.HealthController,
) *http.ServeMux {
	mux := http.NewServeMux()

	// Trips
	mux.HandleFunc("POST /trips", tripController.CreateTrip)
	mux.HandleFunc("GET /trips/{tripID}/confirm", tripController.ConfirmTrip)
	mux.HandleFunc("PUT /trips/{tripID}", tripController.UpdateTrip)
	mux.HandleFunc("GET /trips/{tripID}", tripController.GetTrip)

	// Participants
	mux.HandleFunc("GET /participants/{participantID}/confirm", participantController.ConfirmParticipant)
	mux.HandleFunc("GET /trips/{tripID}/participants", participantController.ListTripParticipants)
	mux.HandleFunc("POST /trips/{tripID}/invites", participantController.InviteParticipant)
	mux.HandleFunc("GET /participants/{participantID}", participantController.GetParticipant)

	// Activities
	mux.HandleFunc("POST /trips/{tripID}/activities", activityController.CreateActivity)
	mux.HandleFunc("GET /trips/{tripID}/activities", activityController.ListTripActivities)

	// Links
	mux.HandleFunc("POST /trips/{tripID}/links", linkController.CreateLink)
	mux.HandleFunc("GET /trips/{tripID}/links", linkController.ListTripLinks)

	// Health
	mux.HandleFunc("GET /healthz", healthController.Check)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
