package http

import (
	"net/http"

	"github.com/heatonjb/BirthdayBuddy/internal/delivery/http/controllers"

	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(eventController *controllers.EventController, rsvpController *controllers.RSVPController) *http.ServeMux {
	mux := http.NewServeMux()

	// Events
	mux.HandleFunc("POST /events", eventController.CreateEvent)
	mux.HandleFunc("GET /events/{guestToken}", eventController.GetEventByGuestToken)
	mux.HandleFunc("GET /events/{adminToken}/admin", eventController.GetEventByAdminToken)
	mux.HandleFunc("PUT /events/{adminToken}/admin", eventController.UpdateEvent)
	mux.HandleFunc("DELETE /events/{adminToken}/admin", eventController.DeleteEvent)

	// RSVPs
	mux.HandleFunc("POST /events/{guestToken}/rsvp", rsvpController.SubmitRSVP)
	mux.HandleFunc("GET /events/{guestToken}/rsvp-count", rsvpController.GetRSVPCount)
	mux.HandleFunc("GET /events/{guestToken}/rsvps", rsvpController.ListRSVPSummaries)
	mux.HandleFunc("GET /events/{adminToken}/admin/rsvps", rsvpController.ListRSVPs)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
