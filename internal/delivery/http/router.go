package http

import (
	"context"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"eventbooking/internal/delivery/http/controllers"
	"eventbooking/internal/delivery/http/helpers"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// NewRouter registers all application routes. requireAuth guards organizer-only endpoints.
func NewRouter(
	events *controllers.EventController,
	bookings *controllers.BookingController,
	requireAuth func(http.HandlerFunc) http.HandlerFunc,
	db Pinger,
) *http.ServeMux {
	mux := http.NewServeMux()

	// Events
	mux.HandleFunc("POST /events", requireAuth(events.CreateEvent))
	mux.HandleFunc("GET /events", events.ListEvents)
	mux.HandleFunc("GET /events/{eventID}", events.GetEventByID)
	mux.HandleFunc("PATCH /events/{eventID}", requireAuth(events.UpdateEvent))
	mux.HandleFunc("GET /slugs/{slug}", events.GetEventBySlug)

	// Bookings
	mux.HandleFunc("POST /events/{eventID}/bookings", bookings.CreateBooking)
	mux.HandleFunc("GET /events/{eventID}/bookings", requireAuth(bookings.ListBookingsByEvent))
	mux.HandleFunc("GET /bookings/{bookingID}", bookings.GetBooking)
	mux.HandleFunc("PATCH /bookings/{bookingID}", bookings.UpdateBooking)

	mux.HandleFunc("GET /healthz", healthz(db))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

// healthz godoc
// @Summary Liveness and database check
// @Tags health
// @Produce json
// @Success 200 {object} helpers.APIResponse
// @Failure 503 {object} helpers.APIResponse "error.code: dependency_unavailable"
// @Router /healthz [get]
func healthz(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			if err := db.PingContext(r.Context()); err != nil {
				helpers.WriteJSONError(w, http.StatusServiceUnavailable, helpers.ErrCodeDependencyUnavailable, "database unreachable")
				return
			}
		}
		helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
