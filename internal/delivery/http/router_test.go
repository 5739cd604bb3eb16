package http

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"eventbooking/internal/delivery/http/controllers"
	"eventbooking/internal/delivery/http/middleware"
	"eventbooking/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVerifier struct{}

func (stubVerifier) Verify(token string) (string, error) {
	if token == "good" {
		return "org-1", nil
	}
	return "", errors.New("bad token")
}

type stubPinger struct{ err error }

func (p stubPinger) PingContext(context.Context) error { return p.err }

// stubEvents answers every call with ErrNotFound so routing can be observed through status codes.
type stubEvents struct{ domain.EventService }

func (stubEvents) GetEventByID(context.Context, string) (*domain.Event, error) {
	return nil, domain.ErrNotFound
}

func (stubEvents) GetEventBySlug(context.Context, string) (*domain.Event, error) {
	return nil, domain.ErrNotFound
}

func (stubEvents) ListEvents(context.Context, domain.PaginationParams) ([]*domain.Event, int, error) {
	return []*domain.Event{}, 0, nil
}

func (stubEvents) CreateEvent(context.Context, *domain.Event) error { return domain.ErrNotFound }

type stubBookings struct{ domain.BookingService }

func (stubBookings) ListBookingsByEvent(context.Context, string) ([]*domain.Booking, error) {
	return []*domain.Booking{}, nil
}

func (stubBookings) GetBooking(context.Context, string) (*domain.Booking, error) {
	return nil, domain.ErrNotFound
}

func newTestRouter(db Pinger) *http.ServeMux {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRouter(
		controllers.NewEventController(logger, stubEvents{}),
		controllers.NewBookingController(logger, stubBookings{}),
		middleware.RequireAuth(stubVerifier{}, logger),
		db,
	)
}

func TestNewRouter(t *testing.T) {
	router := newTestRouter(stubPinger{})

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		token      string
		wantStatus int
	}{
		{"list events", http.MethodGet, "/events", "", "", http.StatusOK},
		{"get event", http.MethodGet, "/events/abc", "", "", http.StatusNotFound},
		{"get by slug", http.MethodGet, "/slugs/my-event", "", "", http.StatusNotFound},
		{"create event requires auth", http.MethodPost, "/events", `{"title":"x"}`, "", http.StatusUnauthorized},
		{"create event with token", http.MethodPost, "/events", `{"title":"x"}`, "good", http.StatusNotFound},
		{"patch event requires auth", http.MethodPatch, "/events/abc", `{"title":"x"}`, "bad", http.StatusUnauthorized},
		{"list bookings requires auth", http.MethodGet, "/events/abc/bookings", "", "", http.StatusUnauthorized},
		{"list bookings with token", http.MethodGet, "/events/abc/bookings", "", "good", http.StatusOK},
		{"get booking", http.MethodGet, "/bookings/abc", "", "", http.StatusNotFound},
		{"delete not routed", http.MethodDelete, "/events/abc", "", "good", http.StatusMethodNotAllowed},
		{"healthz", http.MethodGet, "/healthz", "", "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestHealthzDatabaseDown(t *testing.T) {
	router := newTestRouter(stubPinger{err: errors.New("connection refused")})
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusServiceUnavailable, rr.Code)
}
