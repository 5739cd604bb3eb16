package controllers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"eventbooking/internal/delivery/http/helpers"
	"eventbooking/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testEventID = "11111111-1111-1111-1111-111111111111"

// fakeBookingService implements domain.BookingService for handler tests.
type fakeBookingService struct {
	err          error
	bookings     []*domain.Booking
	lastCreated  *domain.Booking
	lastID       string
	lastEmail    string
	lastListedID string
}

func (f *fakeBookingService) CreateBooking(ctx context.Context, booking *domain.Booking) error {
	f.lastCreated = booking
	if f.err != nil {
		return f.err
	}
	booking.ID = "22222222-2222-2222-2222-222222222222"
	booking.Email = strings.ToLower(strings.TrimSpace(booking.Email))
	return nil
}

func (f *fakeBookingService) UpdateBookingEmail(ctx context.Context, bookingID, email string) (*domain.Booking, error) {
	f.lastID, f.lastEmail = bookingID, email
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Booking{ID: bookingID, EventID: testEventID, Email: email}, nil
}

func (f *fakeBookingService) GetBooking(ctx context.Context, bookingID string) (*domain.Booking, error) {
	f.lastID = bookingID
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Booking{ID: bookingID, EventID: testEventID, Email: "a@b.co"}, nil
}

func (f *fakeBookingService) ListBookingsByEvent(ctx context.Context, eventID string) ([]*domain.Booking, error) {
	f.lastListedID = eventID
	if f.err != nil {
		return nil, f.err
	}
	return f.bookings, nil
}

func TestBookingController_CreateBooking(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		svcErr     error
		wantStatus int
		wantCode   string
		wantField  string
	}{
		{"created", `{"email":"  FOO@BAR.com "}`, nil, http.StatusCreated, "", ""},
		{"malformed json", `{"email":`, nil, http.StatusBadRequest, helpers.ErrCodeBadRequest, ""},
		{
			"missing email", `{}`,
			domain.NewValidationError(domain.ErrMissingField, "email", ""),
			http.StatusBadRequest, helpers.ErrCodeMissingField, "email",
		},
		{
			"invalid email", `{"email":"not-an-email"}`,
			domain.NewValidationError(domain.ErrInvalidEmail, "email", ""),
			http.StatusBadRequest, helpers.ErrCodeInvalidEmail, "email",
		},
		{
			"event does not exist", `{"email":"a@b.co"}`,
			domain.NewValidationError(domain.ErrDanglingReference, "event_id", ""),
			http.StatusUnprocessableEntity, helpers.ErrCodeDanglingReference, "event_id",
		},
		{
			"existence check failed", `{"email":"a@b.co"}`,
			domain.DependencyError("check event exists", errors.New("timeout")),
			http.StatusServiceUnavailable, helpers.ErrCodeDependencyUnavailable, "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeBookingService{err: tt.svcErr}
			ctrl := NewBookingController(testLogger, svc)
			req := httptest.NewRequest(http.MethodPost, "/events/"+testEventID+"/bookings", strings.NewReader(tt.body))

			rr := serve("POST /events/{eventID}/bookings", ctrl.CreateBooking, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			var booking domain.Booking
			apiErr := decodeEnvelope(t, rr, &booking)
			if tt.wantCode == "" {
				require.Nil(t, apiErr)
				assert.Equal(t, "foo@bar.com", booking.Email)
				assert.Equal(t, testEventID, svc.lastCreated.EventID)
				return
			}
			require.NotNil(t, apiErr)
			assert.Equal(t, tt.wantCode, apiErr.Code)
			assert.Equal(t, tt.wantField, apiErr.Field)
		})
	}
}

func TestBookingController_UpdateBooking(t *testing.T) {
	const bookingID = "22222222-2222-2222-2222-222222222222"

	svc := &fakeBookingService{}
	ctrl := NewBookingController(testLogger, svc)
	req := httptest.NewRequest(http.MethodPatch, "/bookings/"+bookingID, strings.NewReader(`{"email":"new@x.io"}`))

	rr := serve("PATCH /bookings/{bookingID}", ctrl.UpdateBooking, req)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, bookingID, svc.lastID)
	assert.Equal(t, "new@x.io", svc.lastEmail)

	svc.err = domain.ErrNotFound
	req = httptest.NewRequest(http.MethodPatch, "/bookings/"+bookingID, strings.NewReader(`{"email":"new@x.io"}`))
	rr = serve("PATCH /bookings/{bookingID}", ctrl.UpdateBooking, req)
	require.Equal(t, http.StatusNotFound, rr.Code)
	apiErr := decodeEnvelope(t, rr, nil)
	require.NotNil(t, apiErr)
	assert.Equal(t, "booking not found", apiErr.Message)
}

func TestBookingController_Reads(t *testing.T) {
	svc := &fakeBookingService{bookings: []*domain.Booking{{ID: "b1"}, {ID: "b2"}}}
	ctrl := NewBookingController(testLogger, svc)

	rr := serve("GET /bookings/{bookingID}", ctrl.GetBooking, httptest.NewRequest(http.MethodGet, "/bookings/b1", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "b1", svc.lastID)

	rr = serve("GET /events/{eventID}/bookings", ctrl.ListBookingsByEvent, httptest.NewRequest(http.MethodGet, "/events/"+testEventID+"/bookings", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, testEventID, svc.lastListedID)
	var list []*domain.Booking
	require.Nil(t, decodeEnvelope(t, rr, &list))
	assert.Len(t, list, 2)

	svc.err = domain.ErrNotFound
	rr = serve("GET /events/{eventID}/bookings", ctrl.ListBookingsByEvent, httptest.NewRequest(http.MethodGet, "/events/"+testEventID+"/bookings", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
