package controllers

import (
	"log/slog"
	"net/http"

	"eventbooking/internal/delivery/http/helpers"
	"eventbooking/internal/domain"
)

// BookingRequest is the request body for POST /events/{eventID}/bookings and PATCH /bookings/{bookingID}.
type BookingRequest struct {
	Email string `json:"email" example:"attendee@example.com"`
}

// BookingSuccessResponse is the success envelope for endpoints returning one booking.
type BookingSuccessResponse struct {
	Data  *domain.Booking   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListBookingsSuccessResponse is the success envelope for GET /events/{eventID}/bookings (200).
type ListBookingsSuccessResponse struct {
	Data  []*domain.Booking `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type BookingController struct {
	Logger  *slog.Logger
	Service domain.BookingService
}

func NewBookingController(logger *slog.Logger, svc domain.BookingService) *BookingController {
	return &BookingController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateBooking godoc
// @Summary Book an event
// @Description Books the event for the given email. The event must exist when the booking is written; the email is trimmed and lowercased.
// @Tags bookings
// @Accept json
// @Produce json
// @Param eventID path string true "Event ID (UUID)"
// @Param body body BookingRequest true "Attendee email"
// @Success 201 {object} controllers.BookingSuccessResponse "data contains the stored booking"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request, missing_field, invalid_email"
// @Failure 422 {object} helpers.APIResponse "error.code: dangling_reference (event does not exist)"
// @Failure 503 {object} helpers.APIResponse "error.code: dependency_unavailable"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/bookings [post]
func (c *BookingController) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req BookingRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	booking := domain.NewBooking(r.PathValue("eventID"), req.Email)
	if err := c.Service.CreateBooking(r.Context(), booking); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, "booking not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, booking)
}

// ListBookingsByEvent godoc
// @Summary List bookings for an event
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} controllers.ListBookingsSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/bookings [get]
func (c *BookingController) ListBookingsByEvent(w http.ResponseWriter, r *http.Request) {
	bookings, err := c.Service.ListBookingsByEvent(r.Context(), r.PathValue("eventID"))
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, "event not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, bookings)
}

// GetBooking godoc
// @Summary Get a booking
// @Tags bookings
// @Produce json
// @Param bookingID path string true "Booking ID (UUID)"
// @Success 200 {object} controllers.BookingSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /bookings/{bookingID} [get]
func (c *BookingController) GetBooking(w http.ResponseWriter, r *http.Request) {
	booking, err := c.Service.GetBooking(r.Context(), r.PathValue("bookingID"))
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, "booking not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, booking)
}

// UpdateBooking godoc
// @Summary Change a booking's email
// @Description Re-runs booking validation, including the check that the event still exists.
// @Tags bookings
// @Accept json
// @Produce json
// @Param bookingID path string true "Booking ID (UUID)"
// @Param body body BookingRequest true "New attendee email"
// @Success 200 {object} controllers.BookingSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request, missing_field, invalid_email"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 422 {object} helpers.APIResponse "error.code: dangling_reference"
// @Failure 503 {object} helpers.APIResponse "error.code: dependency_unavailable"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /bookings/{bookingID} [patch]
func (c *BookingController) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	var req BookingRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	booking, err := c.Service.UpdateBookingEmail(r.Context(), r.PathValue("bookingID"), req.Email)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, "booking not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, booking)
}
