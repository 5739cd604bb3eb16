package domain

import (
	"context"
	"time"
)

// Booking is an attendee's reservation for an event. EventID is a weak reference:
// it is checked against event storage at write time only.
// swagger:model Booking
type Booking struct {
	ID        string    `json:"id"`
	EventID   string    `json:"event_id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewBooking returns a new Booking for the given event and email. ID and timestamps are set by the repository.
func NewBooking(eventID, email string) *Booking {
	return &Booking{
		EventID: eventID,
		Email:   email,
	}
}

// Clone returns a copy of b.
func (b *Booking) Clone() *Booking {
	if b == nil {
		return nil
	}
	c := *b
	return &c
}

// BookingPreCommit validates a candidate booking before the store makes it durable.
type BookingPreCommit func(ctx context.Context, candidate *Booking) (*Booking, error)

// BookingRepository defines storage operations for bookings.
type BookingRepository interface {
	Create(ctx context.Context, booking *Booking, hook BookingPreCommit) error
	Update(ctx context.Context, booking *Booking, hook BookingPreCommit) error
	GetByID(ctx context.Context, id string) (*Booking, error)
	ListByEventID(ctx context.Context, eventID string) ([]*Booking, error)
}

// BookingService defines booking operations.
type BookingService interface {
	CreateBooking(ctx context.Context, booking *Booking) error
	UpdateBookingEmail(ctx context.Context, bookingID, email string) (*Booking, error)
	GetBooking(ctx context.Context, bookingID string) (*Booking, error)
	ListBookingsByEvent(ctx context.Context, eventID string) ([]*Booking, error)
}
