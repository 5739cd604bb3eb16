package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"eventbooking/internal/domain"
	"eventbooking/internal/validation"
)

type bookingService struct {
	bookingRepo    domain.BookingRepository
	eventRepo      domain.EventRepository
	validator      *validation.BookingValidator
	emailService   domain.EmailService
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewBookingService creates a BookingService. Bookings are checked against eventRepo
// before commit; emailService may be nil to skip confirmation emails.
func NewBookingService(
	bookingRepo domain.BookingRepository,
	eventRepo domain.EventRepository,
	emailService domain.EmailService,
	logger *slog.Logger,
	timeout time.Duration,
) domain.BookingService {
	if timeout <= 0 {
		timeout = defaultContextTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &bookingService{
		bookingRepo:    bookingRepo,
		eventRepo:      eventRepo,
		validator:      validation.NewBookingValidator(eventRepo),
		emailService:   emailService,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, booking *domain.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.bookingRepo.Create(ctx, booking, s.validator.PreCommit()); err != nil {
		if domain.IsValidationError(err) || errors.Is(err, domain.ErrDependencyUnavailable) {
			return err
		}
		return fmt.Errorf("create booking: %w", err)
	}

	s.sendConfirmation(ctx, booking)
	return nil
}

// sendConfirmation emails the attendee. The booking is already committed, so failures are only logged.
func (s *bookingService) sendConfirmation(ctx context.Context, booking *domain.Booking) {
	if s.emailService == nil {
		return
	}
	event, err := s.eventRepo.GetByID(ctx, booking.EventID)
	if err != nil {
		s.logger.WarnContext(ctx, "booking confirmation skipped", "booking_id", booking.ID, "event_id", booking.EventID, "err", err)
		return
	}
	data := &domain.BookingConfirmationEmailData{
		Email:      booking.Email,
		BookingID:  booking.ID,
		EventTitle: event.Title,
		EventSlug:  event.Slug,
		Date:       event.Date,
		Time:       event.Time,
		Venue:      event.Venue,
		Location:   event.Location,
	}
	if err := s.emailService.SendBookingConfirmation(ctx, data); err != nil {
		s.logger.WarnContext(ctx, "booking confirmation failed", "booking_id", booking.ID, "err", err)
	}
}

func (s *bookingService) UpdateBookingEmail(ctx context.Context, bookingID, email string) (*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	current, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}

	candidate := current.Clone()
	candidate.Email = email
	if err := s.bookingRepo.Update(ctx, candidate, s.validator.PreCommit()); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		if domain.IsValidationError(err) || errors.Is(err, domain.ErrDependencyUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("update booking: %w", err)
	}
	return candidate, nil
}

func (s *bookingService) GetBooking(ctx context.Context, bookingID string) (*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}
	return booking, nil
}

func (s *bookingService) ListBookingsByEvent(ctx context.Context, eventID string) ([]*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	bookings, err := s.bookingRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}
