package services

import (
	"context"
	"fmt"
	"log/slog"

	"eventbooking/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer}
}

// SendBookingConfirmation sends the "booking_confirmation" template to the attendee.
func (s *emailService) SendBookingConfirmation(ctx context.Context, data *domain.BookingConfirmationEmailData) error {
	if data == nil {
		return fmt.Errorf("booking confirmation data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("booking_confirmation", data)
	if err != nil {
		return fmt.Errorf("failed to render booking_confirmation template: %w", err)
	}
	if err := s.mailer.Send(ctx, data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send booking confirmation: %w", err)
	}
	slog.InfoContext(ctx, "booking confirmation sent", "booking_id", data.BookingID)
	return nil
}
