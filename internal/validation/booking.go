package validation

import (
	"context"
	"regexp"
	"strings"
	"unicode"

	"eventbooking/internal/domain"
)

// Field names reported in booking validation errors.
const (
	FieldEventID = "event_id"
	FieldEmail   = "email"
)

// emailPattern accepts local@domain.tld. Unicode whitespace is rejected separately.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// BookingValidator checks bookings, including that the referenced event exists.
type BookingValidator struct {
	events domain.EventExistenceChecker
}

// NewBookingValidator returns a BookingValidator that resolves event references through events.
func NewBookingValidator(events domain.EventExistenceChecker) *BookingValidator {
	return &BookingValidator{events: events}
}

// Validate returns a normalized copy of candidate. Format checks run before the
// existence lookup so malformed input never reaches storage.
func (v *BookingValidator) Validate(ctx context.Context, candidate *domain.Booking) (*domain.Booking, error) {
	if candidate == nil {
		return nil, domain.NewValidationError(domain.ErrMissingField, "booking", "")
	}
	out := candidate.Clone()

	out.EventID = strings.TrimSpace(out.EventID)
	if out.EventID == "" {
		return nil, domain.NewValidationError(domain.ErrMissingField, FieldEventID, "empty")
	}
	email := strings.TrimSpace(out.Email)
	if email == "" {
		return nil, domain.NewValidationError(domain.ErrMissingField, FieldEmail, "empty")
	}
	if strings.IndexFunc(email, unicode.IsSpace) >= 0 || !emailPattern.MatchString(email) {
		return nil, domain.NewValidationError(domain.ErrInvalidEmail, FieldEmail, "expected local@domain.tld")
	}

	ok, err := v.events.Exists(ctx, out.EventID)
	if err != nil {
		return nil, domain.DependencyError("check event exists", err)
	}
	if !ok {
		return nil, domain.NewValidationError(domain.ErrDanglingReference, FieldEventID, "no such event")
	}

	out.Email = strings.ToLower(email)
	return out, nil
}

// PreCommit returns v.Validate as a storage pre-commit hook.
func (v *BookingValidator) PreCommit() domain.BookingPreCommit {
	return v.Validate
}
