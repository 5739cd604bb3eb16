package validation

import (
	"context"
	"errors"
	"testing"

	"eventbooking/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEventChecker implements domain.EventExistenceChecker for tests.
type fakeEventChecker struct {
	ids   map[string]bool
	err   error
	calls int
}

func (f *fakeEventChecker) Exists(_ context.Context, id string) (bool, error) {
	f.calls++
	if f.err != nil {
		return false, f.err
	}
	return f.ids[id], nil
}

func TestBookingValidator_Validate(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		booking    *domain.Booking
		checkerErr error
		wantKind   error
		wantField  string
		wantEmail  string
		wantCalls  int
	}{
		{
			name:      "normalizes email",
			booking:   domain.NewBooking("ev-1", "  FOO@BAR.com "),
			wantEmail: "foo@bar.com",
			wantCalls: 1,
		},
		{
			name:      "missing event id",
			booking:   domain.NewBooking("  ", "a@b.co"),
			wantKind:  domain.ErrMissingField,
			wantField: FieldEventID,
		},
		{
			name:      "missing email",
			booking:   domain.NewBooking("ev-1", "   "),
			wantKind:  domain.ErrMissingField,
			wantField: FieldEmail,
		},
		{
			name:      "invalid email",
			booking:   domain.NewBooking("ev-1", "not-an-email"),
			wantKind:  domain.ErrInvalidEmail,
			wantField: FieldEmail,
		},
		{
			name:      "embedded whitespace",
			booking:   domain.NewBooking("ev-1", "foo bar@baz.com"),
			wantKind:  domain.ErrInvalidEmail,
			wantField: FieldEmail,
		},
		{
			name:      "embedded vertical tab",
			booking:   domain.NewBooking("ev-1", "foo\vbar@example.com"),
			wantKind:  domain.ErrInvalidEmail,
			wantField: FieldEmail,
		},
		{
			name:      "embedded no-break space",
			booking:   domain.NewBooking("ev-1", "foo\u00a0bar@example.com"),
			wantKind:  domain.ErrInvalidEmail,
			wantField: FieldEmail,
		},
		{
			name:      "em space in domain",
			booking:   domain.NewBooking("ev-1", "foo@exa\u2003mple.com"),
			wantKind:  domain.ErrInvalidEmail,
			wantField: FieldEmail,
		},
		{
			name:      "no tld",
			booking:   domain.NewBooking("ev-1", "foo@bar"),
			wantKind:  domain.ErrInvalidEmail,
			wantField: FieldEmail,
		},
		{
			name:      "unknown event",
			booking:   domain.NewBooking("ev-missing", "a@b.co"),
			wantKind:  domain.ErrDanglingReference,
			wantField: FieldEventID,
			wantCalls: 1,
		},
		{
			name:       "storage failure",
			booking:    domain.NewBooking("ev-1", "a@b.co"),
			checkerErr: errors.New("connection refused"),
			wantKind:   domain.ErrDependencyUnavailable,
			wantCalls:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checker := &fakeEventChecker{ids: map[string]bool{"ev-1": true}, err: tt.checkerErr}
			v := NewBookingValidator(checker)
			original := tt.booking.Clone()

			got, err := v.Validate(ctx, tt.booking)

			assert.Equal(t, tt.wantCalls, checker.calls, "existence checks")
			assert.Equal(t, original, tt.booking, "candidate must not change")
			if tt.wantKind != nil {
				require.Error(t, err)
				assert.Nil(t, got)
				assert.True(t, errors.Is(err, tt.wantKind), "got %v", err)
				if tt.wantField != "" {
					var ve *domain.ValidationError
					require.True(t, errors.As(err, &ve))
					assert.Equal(t, tt.wantField, ve.Field)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantEmail, got.Email)
			assert.Equal(t, "ev-1", got.EventID)
		})
	}
}

func TestBookingValidator_DependencyFailureIsNotDangling(t *testing.T) {
	v := NewBookingValidator(&fakeEventChecker{err: errors.New("timeout")})
	_, err := v.PreCommit()(context.Background(), domain.NewBooking("ev-1", "a@b.co"))
	require.Error(t, err)
	assert.False(t, errors.Is(err, domain.ErrDanglingReference))
	assert.False(t, domain.IsValidationError(err))
	assert.True(t, errors.Is(err, domain.ErrDependencyUnavailable))
}
