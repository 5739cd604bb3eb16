package email

import (
	"testing"

	"eventbooking/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateRenderer_BookingConfirmation(t *testing.T) {
	data := &domain.BookingConfirmationEmailData{
		Email:      "foo@bar.com",
		BookingID:  "bk-1",
		EventTitle: "Go <Conf>",
		Date:       "2025-01-05",
		Time:       "09:05",
		Venue:      "Main Hall",
		Location:   "Lisbon",
	}

	subject, html, text, err := NewTemplateRenderer().Render("booking_confirmation", data)
	require.NoError(t, err)
	assert.Equal(t, "You're booked for Go <Conf>", subject)
	assert.Contains(t, html, "Go &lt;Conf&gt;")
	assert.Contains(t, html, "2025-01-05")
	assert.Contains(t, text, "Time:  09:05")
	assert.Contains(t, text, "Booking reference: bk-1")
}

func TestTemplateRenderer_UnknownTemplate(t *testing.T) {
	_, _, _, err := NewTemplateRenderer().Render("welcome", nil)
	assert.Error(t, err)
}
