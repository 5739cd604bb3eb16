package validation

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"eventbooking/internal/domain"
)

// Field names reported in validation errors. They match the JSON keys of domain.Event.
const (
	FieldTitle       = "title"
	FieldSlug        = "slug"
	FieldDescription = "description"
	FieldOverview    = "overview"
	FieldImage       = "image"
	FieldVenue       = "venue"
	FieldLocation    = "location"
	FieldDate        = "date"
	FieldTime        = "time"
	FieldMode        = "mode"
	FieldAudience    = "audience"
	FieldAgenda      = "agenda"
	FieldOrganizer   = "organizer"
	FieldTags        = "tags"
)

// canonicalDate is the stored form of Event.Date.
const canonicalDate = "2006-01-02"

// dateLayouts are tried in order. Inputs carrying a zone offset are moved to UTC
// before the time of day is dropped.
var dateLayouts = []string{
	"2006-1-2",
	time.RFC3339Nano,
	"2006-1-2T15:04:05",
	"2006-1-2T15:04",
	"2006-1-2 15:04:05",
	"2006-1-2 15:04",
	"2006/1/2",
	"1/2/2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"Monday, January 2, 2006",
	"Mon, Jan 2, 2006",
	"2 January 2006",
	"2 Jan 2006",
}

var timePattern = regexp.MustCompile(`^(\d{1,2}):(\d{1,2})$`)

// ValidateEvent checks candidate and returns a normalized copy ready to persist.
// current is the stored record on update and nil on create; it decides whether
// the slug is recomputed. candidate is never modified.
func ValidateEvent(current, candidate *domain.Event) (*domain.Event, error) {
	if candidate == nil {
		return nil, domain.NewValidationError(domain.ErrMissingField, "event", "")
	}
	out := candidate.Clone()

	required := []struct {
		name  string
		value *string
	}{
		{FieldTitle, &out.Title},
		{FieldDescription, &out.Description},
		{FieldOverview, &out.Overview},
		{FieldImage, &out.Image},
		{FieldVenue, &out.Venue},
		{FieldLocation, &out.Location},
		{FieldDate, &out.Date},
		{FieldTime, &out.Time},
		{FieldMode, &out.Mode},
		{FieldAudience, &out.Audience},
		{FieldOrganizer, &out.Organizer},
	}
	for _, f := range required {
		*f.value = strings.TrimSpace(*f.value)
		if *f.value == "" {
			return nil, domain.NewValidationError(domain.ErrMissingField, f.name, "empty")
		}
	}

	var err error
	if out.Agenda, err = normalizeList(FieldAgenda, out.Agenda); err != nil {
		return nil, err
	}
	if out.Tags, err = normalizeList(FieldTags, out.Tags); err != nil {
		return nil, err
	}

	if out.Date, err = NormalizeDate(out.Date); err != nil {
		return nil, err
	}
	if out.Time, err = NormalizeTime(out.Time); err != nil {
		return nil, err
	}

	if current == nil || current.Title != out.Title || out.Slug == "" {
		out.Slug = Slugify(out.Title)
	}
	if out.Slug == "" {
		return nil, domain.NewValidationError(domain.ErrInvalidSlug, FieldSlug, "title has no letters or digits")
	}
	return out, nil
}

// EventPreCommit runs ValidateEvent as a storage pre-commit hook.
func EventPreCommit(_ context.Context, current, candidate *domain.Event) (*domain.Event, error) {
	return ValidateEvent(current, candidate)
}

var _ domain.EventPreCommit = EventPreCommit

func normalizeList(field string, values []string) ([]string, error) {
	if len(values) == 0 {
		return nil, domain.NewValidationError(domain.ErrInvalidArrayField, field, "empty")
	}
	out := make([]string, len(values))
	for i, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			return nil, domain.NewValidationError(domain.ErrInvalidArrayField, field, fmt.Sprintf("blank element at index %d", i))
		}
		out[i] = v
	}
	return out, nil
}

// NormalizeDate parses raw as a calendar date and returns it as YYYY-MM-DD.
// Inputs with a zone offset are converted to UTC first, so the stored date can
// differ from the one written: "2025-03-10T00:30:00+02:00" is stored as "2025-03-09".
func NormalizeDate(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, raw)
		if err != nil {
			continue
		}
		return t.UTC().Format(canonicalDate), nil
	}
	return "", domain.NewValidationError(domain.ErrInvalidDate, FieldDate, "unparseable")
}

// NormalizeTime checks raw is H:MM or HH:MM within 00:00-23:59 and returns it zero-padded.
func NormalizeTime(raw string) (string, error) {
	m := timePattern.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return "", domain.NewValidationError(domain.ErrInvalidTime, FieldTime, "expected HH:MM")
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour > 23 || minute > 59 {
		return "", domain.NewValidationError(domain.ErrInvalidTime, FieldTime, "out of range")
	}
	return fmt.Sprintf("%02d:%02d", hour, minute), nil
}
