package domain

import (
	"context"
	"slices"
	"time"
)

// Event represents a bookable event.
// swagger:model Event
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Overview    string    `json:"overview"`
	Image       string    `json:"image"`
	Venue       string    `json:"venue"`
	Location    string    `json:"location"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Mode        string    `json:"mode"`
	Audience    string    `json:"audience"`
	Agenda      []string  `json:"agenda"`
	Organizer   string    `json:"organizer"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Clone returns a deep copy of e, including its agenda and tags.
func (e *Event) Clone() *Event {
	if e == nil {
		return nil
	}
	c := *e
	c.Agenda = slices.Clone(e.Agenda)
	c.Tags = slices.Clone(e.Tags)
	return &c
}

// EventPatch holds the user-editable fields of an event update. Nil fields are left unchanged.
type EventPatch struct {
	Title       *string
	Description *string
	Overview    *string
	Image       *string
	Venue       *string
	Location    *string
	Date        *string
	Time        *string
	Mode        *string
	Audience    *string
	Agenda      []string
	Organizer   *string
	Tags        []string
}

// Apply returns a copy of e with the non-nil patch fields applied.
func (p *EventPatch) Apply(e *Event) *Event {
	out := e.Clone()
	if p == nil {
		return out
	}
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&out.Title, p.Title)
	set(&out.Description, p.Description)
	set(&out.Overview, p.Overview)
	set(&out.Image, p.Image)
	set(&out.Venue, p.Venue)
	set(&out.Location, p.Location)
	set(&out.Date, p.Date)
	set(&out.Time, p.Time)
	set(&out.Mode, p.Mode)
	set(&out.Audience, p.Audience)
	set(&out.Organizer, p.Organizer)
	if p.Agenda != nil {
		out.Agenda = slices.Clone(p.Agenda)
	}
	if p.Tags != nil {
		out.Tags = slices.Clone(p.Tags)
	}
	return out
}

// EventPreCommit validates a candidate event before the store makes it durable.
// current is the stored record for updates and nil for creates. It returns the
// normalized record to persist; any error aborts the write.
type EventPreCommit func(ctx context.Context, current, candidate *Event) (*Event, error)

// EventExistenceChecker answers whether an event with the given ID is currently stored.
type EventExistenceChecker interface {
	Exists(ctx context.Context, id string) (bool, error)
}

// EventRepository defines the interface for event storage.
// Create and Update run hook inside the write and persist only what it returns.
type EventRepository interface {
	EventExistenceChecker
	Create(ctx context.Context, event *Event, hook EventPreCommit) error
	Update(ctx context.Context, event *Event, hook EventPreCommit) error
	GetByID(ctx context.Context, id string) (*Event, error)
	GetBySlug(ctx context.Context, slug string) (*Event, error)
	List(ctx context.Context, params PaginationParams) ([]*Event, int, error)
}

// EventService defines the business logic for events.
type EventService interface {
	CreateEvent(ctx context.Context, event *Event) error
	UpdateEvent(ctx context.Context, eventID string, patch *EventPatch) (*Event, error)
	GetEventByID(ctx context.Context, eventID string) (*Event, error)
	GetEventBySlug(ctx context.Context, slug string) (*Event, error)
	ListEvents(ctx context.Context, params PaginationParams) ([]*Event, int, error)
}
