package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"eventbooking/internal/domain"
)

// fakeEventRepo is an in-memory EventRepository for tests. It runs the pre-commit
// hook and enforces slug uniqueness the way the postgres repository does.
type fakeEventRepo struct {
	byID      map[string]*domain.Event
	nextID    int
	now       time.Time
	err       error // if set, Create and Update return this error
	existsErr error
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{
		byID:   make(map[string]*domain.Event),
		nextID: 1,
		now:    time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (f *fakeEventRepo) tick() time.Time {
	f.now = f.now.Add(time.Minute)
	return f.now
}

func (f *fakeEventRepo) slugTaken(slug, exceptID string) bool {
	for id, e := range f.byID {
		if id != exceptID && e.Slug == slug {
			return true
		}
	}
	return false
}

func (f *fakeEventRepo) Create(ctx context.Context, e *domain.Event, hook domain.EventPreCommit) error {
	if f.err != nil {
		return f.err
	}
	normalized, err := hook(ctx, nil, e)
	if err != nil {
		return err
	}
	if f.slugTaken(normalized.Slug, "") {
		return domain.NewValidationError(domain.ErrDuplicateKey, "slug", "already exists")
	}
	normalized.ID = fmt.Sprintf("ev-%d", f.nextID)
	f.nextID++
	normalized.CreatedAt = f.tick()
	normalized.UpdatedAt = normalized.CreatedAt
	f.byID[normalized.ID] = normalized.Clone()
	*e = *normalized
	return nil
}

func (f *fakeEventRepo) Update(ctx context.Context, e *domain.Event, hook domain.EventPreCommit) error {
	if f.err != nil {
		return f.err
	}
	current, ok := f.byID[e.ID]
	if !ok {
		return domain.ErrNotFound
	}
	updated, err := hook(ctx, current.Clone(), e)
	if err != nil {
		return err
	}
	if f.slugTaken(updated.Slug, updated.ID) {
		return domain.NewValidationError(domain.ErrDuplicateKey, "slug", "already exists")
	}
	updated.CreatedAt = current.CreatedAt
	updated.UpdatedAt = f.tick()
	f.byID[updated.ID] = updated.Clone()
	*e = *updated
	return nil
}

func (f *fakeEventRepo) Exists(ctx context.Context, id string) (bool, error) {
	if f.existsErr != nil {
		return false, f.existsErr
	}
	_, ok := f.byID[id]
	return ok, nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	if e, ok := f.byID[id]; ok {
		return e.Clone(), nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEventRepo) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	for _, e := range f.byID {
		if e.Slug == slug {
			return e.Clone(), nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEventRepo) List(ctx context.Context, params domain.PaginationParams) ([]*domain.Event, int, error) {
	all := make([]*domain.Event, 0, len(f.byID))
	for _, e := range f.byID {
		all = append(all, e.Clone())
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	start := min(params.Offset(), len(all))
	end := len(all)
	if params.Limit() > 0 {
		end = min(start+params.Limit(), len(all))
	}
	return all[start:end], len(all), nil
}

// fakeBookingRepo is an in-memory BookingRepository for tests.
type fakeBookingRepo struct {
	byID   map[string]*domain.Booking
	nextID int
	err    error
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{byID: make(map[string]*domain.Booking), nextID: 1}
}

func (f *fakeBookingRepo) Create(ctx context.Context, b *domain.Booking, hook domain.BookingPreCommit) error {
	if f.err != nil {
		return f.err
	}
	normalized, err := hook(ctx, b)
	if err != nil {
		return err
	}
	normalized.ID = fmt.Sprintf("bk-%d", f.nextID)
	f.nextID++
	f.byID[normalized.ID] = normalized.Clone()
	*b = *normalized
	return nil
}

func (f *fakeBookingRepo) Update(ctx context.Context, b *domain.Booking, hook domain.BookingPreCommit) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.byID[b.ID]; !ok {
		return domain.ErrNotFound
	}
	updated, err := hook(ctx, b)
	if err != nil {
		return err
	}
	f.byID[updated.ID] = updated.Clone()
	*b = *updated
	return nil
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	if b, ok := f.byID[id]; ok {
		return b.Clone(), nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeBookingRepo) ListByEventID(ctx context.Context, eventID string) ([]*domain.Booking, error) {
	out := []*domain.Booking{}
	for _, b := range f.byID {
		if b.EventID == eventID {
			out = append(out, b.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// fakeEmailService records booking confirmations.
type fakeEmailService struct {
	sent []*domain.BookingConfirmationEmailData
	err  error
}

func (f *fakeEmailService) SendBookingConfirmation(ctx context.Context, data *domain.BookingConfirmationEmailData) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, data)
	return nil
}

func newTestEvent() *domain.Event {
	return &domain.Event{
		Title:       "Annual Tech Summit 2025!",
		Description: "Two days of talks",
		Overview:    "Talks and workshops",
		Image:       "https://cdn.example.com/summit.png",
		Venue:       "Main Hall",
		Location:    "Lisbon",
		Date:        "2025-1-5",
		Time:        "9:5",
		Mode:        "offline",
		Audience:    "Developers",
		Agenda:      []string{" Keynote ", "Workshops"},
		Organizer:   "Tech Org",
		Tags:        []string{"go", "cloud"},
	}
}
