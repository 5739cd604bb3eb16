package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/lib/pq"

	"eventbooking/internal/domain"
)

const eventColumns = `id, title, slug, description, overview, image, venue, location, date, time, mode, audience, agenda, organizer, tags, created_at, updated_at`

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	e := &domain.Event{}
	err := row.Scan(
		&e.ID, &e.Title, &e.Slug, &e.Description, &e.Overview, &e.Image, &e.Venue, &e.Location,
		&e.Date, &e.Time, &e.Mode, &e.Audience, pq.Array(&e.Agenda), &e.Organizer, pq.Array(&e.Tags),
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Create runs hook with no current record and inserts what it returns.
// e receives the stored ID, slug, normalized fields and timestamps only on success.
func (r *eventRepository) Create(ctx context.Context, e *domain.Event, hook domain.EventPreCommit) error {
	normalized, err := hook(ctx, nil, e)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO events (title, slug, description, overview, image, venue, location, date, time, mode, audience, agenda, organizer, tags)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, created_at, updated_at
	`
	err = r.DB.QueryRowContext(ctx, query,
		normalized.Title, normalized.Slug, normalized.Description, normalized.Overview, normalized.Image,
		normalized.Venue, normalized.Location, normalized.Date, normalized.Time, normalized.Mode,
		normalized.Audience, pq.Array(normalized.Agenda), normalized.Organizer, pq.Array(normalized.Tags),
	).Scan(&normalized.ID, &normalized.CreatedAt, &normalized.UpdatedAt)
	if err != nil {
		return mapWriteError(err)
	}
	*e = *normalized
	return nil
}

// Update locks the stored row, runs hook against it and writes what hook returns.
func (r *eventRepository) Update(ctx context.Context, e *domain.Event, hook domain.EventPreCommit) error {
	if !isUUID(e.ID) {
		return domain.ErrNotFound
	}
	var updated *domain.Event
	err := withTx(ctx, r.DB, func(tx *sql.Tx) error {
		current, err := scanEvent(tx.QueryRowContext(ctx,
			`SELECT `+eventColumns+` FROM events WHERE id = $1 FOR UPDATE`, e.ID))
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrNotFound
			}
			return err
		}

		normalized, err := hook(ctx, current, e)
		if err != nil {
			return err
		}
		normalized.ID = current.ID

		query := `
			UPDATE events SET title = $1, slug = $2, description = $3, overview = $4, image = $5,
				venue = $6, location = $7, date = $8, time = $9, mode = $10, audience = $11,
				agenda = $12, organizer = $13, tags = $14, updated_at = NOW()
			WHERE id = $15
			RETURNING created_at, updated_at
		`
		err = tx.QueryRowContext(ctx, query,
			normalized.Title, normalized.Slug, normalized.Description, normalized.Overview, normalized.Image,
			normalized.Venue, normalized.Location, normalized.Date, normalized.Time, normalized.Mode,
			normalized.Audience, pq.Array(normalized.Agenda), normalized.Organizer, pq.Array(normalized.Tags),
			normalized.ID,
		).Scan(&normalized.CreatedAt, &normalized.UpdatedAt)
		if err != nil {
			return mapWriteError(err)
		}
		updated = normalized
		return nil
	})
	if err != nil {
		return err
	}
	*e = *updated
	return nil
}

func (r *eventRepository) Exists(ctx context.Context, id string) (bool, error) {
	if !isUUID(id) {
		return false, nil
	}
	var exists bool
	err := r.DB.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM events WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	if !isUUID(id) {
		return nil, domain.ErrNotFound
	}
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	query := `SELECT ` + eventColumns + ` FROM events WHERE slug = $1`
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, slug))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

// List returns one page of events, newest first, and the total number of events.
func (r *eventRepository) List(ctx context.Context, params domain.PaginationParams) ([]*domain.Event, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM events`).Scan(&total); err != nil {
		return nil, 0, err
	}

	// LIMIT NULL is LIMIT ALL
	var limit any
	if params.Limit() > 0 {
		limit = params.Limit()
	}
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.DB.QueryContext(ctx, query, limit, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, 0, err
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return events, total, nil
}
