package postgres

import (
	"context"
	"database/sql"
	"errors"

	"eventbooking/internal/domain"
)

type bookingRepository struct {
	DB *sql.DB
}

func NewBookingRepository(db *sql.DB) domain.BookingRepository {
	return &bookingRepository{
		DB: db,
	}
}

// Create runs hook and inserts the booking it returns. The events foreign key
// catches an event removed between the hook's existence check and the insert.
func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking, hook domain.BookingPreCommit) error {
	normalized, err := hook(ctx, b)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO bookings (event_id, email)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`
	err = r.DB.QueryRowContext(ctx, query, normalized.EventID, normalized.Email).
		Scan(&normalized.ID, &normalized.CreatedAt, &normalized.UpdatedAt)
	if err != nil {
		return mapWriteError(err)
	}
	*b = *normalized
	return nil
}

func (r *bookingRepository) Update(ctx context.Context, b *domain.Booking, hook domain.BookingPreCommit) error {
	if !isUUID(b.ID) {
		return domain.ErrNotFound
	}
	var updated *domain.Booking
	err := withTx(ctx, r.DB, func(tx *sql.Tx) error {
		var lockedID string
		err := tx.QueryRowContext(ctx, `SELECT id FROM bookings WHERE id = $1 FOR UPDATE`, b.ID).Scan(&lockedID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrNotFound
			}
			return err
		}

		normalized, err := hook(ctx, b)
		if err != nil {
			return err
		}
		normalized.ID = lockedID

		query := `
			UPDATE bookings SET event_id = $1, email = $2, updated_at = NOW()
			WHERE id = $3
			RETURNING created_at, updated_at
		`
		err = tx.QueryRowContext(ctx, query, normalized.EventID, normalized.Email, normalized.ID).
			Scan(&normalized.CreatedAt, &normalized.UpdatedAt)
		if err != nil {
			return mapWriteError(err)
		}
		updated = normalized
		return nil
	})
	if err != nil {
		return err
	}
	*b = *updated
	return nil
}

func (r *bookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	if !isUUID(id) {
		return nil, domain.ErrNotFound
	}
	query := `
		SELECT id, event_id, email, created_at, updated_at
		FROM bookings
		WHERE id = $1
	`
	b := &domain.Booking{}
	err := r.DB.QueryRowContext(ctx, query, id).
		Scan(&b.ID, &b.EventID, &b.Email, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (r *bookingRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.Booking, error) {
	if !isUUID(eventID) {
		return []*domain.Booking{}, nil
	}
	query := `
		SELECT id, event_id, email, created_at, updated_at
		FROM bookings
		WHERE event_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []*domain.Booking
	for rows.Next() {
		b := &domain.Booking{}
		if err := rows.Scan(&b.ID, &b.EventID, &b.Email, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if bookings == nil {
		bookings = []*domain.Booking{}
	}
	return bookings, nil
}
