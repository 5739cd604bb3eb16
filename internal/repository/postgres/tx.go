package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"eventbooking/internal/domain"
)

// PostgreSQL error codes the repositories translate.
const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

// withTx runs fn inside a transaction. Any error from fn rolls back and is returned as is.
func withTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return fmt.Errorf("transaction failed: %w, rollback failed: %v", err, rollbackErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// isUUID reports whether id is a canonical 8-4-4-4-12 UUID, the only form stored in id columns.
// Anything else cannot match a row and must not be sent to a uuid column.
func isUUID(id string) bool {
	if len(id) != 36 {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}

// mapWriteError translates constraint violations raised at commit into validation errors.
func mapWriteError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}
	switch pqErr.Code {
	case pqUniqueViolation:
		field := "id"
		if pqErr.Constraint == "events_slug_key" {
			field = "slug"
		}
		return domain.NewValidationError(domain.ErrDuplicateKey, field, "already exists")
	case pqForeignKeyViolation:
		return domain.NewValidationError(domain.ErrDanglingReference, "event_id", "no such event")
	}
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}
