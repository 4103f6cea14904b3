package catalog

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound indicates the requested record doesn't exist or is deleted.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateISBN indicates another active card already carries the ISBN.
	ErrDuplicateISBN = errors.New("isbn already registered")

	// ErrCardExists indicates the book already has an active card.
	ErrCardExists = errors.New("book already has a card")

	// ErrDuplicate indicates a unique constraint violation not covered
	// by a more specific error.
	ErrDuplicate = errors.New("duplicate entry")

	// ErrConstraint indicates a foreign key or check constraint violation.
	ErrConstraint = errors.New("constraint violation")
)

// mapSQLiteError converts SQLite errors to domain error types.
// Unique violations are classified by the constrained column reported in
// the driver diagnostic; the original error text is kept for diagnostics.
func mapSQLiteError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	// modernc.org/sqlite wraps errors; the constraint name is only
	// available in the message text.
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"),
		strings.Contains(msg, "PRIMARY KEY constraint failed"):
		switch {
		case strings.Contains(msg, "card.isbn"):
			return fmt.Errorf("%w: %v", ErrDuplicateISBN, err)
		case strings.Contains(msg, "card.book_id"):
			return fmt.Errorf("%w: %v", ErrCardExists, err)
		}
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	case strings.Contains(msg, "FOREIGN KEY constraint failed"),
		strings.Contains(msg, "CHECK constraint failed"):
		return fmt.Errorf("%w: %v", ErrConstraint, err)
	}
	return err
}
