package service

import (
	"errors"
	"fmt"

	"github.com/vmunix/biblio/internal/catalog"
)

var (
	// ErrMissingRecord indicates a required argument was nil.
	ErrMissingRecord = errors.New("missing record")

	// ErrNotTransient indicates a record that already has an ID was
	// passed where a new, unsaved record is required.
	ErrNotTransient = errors.New("record already persisted")

	// ErrStore is the generic fallback for unclassified database
	// failures. The low-level cause is kept in the chain.
	ErrStore = errors.New("database error")
)

// classify passes known domain and validation errors through untouched
// and folds everything else into ErrStore so callers always get a
// displayable message. The original error is never discarded.
func classify(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, catalog.ErrNotFound),
		errors.Is(err, catalog.ErrDuplicateISBN),
		errors.Is(err, catalog.ErrCardExists),
		errors.Is(err, catalog.ErrDuplicate),
		errors.Is(err, catalog.ErrConstraint):
		return err
	}
	var vErr *catalog.ValidationError
	if errors.As(err, &vErr) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrStore, err)
}
