package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vmunix/biblio/internal/catalog"
)

func TestClassify(t *testing.T) {
	assert.NoError(t, classify(nil))

	// Domain errors pass through untouched.
	for _, sentinel := range []error{
		catalog.ErrNotFound,
		catalog.ErrDuplicateISBN,
		catalog.ErrCardExists,
		catalog.ErrDuplicate,
		catalog.ErrConstraint,
	} {
		got := classify(sentinel)
		assert.ErrorIs(t, got, sentinel)
		assert.NotErrorIs(t, got, ErrStore)
	}

	vErr := &catalog.ValidationError{Field: "title", Reason: "required"}
	got := classify(vErr)
	var out *catalog.ValidationError
	assert.ErrorAs(t, got, &out)
	assert.NotErrorIs(t, got, ErrStore)

	// Everything else folds into ErrStore but keeps the cause text.
	raw := errors.New("database is locked")
	got = classify(raw)
	assert.ErrorIs(t, got, ErrStore)
	assert.Contains(t, got.Error(), "database is locked")
}

func TestClassify_Wrapped(t *testing.T) {
	// A sentinel deep in a chain is still recognized.
	err := classify(fmt.Errorf("insert card: %w", catalog.ErrDuplicateISBN))
	assert.ErrorIs(t, err, catalog.ErrDuplicateISBN)
	assert.NotErrorIs(t, err, ErrStore)
}
