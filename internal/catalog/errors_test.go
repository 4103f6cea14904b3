package catalog

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapSQLiteError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"nil", nil, nil},
		{"no rows", sql.ErrNoRows, ErrNotFound},
		{
			"unique isbn",
			errors.New("constraint failed: UNIQUE constraint failed: card.isbn (2067)"),
			ErrDuplicateISBN,
		},
		{
			"unique book",
			errors.New("constraint failed: UNIQUE constraint failed: card.book_id (2067)"),
			ErrCardExists,
		},
		{
			"unique other",
			errors.New("constraint failed: UNIQUE constraint failed: book.id (1555)"),
			ErrDuplicate,
		},
		{
			"foreign key",
			errors.New("constraint failed: FOREIGN KEY constraint failed (787)"),
			ErrConstraint,
		},
		{
			"check",
			errors.New("constraint failed: CHECK constraint failed: year (275)"),
			ErrConstraint,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapSQLiteError(tt.err)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestMapSQLiteError_PassesThroughUnknown(t *testing.T) {
	orig := errors.New("disk I/O error")
	got := mapSQLiteError(orig)
	assert.Equal(t, orig, got)
}

func TestMapSQLiteError_KeepsCause(t *testing.T) {
	orig := errors.New("constraint failed: UNIQUE constraint failed: card.isbn (2067)")
	got := mapSQLiteError(orig)
	assert.ErrorIs(t, got, ErrDuplicateISBN)
	assert.Contains(t, got.Error(), "card.isbn")
}

func TestSentinelsDistinct(t *testing.T) {
	sentinels := []error{ErrNotFound, ErrDuplicateISBN, ErrCardExists, ErrDuplicate, ErrConstraint}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j {
				assert.NotErrorIs(t, a, b)
			}
		}
	}
}
