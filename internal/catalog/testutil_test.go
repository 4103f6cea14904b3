// internal/catalog/testutil_test.go
package catalog

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/vmunix/biblio/internal/migrations"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:?_pragma=foreign_keys(1)")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	// Multiple connections would each get their own in-memory database.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	if _, err := db.Exec(migrations.InitialSQL); err != nil {
		t.Fatalf("apply schema: %v", err)
	}
	return db
}

// mustBook inserts a valid book and returns it.
func mustBook(t *testing.T, store *Store, title, author string) *Book {
	t.Helper()
	b, err := NewBook(title, author)
	if err != nil {
		t.Fatalf("NewBook: %v", err)
	}
	if err := store.AddBook(b); err != nil {
		t.Fatalf("AddBook: %v", err)
	}
	return b
}

// mustCard inserts a card for the given book and returns it.
func mustCard(t *testing.T, store *Store, bookID int64, isbn string) *Card {
	t.Helper()
	c, err := NewCard(isbn, "", "", "")
	if err != nil {
		t.Fatalf("NewCard: %v", err)
	}
	if err := store.AddCard(c, bookID); err != nil {
		t.Fatalf("AddCard: %v", err)
	}
	return c
}

// ptr is a helper to create pointer to value
func ptr[T any](v T) *T {
	return &v
}
