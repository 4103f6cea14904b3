package service

import (
	"database/sql"
	"io"
	"log/slog"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/vmunix/biblio/internal/catalog"
	"github.com/vmunix/biblio/internal/migrations"
)

func setupStore(t *testing.T) *catalog.Store {
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
	return catalog.NewStore(db)
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newBook(t *testing.T, title, author string) *catalog.Book {
	t.Helper()
	b, err := catalog.NewBook(title, author)
	if err != nil {
		t.Fatalf("NewBook: %v", err)
	}
	return b
}

func newCard(t *testing.T, isbn string) *catalog.Card {
	t.Helper()
	c, err := catalog.NewCard(isbn, "", "", "")
	if err != nil {
		t.Fatalf("NewCard: %v", err)
	}
	return c
}
