// Package service implements the transactional catalog workflows.
package service

import (
	"fmt"
	"log/slog"

	"github.com/vmunix/biblio/internal/catalog"
)

// Books is the book-facing service surface consumed by the CLI.
type Books interface {
	// CreateWithCard atomically creates a book and its card.
	CreateWithCard(book *catalog.Book, card *catalog.Card) error
	Get(id int64) (*catalog.Book, error)
	List() ([]*catalog.Book, error)
	ListWithCards() ([]BookWithCard, error)
	Search(text string, fuzzy bool) ([]*catalog.Book, error)
	Update(b *catalog.Book) error
	Delete(id int64) error
}

// Cards is the card-facing service surface consumed by the CLI.
type Cards interface {
	// Attach creates a card for an existing active book.
	Attach(bookID int64, card *catalog.Card) error
	Get(id int64) (*catalog.Card, error)
	List() ([]*catalog.Card, error)
	GetByISBN(isbn string) (*catalog.Card, error)
	GetForBook(bookID int64) (*catalog.Card, error)
	Update(c *catalog.Card) error
	Delete(id int64) error
}

var (
	_ Books = (*BookService)(nil)
	_ Cards = (*CardService)(nil)
)

// BookWithCard is a read-time view pairing a book with its card, if any.
// The association is derived per request, never cached on the record.
type BookWithCard struct {
	Book *catalog.Book
	Card *catalog.Card // nil when the book has no active card
}

// runInTx executes fn inside a transaction, committing on success and
// rolling back on any failure. A rollback failure is logged and never
// masks the primary error. No exit path leaves the transaction open.
func runInTx(store *catalog.Store, log *slog.Logger, fn func(tx *catalog.Tx) error) error {
	tx, err := store.Begin()
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Warn("rollback failed", "error", rbErr, "cause", err)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
