package service

import (
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/vmunix/biblio/internal/catalog"
	"github.com/vmunix/biblio/pkg/title"
)

// BookService orchestrates book operations.
type BookService struct {
	store *catalog.Store
	log   *slog.Logger
}

// NewBookService creates a new book service.
func NewBookService(store *catalog.Store, log *slog.Logger) *BookService {
	if log == nil {
		log = slog.Default()
	}
	return &BookService{store: store, log: log}
}

// CreateWithCard creates a book and its bibliographic card in one
// transaction. Either both rows are persisted or neither is. Both
// records must be transient (no ID assigned yet).
func (s *BookService) CreateWithCard(book *catalog.Book, card *catalog.Card) error {
	if book == nil {
		return fmt.Errorf("%w: book", ErrMissingRecord)
	}
	if card == nil {
		return fmt.Errorf("%w: card", ErrMissingRecord)
	}
	if book.ID != 0 {
		return fmt.Errorf("%w: book %d", ErrNotTransient, book.ID)
	}
	if card.ID != 0 {
		return fmt.Errorf("%w: card %d", ErrNotTransient, card.ID)
	}

	err := runInTx(s.store, s.log, func(tx *catalog.Tx) error {
		if err := tx.AddBook(book); err != nil {
			return err
		}
		return tx.AddCard(card, book.ID)
	})
	if err != nil {
		// The rollback undid any insert; leave both records transient.
		book.ID = 0
		card.ID = 0
		card.BookID = 0
		return fmt.Errorf("create book with card: %w", classify(err))
	}

	s.log.Info("book created", "book_id", book.ID, "card_id", card.ID)
	return nil
}

// Get retrieves an active book by ID.
func (s *BookService) Get(id int64) (*catalog.Book, error) {
	b, err := s.store.GetBook(id)
	if err != nil {
		return nil, classify(err)
	}
	return b, nil
}

// List returns all active books ordered by title.
func (s *BookService) List() ([]*catalog.Book, error) {
	books, err := s.store.ListBooks()
	if err != nil {
		return nil, classify(err)
	}
	return books, nil
}

// ListWithCards returns all active books with their cards attached to the
// returned view. Card lookups fan out over a bounded errgroup; concurrent
// reads on the shared *sql.DB are safe.
func (s *BookService) ListWithCards() ([]BookWithCard, error) {
	books, err := s.store.ListBooks()
	if err != nil {
		return nil, classify(err)
	}

	out := make([]BookWithCard, len(books))
	var g errgroup.Group
	g.SetLimit(4)
	for i, b := range books {
		i, b := i, b
		g.Go(func() error {
			out[i].Book = b
			card, err := s.store.GetCardForBook(b.ID)
			if errors.Is(err, catalog.ErrNotFound) {
				return nil
			}
			if err != nil {
				return err
			}
			out[i].Card = card
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, classify(err)
	}
	return out, nil
}

// Search returns active books whose title contains text. With fuzzy set,
// results are instead ranked by normalized title similarity, so near
// matches ("farenheit 451") still land.
func (s *BookService) Search(text string, fuzzy bool) ([]*catalog.Book, error) {
	if !fuzzy {
		books, err := s.store.SearchBooks(text)
		if err != nil {
			return nil, classify(err)
		}
		return books, nil
	}

	books, err := s.store.ListBooks()
	if err != nil {
		return nil, classify(err)
	}
	titles := make([]string, len(books))
	for i, b := range books {
		titles[i] = b.Title
	}
	matches := title.Rank(text, titles)
	ranked := make([]*catalog.Book, 0, len(matches))
	for _, m := range matches {
		ranked = append(ranked, books[m.Index])
	}
	return ranked, nil
}

// Update overwrites the mutable fields of an existing active book.
func (s *BookService) Update(b *catalog.Book) error {
	if b == nil {
		return fmt.Errorf("%w: book", ErrMissingRecord)
	}
	if b.ID == 0 {
		return &catalog.ValidationError{Field: "id", Reason: "required for update"}
	}
	err := runInTx(s.store, s.log, func(tx *catalog.Tx) error {
		return tx.UpdateBook(b)
	})
	if err != nil {
		return fmt.Errorf("update book %d: %w", b.ID, classify(err))
	}
	s.log.Debug("book updated", "book_id", b.ID)
	return nil
}

// Delete marks a book as deleted. Deleting a missing or already-deleted
// book is a no-op.
func (s *BookService) Delete(id int64) error {
	err := runInTx(s.store, s.log, func(tx *catalog.Tx) error {
		return tx.DeleteBook(id)
	})
	if err != nil {
		return fmt.Errorf("delete book %d: %w", id, classify(err))
	}
	s.log.Info("book deleted", "book_id", id)
	return nil
}
