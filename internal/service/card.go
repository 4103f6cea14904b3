package service

import (
	"fmt"
	"log/slog"

	"github.com/vmunix/biblio/internal/catalog"
)

// CardService orchestrates bibliographic card operations.
type CardService struct {
	store *catalog.Store
	log   *slog.Logger
}

// NewCardService creates a new card service.
func NewCardService(store *catalog.Store, log *slog.Logger) *CardService {
	if log == nil {
		log = slog.Default()
	}
	return &CardService{store: store, log: log}
}

// Attach creates a card for an existing active book. The book is read and
// its card count checked inside the same transaction as the insert, so the
// caller gets a clear message before the unique index would reject the row.
func (s *CardService) Attach(bookID int64, card *catalog.Card) error {
	if card == nil {
		return fmt.Errorf("%w: card", ErrMissingRecord)
	}
	if card.ID != 0 {
		return fmt.Errorf("%w: card %d", ErrNotTransient, card.ID)
	}
	if bookID <= 0 {
		return &catalog.ValidationError{Field: "book_id", Reason: "must be positive"}
	}

	err := runInTx(s.store, s.log, func(tx *catalog.Tx) error {
		if _, err := tx.GetBook(bookID); err != nil {
			return err
		}
		n, err := tx.CountCardsForBook(bookID)
		if err != nil {
			return err
		}
		if n > 0 {
			return catalog.ErrCardExists
		}
		return tx.AddCard(card, bookID)
	})
	if err != nil {
		card.ID = 0
		card.BookID = 0
		return fmt.Errorf("attach card to book %d: %w", bookID, classify(err))
	}

	s.log.Info("card attached", "card_id", card.ID, "book_id", bookID)
	return nil
}

// Get retrieves an active card by ID.
func (s *CardService) Get(id int64) (*catalog.Card, error) {
	c, err := s.store.GetCard(id)
	if err != nil {
		return nil, classify(err)
	}
	return c, nil
}

// List returns all active cards ordered by ISBN.
func (s *CardService) List() ([]*catalog.Card, error) {
	cards, err := s.store.ListCards()
	if err != nil {
		return nil, classify(err)
	}
	return cards, nil
}

// GetByISBN retrieves an active card by exact, case-insensitive ISBN.
func (s *CardService) GetByISBN(isbn string) (*catalog.Card, error) {
	if isbn == "" {
		return nil, &catalog.ValidationError{Field: "isbn", Reason: "must not be empty"}
	}
	c, err := s.store.GetCardByISBN(isbn)
	if err != nil {
		return nil, classify(err)
	}
	return c, nil
}

// GetForBook retrieves the active card attached to a book.
func (s *CardService) GetForBook(bookID int64) (*catalog.Card, error) {
	c, err := s.store.GetCardForBook(bookID)
	if err != nil {
		return nil, classify(err)
	}
	return c, nil
}

// Update overwrites the mutable fields of an existing active card.
// The owning book never changes through this path.
func (s *CardService) Update(c *catalog.Card) error {
	if c == nil {
		return fmt.Errorf("%w: card", ErrMissingRecord)
	}
	if c.ID == 0 {
		return &catalog.ValidationError{Field: "id", Reason: "required for update"}
	}
	err := runInTx(s.store, s.log, func(tx *catalog.Tx) error {
		return tx.UpdateCard(c)
	})
	if err != nil {
		return fmt.Errorf("update card %d: %w", c.ID, classify(err))
	}
	s.log.Debug("card updated", "card_id", c.ID)
	return nil
}

// Delete marks a card as deleted. Deleting a missing or already-deleted
// card is a no-op.
func (s *CardService) Delete(id int64) error {
	err := runInTx(s.store, s.log, func(tx *catalog.Tx) error {
		return tx.DeleteCard(id)
	})
	if err != nil {
		return fmt.Errorf("delete card %d: %w", id, classify(err))
	}
	s.log.Info("card deleted", "card_id", id)
	return nil
}
