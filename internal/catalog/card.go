package catalog

import (
	"database/sql"
	"errors"
	"fmt"
)

func addCard(q querier, c *Card, bookID int64) error {
	result, err := q.Exec(`
		INSERT INTO card (book_id, isbn, dewey, shelf, language, deleted)
		VALUES (?, ?, ?, ?, ?, ?)`,
		bookID, c.ISBN, c.Dewey, c.Shelf, c.Language, c.Deleted,
	)
	if err != nil {
		return fmt.Errorf("insert card: %w", mapSQLiteError(err))
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return errors.New("insert card: no rows affected")
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}
	c.ID = id
	c.BookID = bookID
	return nil
}

// AddCard inserts a new card for the given book. The owning book ID is an
// explicit parameter; the relationship is established here, not read from
// the struct. Sets ID and BookID on the struct.
func (s *Store) AddCard(c *Card, bookID int64) error { return addCard(s.db, c, bookID) }

// AddCard inserts a new card within a transaction.
func (t *Tx) AddCard(c *Card, bookID int64) error { return addCard(t.tx, c, bookID) }

func getCard(q querier, id int64) (*Card, error) {
	c := &Card{}
	err := q.QueryRow(`
		SELECT id, book_id, isbn, dewey, shelf, language, deleted
		FROM card WHERE id = ? AND deleted = 0`, id,
	).Scan(&c.ID, &c.BookID, &c.ISBN, &c.Dewey, &c.Shelf, &c.Language, &c.Deleted)
	if err != nil {
		return nil, fmt.Errorf("get card %d: %w", id, mapSQLiteError(err))
	}
	return c, nil
}

// GetCard retrieves an active card by ID.
// Returns ErrNotFound if the card does not exist or is deleted.
func (s *Store) GetCard(id int64) (*Card, error) { return getCard(s.db, id) }

// GetCard retrieves an active card by ID within a transaction.
func (t *Tx) GetCard(id int64) (*Card, error) { return getCard(t.tx, id) }

func scanCards(rows *sql.Rows) ([]*Card, error) {
	var results []*Card
	for rows.Next() {
		c := &Card{}
		if err := rows.Scan(&c.ID, &c.BookID, &c.ISBN, &c.Dewey, &c.Shelf, &c.Language, &c.Deleted); err != nil {
			return nil, fmt.Errorf("scan card: %w", err)
		}
		results = append(results, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cards: %w", err)
	}
	return results, nil
}

func listCards(q querier) ([]*Card, error) {
	rows, err := q.Query(`
		SELECT id, book_id, isbn, dewey, shelf, language, deleted
		FROM card WHERE deleted = 0 ORDER BY isbn`)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	defer func() { _ = rows.Close() }()
	return scanCards(rows)
}

// ListCards returns all active cards ordered by ISBN.
func (s *Store) ListCards() ([]*Card, error) { return listCards(s.db) }

// ListCards returns all active cards within a transaction.
func (t *Tx) ListCards() ([]*Card, error) { return listCards(t.tx) }

func getCardByISBN(q querier, isbn string) (*Card, error) {
	c := &Card{}
	err := q.QueryRow(`
		SELECT id, book_id, isbn, dewey, shelf, language, deleted
		FROM card WHERE UPPER(isbn) = UPPER(?) AND deleted = 0`, isbn,
	).Scan(&c.ID, &c.BookID, &c.ISBN, &c.Dewey, &c.Shelf, &c.Language, &c.Deleted)
	if err != nil {
		return nil, fmt.Errorf("get card by isbn %q: %w", isbn, mapSQLiteError(err))
	}
	return c, nil
}

// GetCardByISBN retrieves an active card by exact, case-insensitive ISBN.
// Returns ErrNotFound if no active card carries it.
func (s *Store) GetCardByISBN(isbn string) (*Card, error) { return getCardByISBN(s.db, isbn) }

// GetCardByISBN retrieves a card by ISBN within a transaction.
func (t *Tx) GetCardByISBN(isbn string) (*Card, error) { return getCardByISBN(t.tx, isbn) }

func getCardForBook(q querier, bookID int64) (*Card, error) {
	c := &Card{}
	err := q.QueryRow(`
		SELECT id, book_id, isbn, dewey, shelf, language, deleted
		FROM card WHERE book_id = ? AND deleted = 0`, bookID,
	).Scan(&c.ID, &c.BookID, &c.ISBN, &c.Dewey, &c.Shelf, &c.Language, &c.Deleted)
	if err != nil {
		return nil, fmt.Errorf("get card for book %d: %w", bookID, mapSQLiteError(err))
	}
	return c, nil
}

// GetCardForBook retrieves the active card attached to a book.
// Returns ErrNotFound if the book has none.
func (s *Store) GetCardForBook(bookID int64) (*Card, error) { return getCardForBook(s.db, bookID) }

// GetCardForBook retrieves a book's card within a transaction.
func (t *Tx) GetCardForBook(bookID int64) (*Card, error) { return getCardForBook(t.tx, bookID) }

func countCardsForBook(q querier, bookID int64) (int, error) {
	var n int
	err := q.QueryRow(
		"SELECT COUNT(*) FROM card WHERE book_id = ? AND deleted = 0", bookID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count cards for book %d: %w", bookID, err)
	}
	return n, nil
}

// CountCardsForBook returns the number of active cards attached to a book.
func (s *Store) CountCardsForBook(bookID int64) (int, error) {
	return countCardsForBook(s.db, bookID)
}

// CountCardsForBook counts a book's active cards within a transaction.
func (t *Tx) CountCardsForBook(bookID int64) (int, error) {
	return countCardsForBook(t.tx, bookID)
}

func updateCard(q querier, c *Card) error {
	// book_id is never rewritten here; reattaching a card is not allowed.
	result, err := q.Exec(`
		UPDATE card SET isbn = ?, dewey = ?, shelf = ?, language = ?
		WHERE id = ? AND deleted = 0`,
		c.ISBN, c.Dewey, c.Shelf, c.Language, c.ID,
	)
	if err != nil {
		return fmt.Errorf("update card %d: %w", c.ID, mapSQLiteError(err))
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("update card %d: %w", c.ID, ErrNotFound)
	}
	return nil
}

// UpdateCard overwrites the mutable fields of an existing active card.
// Returns ErrNotFound if no active card has that ID.
func (s *Store) UpdateCard(c *Card) error { return updateCard(s.db, c) }

// UpdateCard updates an existing card within a transaction.
func (t *Tx) UpdateCard(c *Card) error { return updateCard(t.tx, c) }

func deleteCard(q querier, id int64) error {
	_, err := q.Exec("UPDATE card SET deleted = 1 WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete card %d: %w", id, mapSQLiteError(err))
	}
	return nil
}

// DeleteCard marks a card as deleted. The row is never removed.
// This operation is idempotent - no error is returned if the card does
// not exist or was already deleted.
func (s *Store) DeleteCard(id int64) error { return deleteCard(s.db, id) }

// DeleteCard marks a card as deleted within a transaction.
func (t *Tx) DeleteCard(id int64) error { return deleteCard(t.tx, id) }
