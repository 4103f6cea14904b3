package catalog

import (
	"database/sql"
	"errors"
	"fmt"
)

func addBook(q querier, b *Book) error {
	result, err := q.Exec(`
		INSERT INTO book (title, author, publisher, year, deleted)
		VALUES (?, ?, ?, ?, ?)`,
		b.Title, b.Author, b.Publisher, b.Year, b.Deleted,
	)
	if err != nil {
		return fmt.Errorf("insert book: %w", mapSQLiteError(err))
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return errors.New("insert book: no rows affected")
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}
	b.ID = id
	return nil
}

// AddBook inserts a new book. Sets ID on the struct.
func (s *Store) AddBook(b *Book) error { return addBook(s.db, b) }

// AddBook inserts a new book within a transaction.
func (t *Tx) AddBook(b *Book) error { return addBook(t.tx, b) }

func getBook(q querier, id int64) (*Book, error) {
	b := &Book{}
	err := q.QueryRow(`
		SELECT id, title, author, publisher, year, deleted
		FROM book WHERE id = ? AND deleted = 0`, id,
	).Scan(&b.ID, &b.Title, &b.Author, &b.Publisher, &b.Year, &b.Deleted)
	if err != nil {
		return nil, fmt.Errorf("get book %d: %w", id, mapSQLiteError(err))
	}
	return b, nil
}

// GetBook retrieves an active book by ID.
// Returns ErrNotFound if the book does not exist or is deleted.
func (s *Store) GetBook(id int64) (*Book, error) { return getBook(s.db, id) }

// GetBook retrieves an active book by ID within a transaction.
func (t *Tx) GetBook(id int64) (*Book, error) { return getBook(t.tx, id) }

func scanBooks(rows *sql.Rows) ([]*Book, error) {
	var results []*Book
	for rows.Next() {
		b := &Book{}
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.Publisher, &b.Year, &b.Deleted); err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		results = append(results, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate books: %w", err)
	}
	return results, nil
}

func listBooks(q querier) ([]*Book, error) {
	rows, err := q.Query(`
		SELECT id, title, author, publisher, year, deleted
		FROM book WHERE deleted = 0 ORDER BY title`)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	defer func() { _ = rows.Close() }()
	return scanBooks(rows)
}

// ListBooks returns all active books ordered by title.
func (s *Store) ListBooks() ([]*Book, error) { return listBooks(s.db) }

// ListBooks returns all active books within a transaction.
func (t *Tx) ListBooks() ([]*Book, error) { return listBooks(t.tx) }

func searchBooks(q querier, title string) ([]*Book, error) {
	rows, err := q.Query(`
		SELECT id, title, author, publisher, year, deleted
		FROM book
		WHERE deleted = 0 AND UPPER(title) LIKE UPPER(?)
		ORDER BY title`, "%"+title+"%")
	if err != nil {
		return nil, fmt.Errorf("search books: %w", err)
	}
	defer func() { _ = rows.Close() }()
	return scanBooks(rows)
}

// SearchBooks returns active books whose title contains the given text,
// case-insensitive.
func (s *Store) SearchBooks(title string) ([]*Book, error) { return searchBooks(s.db, title) }

// SearchBooks searches active books by title within a transaction.
func (t *Tx) SearchBooks(title string) ([]*Book, error) { return searchBooks(t.tx, title) }

func updateBook(q querier, b *Book) error {
	result, err := q.Exec(`
		UPDATE book SET title = ?, author = ?, publisher = ?, year = ?
		WHERE id = ? AND deleted = 0`,
		b.Title, b.Author, b.Publisher, b.Year, b.ID,
	)
	if err != nil {
		return fmt.Errorf("update book %d: %w", b.ID, mapSQLiteError(err))
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("update book %d: %w", b.ID, ErrNotFound)
	}
	return nil
}

// UpdateBook overwrites the mutable fields of an existing active book.
// Returns ErrNotFound if no active book has that ID.
func (s *Store) UpdateBook(b *Book) error { return updateBook(s.db, b) }

// UpdateBook updates an existing book within a transaction.
func (t *Tx) UpdateBook(b *Book) error { return updateBook(t.tx, b) }

func deleteBook(q querier, id int64) error {
	_, err := q.Exec("UPDATE book SET deleted = 1 WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete book %d: %w", id, mapSQLiteError(err))
	}
	return nil
}

// DeleteBook marks a book as deleted. The row is never removed.
// This operation is idempotent - no error is returned if the book does
// not exist or was already deleted.
func (s *Store) DeleteBook(id int64) error { return deleteBook(s.db, id) }

// DeleteBook marks a book as deleted within a transaction.
func (t *Tx) DeleteBook(id int64) error { return deleteBook(t.tx, id) }
