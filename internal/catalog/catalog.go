// Package catalog manages book records and their bibliographic cards.
package catalog

// Book represents a catalogued book. At most one active Card can point at
// it; the association is derived via GetCardForBook, not stored here.
type Book struct {
	ID        int64
	Title     string
	Author    string
	Publisher *string // nil when unknown
	Year      *int    // edition year, nil when unknown
	Deleted   bool
}

// Card represents the bibliographic card of a single book.
type Card struct {
	ID       int64
	BookID   int64
	ISBN     *string
	Dewey    *string // Dewey classification code
	Shelf    *string
	Language *string
	Deleted  bool
}

// NewBook creates a transient book, validating required fields.
func NewBook(title, author string) (*Book, error) {
	b := &Book{}
	if err := b.SetTitle(title); err != nil {
		return nil, err
	}
	if err := b.SetAuthor(author); err != nil {
		return nil, err
	}
	return b, nil
}

// NewCard creates a transient card. Empty strings leave the
// corresponding field unset.
func NewCard(isbn, dewey, shelf, language string) (*Card, error) {
	c := &Card{}
	if err := c.SetISBN(isbn); err != nil {
		return nil, err
	}
	if err := c.SetDewey(dewey); err != nil {
		return nil, err
	}
	if err := c.SetShelf(shelf); err != nil {
		return nil, err
	}
	if err := c.SetLanguage(language); err != nil {
		return nil, err
	}
	return c, nil
}

// Equal reports whether two books are the same record.
// Persisted records compare by ID; transient ones only by identity.
func (b *Book) Equal(o *Book) bool {
	if b == o {
		return true
	}
	if b == nil || o == nil {
		return false
	}
	return b.ID != 0 && b.ID == o.ID
}

// Equal reports whether two cards are the same record.
func (c *Card) Equal(o *Card) bool {
	if c == o {
		return true
	}
	if c == nil || o == nil {
		return false
	}
	return c.ID != 0 && c.ID == o.ID
}
