package catalog

import (
	"errors"
	"testing"
)

func TestStore_AddCard(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)

	b := mustBook(t, store, "Dune", "Frank Herbert")
	c, err := NewCard("0441172717", "813.54", "SF-02", "English")
	if err != nil {
		t.Fatalf("NewCard: %v", err)
	}

	if err := store.AddCard(c, b.ID); err != nil {
		t.Fatalf("AddCard: %v", err)
	}

	if c.ID == 0 {
		t.Error("ID should be set after AddCard")
	}
	if c.BookID != b.ID {
		t.Errorf("BookID = %d, want %d", c.BookID, b.ID)
	}
}

func TestStore_AddCard_DuplicateISBN(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)

	b1 := mustBook(t, store, "Dune", "Frank Herbert")
	b2 := mustBook(t, store, "Dune Messiah", "Frank Herbert")
	mustCard(t, store, b1.ID, "0441172717")

	c, err := NewCard("0441172717", "", "", "")
	if err != nil {
		t.Fatalf("NewCard: %v", err)
	}
	err = store.AddCard(c, b2.ID)
	if !errors.Is(err, ErrDuplicateISBN) {
		t.Errorf("expected ErrDuplicateISBN, got %v", err)
	}
}

func TestStore_AddCard_BookAlreadyHasCard(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)

	b := mustBook(t, store, "Dune", "Frank Herbert")
	mustCard(t, store, b.ID, "0441172717")

	c, err := NewCard("9780441172719", "", "", "")
	if err != nil {
		t.Fatalf("NewCard: %v", err)
	}
	err = store.AddCard(c, b.ID)
	if !errors.Is(err, ErrCardExists) {
		t.Errorf("expected ErrCardExists, got %v", err)
	}
}

func TestStore_AddCard_MissingBook(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)

	c, err := NewCard("0441172717", "", "", "")
	if err != nil {
		t.Fatalf("NewCard: %v", err)
	}
	err = store.AddCard(c, 9999)
	if !errors.Is(err, ErrConstraint) {
		t.Errorf("expected ErrConstraint, got %v", err)
	}
}

func TestStore_AddCard_AfterCardDeleted(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)

	// Deleted cards release both the book slot and the ISBN.
	b := mustBook(t, store, "Dune", "Frank Herbert")
	old := mustCard(t, store, b.ID, "0441172717")
	if err := store.DeleteCard(old.ID); err != nil {
		t.Fatalf("DeleteCard: %v", err)
	}

	c, err := NewCard("0441172717", "", "", "")
	if err != nil {
		t.Fatalf("NewCard: %v", err)
	}
	if err := store.AddCard(c, b.ID); err != nil {
		t.Errorf("reattach after delete should succeed: %v", err)
	}
}

func TestStore_GetCard(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)

	b := mustBook(t, store, "Dune", "Frank Herbert")
	c, err := NewCard("0441172717", "813.54", "SF-02", "English")
	if err != nil {
		t.Fatalf("NewCard: %v", err)
	}
	if err := store.AddCard(c, b.ID); err != nil {
		t.Fatalf("AddCard: %v", err)
	}

	got, err := store.GetCard(c.ID)
	if err != nil {
		t.Fatalf("GetCard: %v", err)
	}
	if got.BookID != b.ID {
		t.Errorf("BookID = %d, want %d", got.BookID, b.ID)
	}
	if got.ISBN == nil || *got.ISBN != "0441172717" {
		t.Errorf("ISBN = %v, want 0441172717", got.ISBN)
	}
	if got.Dewey == nil || *got.Dewey != "813.54" {
		t.Errorf("Dewey = %v, want 813.54", got.Dewey)
	}
	if got.Shelf == nil || *got.Shelf != "SF-02" {
		t.Errorf("Shelf = %v, want SF-02", got.Shelf)
	}
	if got.Language == nil || *got.Language != "English" {
		t.Errorf("Language = %v, want English", got.Language)
	}
}

func TestStore_GetCard_NotFound(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)

	_, err := store.GetCard(9999)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_GetCardByISBN(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)

	b := mustBook(t, store, "The Hobbit", "J. R. R. Tolkien")
	mustCard(t, store, b.ID, "043942089X")

	got, err := store.GetCardByISBN("043942089x")
	if err != nil {
		t.Fatalf("GetCardByISBN: %v", err)
	}
	if got.BookID != b.ID {
		t.Errorf("BookID = %d, want %d", got.BookID, b.ID)
	}

	_, err = store.GetCardByISBN("9780451524935")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown isbn, got %v", err)
	}
}

func TestStore_GetCardForBook(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)

	b1 := mustBook(t, store, "Dune", "Frank Herbert")
	b2 := mustBook(t, store, "Neuromancer", "William Gibson")
	c := mustCard(t, store, b1.ID, "0441172717")

	got, err := store.GetCardForBook(b1.ID)
	if err != nil {
		t.Fatalf("GetCardForBook: %v", err)
	}
	if got.ID != c.ID {
		t.Errorf("ID = %d, want %d", got.ID, c.ID)
	}

	_, err = store.GetCardForBook(b2.ID)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for book without card, got %v", err)
	}
}

func TestStore_CountCardsForBook(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)

	b := mustBook(t, store, "Dune", "Frank Herbert")

	n, err := store.CountCardsForBook(b.ID)
	if err != nil {
		t.Fatalf("CountCardsForBook: %v", err)
	}
	if n != 0 {
		t.Errorf("count = %d, want 0", n)
	}

	c := mustCard(t, store, b.ID, "0441172717")
	n, err = store.CountCardsForBook(b.ID)
	if err != nil {
		t.Fatalf("CountCardsForBook: %v", err)
	}
	if n != 1 {
		t.Errorf("count = %d, want 1", n)
	}

	if err := store.DeleteCard(c.ID); err != nil {
		t.Fatalf("DeleteCard: %v", err)
	}
	n, err = store.CountCardsForBook(b.ID)
	if err != nil {
		t.Fatalf("CountCardsForBook: %v", err)
	}
	if n != 0 {
		t.Errorf("count after delete = %d, want 0", n)
	}
}

func TestStore_ListCards_OrderedByISBN(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)

	b1 := mustBook(t, store, "Neuromancer", "William Gibson")
	b2 := mustBook(t, store, "Dune", "Frank Herbert")
	mustCard(t, store, b1.ID, "9780451524935")
	mustCard(t, store, b2.ID, "0441172717")

	cards, err := store.ListCards()
	if err != nil {
		t.Fatalf("ListCards: %v", err)
	}
	if len(cards) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(cards))
	}
	if *cards[0].ISBN != "0441172717" || *cards[1].ISBN != "9780451524935" {
		t.Errorf("unexpected order: %v, %v", *cards[0].ISBN, *cards[1].ISBN)
	}
}

func TestStore_UpdateCard(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)

	b := mustBook(t, store, "Dune", "Frank Herbert")
	c := mustCard(t, store, b.ID, "0441172717")

	if err := c.SetShelf("SF-07"); err != nil {
		t.Fatalf("SetShelf: %v", err)
	}
	if err := store.UpdateCard(c); err != nil {
		t.Fatalf("UpdateCard: %v", err)
	}

	got, err := store.GetCard(c.ID)
	if err != nil {
		t.Fatalf("GetCard: %v", err)
	}
	if got.Shelf == nil || *got.Shelf != "SF-07" {
		t.Errorf("Shelf = %v, want SF-07", got.Shelf)
	}
	if got.BookID != b.ID {
		t.Errorf("BookID = %d, want unchanged %d", got.BookID, b.ID)
	}
}

func TestStore_UpdateCard_NotFound(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)

	c := &Card{ID: 9999}
	err := store.UpdateCard(c)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_DeleteCard_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)

	b := mustBook(t, store, "Dune", "Frank Herbert")
	c := mustCard(t, store, b.ID, "0441172717")

	if err := store.DeleteCard(c.ID); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := store.DeleteCard(c.ID); err != nil {
		t.Errorf("second delete should be a no-op: %v", err)
	}
	if err := store.DeleteCard(9999); err != nil {
		t.Errorf("deleting a missing card should be a no-op: %v", err)
	}

	_, err := store.GetCard(c.ID)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}
