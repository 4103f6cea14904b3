package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/biblio/internal/catalog"
)

// cardJSON is the JSON shape of a card for --json output.
type cardJSON struct {
	ID       int64   `json:"id"`
	BookID   int64   `json:"book_id"`
	ISBN     *string `json:"isbn,omitempty"`
	Dewey    *string `json:"dewey,omitempty"`
	Shelf    *string `json:"shelf,omitempty"`
	Language *string `json:"language,omitempty"`
}

func toCardJSON(c *catalog.Card) cardJSON {
	return cardJSON{
		ID:       c.ID,
		BookID:   c.BookID,
		ISBN:     c.ISBN,
		Dewey:    c.Dewey,
		Shelf:    c.Shelf,
		Language: c.Language,
	}
}

func init() {
	cardCmd := &cobra.Command{
		Use:   "card",
		Short: "Manage bibliographic cards",
	}

	attachCmd := &cobra.Command{
		Use:   "attach <book-id>",
		Short: "Attach a card to an existing book",
		Long:  "Creates a bibliographic card for a book that has none. Fails if the book is missing, deleted, or already carries a card.",
		Args:  cobra.ExactArgs(1),
		RunE:  runCardAttach,
	}
	attachCmd.Flags().String("isbn", "", "ISBN-10 or ISBN-13, separators allowed")
	attachCmd.Flags().String("dewey", "", "Dewey classification code")
	attachCmd.Flags().String("shelf", "", "Shelf location")
	attachCmd.Flags().String("language", "", "Language")

	getCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show a card by ID",
		Args:  cobra.ExactArgs(1),
		RunE:  runCardGet,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List active cards",
		RunE:  runCardList,
	}

	isbnCmd := &cobra.Command{
		Use:   "isbn <isbn>",
		Short: "Find a card by ISBN",
		Args:  cobra.ExactArgs(1),
		RunE:  runCardByISBN,
	}

	forBookCmd := &cobra.Command{
		Use:   "for-book <book-id>",
		Short: "Show the card attached to a book",
		Args:  cobra.ExactArgs(1),
		RunE:  runCardForBook,
	}

	updateCmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a card",
		Long:  "Overwrites the card's fields. Flags not given carry the stored value forward. The owning book cannot change.",
		Args:  cobra.ExactArgs(1),
		RunE:  runCardUpdate,
	}
	updateCmd.Flags().String("isbn", "", "New ISBN (empty clears)")
	updateCmd.Flags().String("dewey", "", "New Dewey code (empty clears)")
	updateCmd.Flags().String("shelf", "", "New shelf (empty clears)")
	updateCmd.Flags().String("language", "", "New language (empty clears)")

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a card",
		Long:  "Marks the card as deleted. The row is kept; it just stops showing up.",
		Args:  cobra.ExactArgs(1),
		RunE:  runCardDelete,
	}

	cardCmd.AddCommand(attachCmd, getCmd, listCmd, isbnCmd, forBookCmd, updateCmd, deleteCmd)
	rootCmd.AddCommand(cardCmd)
}

func runCardAttach(cmd *cobra.Command, args []string) error {
	bookID, err := parseID(args[0])
	if err != nil {
		return err
	}

	isbn, _ := cmd.Flags().GetString("isbn")
	dewey, _ := cmd.Flags().GetString("dewey")
	shelf, _ := cmd.Flags().GetString("shelf")
	language, _ := cmd.Flags().GetString("language")

	card, err := catalog.NewCard(isbn, dewey, shelf, language)
	if err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer func() { _ = a.close() }()

	if err := a.cards.Attach(bookID, card); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Attached card %d to book %d\n", card.ID, bookID)
	return nil
}

func runCardGet(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer func() { _ = a.close() }()

	card, err := a.cards.Get(id)
	if errors.Is(err, catalog.ErrNotFound) {
		return fmt.Errorf("no active card with ID %d", id)
	}
	if err != nil {
		return err
	}

	return outputCard(cmd, card)
}

func runCardList(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer func() { _ = a.close() }()

	cards, err := a.cards.List()
	if err != nil {
		return err
	}
	if len(cards) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No cards in catalog.")
		return nil
	}

	if jsonOutput {
		views := make([]cardJSON, 0, len(cards))
		for _, c := range cards {
			views = append(views, toCardJSON(c))
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(views)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Cards (%d):\n\n", len(cards))
	fmt.Fprintf(out, "  %-4s %-7s %-17s %-20s %-10s %s\n", "ID", "BOOK", "ISBN", "DEWEY", "SHELF", "LANGUAGE")
	fmt.Fprintln(out, "  "+strings.Repeat("-", 75))
	for _, c := range cards {
		fmt.Fprintf(out, "  %-4d %-7d %-17s %-20s %-10s %s\n",
			c.ID, c.BookID, strOrDash(c.ISBN), strOrDash(c.Dewey),
			strOrDash(c.Shelf), strOrDash(c.Language))
	}
	return nil
}

func runCardByISBN(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer func() { _ = a.close() }()

	card, err := a.cards.GetByISBN(args[0])
	if errors.Is(err, catalog.ErrNotFound) {
		return fmt.Errorf("no active card with ISBN %q", args[0])
	}
	if err != nil {
		return err
	}

	return outputCard(cmd, card)
}

func runCardForBook(cmd *cobra.Command, args []string) error {
	bookID, err := parseID(args[0])
	if err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer func() { _ = a.close() }()

	card, err := a.cards.GetForBook(bookID)
	if errors.Is(err, catalog.ErrNotFound) {
		return fmt.Errorf("book %d has no active card", bookID)
	}
	if err != nil {
		return err
	}

	return outputCard(cmd, card)
}

func runCardUpdate(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer func() { _ = a.close() }()

	// Read the stored record so unset flags carry their values forward.
	card, err := a.cards.Get(id)
	if errors.Is(err, catalog.ErrNotFound) {
		return fmt.Errorf("no active card with ID %d", id)
	}
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("isbn") {
		isbn, _ := cmd.Flags().GetString("isbn")
		if err := card.SetISBN(isbn); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("dewey") {
		dewey, _ := cmd.Flags().GetString("dewey")
		if err := card.SetDewey(dewey); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("shelf") {
		shelf, _ := cmd.Flags().GetString("shelf")
		if err := card.SetShelf(shelf); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("language") {
		language, _ := cmd.Flags().GetString("language")
		if err := card.SetLanguage(language); err != nil {
			return err
		}
	}

	if err := a.cards.Update(card); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Updated card %d\n", card.ID)
	return nil
}

func runCardDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer func() { _ = a.close() }()

	if err := a.cards.Delete(id); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted card %d\n", id)
	return nil
}

func outputCard(cmd *cobra.Command, c *catalog.Card) error {
	if jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(toCardJSON(c))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "[%d] card for book %d\n", c.ID, c.BookID)
	fmt.Fprintf(out, "    ISBN:     %s\n", strOrDash(c.ISBN))
	fmt.Fprintf(out, "    Dewey:    %s\n", strOrDash(c.Dewey))
	fmt.Fprintf(out, "    Shelf:    %s\n", strOrDash(c.Shelf))
	fmt.Fprintf(out, "    Language: %s\n", strOrDash(c.Language))
	return nil
}
