package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/biblio/internal/catalog"
	"github.com/vmunix/biblio/internal/service"
)

// bookJSON is the JSON shape of a book for --json output.
type bookJSON struct {
	ID        int64   `json:"id"`
	Title     string  `json:"title"`
	Author    string  `json:"author"`
	Publisher *string `json:"publisher,omitempty"`
	Year      *int    `json:"year,omitempty"`
	Card      *cardJSON `json:"card,omitempty"`
}

func toBookJSON(b *catalog.Book) bookJSON {
	return bookJSON{
		ID:        b.ID,
		Title:     b.Title,
		Author:    b.Author,
		Publisher: b.Publisher,
		Year:      b.Year,
	}
}

func init() {
	bookCmd := &cobra.Command{
		Use:   "book",
		Short: "Manage books",
	}

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a book with its bibliographic card",
		Long:  "Creates a book and its bibliographic card in one transaction. Card fields are optional; the card itself always exists.",
		RunE:  runBookAdd,
	}
	addCmd.Flags().String("title", "", "Title of the book (required)")
	addCmd.Flags().String("author", "", "Author of the book (required)")
	addCmd.Flags().String("publisher", "", "Publisher")
	addCmd.Flags().Int("year", 0, "Edition year (1450-2025)")
	addCmd.Flags().String("isbn", "", "ISBN-10 or ISBN-13, separators allowed")
	addCmd.Flags().String("dewey", "", "Dewey classification code")
	addCmd.Flags().String("shelf", "", "Shelf location")
	addCmd.Flags().String("language", "", "Language")
	_ = addCmd.MarkFlagRequired("title")
	_ = addCmd.MarkFlagRequired("author")

	getCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show a book by ID",
		Args:  cobra.ExactArgs(1),
		RunE:  runBookGet,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List active books",
		RunE:  runBookList,
	}
	listCmd.Flags().Bool("with-cards", false, "Include each book's bibliographic card")

	searchCmd := &cobra.Command{
		Use:   "search <text>",
		Short: "Search active books by title",
		Args:  cobra.ExactArgs(1),
		RunE:  runBookSearch,
	}
	searchCmd.Flags().Bool("fuzzy", false, "Rank by title similarity instead of substring match")

	updateCmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a book",
		Long:  "Overwrites the book's fields. Flags not given carry the stored value forward.",
		Args:  cobra.ExactArgs(1),
		RunE:  runBookUpdate,
	}
	updateCmd.Flags().String("title", "", "New title")
	updateCmd.Flags().String("author", "", "New author")
	updateCmd.Flags().String("publisher", "", "New publisher (empty clears)")
	updateCmd.Flags().Int("year", 0, "New edition year")

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a book",
		Long:  "Marks the book as deleted. The row is kept; it just stops showing up.",
		Args:  cobra.ExactArgs(1),
		RunE:  runBookDelete,
	}

	bookCmd.AddCommand(addCmd, getCmd, listCmd, searchCmd, updateCmd, deleteCmd)
	rootCmd.AddCommand(bookCmd)
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid ID: %s", arg)
	}
	return id, nil
}

func runBookAdd(cmd *cobra.Command, args []string) error {
	title, _ := cmd.Flags().GetString("title")
	author, _ := cmd.Flags().GetString("author")
	publisher, _ := cmd.Flags().GetString("publisher")
	year, _ := cmd.Flags().GetInt("year")
	isbn, _ := cmd.Flags().GetString("isbn")
	dewey, _ := cmd.Flags().GetString("dewey")
	shelf, _ := cmd.Flags().GetString("shelf")
	language, _ := cmd.Flags().GetString("language")

	book, err := catalog.NewBook(title, author)
	if err != nil {
		return err
	}
	if err := book.SetPublisher(publisher); err != nil {
		return err
	}
	if cmd.Flags().Changed("year") {
		if err := book.SetYear(year); err != nil {
			return err
		}
	}

	card, err := catalog.NewCard(isbn, dewey, shelf, language)
	if err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer func() { _ = a.close() }()

	if err := a.books.CreateWithCard(book, card); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Added: %s by %s [book ID: %d, card ID: %d]\n",
		book.Title, book.Author, book.ID, card.ID)
	return nil
}

func runBookGet(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer func() { _ = a.close() }()

	book, err := a.books.Get(id)
	if errors.Is(err, catalog.ErrNotFound) {
		return fmt.Errorf("no active book with ID %d", id)
	}
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(toBookJSON(book))
	}

	printBook(cmd, book)
	return nil
}

func printBook(cmd *cobra.Command, b *catalog.Book) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "[%d] %s\n", b.ID, b.Title)
	fmt.Fprintf(out, "    Author:    %s\n", b.Author)
	if b.Publisher != nil {
		fmt.Fprintf(out, "    Publisher: %s\n", *b.Publisher)
	}
	if b.Year != nil {
		fmt.Fprintf(out, "    Year:      %d\n", *b.Year)
	}
}

func runBookList(cmd *cobra.Command, args []string) error {
	withCards, _ := cmd.Flags().GetBool("with-cards")

	a, err := newApp()
	if err != nil {
		return err
	}
	defer func() { _ = a.close() }()

	if withCards {
		items, err := a.books.ListWithCards()
		if err != nil {
			return err
		}
		if len(items) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No books in catalog.")
			return nil
		}
		if jsonOutput {
			views := make([]bookJSON, 0, len(items))
			for _, item := range items {
				v := toBookJSON(item.Book)
				if item.Card != nil {
					cv := toCardJSON(item.Card)
					v.Card = &cv
				}
				views = append(views, v)
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(views)
		}
		printBooksWithCards(cmd, items)
		return nil
	}

	books, err := a.books.List()
	if err != nil {
		return err
	}
	if len(books) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No books in catalog.")
		return nil
	}
	if jsonOutput {
		views := make([]bookJSON, 0, len(books))
		for _, b := range books {
			views = append(views, toBookJSON(b))
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(views)
	}
	printBookTable(cmd, books)
	return nil
}

func printBookTable(cmd *cobra.Command, books []*catalog.Book) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Catalog (%d books):\n\n", len(books))
	fmt.Fprintf(out, "  %-4s %-40s %-25s %-6s %s\n", "ID", "TITLE", "AUTHOR", "YEAR", "PUBLISHER")
	fmt.Fprintln(out, "  "+strings.Repeat("-", 90))
	for _, b := range books {
		fmt.Fprintf(out, "  %-4d %-40s %-25s %-6s %s\n",
			b.ID, truncate(b.Title, 40), truncate(b.Author, 25),
			intOrDash(b.Year), strOrDash(b.Publisher))
	}
}

func printBooksWithCards(cmd *cobra.Command, items []service.BookWithCard) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Catalog (%d books):\n\n", len(items))
	for _, item := range items {
		b := item.Book
		fmt.Fprintf(out, "  [%d] %s by %s", b.ID, b.Title, b.Author)
		if b.Year != nil {
			fmt.Fprintf(out, " (%d)", *b.Year)
		}
		fmt.Fprintln(out)
		if item.Card == nil {
			fmt.Fprintln(out, "      no card")
			continue
		}
		c := item.Card
		fmt.Fprintf(out, "      card %d: isbn %s, dewey %s, shelf %s, language %s\n",
			c.ID, strOrDash(c.ISBN), strOrDash(c.Dewey), strOrDash(c.Shelf), strOrDash(c.Language))
	}
}

func runBookSearch(cmd *cobra.Command, args []string) error {
	fuzzy, _ := cmd.Flags().GetBool("fuzzy")

	a, err := newApp()
	if err != nil {
		return err
	}
	defer func() { _ = a.close() }()

	books, err := a.books.Search(args[0], fuzzy)
	if err != nil {
		return err
	}
	if len(books) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No books matching %q.\n", args[0])
		return nil
	}
	if jsonOutput {
		views := make([]bookJSON, 0, len(books))
		for _, b := range books {
			views = append(views, toBookJSON(b))
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(views)
	}
	printBookTable(cmd, books)
	return nil
}

func runBookUpdate(cmd *cobra.Command, args []string) error {
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
	book, err := a.books.Get(id)
	if errors.Is(err, catalog.ErrNotFound) {
		return fmt.Errorf("no active book with ID %d", id)
	}
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("title") {
		title, _ := cmd.Flags().GetString("title")
		if err := book.SetTitle(title); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("author") {
		author, _ := cmd.Flags().GetString("author")
		if err := book.SetAuthor(author); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("publisher") {
		publisher, _ := cmd.Flags().GetString("publisher")
		if err := book.SetPublisher(publisher); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("year") {
		year, _ := cmd.Flags().GetInt("year")
		if err := book.SetYear(year); err != nil {
			return err
		}
	}

	if err := a.books.Update(book); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Updated: %s [ID: %d]\n", book.Title, book.ID)
	return nil
}

func runBookDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer func() { _ = a.close() }()

	if err := a.books.Delete(id); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted book %d\n", id)
	return nil
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n-3] + "..."
	}
	return s
}

func strOrDash(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

func intOrDash(n *int) string {
	if n == nil {
		return "-"
	}
	return strconv.Itoa(*n)
}
