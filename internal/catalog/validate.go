package catalog

import (
	"fmt"
	"regexp"
	"strings"
)

// ValidationError reports a field value that violates a data-model bound.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

const (
	maxTitleLen     = 150
	maxAuthorLen    = 120
	maxPublisherLen = 100
	minYear         = 1450
	maxYear         = 2025
	maxISBNRawLen   = 17
	maxDeweyLen     = 20
	maxShelfLen     = 20
	maxLanguageLen  = 30
)

var (
	isbnSeparators = regexp.MustCompile(`[\s-]`)
	isbn10Pattern  = regexp.MustCompile(`^\d{9}[\dXx]$`)
	isbn13Pattern  = regexp.MustCompile(`^\d{12}[\dXx]$`)
)

// SetTitle validates and assigns the title (required, trimmed, max 150).
func (b *Book) SetTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return invalid("title", "must not be empty")
	}
	if len(title) > maxTitleLen {
		return invalid("title", fmt.Sprintf("exceeds %d characters", maxTitleLen))
	}
	b.Title = title
	return nil
}

// SetAuthor validates and assigns the author (required, trimmed, max 120).
func (b *Book) SetAuthor(author string) error {
	author = strings.TrimSpace(author)
	if author == "" {
		return invalid("author", "must not be empty")
	}
	if len(author) > maxAuthorLen {
		return invalid("author", fmt.Sprintf("exceeds %d characters", maxAuthorLen))
	}
	b.Author = author
	return nil
}

// SetPublisher assigns the publisher. An empty string clears it.
func (b *Book) SetPublisher(publisher string) error {
	publisher = strings.TrimSpace(publisher)
	if publisher == "" {
		b.Publisher = nil
		return nil
	}
	if len(publisher) > maxPublisherLen {
		return invalid("publisher", fmt.Sprintf("exceeds %d characters", maxPublisherLen))
	}
	b.Publisher = &publisher
	return nil
}

// SetYear validates and assigns the edition year (1450-2025 inclusive).
func (b *Book) SetYear(year int) error {
	if year < minYear || year > maxYear {
		return invalid("year", fmt.Sprintf("outside valid range (%d-%d)", minYear, maxYear))
	}
	b.Year = &year
	return nil
}

// SetISBN validates and assigns the ISBN. An empty string clears it.
// After stripping spaces and hyphens the value must be 10 characters
// (9 digits plus a [0-9Xx] check digit) or 13; the raw form with
// separators must not exceed 17 characters.
func (c *Card) SetISBN(isbn string) error {
	isbn = strings.TrimSpace(isbn)
	if isbn == "" {
		c.ISBN = nil
		return nil
	}
	if len(isbn) > maxISBNRawLen {
		return invalid("isbn", fmt.Sprintf("exceeds %d characters including separators", maxISBNRawLen))
	}
	clean := isbnSeparators.ReplaceAllString(isbn, "")
	switch len(clean) {
	case 10:
		if !isbn10Pattern.MatchString(clean) {
			return invalid("isbn", "contains invalid characters")
		}
	case 13:
		if !isbn13Pattern.MatchString(clean) {
			return invalid("isbn", "contains invalid characters")
		}
	default:
		return invalid("isbn", "must have 10 or 13 digits once separators are removed")
	}
	c.ISBN = &isbn
	return nil
}

// SetDewey assigns the Dewey classification. An empty string clears it.
func (c *Card) SetDewey(dewey string) error {
	return c.setOptional(&c.Dewey, "dewey", dewey, maxDeweyLen)
}

// SetShelf assigns the shelf location. An empty string clears it.
func (c *Card) SetShelf(shelf string) error {
	return c.setOptional(&c.Shelf, "shelf", shelf, maxShelfLen)
}

// SetLanguage assigns the language. An empty string clears it.
func (c *Card) SetLanguage(language string) error {
	return c.setOptional(&c.Language, "language", language, maxLanguageLen)
}

func (c *Card) setOptional(dst **string, field, value string, maxLen int) error {
	value = strings.TrimSpace(value)
	if value == "" {
		*dst = nil
		return nil
	}
	if len(value) > maxLen {
		return invalid(field, fmt.Sprintf("exceeds %d characters", maxLen))
	}
	*dst = &value
	return nil
}
