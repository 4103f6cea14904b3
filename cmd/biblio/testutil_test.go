package main

import (
	"bytes"
	"testing"

	"github.com/vmunix/biblio/internal/service"
)

// withMockApp swaps newApp for a constructor returning the given mock
// services and restores the real one when the test finishes.
func withMockApp(t *testing.T, books service.Books, cards service.Cards) {
	t.Helper()
	old := newApp
	newApp = func() (*app, error) {
		return &app{
			books: books,
			cards: cards,
			close: func() error { return nil },
		}, nil
	}
	t.Cleanup(func() { newApp = old })
}

// execute runs the root command with the given args and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { jsonOutput = false })
	err := rootCmd.Execute()
	return buf.String(), err
}
