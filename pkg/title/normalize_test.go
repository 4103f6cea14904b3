package title

import "testing"

func TestClean(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercase", "DUNE", "dune"},
		{"accents", "Léon", "leon"},
		{"leading article", "The Hobbit", "hobbit"},
		{"spanish article", "La Sombra del Viento", "sombra del viento"},
		{"subtitle colon", "Dune: Messiah", "dune messiah"},
		{"article after colon", "Dune: The Messiah", "dune messiah"},
		{"ampersand", "War & Peace", "war and peace"},
		{"hyphens", "Catch-22", "catch 22"},
		{"apostrophe", "Ender's Game", "enders game"},
		{"dots", "S.P.Q.R.", "s p q r"},
		{"punctuation stripped", "Hamlet!", "hamlet"},
		{"collapse whitespace", "  The   Stand  ", "stand"},
		{"empty", "", ""},
		{"article only keeps word", "Theory", "theory"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clean(tt.input); got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
