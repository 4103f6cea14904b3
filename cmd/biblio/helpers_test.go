package main

import "testing"

func TestParseID(t *testing.T) {
	tests := []struct {
		arg     string
		want    int64
		wantErr bool
	}{
		{"1", 1, false},
		{"42", 42, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := parseID(tt.arg)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseID(%q) error = %v, wantErr %v", tt.arg, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("parseID(%q) = %d, want %d", tt.arg, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		s    string
		n    int
		want string
	}{
		{"short", 10, "short"},
		{"exactly ten", 11, "exactly ten"},
		{"a much longer title than fits", 10, "a much ..."},
	}
	for _, tt := range tests {
		if got := truncate(tt.s, tt.n); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.s, tt.n, got, tt.want)
		}
	}
}

func TestStrOrDash(t *testing.T) {
	if got := strOrDash(nil); got != "-" {
		t.Errorf("strOrDash(nil) = %q, want -", got)
	}
	s := "value"
	if got := strOrDash(&s); got != "value" {
		t.Errorf("strOrDash = %q, want value", got)
	}
}

func TestIntOrDash(t *testing.T) {
	if got := intOrDash(nil); got != "-" {
		t.Errorf("intOrDash(nil) = %q, want -", got)
	}
	n := 1965
	if got := intOrDash(&n); got != "1965" {
		t.Errorf("intOrDash = %q, want 1965", got)
	}
}
