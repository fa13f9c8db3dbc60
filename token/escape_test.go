package token_test

import (
	"testing"

	"github.com/toon-go/toon/token"
)

func TestEscapeUnescapeRoundTrip(t *testing.T) {
	tests := []string{
		`hello`,
		"line\nbreak",
		"tab\ttab",
		`quote"quote`,
		`back\slash`,
		"carriage\rreturn",
		"crlf\r\nhere",
	}
	for _, s := range tests {
		escaped := token.Escape(s)
		got, err := token.Unescape(escaped)
		if err != nil {
			t.Fatalf("Unescape(%q) error: %v", escaped, err)
		}
		want := s
		if s == "crlf\r\nhere" {
			want = "crlf\nhere"
		}
		if got != want {
			t.Errorf("round trip of %q = %q, want %q", s, got, want)
		}
	}
}

func TestUnescapeInvalidSequence(t *testing.T) {
	if _, err := token.Unescape(`\x`); err == nil {
		t.Fatal("expected error for invalid escape sequence")
	}
	if _, err := token.Unescape(`\`); err == nil {
		t.Fatal("expected error for trailing backslash")
	}
}

func TestFindClosingQuote(t *testing.T) {
	tests := []struct {
		in    string
		start int
		want  int
	}{
		{`abc"`, 0, 3},
		{`a\"b"`, 0, 4},
		{`no closing`, 0, -1},
	}
	for _, tt := range tests {
		if got := token.FindClosingQuote(tt.in, tt.start); got != tt.want {
			t.Errorf("FindClosingQuote(%q, %d) = %d, want %d", tt.in, tt.start, got, tt.want)
		}
	}
}

func TestFindUnquotedChar(t *testing.T) {
	tests := []struct {
		in    string
		ch    byte
		start int
		want  int
	}{
		{"a,b", ',', 0, 1},
		{`"a,b",c`, ',', 0, 5},
		{"noDelim", ',', 0, -1},
	}
	for _, tt := range tests {
		if got := token.FindUnquotedChar(tt.in, tt.ch, tt.start); got != tt.want {
			t.Errorf("FindUnquotedChar(%q, %q, %d) = %d, want %d", tt.in, tt.ch, tt.start, got, tt.want)
		}
	}
}
