package printer_test

import (
	"strings"
	"testing"

	"github.com/toon-go/toon/printer"
)

func TestExcerptUncolored(t *testing.T) {
	out := printer.Excerpt("  foo: bar", 8, false)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.HasSuffix(lines[1], "^") {
		t.Fatalf("expected caret at end of second line, got %q", lines[1])
	}
}

func TestHighlighterPaint(t *testing.T) {
	h := printer.DefaultHighlighter()
	out := h.Paint(printer.ClassString, "hello")
	if !strings.Contains(out, "hello") {
		t.Fatalf("expected painted output to contain original text, got %q", out)
	}
	if out == "hello" {
		t.Fatalf("expected painted output to differ from plain text")
	}
	plain := (&printer.Highlighter{}).Paint(printer.ClassString, "hello")
	if plain != "hello" {
		t.Fatalf("zero-value Highlighter should not paint, got %q", plain)
	}
}
