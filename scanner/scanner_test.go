package scanner_test

import (
	"testing"

	"github.com/toon-go/toon/errors"
	"github.com/toon-go/toon/scanner"
)

func TestScanBasic(t *testing.T) {
	src := "users[2]{id,name}:\n  1,Alice\n  2,Bob"
	res, err := scanner.Scan(src, 2, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(res.Lines))
	}
	if res.Lines[0].Depth != 0 || res.Lines[1].Depth != 1 || res.Lines[2].Depth != 1 {
		t.Fatalf("unexpected depths: %+v", res.Lines)
	}
	if res.Lines[1].Content != "1,Alice" {
		t.Fatalf("unexpected content: %q", res.Lines[1].Content)
	}
}

func TestScanEmptyInput(t *testing.T) {
	res, err := scanner.Scan("", 2, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Lines) != 0 {
		t.Fatalf("expected no lines, got %d", len(res.Lines))
	}
}

func TestScanBlankLines(t *testing.T) {
	src := "a: 1\n\nb: 2"
	res, err := scanner.Scan(src, 2, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Lines) != 2 {
		t.Fatalf("expected 2 non-blank lines, got %d", len(res.Lines))
	}
	if len(res.Blanks) != 1 || res.Blanks[0].LineNumber != 2 {
		t.Fatalf("unexpected blanks: %+v", res.Blanks)
	}
}

func TestScanStrictTabIndentation(t *testing.T) {
	src := "parent:\n\tchild: v"
	_, err := scanner.Scan(src, 2, true)
	if err == nil {
		t.Fatal("expected indentation error for tab")
	}
	e, ok := errors.As(err)
	if !ok || e.Kind != errors.Indentation {
		t.Fatalf("expected Indentation error, got %v", err)
	}
}

func TestScanStrictNonMultipleIndentation(t *testing.T) {
	src := "parent:\n   child: v"
	_, err := scanner.Scan(src, 2, true)
	if err == nil {
		t.Fatal("expected indentation error for 3-space indent")
	}
	e, ok := errors.As(err)
	if !ok || e.Kind != errors.Indentation {
		t.Fatalf("expected Indentation error, got %v", err)
	}
}

func TestScanNonStrictToleratesBadIndentation(t *testing.T) {
	src := "parent:\n   child: v"
	res, err := scanner.Scan(src, 2, false)
	if err != nil {
		t.Fatalf("unexpected error in non-strict mode: %v", err)
	}
	if len(res.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(res.Lines))
	}
}

func TestScanCRLF(t *testing.T) {
	src := "a: 1\r\nb: 2\r\n"
	res, err := scanner.Scan(src, 2, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(res.Lines))
	}
	if res.Lines[0].Raw != "a: 1" {
		t.Fatalf("unexpected raw line: %q", res.Lines[0].Raw)
	}
}

func TestCursorPeekNextAdvance(t *testing.T) {
	res, err := scanner.Scan("a: 1\nb: 2", 2, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c := scanner.NewCursor(res.Lines)
	if c.AtEnd() {
		t.Fatal("expected cursor not at end")
	}
	peek, ok := c.Peek()
	if !ok || peek.Content != "a: 1" {
		t.Fatalf("unexpected peek: %+v", peek)
	}
	line, ok := c.Next()
	if !ok || line.Content != "a: 1" {
		t.Fatalf("unexpected next: %+v", line)
	}
	cur, ok := c.Current()
	if !ok || cur.Content != "a: 1" {
		t.Fatalf("unexpected current: %+v", cur)
	}
	c.Advance()
	if !c.AtEnd() {
		t.Fatal("expected cursor at end after advancing past last line")
	}
}
