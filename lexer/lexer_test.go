package lexer_test

import (
	"testing"

	"github.com/toon-go/toon/lexer"
	"github.com/toon-go/toon/printer"
)

func findClass(toks []lexer.Token, value string) (printer.TokenClass, bool) {
	for _, t := range toks {
		if t.Value == value {
			return t.Class, true
		}
	}
	return 0, false
}

func TestTokenizeFlatMapping(t *testing.T) {
	toks := lexer.Tokenize("host: localhost\nport: 8080")
	if len(toks) == 0 {
		t.Fatal("expected tokens")
	}
	if class, ok := findClass(toks, "host"); !ok || class != printer.ClassKey {
		t.Fatalf("expected host to be classified as a key, got %v ok=%v", class, ok)
	}
	if class, ok := findClass(toks, "8080"); !ok || class != printer.ClassNumber {
		t.Fatalf("expected 8080 to be classified as a number, got %v ok=%v", class, ok)
	}
}

func TestTokenizeInlineArray(t *testing.T) {
	toks := lexer.Tokenize("numbers[3]: 1,2,3")
	if class, ok := findClass(toks, "numbers"); !ok || class != printer.ClassKey {
		t.Fatalf("expected numbers to be classified as a key, got %v ok=%v", class, ok)
	}
	if class, ok := findClass(toks, "["); !ok || class != printer.ClassStructural {
		t.Fatalf("expected [ to be classified as structural, got %v ok=%v", class, ok)
	}
}

func TestTokenizeListItem(t *testing.T) {
	toks := lexer.Tokenize("tags[2]:\n  - alpha\n  - beta")
	if class, ok := findClass(toks, "-"); !ok || class != printer.ClassStructural {
		t.Fatalf("expected - to be classified as structural, got %v ok=%v", class, ok)
	}
	if class, ok := findClass(toks, "alpha"); !ok || class != printer.ClassString {
		t.Fatalf("expected alpha to be classified as a string, got %v ok=%v", class, ok)
	}
}

func TestTokenizeBoolAndNull(t *testing.T) {
	toks := lexer.Tokenize("active: true\nmissing: null")
	if class, ok := findClass(toks, "true"); !ok || class != printer.ClassBool {
		t.Fatalf("expected true to be classified as bool, got %v ok=%v", class, ok)
	}
	if class, ok := findClass(toks, "null"); !ok || class != printer.ClassNull {
		t.Fatalf("expected null to be classified as null, got %v ok=%v", class, ok)
	}
}
