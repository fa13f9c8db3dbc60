package parser

import (
	"strings"

	"github.com/toon-go/toon/token"
)

// ParseDelimitedValues splits text on delimiter's rune, treating any
// "..." span as a single field regardless of delimiters inside it; a
// backslash inside a quoted span escapes the following character so an
// escaped quote does not end the span early. Each field is trimmed of
// surrounding whitespace (spec.md §4.6).
func ParseDelimitedValues(text string, delimiter token.Delimiter) []string {
	d := byte(delimiter.Rune())
	fields := make([]string, 0, strings.Count(text, string(d))+1)
	inQuote := false
	start := 0
	for i := 0; i < len(text); i++ {
		c := text[i]
		if inQuote {
			if c == '\\' {
				i++
				continue
			}
			if c == '"' {
				inQuote = false
			}
			continue
		}
		if c == '"' {
			inQuote = true
			continue
		}
		if c == d {
			fields = append(fields, strings.TrimSpace(text[start:i]))
			start = i + 1
		}
	}
	fields = append(fields, strings.TrimSpace(text[start:]))
	return fields
}
