// Package printer renders source-line excerpts with a caret under a
// failing column, for TOON's error messages (spec.md §7) and for
// cmd/tooncat's colorized dump of a document. It mirrors the teacher's
// (goccy-go-yaml) printer package, stripped of token-linked-list context:
// TOON errors carry a single offending line, not a token stream.
package printer

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

const escape = "\x1b"

func format(attr color.Attribute) string {
	return fmt.Sprintf("%s[%dm", escape, attr)
}

// Excerpt renders src behind a fixed "  | " gutter (it carries no line
// number) and a caret line pointing at column. When colored is true the
// caret is highlighted using github.com/fatih/color's SGR codes; the
// gutter and source text are left uncolored.
func Excerpt(src string, column int, colored bool) string {
	gutter := "  | "
	caretPad := strings.Repeat(" ", len(gutter)+max(column-1, 0))
	caret := caretPad + "^"
	if !colored {
		return gutter + src + "\n" + caret
	}
	red := format(color.FgHiRed)
	reset := format(color.Reset)
	return gutter + src + "\n" + red + caret + reset
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
