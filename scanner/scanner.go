// Package scanner turns raw TOON source into depth-tagged logical lines
// (spec.md §4.5). It is a single forward pass over the source text with no
// backtracking, in the spirit of the teacher's (goccy-go-yaml) scanner
// package, but far simpler: TOON has no multi-line scalars or flow
// collections to track, so there is no lexer state machine, only a line
// splitter and an indentation check.
package scanner

import (
	"strings"

	"github.com/toon-go/toon/errors"
)

// ParsedLine is one non-blank logical line of source (spec.md §3).
type ParsedLine struct {
	Raw        string // original line, without trailing \r or \n
	Indent     int    // count of leading whitespace characters
	Content    string // Raw with the leading indentation run removed
	Depth      int    // Indent / indentSize
	LineNumber int    // 1-based
}

// BlankLine records a line that was empty or contained only whitespace,
// tracked separately from ParsedLine so the decoder's blank-line-in-range
// validation (spec.md §4.8) can consult it without scanning content again.
type BlankLine struct {
	LineNumber int
	Depth      int
}

// Result is the scanner's output: the non-blank lines and a separate
// blank-line index.
type Result struct {
	Lines  []ParsedLine
	Blanks []BlankLine
}

// Scan splits source into ParsedLines and BlankLines. indentSize is the
// number of spaces per depth level; strict enables the indentation checks
// of spec.md invariants I6 ("indentation ... is an exact multiple of
// indent_size and contains no tab characters"). CRLF and bare LF line
// terminators are both accepted.
func Scan(source string, indentSize int, strict bool) (*Result, error) {
	if indentSize <= 0 {
		indentSize = 2
	}
	physical := strings.Split(source, "\n")
	res := &Result{
		Lines:  make([]ParsedLine, 0, len(physical)),
		Blanks: make([]BlankLine, 0),
	}
	for idx, raw := range physical {
		lineNumber := idx + 1
		raw = strings.TrimSuffix(raw, "\r")

		i := 0
		hasTab := false
		for i < len(raw) && (raw[i] == ' ' || raw[i] == '\t') {
			if raw[i] == '\t' {
				hasTab = true
			}
			i++
		}
		indent := i
		content := raw[i:]

		if strings.TrimSpace(content) == "" {
			depth := 0
			if indentSize > 0 {
				depth = indent / indentSize
			}
			res.Blanks = append(res.Blanks, BlankLine{LineNumber: lineNumber, Depth: depth})
			continue
		}

		if strict {
			if hasTab {
				return nil, errors.ErrIndentation(
					"tabs not allowed in indentation", lineNumber, 1, raw)
			}
			if indent%indentSize != 0 {
				return nil, errors.ErrIndentation(
					"indentation must be a multiple of the configured indent size", lineNumber, 1, raw)
			}
		}

		res.Lines = append(res.Lines, ParsedLine{
			Raw:        raw,
			Indent:     indent,
			Content:    content,
			Depth:      indent / indentSize,
			LineNumber: lineNumber,
		})
	}
	return res, nil
}
