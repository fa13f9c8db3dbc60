// Package parser recognizes the line-level grammar of TOON (spec.md
// §4.6): primitive tokens, key tokens, delimited value lists, and array
// headers. It operates purely on strings handed to it by the decoder's
// line cursor; it never reads source itself (that is scanner's job) and
// never decides structure across lines (that is the decoder's job).
package parser

import (
	"strings"

	"github.com/toon-go/toon/ast"
	"github.com/toon-go/toon/token"
)

// ParsePrimitiveToken parses a single primitive value token (spec.md
// §4.6). The token is trimmed before classification.
func ParsePrimitiveToken(raw string) (ast.Node, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ast.NewString(""), nil
	}
	if s[0] == '"' {
		closeIdx := token.FindClosingQuote(s, 1)
		if closeIdx < 0 {
			return nil, errUnterminatedQuote
		}
		if closeIdx != len(s)-1 {
			return nil, errTrailingAfterQuote
		}
		unescaped, err := token.Unescape(s[1:closeIdx])
		if err != nil {
			return nil, err
		}
		return ast.NewString(unescaped), nil
	}
	switch s {
	case token.NullLiteral:
		return ast.NewNull(), nil
	case token.TrueLiteral:
		return ast.NewBool(true), nil
	case token.FalseLiteral:
		return ast.NewBool(false), nil
	}
	if token.IsNumericLiteral(s) {
		f, _ := token.ParseNumber(s)
		f = token.NormalizeSignedZero(f)
		if token.IsIntegerLiteral(s) {
			return ast.NewIntegerLiteral(s, f), nil
		}
		return ast.NewNumber(f), nil
	}
	return ast.NewString(s), nil
}
