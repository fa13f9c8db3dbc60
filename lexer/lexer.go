// Package lexer re-tokenizes an already-scanned TOON document into
// classified, column-positioned tokens for cmd/tooncat's syntax
// highlighting. It wraps scanner and parser exactly the way the teacher's
// lexer package wraps its own scanner and token packages (lexer.go
// Tokenize), but TOON's line-oriented grammar means there is no single
// forward token stream to replay: each line is independently re-parsed
// with the same primitive/key/header recognizers the decoder itself uses.
package lexer

import (
	"strings"

	"github.com/toon-go/toon/parser"
	"github.com/toon-go/toon/printer"
	"github.com/toon-go/toon/scanner"
	"github.com/toon-go/toon/token"
)

// Token is one classified run of text at a known source position.
type Token struct {
	Class  printer.TokenClass
	Value  string
	Line   int
	Column int // 1-based, within the raw source line
}

// Lexer tokenizes TOON source for display purposes only; it never reports
// errors, since a highlighter must still render a document that fails to
// decode.
type Lexer struct{}

// Tokenize splits src into classified tokens, one logical line at a time.
func (l *Lexer) Tokenize(src string) []Token {
	res, err := scanner.Scan(src, 2, false)
	if err != nil {
		return nil
	}
	var tokens []Token
	for _, line := range res.Lines {
		tokens = append(tokens, tokenizeLine(line)...)
	}
	return tokens
}

// Tokenize is the package-level convenience entry point, mirroring the
// teacher's lexer.Tokenize free function.
func Tokenize(src string) []Token {
	var l Lexer
	return l.Tokenize(src)
}

func tokenizeLine(line scanner.ParsedLine) []Token {
	col := line.Indent + 1
	content := line.Content

	if strings.HasPrefix(content, token.ListItemMarker) || content == "-" {
		toks := []Token{{Class: printer.ClassStructural, Value: "-", Line: line.LineNumber, Column: col}}
		if content == "-" {
			return toks
		}
		rest := content[len(token.ListItemMarker):]
		toks = append(toks, tokenizeContent(rest, line.LineNumber, col+len(token.ListItemMarker))...)
		return toks
	}

	return tokenizeContent(content, line.LineNumber, col)
}

// tokenizeContent classifies one depth-stripped line body: an array
// header, a key/value pair, or (at the document root) a single primitive.
func tokenizeContent(content string, lineNumber, col int) []Token {
	if h, ok, err := parser.ParseArrayHeaderLine(content, token.DelimiterComma); err == nil && ok {
		return tokenizeHeader(content, h, lineNumber, col)
	}

	if key, end, quoted, ok, err := parser.ParseKeyToken(content, 0); err == nil && ok {
		toks := []Token{keyToken(key, quoted, content[:end-1], lineNumber, col)}
		toks = append(toks, Token{Class: printer.ClassStructural, Value: ":", Line: lineNumber, Column: col + end - 1})
		rest := strings.TrimLeft(content[end:], " \t")
		if rest != "" {
			valCol := col + len(content) - len(rest)
			toks = append(toks, tokenizeValueList(rest, lineNumber, valCol)...)
		}
		return toks
	}

	return tokenizeValueList(content, lineNumber, col)
}

func tokenizeHeader(content string, h *parser.ArrayHeader, lineNumber, col int) []Token {
	var toks []Token
	pos := col
	if h.HasKey {
		toks = append(toks, keyToken(h.Key, h.KeyQuoted, h.Key, lineNumber, pos))
		pos += len(rawKeySpan(content, h.Key, h.KeyQuoted))
	}
	bracketStart := strings.IndexByte(content[pos-col:], '[')
	if bracketStart >= 0 {
		pos = col + bracketStart
	}
	toks = append(toks, Token{Class: printer.ClassStructural, Value: "[", Line: lineNumber, Column: pos})
	pos++
	closeIdx := strings.IndexByte(content[pos-col:], ']')
	if closeIdx >= 0 {
		digits := content[pos-col : pos-col+closeIdx]
		toks = append(toks, Token{Class: printer.ClassNumber, Value: digits, Line: lineNumber, Column: pos})
		pos += len(digits)
		toks = append(toks, Token{Class: printer.ClassStructural, Value: "]", Line: lineNumber, Column: pos})
		pos++
	}
	if h.Fields != nil {
		braceIdx := strings.IndexByte(content[pos-col:], '{')
		if braceIdx >= 0 {
			pos += braceIdx
		}
		toks = append(toks, Token{Class: printer.ClassStructural, Value: "{", Line: lineNumber, Column: pos})
		pos++
		for i, f := range h.Fields {
			if i > 0 {
				toks = append(toks, Token{Class: printer.ClassStructural, Value: string(h.Delimiter.Rune()), Line: lineNumber, Column: pos})
				pos++
			}
			toks = append(toks, Token{Class: printer.ClassKey, Value: f, Line: lineNumber, Column: pos})
			pos += len(f)
		}
		toks = append(toks, Token{Class: printer.ClassStructural, Value: "}", Line: lineNumber, Column: pos})
		pos++
	}
	toks = append(toks, Token{Class: printer.ClassStructural, Value: ":", Line: lineNumber, Column: pos})
	pos++
	tail := strings.TrimLeft(h.Tail, " \t")
	if tail != "" {
		tailCol := col + len(content) - len(tail)
		toks = append(toks, tokenizeValueList(tail, lineNumber, tailCol)...)
	}
	return toks
}

// rawKeySpan returns the literal source span a key occupied, quotes
// included, so column math for the following "[" stays correct.
func rawKeySpan(content, key string, quoted bool) string {
	if !quoted {
		return key
	}
	return `"` + token.Escape(key) + `"`
}

func keyToken(key string, quoted bool, raw string, lineNumber, col int) Token {
	text := key
	if quoted {
		text = `"` + token.Escape(key) + `"`
	}
	return Token{Class: printer.ClassKey, Value: text, Line: lineNumber, Column: col}
}

// tokenizeValueList classifies a comma-separated run of primitive tokens
// (an inline array body, a tabular row, or a lone scalar). Only commas are
// split on; a tab- or pipe-delimited run is classified as one token.
func tokenizeValueList(s string, lineNumber, col int) []Token {
	var toks []Token
	pos := col
	parts := splitTopLevel(s, ',')
	for i, part := range parts {
		if i > 0 {
			toks = append(toks, Token{Class: printer.ClassStructural, Value: ",", Line: lineNumber, Column: pos})
			pos++
		}
		toks = append(toks, primitiveToken(part, lineNumber, pos))
		pos += len(part)
	}
	return toks
}

// splitTopLevel splits s on sep, ignoring occurrences inside a quoted
// span, mirroring parser's own quote-aware scanning.
func splitTopLevel(s string, sep byte) []string {
	var parts []string
	start := 0
	i := 0
	for i < len(s) {
		if s[i] == '"' {
			if closeIdx := token.FindClosingQuote(s, i+1); closeIdx >= 0 {
				i = closeIdx + 1
				continue
			}
		}
		if s[i] == sep {
			parts = append(parts, s[start:i])
			start = i + 1
		}
		i++
	}
	parts = append(parts, s[start:])
	return parts
}

func primitiveToken(raw string, lineNumber, col int) Token {
	trimmed := strings.TrimSpace(raw)
	class := printer.ClassString
	switch {
	case trimmed == token.NullLiteral:
		class = printer.ClassNull
	case trimmed == token.TrueLiteral || trimmed == token.FalseLiteral:
		class = printer.ClassBool
	case token.IsNumericLiteral(trimmed):
		class = printer.ClassNumber
	}
	return Token{Class: class, Value: raw, Line: lineNumber, Column: col}
}
