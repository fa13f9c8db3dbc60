package toon

import (
	"strings"

	"github.com/toon-go/toon/ast"
	"github.com/toon-go/toon/errors"
	"github.com/toon-go/toon/parser"
	"github.com/toon-go/toon/scanner"
	"github.com/toon-go/toon/token"
)

// decodeState is the recursive-descent engine over a scanner.Cursor
// (spec.md §4.7). One decodeState is built per call to decodeTree and
// discarded afterwards; it holds no state that outlives the call, in
// keeping with the re-entrant, call-scoped core described in spec.md §5.
type decodeState struct {
	cur        *scanner.Cursor
	blanks     []scanner.BlankLine
	indentSize int
	strict     bool
}

// decodeTree parses source into the JSON-shaped tree (spec.md §4.7
// "decode_value_from_lines"). It is the entry point the public Decoder
// (decode.go) calls after resolving DecodeOptions.
func decodeTree(source string, indentSize int, strict bool) (ast.Node, error) {
	res, err := scanner.Scan(source, indentSize, strict)
	if err != nil {
		return nil, err
	}
	if len(res.Lines) == 0 {
		return ast.NewObject(), nil
	}

	st := &decodeState{cur: scanner.NewCursor(res.Lines), blanks: res.Blanks, indentSize: indentSize, strict: strict}

	first, _ := st.cur.Peek()
	h, ok, perr := parser.ParseArrayHeaderLine(first.Content, token.DelimiterComma)
	if perr != nil {
		return nil, st.syntaxErr(first, perr)
	}
	if ok && !h.HasKey {
		st.cur.Advance()
		return st.decodeArrayBody(h, first.Depth+1, first)
	}

	if len(res.Lines) == 1 {
		_, _, _, kvOK, _ := parser.ParseKeyToken(first.Content, 0)
		if !kvOK {
			v, perr2 := parser.ParsePrimitiveToken(first.Content)
			if perr2 != nil {
				return nil, st.syntaxErr(first, perr2)
			}
			return v, nil
		}
	}

	return st.decodeMapping(0)
}

// decodeMapping decodes a mapping whose fields begin at depth >= minDepth
// (spec.md §4.7 "Mapping decode at depth D").
func (st *decodeState) decodeMapping(minDepth int) (*ast.Object, error) {
	obj := ast.NewObject()
	if err := st.fillMapping(obj, minDepth); err != nil {
		return nil, err
	}
	return obj, nil
}

func (st *decodeState) fillMapping(obj *ast.Object, minDepth int) error {
	first, ok := st.cur.Peek()
	if !ok || first.Depth < minDepth {
		return nil
	}
	depth := first.Depth

	for {
		line, ok := st.cur.Peek()
		if !ok || line.Depth != depth {
			break
		}
		if isListItemLine(line.Content) {
			break
		}

		h, headerOK, perr := parser.ParseArrayHeaderLine(line.Content, token.DelimiterComma)
		if perr != nil {
			return st.syntaxErr(line, perr)
		}
		if headerOK {
			st.cur.Advance()
			arr, err := st.decodeArrayBody(h, depth+1, line)
			if err != nil {
				return err
			}
			obj.Set(h.Key, h.KeyQuoted, arr)
			continue
		}

		key, end, quoted, kvOK, kerr := parser.ParseKeyToken(line.Content, 0)
		if kerr != nil {
			return st.syntaxErr(line, kerr)
		}
		if !kvOK {
			return errors.ErrSyntax("expected a key/value pair or array header", line.LineNumber, 1, line.Raw)
		}
		st.cur.Advance()

		tail := strings.TrimSpace(line.Content[end:])
		if tail == "" {
			if next, ok := st.cur.Peek(); ok && next.Depth > depth {
				child, err := st.decodeMapping(depth + 1)
				if err != nil {
					return err
				}
				obj.Set(key, quoted, child)
			} else {
				obj.Set(key, quoted, ast.NewObject())
			}
			continue
		}

		v, verr := parser.ParsePrimitiveToken(tail)
		if verr != nil {
			return st.syntaxErr(line, verr)
		}
		obj.Set(key, quoted, v)
	}
	return nil
}

// decodeArrayBody dispatches on the recognized header shape: inline
// primitive, tabular, or list (spec.md §4.7 "Array decode"). bodyDepth is
// the depth at which the array's body lines (rows/items) are expected;
// callers compute it, since it is +1 in the ordinary case and +2 for the
// list-item-first-field special case (spec.md §4.7, "SPEC v3.0 §10").
func (st *decodeState) decodeArrayBody(h *parser.ArrayHeader, bodyDepth int, headerLine scanner.ParsedLine) (*ast.Array, error) {
	if err := validateHeaderFieldDelimiterConsistency(st.strict, h, headerLine); err != nil {
		return nil, err
	}
	switch {
	case h.Tail != "":
		return st.decodeInlineArray(h, headerLine)
	case h.Fields != nil:
		return st.decodeTabularArray(h, bodyDepth, headerLine)
	default:
		return st.decodeListArray(h, bodyDepth, headerLine)
	}
}

func (st *decodeState) decodeInlineArray(h *parser.ArrayHeader, headerLine scanner.ParsedLine) (*ast.Array, error) {
	parts := parser.ParseDelimitedValues(h.Tail, h.Delimiter)
	items := make([]ast.Node, 0, len(parts))
	for _, p := range parts {
		v, err := parser.ParsePrimitiveToken(p)
		if err != nil {
			return nil, st.syntaxErr(headerLine, err)
		}
		items = append(items, v)
	}
	if err := assertExpectedCount(st.strict, len(items), h.Length, "array", headerLine); err != nil {
		return nil, err
	}
	return &ast.Array{Items: items}, nil
}

func (st *decodeState) decodeTabularArray(h *parser.ArrayHeader, bodyDepth int, headerLine scanner.ParsedLine) (*ast.Array, error) {
	items := make([]ast.Node, 0, h.Length)
	lastLine := headerLine.LineNumber

	for {
		line, ok := st.cur.Peek()
		if !ok || line.Depth != bodyDepth || isListItemLine(line.Content) {
			break
		}
		if len(items) >= h.Length {
			if err := validateNoExtraTabularRow(st.strict, line, h.Delimiter); err != nil {
				return nil, err
			}
			break
		}

		fields := parser.ParseDelimitedValues(line.Content, h.Delimiter)
		if err := assertExpectedCount(st.strict, len(fields), len(h.Fields), "tabular row", line); err != nil {
			return nil, err
		}
		row := ast.NewObject()
		n := len(h.Fields)
		if len(fields) < n {
			n = len(fields)
		}
		for i := 0; i < n; i++ {
			v, err := parser.ParsePrimitiveToken(fields[i])
			if err != nil {
				return nil, st.syntaxErr(line, err)
			}
			row.Set(h.Fields[i], h.FieldsQuoted[i], v)
		}
		items = append(items, row)
		lastLine = line.LineNumber
		st.cur.Advance()
	}

	if err := assertExpectedCount(st.strict, len(items), h.Length, "array", headerLine); err != nil {
		return nil, err
	}
	if err := validateNoBlankLinesInRange(st.strict, st.blanks, headerLine.LineNumber, lastLine); err != nil {
		return nil, err
	}
	return &ast.Array{Items: items}, nil
}

func (st *decodeState) decodeListArray(h *parser.ArrayHeader, bodyDepth int, headerLine scanner.ParsedLine) (*ast.Array, error) {
	items := make([]ast.Node, 0, h.Length)
	lastLine := headerLine.LineNumber

	for {
		line, ok := st.cur.Peek()
		if !ok || line.Depth != bodyDepth || !isListItemLine(line.Content) {
			break
		}
		if len(items) >= h.Length {
			if err := validateNoExtraListItem(st.strict, line); err != nil {
				return nil, err
			}
			break
		}

		st.cur.Advance()
		lastLine = line.LineNumber
		if line.Content == "-" {
			items = append(items, ast.NewObject())
			continue
		}
		item, err := st.decodeListItem(line.Content[2:], line)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		if pos := st.cur.Pos(); pos > 0 {
			if consumed, ok := st.cur.LineAt(pos - 1); ok {
				lastLine = consumed.LineNumber
			}
		}
	}

	if err := assertExpectedCount(st.strict, len(items), h.Length, "array", headerLine); err != nil {
		return nil, err
	}
	if err := validateNoBlankLinesInRange(st.strict, st.blanks, headerLine.LineNumber, lastLine); err != nil {
		return nil, err
	}
	return &ast.Array{Items: items}, nil
}

// decodeListItem decodes the content following "- " on a list item line
// (spec.md §4.7 "List form" and the §10 special case). hyphenLine is the
// full list-item line, used for error locations and depth accounting.
func (st *decodeState) decodeListItem(rest string, hyphenLine scanner.ParsedLine) (ast.Node, error) {
	hyphenDepth := hyphenLine.Depth
	h, ok, perr := parser.ParseArrayHeaderLine(rest, token.DelimiterComma)
	if perr != nil {
		return nil, st.syntaxErr(hyphenLine, perr)
	}
	if ok {
		synthetic := hyphenLine
		synthetic.Content = rest
		arr, err := st.decodeArrayBody(h, hyphenDepth+2, synthetic)
		if err != nil {
			return nil, err
		}
		if !h.HasKey {
			return arr, nil
		}
		obj := ast.NewObject()
		obj.Set(h.Key, h.KeyQuoted, arr)
		if err := st.fillMappingFrom(obj, hyphenDepth+1); err != nil {
			return nil, err
		}
		return obj, nil
	}

	key, end, quoted, kvOK, kerr := parser.ParseKeyToken(rest, 0)
	if kerr != nil {
		return nil, st.syntaxErr(hyphenLine, kerr)
	}
	if !kvOK {
		v, verr := parser.ParsePrimitiveToken(rest)
		if verr != nil {
			return nil, st.syntaxErr(hyphenLine, verr)
		}
		return v, nil
	}

	obj := ast.NewObject()
	tail := strings.TrimSpace(rest[end:])
	if tail == "" {
		if next, ok := st.cur.Peek(); ok && next.Depth > hyphenDepth {
			child, err := st.decodeMapping(hyphenDepth + 1)
			if err != nil {
				return nil, err
			}
			obj.Set(key, quoted, child)
		} else {
			obj.Set(key, quoted, ast.NewObject())
		}
	} else {
		v, verr := parser.ParsePrimitiveToken(tail)
		if verr != nil {
			return nil, st.syntaxErr(hyphenLine, verr)
		}
		obj.Set(key, quoted, v)
	}

	if err := st.fillMappingFrom(obj, hyphenDepth+1); err != nil {
		return nil, err
	}
	return obj, nil
}

// fillMappingFrom appends sibling key/value fields at exactly depth into
// an already partially-built object (used for a list item's trailing
// fields after its first field was special-cased).
func (st *decodeState) fillMappingFrom(obj *ast.Object, depth int) error {
	for {
		line, ok := st.cur.Peek()
		if !ok || line.Depth != depth || isListItemLine(line.Content) {
			return nil
		}

		h, headerOK, perr := parser.ParseArrayHeaderLine(line.Content, token.DelimiterComma)
		if perr != nil {
			return st.syntaxErr(line, perr)
		}
		if headerOK {
			st.cur.Advance()
			arr, err := st.decodeArrayBody(h, depth+1, line)
			if err != nil {
				return err
			}
			obj.Set(h.Key, h.KeyQuoted, arr)
			continue
		}

		key, end, quoted, kvOK, kerr := parser.ParseKeyToken(line.Content, 0)
		if kerr != nil {
			return st.syntaxErr(line, kerr)
		}
		if !kvOK {
			return errors.ErrSyntax("expected a key/value pair or array header", line.LineNumber, 1, line.Raw)
		}
		st.cur.Advance()

		tail := strings.TrimSpace(line.Content[end:])
		if tail == "" {
			if next, ok := st.cur.Peek(); ok && next.Depth > depth {
				child, err := st.decodeMapping(depth + 1)
				if err != nil {
					return err
				}
				obj.Set(key, quoted, child)
			} else {
				obj.Set(key, quoted, ast.NewObject())
			}
			continue
		}

		v, verr := parser.ParsePrimitiveToken(tail)
		if verr != nil {
			return st.syntaxErr(line, verr)
		}
		obj.Set(key, quoted, v)
	}
}

func (st *decodeState) syntaxErr(line scanner.ParsedLine, err error) error {
	if e, ok := errors.As(err); ok {
		return e
	}
	return errors.ErrSyntax(err.Error(), line.LineNumber, 1, line.Raw)
}

// isListItemLine reports whether content is a list item marker (exactly
// "-", or starting with "- ").
func isListItemLine(content string) bool {
	return content == "-" || strings.HasPrefix(content, "- ")
}

// looksLikeDataRow reports whether content is shaped like a tabular data
// row rather than a key/value continuation line: it contains an unquoted
// delimiter, and that first delimiter appears before its first unquoted
// colon or there is no unquoted colon at all. A line with no unquoted
// delimiter is never treated as a data row (spec.md §4.8
// "validate_no_extra_tabular_rows").
func looksLikeDataRow(content string, delim token.Delimiter) bool {
	delimIdx := token.FindUnquotedChar(content, byte(delim.Rune()), 0)
	if delimIdx < 0 {
		return false
	}
	colonIdx := token.FindUnquotedChar(content, ':', 0)
	if colonIdx < 0 {
		return true
	}
	return delimIdx < colonIdx
}
