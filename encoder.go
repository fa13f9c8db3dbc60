package toon

import (
	"strconv"
	"strings"

	"github.com/toon-go/toon/ast"
	"github.com/toon-go/toon/token"
)

// KeyFolding selects whether encode_object tries to collapse single-key
// object chains into dotted-path lines (spec.md §4.12).
type KeyFolding int

const (
	KeyFoldingOff KeyFolding = iota
	KeyFoldingSafe
)

// encodeOptions is the resolved form of the functional EncodeOption set
// (option.go), threaded through every encode_* call instead of re-read from
// a shared struct on every recursive step.
type encodeOptions struct {
	indent       int
	delimiter    token.Delimiter
	keyFolding   KeyFolding
	flattenDepth int // -1 means unbounded
}

// defaultEncodeOptions mirrors the EncodeOptions defaults in spec.md §6,
// used where a subtree needs re-rendering outside of a caller-supplied
// Encoder (e.g. feeding an Unmarshaler hook its canonical bytes).
func defaultEncodeOptions() encodeOptions {
	return encodeOptions{indent: 2, delimiter: token.DelimiterComma, keyFolding: KeyFoldingOff, flattenDepth: Unbounded}
}

// encodeValue is spec.md §4.11 "encode_value": the single entry point that
// dispatches on the normalized tree's root shape.
func encodeValue(n ast.Node, opts encodeOptions) string {
	switch v := n.(type) {
	case *ast.Array:
		w := newLineWriter(opts.indent)
		encodeArray(w, "", false, v, 0, opts)
		return w.String()
	case *ast.Object:
		w := newLineWriter(opts.indent)
		encodeObject(w, v, 0, opts)
		return w.String()
	default:
		return renderPrimitive(n, opts.delimiter)
	}
}

// renderKey renders a mapping key (or array header field name) as its
// canonical token form, quoting it only when is_valid_unquoted_key rejects
// it unquoted (spec.md §4.2, I1).
func renderKey(s string) string {
	if token.IsValidUnquotedKey(s) {
		return s
	}
	return `"` + token.Escape(s) + `"`
}

// renderPrimitive renders a primitive node as its canonical token form
// under the active delimiter (spec.md §4.2).
func renderPrimitive(n ast.Node, delim token.Delimiter) string {
	switch v := n.(type) {
	case *ast.Null:
		return token.NullLiteral
	case *ast.Bool:
		if v.Value {
			return token.TrueLiteral
		}
		return token.FalseLiteral
	case *ast.Number:
		if v.Literal != "" {
			return v.Literal
		}
		return token.FormatNumber(v.Value)
	case *ast.String:
		if token.IsSafeUnquotedString(v.Value, delim) {
			return v.Value
		}
		return `"` + token.Escape(v.Value) + `"`
	default:
		return ""
	}
}

// joinTokens renders a slice of primitive nodes delimiter-separated.
func joinTokens(items []ast.Node, delim token.Delimiter) string {
	toks := make([]string, len(items))
	for i, it := range items {
		toks[i] = renderPrimitive(it, delim)
	}
	return strings.Join(toks, string(delim.Rune()))
}

// formatArrayHeader builds the `key?[len<suffix>]{fields}?:` header token,
// mirroring parser.ParseArrayHeaderLine in reverse.
func formatArrayHeader(hasKey bool, rawKey string, length int, delim token.Delimiter, fields []string) string {
	var b strings.Builder
	if hasKey {
		b.WriteString(renderKey(rawKey))
	}
	b.WriteByte('[')
	b.WriteString(strconv.Itoa(length))
	if suffix := delim.Suffix(); suffix != 0 {
		b.WriteRune(suffix)
	}
	b.WriteByte(']')
	if fields != nil {
		b.WriteByte('{')
		for i, f := range fields {
			if i > 0 {
				b.WriteRune(delim.Rune())
			}
			b.WriteString(renderKey(f))
		}
		b.WriteByte('}')
	}
	b.WriteByte(':')
	return b.String()
}

// allPrimitive reports whether every item is a primitive node.
func allPrimitive(items []ast.Node) bool {
	for _, it := range items {
		if !ast.IsPrimitive(it) {
			return false
		}
	}
	return true
}

// allArraysOfPrimitives reports whether every item is itself an array of
// only primitive elements.
func allArraysOfPrimitives(items []ast.Node) bool {
	if len(items) == 0 {
		return false
	}
	for _, it := range items {
		arr, ok := it.(*ast.Array)
		if !ok || !allPrimitive(arr.Items) {
			return false
		}
	}
	return true
}

// isUniformTabular reports whether every item is a mapping, all mappings
// share the same keys in the same order, and every value is a primitive
// (spec.md §4.11 "uniform tabular header").
func isUniformTabular(items []ast.Node) ([]string, bool) {
	if len(items) == 0 {
		return nil, false
	}
	first, ok := items[0].(*ast.Object)
	if !ok || first.IsEmpty() {
		return nil, false
	}
	keys := first.Keys()
	for _, it := range items {
		obj, ok := it.(*ast.Object)
		if !ok || obj.Len() != len(keys) {
			return nil, false
		}
		for i, k := range keys {
			if obj.Fields[i].Key != k || !ast.IsPrimitive(obj.Fields[i].Value) {
				return nil, false
			}
		}
	}
	return keys, true
}

// encodeObject is spec.md §4.11 "encode_object".
func encodeObject(w *lineWriter, obj *ast.Object, depth int, opts encodeOptions) {
	encodeObjectFields(w, obj.Fields, depth, opts)
}

func encodeObjectFields(w *lineWriter, fields []*ast.Field, depth int, opts encodeOptions) {
	used := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		used[f.Key] = struct{}{}
	}
	for _, f := range fields {
		if opts.keyFolding == KeyFoldingSafe {
			if segs, leaf, ok := tryFold(f.Key, f.Value, opts.flattenDepth); ok && isValidFoldChain(segs) {
				dotted := strings.Join(segs, ".")
				if _, collide := used[dotted]; !collide {
					used[dotted] = struct{}{}
					emitFolded(w, dotted, leaf, depth, opts, len(segs))
					continue
				}
			}
		}
		emitField(w, f.Key, f.Value, depth, opts)
	}
}

// emitField emits one ordinary (unfolded) key/value line or subtree.
func emitField(w *lineWriter, key string, value ast.Node, depth int, opts encodeOptions) {
	switch v := value.(type) {
	case *ast.Array:
		encodeArray(w, key, true, v, depth, opts)
	case *ast.Object:
		if v.IsEmpty() {
			w.push(depth, renderKey(key)+":")
		} else {
			w.push(depth, renderKey(key)+":")
			encodeObject(w, v, depth+1, opts)
		}
	default:
		w.push(depth, renderKey(key)+": "+renderPrimitive(value, opts.delimiter))
	}
}

// tryFold walks the single-key-mapping chain starting at value, collecting
// key segments, per spec.md §4.12. It always returns a segment slice and
// the node the chain terminated at; ok reports whether the chain descended
// at least once (segment count ≥ 2 is checked separately by the caller via
// isValidFoldChain, since the walk itself may legitimately stop at the
// first value without descending).
func tryFold(key string, value ast.Node, flattenDepth int) (segments []string, leaf ast.Node, ok bool) {
	segments = []string{key}
	current := value
	for {
		childObj, isObj := current.(*ast.Object)
		if !isObj || childObj.IsEmpty() {
			break
		}
		if childObj.Len() != 1 {
			break
		}
		if flattenDepth >= 0 && len(segments) >= flattenDepth {
			break
		}
		field := childObj.Fields[0]
		segments = append(segments, field.Key)
		current = field.Value
	}
	return segments, current, len(segments) > 1
}

func isValidFoldChain(segments []string) bool {
	if len(segments) < 2 {
		return false
	}
	for _, s := range segments {
		if !token.IsIdentifierSegment(s) {
			return false
		}
	}
	return true
}

// emitFolded emits the line(s) for a successfully folded chain.
func emitFolded(w *lineWriter, dotted string, leaf ast.Node, depth int, opts encodeOptions, segCount int) {
	switch v := leaf.(type) {
	case *ast.Array:
		encodeArray(w, dotted, true, v, depth, opts)
	case *ast.Object:
		if v.IsEmpty() {
			w.push(depth, dotted+":")
			return
		}
		w.push(depth, dotted+":")
		childOpts := opts
		if childOpts.flattenDepth >= 0 {
			childOpts.flattenDepth -= segCount
		}
		encodeObject(w, v, depth+1, childOpts)
	default:
		w.push(depth, dotted+": "+renderPrimitive(leaf, opts.delimiter))
	}
}

// encodeArray is spec.md §4.11 "encode_array".
func encodeArray(w *lineWriter, rawKey string, hasKey bool, arr *ast.Array, depth int, opts encodeOptions) {
	items := arr.Items

	if len(items) == 0 {
		w.push(depth, formatArrayHeader(hasKey, rawKey, 0, opts.delimiter, nil))
		return
	}

	if allPrimitive(items) {
		header := formatArrayHeader(hasKey, rawKey, len(items), opts.delimiter, nil)
		w.push(depth, header+" "+joinTokens(items, opts.delimiter))
		return
	}

	if allArraysOfPrimitives(items) {
		header := formatArrayHeader(hasKey, rawKey, len(items), opts.delimiter, nil)
		w.push(depth, header)
		for _, it := range items {
			sub := it.(*ast.Array)
			subHeader := formatArrayHeader(false, "", len(sub.Items), opts.delimiter, nil)
			w.pushListItem(depth+1, subHeader+" "+joinTokens(sub.Items, opts.delimiter))
		}
		return
	}

	if fields, ok := isUniformTabular(items); ok {
		header := formatArrayHeader(hasKey, rawKey, len(items), opts.delimiter, fields)
		w.push(depth, header)
		for _, it := range items {
			row := it.(*ast.Object)
			rowValues := make([]ast.Node, len(fields))
			for i := range fields {
				rowValues[i] = row.Fields[i].Value
			}
			w.push(depth+1, joinTokens(rowValues, opts.delimiter))
		}
		return
	}

	header := formatArrayHeader(hasKey, rawKey, len(items), opts.delimiter, nil)
	w.push(depth, header)
	for _, it := range items {
		encodeListItemValue(w, it, depth+1, opts)
	}
}

// encodeListItemValue emits one element of an expanded-form array as a
// list item (spec.md §4.11 "expanded form" bullets).
func encodeListItemValue(w *lineWriter, item ast.Node, depth int, opts encodeOptions) {
	switch v := item.(type) {
	case *ast.Object:
		encodeObjectAsListItem(w, v, depth, opts)
	case *ast.Array:
		if allPrimitive(v.Items) {
			header := formatArrayHeader(false, "", len(v.Items), opts.delimiter, nil)
			w.pushListItem(depth, header+" "+joinTokens(v.Items, opts.delimiter))
			return
		}
		// "other array element -> header as a list item, contents at depth+2"
		header := formatArrayHeader(false, "", len(v.Items), opts.delimiter, nil)
		w.pushListItem(depth, header)
		for _, sub := range v.Items {
			encodeListItemValue(w, sub, depth+2, opts)
		}
	default:
		w.pushListItem(depth, renderPrimitive(item, opts.delimiter))
	}
}

// encodeObjectAsListItem is spec.md §4.11 "Object as list item".
func encodeObjectAsListItem(w *lineWriter, obj *ast.Object, depth int, opts encodeOptions) {
	if obj.IsEmpty() {
		// Mirrors the decoder's lone "-" line, which decodes to an empty
		// mapping (decoder.go decodeListArray): no trailing space after
		// the hyphen.
		w.push(depth, "-")
		return
	}

	first := obj.Fields[0]
	rk := renderKey(first.Key)

	switch v := first.Value.(type) {
	case *ast.Array:
		switch {
		case len(v.Items) == 0:
			w.pushListItem(depth, formatArrayHeader(true, first.Key, 0, opts.delimiter, nil))
		case allPrimitive(v.Items):
			header := formatArrayHeader(true, first.Key, len(v.Items), opts.delimiter, nil)
			w.pushListItem(depth, header+" "+joinTokens(v.Items, opts.delimiter))
		default:
			if fields, ok := isUniformTabular(v.Items); ok {
				header := formatArrayHeader(true, first.Key, len(v.Items), opts.delimiter, fields)
				w.pushListItem(depth, header)
				for _, it := range v.Items {
					row := it.(*ast.Object)
					rowValues := make([]ast.Node, len(fields))
					for i := range fields {
						rowValues[i] = row.Fields[i].Value
					}
					w.push(depth+2, joinTokens(rowValues, opts.delimiter))
				}
			} else {
				header := formatArrayHeader(true, first.Key, len(v.Items), opts.delimiter, nil)
				w.pushListItem(depth, header)
				for _, it := range v.Items {
					encodeListItemValue(w, it, depth+2, opts)
				}
			}
		}
	case *ast.Object:
		if v.IsEmpty() {
			w.pushListItem(depth, rk+":")
		} else {
			w.pushListItem(depth, rk+":")
			encodeObject(w, v, depth+2, opts)
		}
	default:
		w.pushListItem(depth, rk+": "+renderPrimitive(first.Value, opts.delimiter))
	}

	encodeObjectFields(w, obj.Fields[1:], depth+1, opts)
}
