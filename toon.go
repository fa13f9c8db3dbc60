package toon

import (
	"bytes"
	"fmt"
	"io"
)

// Marshaler may be implemented by a type to customize its own encoding.
// The returned bytes must themselves be valid TOON; they are re-parsed and
// spliced into the tree at the point the value would otherwise have been
// normalized.
type Marshaler interface {
	MarshalTOON() ([]byte, error)
}

// Encoder writes a TOON-encoded document to an output stream.
type Encoder struct {
	w    io.Writer
	opts encodeOptions
}

// NewEncoder returns a new Encoder writing to w, with spec.md §6
// EncodeOptions defaults (indent=2, delimiter=Comma, key_folding=Off,
// flatten_depth=Unbounded).
func NewEncoder(w io.Writer, opts ...EncodeOption) *Encoder {
	e := &Encoder{w: w, opts: defaultEncodeOptions()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Encode normalizes v (spec.md §4.9) and writes its TOON rendering to the
// Encoder's stream. The written bytes carry no trailing newline (spec.md
// I5, §6); a caller streaming several documents to the same Writer is
// responsible for any separator it wants between them.
func (e *Encoder) Encode(v interface{}) error {
	tree := normalizeValue(v)
	out := encodeValue(tree, e.opts)
	_, err := io.WriteString(e.w, out)
	return err
}

// Marshal returns the TOON encoding of v (spec.md §6 Core API).
//
// Struct fields are marshaled using the field name lowercased as the
// default key. Custom keys may be set via the "toon" tag: the content
// before the first comma is the key, the following comma-separated flags
// tune the marshaling process.
//
// The field tag format is:
//
//	`(...) toon:"[<key>][,<flag1>[,<flag2>]]" (...)`
//
// Supported flags:
//
//	omitempty    Only include the field if it is not the zero value for
//	             its type, or an empty slice/map/array. A struct field
//	             implementing IsZeroer is omitted when IsZero returns
//	             true instead of using the default zero-value check.
//
//	inline       Inline the field, which must be a struct or a map,
//	             folding its fields/keys into the enclosing mapping.
//
// A key of "-" causes the field to be ignored.
func Marshal(v interface{}, opts ...EncodeOption) ([]byte, error) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf, opts...)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("toon: marshal: %w", err)
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes the TOON document in data into v, which must be a
// non-nil pointer (spec.md §6 Core API).
//
// Struct fields are populated using the field name lowercased as the
// default key, or the key named in a "toon" tag. See Marshal for the tag
// format.
func Unmarshal(data []byte, v interface{}, opts ...DecodeOption) error {
	dec := NewDecoder(bytes.NewReader(data), opts...)
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("toon: unmarshal: %w", err)
	}
	return nil
}
