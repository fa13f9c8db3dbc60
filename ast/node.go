// Package ast holds the JSON-shaped value tree that is the common currency
// between the encoder and the decoder (spec.md §3 "Data model"). Every
// node is a tagged union over {Null, Bool, Number, String, Array, Object};
// objects preserve insertion order, matching the teacher's (goccy-go-yaml)
// choice to model a tree of concrete node types rather than a bare
// interface{}, but dropping everything the tree does not need: no anchors,
// aliases, tags, comments or token back-references.
package ast

import "fmt"

// Kind discriminates the six JSON-shaped value variants.
type Kind int

const (
	NullKind Kind = iota
	BoolKind
	NumberKind
	StringKind
	ArrayKind
	ObjectKind
)

func (k Kind) String() string {
	switch k {
	case NullKind:
		return "null"
	case BoolKind:
		return "bool"
	case NumberKind:
		return "number"
	case StringKind:
		return "string"
	case ArrayKind:
		return "array"
	case ObjectKind:
		return "object"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Position locates a node in source text, for error reporting. A node
// built programmatically (by the normalizer, ahead of encoding) carries a
// nil Position.
type Position struct {
	Line   int
	Column int
}

// Node is any of the six JSON-shaped value variants.
type Node interface {
	Kind() Kind
	Pos() *Position
}

// Null represents the JSON null value.
type Null struct {
	Position *Position
}

func (n *Null) Kind() Kind    { return NullKind }
func (n *Null) Pos() *Position { return n.Position }

// Bool represents a JSON boolean.
type Bool struct {
	Value    bool
	Position *Position
}

func (n *Bool) Kind() Kind    { return BoolKind }
func (n *Bool) Pos() *Position { return n.Position }

// Number represents a JSON number. TOON numbers are finite IEEE-754
// doubles, integers of at least 64-bit range, and arbitrary-precision
// decimals (spec.md §3). Value holds a float64 approximation, used for
// by-value comparisons (ast.Equal) and for assigning into a float
// destination; Literal, when non-empty, holds the exact decimal digits
// the number was built from (source text for a decoded integer, or the
// exact formatting of a Go int64/uint64 the Normalizer saw) and is
// authoritative for re-encoding, so an integer outside float64's
// 2^53 safe range still round-trips exactly instead of being rounded
// twice: once by strconv.ParseFloat on decode, and again by
// FormatNumber's float64 rendering on encode.
type Number struct {
	Value    float64
	Literal  string
	Position *Position
}

func (n *Number) Kind() Kind    { return NumberKind }
func (n *Number) Pos() *Position { return n.Position }

// String represents a JSON string. It does not record whether its source
// token was quoted; quoting of keys is tracked on Field.Quoted, which path
// expansion consults (spec.md §4.7 "Path expansion").
type String struct {
	Value    string
	Position *Position
}

func (n *String) Kind() Kind    { return StringKind }
func (n *String) Pos() *Position { return n.Position }

// Array represents a JSON array.
type Array struct {
	Items    []Node
	Position *Position
}

func (n *Array) Kind() Kind    { return ArrayKind }
func (n *Array) Pos() *Position { return n.Position }

// Field is one key/value pair of an Object, in emission/decode order.
type Field struct {
	Key    string
	Quoted bool // whether the key's source token was a quoted literal
	Value  Node
}

// Object is an insertion-ordered mapping from string key to Node. Decode
// preserves first-occurrence order; a later duplicate key overwrites the
// value of the earlier field in place rather than moving it to the end
// (spec.md §3 "Key ordering ... preserved on decode (first occurrence
// wins for duplicate keys"), combined with spec.md §4.7's last-write-wins
// value policy (see DESIGN.md "duplicate mapping keys")).
type Object struct {
	Fields   []*Field
	index    map[string]int
	Position *Position
}

func NewObject() *Object {
	return &Object{index: make(map[string]int)}
}

func (n *Object) Kind() Kind    { return ObjectKind }
func (n *Object) Pos() *Position { return n.Position }

// Len reports the number of fields.
func (n *Object) Len() int { return len(n.Fields) }

// IsEmpty reports whether the object has no fields.
func (n *Object) IsEmpty() bool { return len(n.Fields) == 0 }

// Get returns the value stored for key, and whether it was present.
func (n *Object) Get(key string) (Node, bool) {
	if n.index == nil {
		return nil, false
	}
	i, ok := n.index[key]
	if !ok {
		return nil, false
	}
	return n.Fields[i].Value, true
}

// Set inserts key/value, or overwrites the value of an existing field of
// the same key in place (last-write-wins, first-occurrence order kept).
func (n *Object) Set(key string, quoted bool, value Node) {
	if n.index == nil {
		n.index = make(map[string]int)
	}
	if i, ok := n.index[key]; ok {
		n.Fields[i].Value = value
		n.Fields[i].Quoted = quoted
		return
	}
	n.index[key] = len(n.Fields)
	n.Fields = append(n.Fields, &Field{Key: key, Quoted: quoted, Value: value})
}

// Append is like Set but assumes key is not already present; used by
// decode paths that have already established uniqueness is impossible
// (e.g. tabular rows built from a fixed header field list).
func (n *Object) Append(key string, quoted bool, value Node) {
	n.Set(key, quoted, value)
}

// Keys returns the object's keys in order.
func (n *Object) Keys() []string {
	keys := make([]string, len(n.Fields))
	for i, f := range n.Fields {
		keys[i] = f.Key
	}
	return keys
}
