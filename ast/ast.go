package ast

import (
	"strconv"

	"github.com/toon-go/toon/token"
)

// numberLiteral returns n's canonical decimal text: its Literal if set,
// otherwise its float64 value formatted the same way the encoder would.
func numberLiteral(n *Number) string {
	if n.Literal != "" {
		return n.Literal
	}
	return token.FormatNumber(n.Value)
}

// Constructors for programmatically-built nodes (used by the normalizer
// and by tests); all have a nil Position since they do not originate from
// source text.

func NewNull() *Null              { return &Null{} }
func NewBool(v bool) *Bool        { return &Bool{Value: v} }
func NewNumber(v float64) *Number { return &Number{Value: v} }
func NewString(v string) *String  { return &String{Value: v} }

// NewInteger constructs a Number from an exact int64, keeping its precise
// decimal digits (strconv.FormatInt) as Literal rather than routing the
// value through a lossy float64 conversion first.
func NewInteger(v int64) *Number {
	return &Number{Value: float64(v), Literal: strconv.FormatInt(v, 10)}
}

// NewUnsignedInteger is NewInteger for uint64, whose range exceeds what
// int64 (and therefore float64) can hold exactly.
func NewUnsignedInteger(v uint64) *Number {
	return &Number{Value: float64(v), Literal: strconv.FormatUint(v, 10)}
}

// NewIntegerLiteral constructs a Number from source text already known to
// be integer-shaped (token.IsIntegerLiteral), preserving it verbatim. A
// value of exactly zero drops the literal, since "-0" canonicalizes to
// "0" (spec.md §3 "Signed zero normalizes to positive zero") and plain
// "0" already round-trips correctly through Value alone.
func NewIntegerLiteral(text string, value float64) *Number {
	if value == 0 {
		return &Number{Value: 0}
	}
	return &Number{Value: value, Literal: text}
}

func NewArray(items ...Node) *Array {
	return &Array{Items: items}
}

// Equal reports whether a and b represent the same JSON-shaped value.
// Numbers compare by value (spec.md P1 "numbers compared by value");
// object field order matters, duplicate handling has already been
// resolved by the time a tree exists so no special casing is needed here.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case *Null:
		return true
	case *Bool:
		return av.Value == b.(*Bool).Value
	case *Number:
		bv := b.(*Number)
		if av.Literal != "" || bv.Literal != "" {
			return numberLiteral(av) == numberLiteral(bv)
		}
		return av.Value == bv.Value
	case *String:
		return av.Value == b.(*String).Value
	case *Array:
		bv := b.(*Array)
		if len(av.Items) != len(bv.Items) {
			return false
		}
		for i := range av.Items {
			if !Equal(av.Items[i], bv.Items[i]) {
				return false
			}
		}
		return true
	case *Object:
		bv := b.(*Object)
		if len(av.Fields) != len(bv.Fields) {
			return false
		}
		for i := range av.Fields {
			if av.Fields[i].Key != bv.Fields[i].Key {
				return false
			}
			if !Equal(av.Fields[i].Value, bv.Fields[i].Value) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// IsPrimitive reports whether n is Null, Bool, Number or String.
func IsPrimitive(n Node) bool {
	switch n.(type) {
	case *Null, *Bool, *Number, *String:
		return true
	default:
		return false
	}
}
