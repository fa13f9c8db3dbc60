package toon

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"time"

	"github.com/toon-go/toon/ast"
	"github.com/toon-go/toon/token"
)

// normalizeValue maps an arbitrary host value into the JSON-shaped tree
// (spec.md §4.9 "Normalizer"). It is the encoder's only entry point into
// reflection; once a value has been normalized, the rest of the encoder
// operates purely over ast.Node.
func normalizeValue(v interface{}) ast.Node {
	if v == nil {
		return ast.NewNull()
	}
	return normalizeReflect(reflect.ValueOf(v))
}

func normalizeReflect(v reflect.Value) ast.Node {
	if !v.IsValid() {
		return ast.NewNull()
	}

	switch v.Kind() {
	case reflect.Ptr, reflect.Interface:
		if v.IsNil() {
			return ast.NewNull()
		}
		return normalizeReflect(v.Elem())
	}

	if v.CanInterface() {
		if m, ok := v.Interface().(Marshaler); ok {
			return normalizeMarshaler(m)
		}
		if v.CanAddr() {
			if m, ok := v.Addr().Interface().(Marshaler); ok {
				return normalizeMarshaler(m)
			}
		}
		if t, ok := v.Interface().(time.Time); ok {
			return ast.NewString(t.Format(time.RFC3339Nano))
		}
	}

	switch v.Kind() {
	case reflect.Bool:
		return ast.NewBool(v.Bool())
	case reflect.String:
		return ast.NewString(v.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ast.NewInteger(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return ast.NewUnsignedInteger(v.Uint())
	case reflect.Float32, reflect.Float64:
		f := v.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return ast.NewNull()
		}
		return ast.NewNumber(token.NormalizeSignedZero(f))
	// Map is checked ahead of Slice/Array in this switch only because Go
	// groups them as distinct reflect.Kind values; spec.md §4.9's ordering
	// rule ("dictionaries are checked before iterables, since every
	// dictionary is iterable") is aimed at hosts where a mapping type is
	// also iterable (Python, JS). reflect.Kind already makes Map and
	// Slice/Array mutually exclusive, so no such check is needed here.
	case reflect.Map:
		return normalizeMap(v)
	case reflect.Struct:
		return normalizeStruct(v)
	case reflect.Slice, reflect.Array:
		return normalizeSlice(v)
	default:
		return ast.NewNull()
	}
}

// normalizeMarshaler runs a Marshaler hook and re-parses its canonical TOON
// bytes back into the tree, so the rest of the encoder still only ever
// walks ast.Node (grounded on the teacher's encode.go dispatch to
// yaml.Marshaler, adapted to TOON's own wire format instead of re-emitting
// arbitrary YAML).
func normalizeMarshaler(m Marshaler) ast.Node {
	data, err := m.MarshalTOON()
	if err != nil {
		return ast.NewNull()
	}
	tree, err := decodeTree(string(data), 2, false)
	if err != nil {
		return ast.NewNull()
	}
	return tree
}

// normalizeMap coerces a Go map's keys to strings and sorts them, giving
// deterministic output for a type with no defined iteration order
// (spec.md §5 requires the emitted output to be a pure function of the
// input value; the teacher's own encodeMap sorts map keys for the same
// reason).
func normalizeMap(v reflect.Value) *ast.Object {
	type entry struct {
		key string
		val reflect.Value
	}
	entries := make([]entry, 0, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		entries = append(entries, entry{key: fmt.Sprint(iter.Key().Interface()), val: iter.Value()})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].key < entries[j].key })

	obj := ast.NewObject()
	for _, e := range entries {
		obj.Set(e.key, false, normalizeReflect(e.val))
	}
	return obj
}

func normalizeSlice(v reflect.Value) *ast.Array {
	n := v.Len()
	items := make([]ast.Node, n)
	for i := 0; i < n; i++ {
		items[i] = normalizeReflect(v.Index(i))
	}
	return &ast.Array{Items: items}
}

// normalizeStruct maps a struct's exported fields (or its toon-tagged
// ones) into a mapping, honoring "omitempty" and "inline" exactly as
// struct.go's reflection bridge defines them for decode.
func normalizeStruct(v reflect.Value) *ast.Object {
	obj := ast.NewObject()
	structType := v.Type()
	fieldMap, err := structFieldMap(structType)
	if err != nil {
		return obj
	}
	for i := 0; i < v.NumField(); i++ {
		field := structType.Field(i)
		if isIgnoredStructField(field) {
			continue
		}
		fieldValue := v.Field(i)
		sf := fieldMap[field.Name]
		if sf.IsOmitEmpty && isOmittedByOmitEmptyTag(fieldValue) {
			continue
		}
		if sf.IsInline {
			inlineVal := fieldValue
			for inlineVal.Kind() == reflect.Ptr {
				if inlineVal.IsNil() {
					break
				}
				inlineVal = inlineVal.Elem()
			}
			if inlineVal.Kind() == reflect.Struct {
				inner := normalizeStruct(inlineVal)
				for _, f := range inner.Fields {
					obj.Set(f.Key, f.Quoted, f.Value)
				}
				continue
			}
			if inlineVal.Kind() == reflect.Map {
				inner := normalizeMap(inlineVal)
				for _, f := range inner.Fields {
					obj.Set(f.Key, f.Quoted, f.Value)
				}
				continue
			}
		}
		obj.Set(sf.RenderName, false, normalizeReflect(fieldValue))
	}
	return obj
}
