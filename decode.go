package toon

import (
	"fmt"
	"io"
	"reflect"
	"strconv"
	"time"

	"github.com/toon-go/toon/ast"
)

// Unmarshaler may be implemented by a type to customize its own decoding.
// The bytes passed are the canonical TOON rendering of the subtree that
// was about to be assigned into it (grounded on the teacher's
// BytesUnmarshaler hook in decode.go, simplified to one interface since
// TOON has no streaming-callback variant).
type Unmarshaler interface {
	UnmarshalTOON([]byte) error
}

// Decoder reads and decodes a TOON document from an input stream.
type Decoder struct {
	r           io.Reader
	indent      int
	strict      bool
	expandPaths PathExpansion
}

// NewDecoder returns a new Decoder reading from r, with spec.md §6
// DecodeOptions defaults (indent=2, strict=true, expand_paths=Off).
func NewDecoder(r io.Reader, opts ...DecodeOption) *Decoder {
	d := &Decoder{r: r, indent: 2, strict: true, expandPaths: PathExpansionOff}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Decode reads the next TOON-encoded document from its input and stores it
// in the value pointed to by v.
func (d *Decoder) Decode(v interface{}) error {
	data, err := io.ReadAll(d.r)
	if err != nil {
		return err
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("toon: Decode requires a non-nil pointer")
	}
	tree, err := decodeTree(string(data), d.indent, d.strict)
	if err != nil {
		return err
	}
	if d.expandPaths == PathExpansionSafe {
		tree, err = expandPaths(tree, d.strict)
		if err != nil {
			return err
		}
	}
	return decodeValue(rv.Elem(), tree)
}

type typeError struct {
	dstType reflect.Type
	srcType reflect.Type
}

func (e *typeError) Error() string {
	return fmt.Sprintf("cannot unmarshal %s into Go value of type %s", e.srcType, e.dstType)
}

func errTypeMismatch(dstType reflect.Type, src ast.Node) *typeError {
	return &typeError{dstType: dstType, srcType: reflect.TypeOf(src)}
}

type overflowError struct {
	dstType reflect.Type
	srcNum  string
}

func (e *overflowError) Error() string {
	return fmt.Sprintf("cannot unmarshal %s into Go value of type %s (overflow)", e.srcNum, e.dstType)
}

func errOverflow(dstType reflect.Type, num string) *overflowError {
	return &overflowError{dstType: dstType, srcNum: num}
}

// nodeToInterface converts a decoded node into a plain interface{} tree,
// used for assignment into interface{}-typed destinations and as the
// source value for convertValue (teacher's decode.go "nodeToValue").
func nodeToInterface(n ast.Node) interface{} {
	switch v := n.(type) {
	case *ast.Null:
		return nil
	case *ast.Bool:
		return v.Value
	case *ast.Number:
		if v.Literal != "" {
			if i, err := strconv.ParseInt(v.Literal, 10, 64); err == nil {
				return i
			}
			if u, err := strconv.ParseUint(v.Literal, 10, 64); err == nil {
				return u
			}
		}
		return v.Value
	case *ast.String:
		return v.Value
	case *ast.Array:
		out := make([]interface{}, len(v.Items))
		for i, it := range v.Items {
			out[i] = nodeToInterface(it)
		}
		return out
	case *ast.Object:
		out := make(map[string]interface{}, v.Len())
		for _, f := range v.Fields {
			out[f.Key] = nodeToInterface(f.Value)
		}
		return out
	default:
		return nil
	}
}

// convertValue coerces v to typ, special-casing numeric/bool-to-string
// conversion the way encoding packages commonly do, and otherwise falling
// back to reflect's own convertibility (via the tinygo-portable
// convertibleTo helper in conv_go.go/conv_tinygo.go, grounded on the
// teacher's decode.go "convertValue" but routed through that package-level
// helper instead of calling v.Type().ConvertibleTo directly).
func convertValue(v reflect.Value, typ reflect.Type) (reflect.Value, error) {
	if typ.Kind() == reflect.String {
		switch v.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return reflect.ValueOf(fmt.Sprint(v.Int())).Convert(typ), nil
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			return reflect.ValueOf(fmt.Sprint(v.Uint())).Convert(typ), nil
		case reflect.Float32, reflect.Float64:
			return reflect.ValueOf(fmt.Sprint(v.Float())).Convert(typ), nil
		case reflect.Bool:
			return reflect.ValueOf(fmt.Sprint(v.Bool())).Convert(typ), nil
		}
	}
	if !convertibleTo(v, typ) {
		return reflect.Zero(typ), &typeError{dstType: typ, srcType: v.Type()}
	}
	return v.Convert(typ), nil
}

// decodeValue assigns src into dst, dispatching on dst's kind (spec.md §6
// Go binding, grounded on the teacher's decode.go "decodeValue").
func decodeValue(dst reflect.Value, src ast.Node) error {
	if dst.CanAddr() {
		if u, ok := dst.Addr().Interface().(Unmarshaler); ok {
			return u.UnmarshalTOON([]byte(encodeValue(src, defaultEncodeOptions())))
		}
	}

	switch dst.Kind() {
	case reflect.Ptr:
		if _, isNull := src.(*ast.Null); isNull {
			dst.Set(reflect.Zero(dst.Type()))
			return nil
		}
		if dst.IsNil() {
			dst.Set(reflect.New(dst.Type().Elem()))
		}
		return decodeValue(dst.Elem(), src)
	case reflect.Interface:
		v := reflect.ValueOf(nodeToInterface(src))
		if v.IsValid() {
			dst.Set(v)
		}
		return nil
	case reflect.Map:
		return decodeMap(dst, src)
	case reflect.Slice:
		return decodeSlice(dst, src)
	case reflect.Array:
		return decodeArray(dst, src)
	case reflect.Struct:
		if _, ok := dst.Addr().Interface().(*time.Time); ok {
			return decodeTimeValue(dst, src)
		}
		return decodeStruct(dst, src)
	case reflect.Bool:
		b, ok := src.(*ast.Bool)
		if !ok {
			return errTypeMismatch(dst.Type(), src)
		}
		dst.SetBool(b.Value)
		return nil
	case reflect.String:
		if s, ok := src.(*ast.String); ok {
			dst.SetString(s.Value)
			return nil
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		num, ok := src.(*ast.Number)
		if !ok {
			return errTypeMismatch(dst.Type(), src)
		}
		i, err := numberInt64(num)
		if err != nil {
			return errOverflow(dst.Type(), numberText(num))
		}
		if dst.OverflowInt(i) {
			return errOverflow(dst.Type(), numberText(num))
		}
		dst.SetInt(i)
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		num, ok := src.(*ast.Number)
		if !ok || num.Value < 0 {
			return errTypeMismatch(dst.Type(), src)
		}
		u, err := numberUint64(num)
		if err != nil {
			return errOverflow(dst.Type(), numberText(num))
		}
		if dst.OverflowUint(u) {
			return errOverflow(dst.Type(), numberText(num))
		}
		dst.SetUint(u)
		return nil
	case reflect.Float32, reflect.Float64:
		num, ok := src.(*ast.Number)
		if !ok {
			return errTypeMismatch(dst.Type(), src)
		}
		dst.SetFloat(num.Value)
		return nil
	}

	v := reflect.ValueOf(nodeToInterface(src))
	if !v.IsValid() {
		return nil
	}
	converted, err := convertValue(v, dst.Type())
	if err != nil {
		return err
	}
	dst.Set(converted)
	return nil
}

// numberText renders num the same way it would appear in source, for use
// in error messages: its exact Literal when the decoder kept one,
// otherwise its float64 value.
func numberText(num *ast.Number) string {
	if num.Literal != "" {
		return num.Literal
	}
	return fmt.Sprint(num.Value)
}

// numberInt64 and numberUint64 prefer num.Literal (the exact source
// digits) over num.Value (a float64 approximation) so that values near
// or beyond float64's 2^53 safe-integer range still decode exactly into
// a Go int64/uint64 field instead of picking up rounding error twice.
func numberInt64(num *ast.Number) (int64, error) {
	if num.Literal != "" {
		return strconv.ParseInt(num.Literal, 10, 64)
	}
	return int64(num.Value), nil
}

func numberUint64(num *ast.Number) (uint64, error) {
	if num.Literal != "" {
		return strconv.ParseUint(num.Literal, 10, 64)
	}
	return uint64(num.Value), nil
}

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func decodeTimeValue(dst reflect.Value, src ast.Node) error {
	if _, isNull := src.(*ast.Null); isNull {
		return nil
	}
	s, ok := src.(*ast.String)
	if !ok {
		return errTypeMismatch(dst.Type(), src)
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s.Value); err == nil {
			dst.Set(reflect.ValueOf(t))
			return nil
		}
	}
	return errTypeMismatch(dst.Type(), src)
}

func decodeStruct(dst reflect.Value, src ast.Node) error {
	if _, isNull := src.(*ast.Null); isNull {
		return nil
	}
	obj, ok := src.(*ast.Object)
	if !ok {
		return errTypeMismatch(dst.Type(), src)
	}
	structType := dst.Type()
	fieldMap, err := structFieldMap(structType)
	if err != nil {
		return err
	}
	var firstErr error
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		if isIgnoredStructField(field) {
			continue
		}
		sf := fieldMap[field.Name]
		fieldValue := dst.Field(i)
		if sf.IsInline {
			if err := decodeValue(fieldValue, src); err != nil && firstErr == nil {
				firstErr = err
			}
			continue
		}
		v, exists := obj.Get(sf.RenderName)
		if !exists {
			continue
		}
		if err := decodeValue(fieldValue, v); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func decodeMap(dst reflect.Value, src ast.Node) error {
	if _, isNull := src.(*ast.Null); isNull {
		return nil
	}
	obj, ok := src.(*ast.Object)
	if !ok {
		return errTypeMismatch(dst.Type(), src)
	}
	mapType := dst.Type()
	mapValue := reflect.MakeMapWithSize(mapType, obj.Len())
	keyType := mapType.Key()
	valType := mapType.Elem()

	var firstErr error
	for _, f := range obj.Fields {
		k := reflect.ValueOf(f.Key)
		if keyType.Kind() != reflect.String {
			converted, err := convertValue(k, keyType)
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				continue
			}
			k = converted
		} else if keyType != k.Type() {
			k = k.Convert(keyType)
		}
		elem := reflect.New(valType).Elem()
		if err := decodeValue(elem, f.Value); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		mapValue.SetMapIndex(k, elem)
	}
	dst.Set(mapValue)
	return firstErr
}

func decodeSlice(dst reflect.Value, src ast.Node) error {
	if _, isNull := src.(*ast.Null); isNull {
		return nil
	}
	arr, ok := src.(*ast.Array)
	if !ok {
		return errTypeMismatch(dst.Type(), src)
	}
	sliceType := dst.Type()
	out := reflect.MakeSlice(sliceType, len(arr.Items), len(arr.Items))
	var firstErr error
	for i, it := range arr.Items {
		if err := decodeValue(out.Index(i), it); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	dst.Set(out)
	return firstErr
}

func decodeArray(dst reflect.Value, src ast.Node) error {
	if _, isNull := src.(*ast.Null); isNull {
		return nil
	}
	arr, ok := src.(*ast.Array)
	if !ok {
		return errTypeMismatch(dst.Type(), src)
	}
	n := dst.Type().Len()
	var firstErr error
	for i := 0; i < n && i < len(arr.Items); i++ {
		if err := decodeValue(dst.Index(i), arr.Items[i]); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
