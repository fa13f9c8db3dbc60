//go:build !tinygo

package toon

import (
	"reflect"
)

func convertibleTo(src reflect.Value, typ reflect.Type) bool {
	return src.Type().ConvertibleTo(typ)
}
