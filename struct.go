package toon

import (
	"reflect"
	"strings"

	"golang.org/x/xerrors"
)

// StructTagName is the struct tag key inspected by Marshal/Unmarshal
// (spec.md §6's Go binding: field.Name, lowercased, unless overridden).
const StructTagName = "toon"

// StructField is the decoded form of one struct field's toon tag,
// adapted from the teacher's StructField but with AnchorName/AliasName
// and their flags dropped: those are YAML reference-graph concepts that
// have no counterpart in TOON's tree-shaped data model.
type StructField struct {
	FieldName   string
	RenderName  string
	IsOmitEmpty bool
	IsInline    bool
}

func structField(field reflect.StructField) *StructField {
	tag := field.Tag.Get(StructTagName)
	fieldName := strings.ToLower(field.Name)
	options := strings.Split(tag, ",")
	if len(options) > 0 && options[0] != "" {
		fieldName = options[0]
	}
	sf := &StructField{
		FieldName:  field.Name,
		RenderName: fieldName,
	}
	for _, opt := range options[1:] {
		switch opt {
		case "omitempty":
			sf.IsOmitEmpty = true
		case "inline":
			sf.IsInline = true
		}
	}
	return sf
}

func isIgnoredStructField(field reflect.StructField) bool {
	if field.PkgPath != "" && !field.Anonymous {
		return true
	}
	return field.Tag.Get(StructTagName) == "-"
}

// StructFieldMap indexes a struct type's fields by Go field name.
type StructFieldMap map[string]*StructField

func (m StructFieldMap) isIncludedRenderName(name string) bool {
	for _, v := range m {
		if v.RenderName == name {
			return true
		}
	}
	return false
}

func structFieldMap(structType reflect.Type) (StructFieldMap, error) {
	fields := StructFieldMap{}
	renderNames := map[string]struct{}{}
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		if isIgnoredStructField(field) {
			continue
		}
		sf := structField(field)
		if _, exists := renderNames[sf.RenderName]; exists {
			return nil, xerrors.Errorf("duplicated struct field name %s", sf.RenderName)
		}
		fields[sf.FieldName] = sf
		renderNames[sf.RenderName] = struct{}{}
	}
	return fields, nil
}
