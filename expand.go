package toon

import (
	"fmt"
	"strings"

	"github.com/toon-go/toon/ast"
	"github.com/toon-go/toon/errors"
	"github.com/toon-go/toon/token"
)

// expandPaths is spec.md §4.7 "Path expansion (optional, post-pass)": it
// walks the decoded tree and, for every mapping key that contains a dot,
// whose every dot-separated segment satisfies is_identifier_segment, and
// that was not written as a quoted key in the source, splits the key and
// merges its value at the corresponding nested path.
func expandPaths(n ast.Node, strict bool) (ast.Node, error) {
	switch v := n.(type) {
	case *ast.Object:
		return expandObject(v, strict)
	case *ast.Array:
		for i, it := range v.Items {
			ev, err := expandPaths(it, strict)
			if err != nil {
				return nil, err
			}
			v.Items[i] = ev
		}
		return v, nil
	default:
		return n, nil
	}
}

func expandObject(obj *ast.Object, strict bool) (*ast.Object, error) {
	result := ast.NewObject()
	for _, f := range obj.Fields {
		childVal, err := expandPaths(f.Value, strict)
		if err != nil {
			return nil, err
		}
		segs := pathSegments(f.Key, f.Quoted)
		if err := assignPath(result, segs, f.Quoted, childVal, strict); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// pathSegments splits key on '.' when it is eligible for expansion: not a
// quoted key, contains at least one dot, and every segment is a valid
// identifier segment. Ineligible keys expand to a single segment (the key
// itself), i.e. they are left alone.
func pathSegments(key string, quoted bool) []string {
	if quoted || !strings.Contains(key, ".") {
		return []string{key}
	}
	segs := strings.Split(key, ".")
	for _, s := range segs {
		if !token.IsIdentifierSegment(s) {
			return []string{key}
		}
	}
	return segs
}

// assignPath walks intermediate segments (the "Traversal" rule), creating
// or descending into nested mappings, then assigns value at the leaf (the
// "Assignment" rule).
func assignPath(obj *ast.Object, segs []string, quoted bool, value ast.Node, strict bool) error {
	if len(segs) == 1 {
		return assignLeaf(obj, segs[0], quoted, value, strict)
	}
	head := segs[0]
	var child *ast.Object
	if existing, ok := obj.Get(head); ok {
		if childObj, isObj := existing.(*ast.Object); isObj {
			child = childObj
		} else if strict {
			return errors.ErrPathExpansion(fmt.Sprintf("expected object at %q, found %s", head, existing.Kind()))
		} else {
			child = ast.NewObject()
			obj.Set(head, false, child)
		}
	} else {
		child = ast.NewObject()
		obj.Set(head, false, child)
	}
	return assignPath(child, segs[1:], quoted, value, strict)
}

// assignLeaf is spec.md §4.7 "Assignment": if the leaf key already exists
// and both the existing and new values are mappings, they are deep-merged;
// an incompatible-type collision is a strict error or a last-write-wins
// overwrite.
func assignLeaf(obj *ast.Object, key string, quoted bool, value ast.Node, strict bool) error {
	existing, ok := obj.Get(key)
	if !ok {
		obj.Set(key, quoted, value)
		return nil
	}
	existingObj, existingIsObj := existing.(*ast.Object)
	valueObj, valueIsObj := value.(*ast.Object)
	if existingIsObj && valueIsObj {
		return deepMerge(existingObj, valueObj, strict)
	}
	if strict {
		return errors.ErrPathExpansion(fmt.Sprintf("conflicting value at %q", key))
	}
	obj.Set(key, quoted, value)
	return nil
}

// deepMerge folds src's fields into dst in place, recursively merging
// nested mappings and otherwise applying last-write-wins (or raising in
// strict mode), mirroring assignLeaf's own collision policy.
func deepMerge(dst, src *ast.Object, strict bool) error {
	for _, f := range src.Fields {
		if err := assignLeaf(dst, f.Key, f.Quoted, f.Value, strict); err != nil {
			return err
		}
	}
	return nil
}
