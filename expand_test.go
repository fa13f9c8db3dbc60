package toon

import "testing"

func TestExpandPathsStrictCollision(t *testing.T) {
	_, err := Unmarshal([]byte("a: 1\na.b: 2"), new(map[string]interface{}), WithExpandPaths(PathExpansionSafe))
	if err == nil {
		t.Fatal("expected a path-expansion error for a: 1 colliding with a.b: 2")
	}
}

func TestExpandPathsNonStrictOverwrite(t *testing.T) {
	var m map[string]interface{}
	err := Unmarshal([]byte("a: 1\na.b: 2"), &m, Strict(false), WithExpandPaths(PathExpansionSafe))
	if err != nil {
		t.Fatal(err)
	}
	inner, ok := m["a"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected a to become a nested mapping, got %#v", m["a"])
	}
	if inner["b"] != int64(2) {
		t.Fatalf("unexpected nested value: %#v", inner["b"])
	}
}

func TestExpandPathsMerge(t *testing.T) {
	var m map[string]interface{}
	err := Unmarshal([]byte("a.b: 1\na.c: 2"), &m, WithExpandPaths(PathExpansionSafe))
	if err != nil {
		t.Fatal(err)
	}
	inner, ok := m["a"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected a to become a nested mapping, got %#v", m["a"])
	}
	if inner["b"] != int64(1) || inner["c"] != int64(2) {
		t.Fatalf("unexpected merged mapping: %#v", inner)
	}
}

func TestExpandPathsQuotedKeyUntouched(t *testing.T) {
	var m map[string]interface{}
	err := Unmarshal([]byte(`"a.b": 1`), &m, WithExpandPaths(PathExpansionSafe))
	if err != nil {
		t.Fatal(err)
	}
	if m["a.b"] != int64(1) {
		t.Fatalf("expected quoted key to survive expansion untouched, got %#v", m)
	}
}
