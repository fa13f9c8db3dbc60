package toon

import (
	"strings"
	"testing"

	"github.com/toon-go/toon/ast"
)

func mustObject(t *testing.T, n ast.Node) *ast.Object {
	t.Helper()
	obj, ok := n.(*ast.Object)
	if !ok {
		t.Fatalf("expected object, got %T (%v)", n, n)
	}
	return obj
}

func mustArray(t *testing.T, n ast.Node) *ast.Array {
	t.Helper()
	arr, ok := n.(*ast.Array)
	if !ok {
		t.Fatalf("expected array, got %T (%v)", n, n)
	}
	return arr
}

func stringValue(t *testing.T, n ast.Node) string {
	t.Helper()
	s, ok := n.(*ast.String)
	if !ok {
		t.Fatalf("expected string, got %T (%v)", n, n)
	}
	return s.Value
}

func numberValue(t *testing.T, n ast.Node) float64 {
	t.Helper()
	num, ok := n.(*ast.Number)
	if !ok {
		t.Fatalf("expected number, got %T (%v)", n, n)
	}
	return num.Value
}

func TestDecodeTreeEmptyInput(t *testing.T) {
	n, err := decodeTree("", 2, true)
	if err != nil {
		t.Fatal(err)
	}
	obj := mustObject(t, n)
	if !obj.IsEmpty() {
		t.Fatalf("expected empty mapping, got %+v", obj)
	}
}

func TestDecodeTreeSinglePrimitive(t *testing.T) {
	n, err := decodeTree("true", 2, true)
	if err != nil {
		t.Fatal(err)
	}
	b, ok := n.(*ast.Bool)
	if !ok || !b.Value {
		t.Fatalf("expected true, got %+v", n)
	}
}

func TestDecodeTreeFlatMapping(t *testing.T) {
	n, err := decodeTree("host: localhost\nport: 8080", 2, true)
	if err != nil {
		t.Fatal(err)
	}
	obj := mustObject(t, n)
	host, ok := obj.Get("host")
	if !ok || stringValue(t, host) != "localhost" {
		t.Fatalf("unexpected host: %+v", host)
	}
	port, ok := obj.Get("port")
	if !ok || numberValue(t, port) != 8080 {
		t.Fatalf("unexpected port: %+v", port)
	}
}

func TestDecodeTreeNestedMapping(t *testing.T) {
	src := "server:\n  host: localhost\n  port: 8080"
	n, err := decodeTree(src, 2, true)
	if err != nil {
		t.Fatal(err)
	}
	obj := mustObject(t, n)
	serverVal, ok := obj.Get("server")
	if !ok {
		t.Fatal("missing server key")
	}
	server := mustObject(t, serverVal)
	if stringValue(t, mustGet(t, server, "host")) != "localhost" {
		t.Fatal("unexpected host")
	}
	if numberValue(t, mustGet(t, server, "port")) != 8080 {
		t.Fatal("unexpected port")
	}
}

func mustGet(t *testing.T, obj *ast.Object, key string) ast.Node {
	t.Helper()
	v, ok := obj.Get(key)
	if !ok {
		t.Fatalf("missing key %q", key)
	}
	return v
}

func TestDecodeTreeInlineArray(t *testing.T) {
	n, err := decodeTree("numbers[3]: 1,2,3", 2, true)
	if err != nil {
		t.Fatal(err)
	}
	obj := mustObject(t, n)
	arr := mustArray(t, mustGet(t, obj, "numbers"))
	if len(arr.Items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(arr.Items))
	}
	if numberValue(t, arr.Items[0]) != 1 || numberValue(t, arr.Items[2]) != 3 {
		t.Fatalf("unexpected items: %+v", arr.Items)
	}
}

func TestDecodeTreeEmptyArray(t *testing.T) {
	n, err := decodeTree("empty[0]:", 2, true)
	if err != nil {
		t.Fatal(err)
	}
	obj := mustObject(t, n)
	arr := mustArray(t, mustGet(t, obj, "empty"))
	if len(arr.Items) != 0 {
		t.Fatalf("expected empty array, got %+v", arr.Items)
	}
}

func TestDecodeTreeTabularArray(t *testing.T) {
	src := "users[2]{id,name,role}:\n  1,Alice,admin\n  2,Bob,user"
	n, err := decodeTree(src, 2, true)
	if err != nil {
		t.Fatal(err)
	}
	obj := mustObject(t, n)
	arr := mustArray(t, mustGet(t, obj, "users"))
	if len(arr.Items) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(arr.Items))
	}
	row0 := mustObject(t, arr.Items[0])
	if stringValue(t, mustGet(t, row0, "name")) != "Alice" {
		t.Fatalf("unexpected row: %+v", row0)
	}
	row1 := mustObject(t, arr.Items[1])
	if stringValue(t, mustGet(t, row1, "role")) != "user" {
		t.Fatalf("unexpected row: %+v", row1)
	}
}

func TestDecodeTreeListOfPrimitives(t *testing.T) {
	src := "tags[2]:\n  - alpha\n  - beta"
	n, err := decodeTree(src, 2, true)
	if err != nil {
		t.Fatal(err)
	}
	obj := mustObject(t, n)
	arr := mustArray(t, mustGet(t, obj, "tags"))
	if len(arr.Items) != 2 || stringValue(t, arr.Items[0]) != "alpha" || stringValue(t, arr.Items[1]) != "beta" {
		t.Fatalf("unexpected list: %+v", arr.Items)
	}
}

func TestDecodeTreeListOfObjects(t *testing.T) {
	src := "items[2]:\n  - id: 1\n    name: a\n  - id: 2\n    name: b"
	n, err := decodeTree(src, 2, true)
	if err != nil {
		t.Fatal(err)
	}
	obj := mustObject(t, n)
	arr := mustArray(t, mustGet(t, obj, "items"))
	if len(arr.Items) != 2 {
		t.Fatalf("expected 2 items, got %+v", arr.Items)
	}
	first := mustObject(t, arr.Items[0])
	if numberValue(t, mustGet(t, first, "id")) != 1 || stringValue(t, mustGet(t, first, "name")) != "a" {
		t.Fatalf("unexpected first item: %+v", first)
	}
}

func TestDecodeTreeListItemFirstFieldArraySpecialDepth(t *testing.T) {
	src := strings.Join([]string{
		"items[1]:",
		"  - users[2]{id,name}:",
		"      1,Ada",
		"      2,Bob",
		"    status: active",
	}, "\n")
	n, err := decodeTree(src, 2, true)
	if err != nil {
		t.Fatal(err)
	}
	obj := mustObject(t, n)
	arr := mustArray(t, mustGet(t, obj, "items"))
	if len(arr.Items) != 1 {
		t.Fatalf("expected 1 item, got %+v", arr.Items)
	}
	item := mustObject(t, arr.Items[0])
	users := mustArray(t, mustGet(t, item, "users"))
	if len(users.Items) != 2 {
		t.Fatalf("expected 2 users, got %+v", users.Items)
	}
	firstUser := mustObject(t, users.Items[0])
	if stringValue(t, mustGet(t, firstUser, "name")) != "Ada" {
		t.Fatalf("unexpected user: %+v", firstUser)
	}
	if stringValue(t, mustGet(t, item, "status")) != "active" {
		t.Fatalf("expected sibling field status to survive, got %+v", item)
	}
}

func TestDecodeTreeFullWireExample(t *testing.T) {
	src := strings.Join([]string{
		"users[2]{id,name,role}:",
		"  1,Alice,admin",
		"  2,Bob,user",
		"numbers[3]: 1,2,3",
		"empty[0]:",
		"server:",
		"  host: localhost",
		"  port: 8080",
		"items[1]:",
		"  - users[2]{id,name}:",
		"      1,Ada",
		"      2,Bob",
		"    status: active",
	}, "\n")
	n, err := decodeTree(src, 2, true)
	if err != nil {
		t.Fatal(err)
	}
	obj := mustObject(t, n)
	if got := obj.Keys(); len(got) != 5 {
		t.Fatalf("expected 5 top-level keys, got %v", got)
	}
}

func TestDecodeTreeStrictLengthMismatch(t *testing.T) {
	_, err := decodeTree("numbers[3]: 1,2", 2, true)
	if err == nil {
		t.Fatal("expected a range error")
	}
}

func TestDecodeTreeNonStrictLengthMismatchTolerated(t *testing.T) {
	n, err := decodeTree("numbers[3]: 1,2", 2, false)
	if err != nil {
		t.Fatal(err)
	}
	obj := mustObject(t, n)
	arr := mustArray(t, mustGet(t, obj, "numbers"))
	if len(arr.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(arr.Items))
	}
}

func TestDecodeTreeStrictExtraListItem(t *testing.T) {
	src := "tags[1]:\n  - alpha\n  - beta"
	_, err := decodeTree(src, 2, true)
	if err == nil {
		t.Fatal("expected a validation error for an extra list item")
	}
}

func TestDecodeTreeStrictBlankLineInArrayBody(t *testing.T) {
	src := "numbers[3]: 1,2,3\n\nhost: localhost"
	// blank line is outside any array body here; this should decode fine.
	if _, err := decodeTree(src, 2, true); err != nil {
		t.Fatal(err)
	}

	src2 := "users[2]{id,name}:\n  1,Alice\n\n  2,Bob"
	if _, err := decodeTree(src2, 2, true); err == nil {
		t.Fatal("expected a validation error for a blank line inside a tabular array body")
	}
}

func TestDecodeTreeQuotedKeyPreserved(t *testing.T) {
	n, err := decodeTree(`"a.b": 1`, 2, true)
	if err != nil {
		t.Fatal(err)
	}
	obj := mustObject(t, n)
	if len(obj.Fields) != 1 || !obj.Fields[0].Quoted || obj.Fields[0].Key != "a.b" {
		t.Fatalf("unexpected object: %+v", obj.Fields)
	}
}

func TestDecodeTreeHeaderFieldDelimiterMismatch(t *testing.T) {
	if _, err := decodeTree("[1]{a|b}: 1", 2, true); err == nil {
		t.Fatal("expected a validation error for a brace/bracket delimiter mismatch")
	}
	if _, err := decodeTree("[1]{a|b}: 1", 2, false); err != nil {
		t.Fatalf("non-strict decode should tolerate the mismatch, got %v", err)
	}
}

func TestDecodeTreeDuplicateKeyLastWriteWins(t *testing.T) {
	n, err := decodeTree("a: 1\na: 2", 2, true)
	if err != nil {
		t.Fatal(err)
	}
	obj := mustObject(t, n)
	if len(obj.Fields) != 1 {
		t.Fatalf("expected a single field after dedup, got %+v", obj.Fields)
	}
	if numberValue(t, obj.Fields[0].Value) != 2 {
		t.Fatalf("expected last-write-wins value 2, got %+v", obj.Fields[0].Value)
	}
}
