package toon

import (
	"strings"
	"testing"
)

type address struct {
	City string `toon:"city"`
	Zip  string `toon:"zip,omitempty"`
}

type person struct {
	Name    string  `toon:"name"`
	Age     int     `toon:"age"`
	Tags    []string `toon:"tags,omitempty"`
	Address address `toon:"address"`
}

func TestMarshalFlatStruct(t *testing.T) {
	p := person{Name: "Ada", Age: 30, Address: address{City: "London"}}
	out, err := Marshal(p)
	if err != nil {
		t.Fatal(err)
	}
	want := "name: Ada\nage: 30\naddress:\n  city: London"
	if string(out) != want {
		t.Fatalf("got:\n%s\nwant:\n%s", out, want)
	}
}

func TestMarshalOmitEmpty(t *testing.T) {
	p := person{Name: "Bob", Age: 10}
	out, err := Marshal(p)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(out), "tags") {
		t.Fatalf("expected tags to be omitted, got %s", out)
	}
}

func TestUnmarshalFlatStruct(t *testing.T) {
	src := "name: Ada\nage: 30\naddress:\n  city: London\n"
	var p person
	if err := Unmarshal([]byte(src), &p); err != nil {
		t.Fatal(err)
	}
	if p.Name != "Ada" || p.Age != 30 || p.Address.City != "London" {
		t.Fatalf("unexpected decode result: %+v", p)
	}
}

func TestRoundTripInlineArray(t *testing.T) {
	type doc struct {
		Numbers []int `toon:"numbers"`
	}
	d := doc{Numbers: []int{1, 2, 3}}
	out, err := Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	want := "numbers[3]: 1,2,3"
	if string(out) != want {
		t.Fatalf("got %q, want %q", string(out), want)
	}

	var back doc
	if err := Unmarshal(out, &back); err != nil {
		t.Fatal(err)
	}
	if len(back.Numbers) != 3 || back.Numbers[1] != 2 {
		t.Fatalf("unexpected roundtrip: %+v", back)
	}
}

func TestRoundTripTabularArray(t *testing.T) {
	type row struct {
		ID   int    `toon:"id"`
		Name string `toon:"name"`
	}
	type doc struct {
		Users []row `toon:"users"`
	}
	d := doc{Users: []row{{1, "Alice"}, {2, "Bob"}}}
	out, err := Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	want := "users[2]{id,name}:\n  1,Alice\n  2,Bob"
	if string(out) != want {
		t.Fatalf("got:\n%s\nwant:\n%s", out, want)
	}

	var back doc
	if err := Unmarshal(out, &back); err != nil {
		t.Fatal(err)
	}
	if len(back.Users) != 2 || back.Users[1].Name != "Bob" {
		t.Fatalf("unexpected roundtrip: %+v", back)
	}
}

func TestUnmarshalMap(t *testing.T) {
	src := "a: 1\nb: 2\n"
	var m map[string]int
	if err := Unmarshal([]byte(src), &m); err != nil {
		t.Fatal(err)
	}
	if m["a"] != 1 || m["b"] != 2 {
		t.Fatalf("unexpected map: %+v", m)
	}
}

func TestUnmarshalInterface(t *testing.T) {
	src := "host: localhost\nport: 8080\n"
	var v interface{}
	if err := Unmarshal([]byte(src), &v); err != nil {
		t.Fatal(err)
	}
	m, ok := v.(map[string]interface{})
	if !ok {
		t.Fatalf("expected map[string]interface{}, got %T", v)
	}
	if m["host"] != "localhost" {
		t.Fatalf("unexpected host: %v", m["host"])
	}
}

func TestUnmarshalInterfaceLargeIntegerExact(t *testing.T) {
	src := "max: 9223372036854775807\n"
	var v interface{}
	if err := Unmarshal([]byte(src), &v); err != nil {
		t.Fatal(err)
	}
	m := v.(map[string]interface{})
	if m["max"] != int64(9223372036854775807) {
		t.Fatalf("expected exact int64 max, got %v (%T)", m["max"], m["max"])
	}
}

func TestRoundTripLargeInt64(t *testing.T) {
	type doc struct {
		Max int64 `toon:"max"`
	}
	d := doc{Max: 9223372036854775807}
	out, err := Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	want := "max: 9223372036854775807"
	if string(out) != want {
		t.Fatalf("got %q, want %q", string(out), want)
	}

	var back doc
	if err := Unmarshal(out, &back); err != nil {
		t.Fatal(err)
	}
	if back.Max != d.Max {
		t.Fatalf("unexpected roundtrip: got %d, want %d", back.Max, d.Max)
	}
}

func TestMarshalWithKeyFolding(t *testing.T) {
	nested := map[string]interface{}{
		"a": map[string]interface{}{
			"b": map[string]interface{}{
				"c": 1,
			},
		},
	}
	out, err := Marshal(nested, WithKeyFolding(KeyFoldingSafe))
	if err != nil {
		t.Fatal(err)
	}
	want := "a.b.c: 1"
	if string(out) != want {
		t.Fatalf("got %q, want %q", string(out), want)
	}
}
