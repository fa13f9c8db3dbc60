package toon

import (
	"strings"
	"testing"
)

type upperString string

func (u *upperString) UnmarshalTOON(data []byte) error {
	*u = upperString(strings.ToUpper(strings.Trim(string(data), `"`)))
	return nil
}

func (u upperString) MarshalTOON() ([]byte, error) {
	return []byte(`"` + strings.ToLower(string(u)) + `"`), nil
}

func TestUnmarshalerHook(t *testing.T) {
	var u upperString
	if err := Unmarshal([]byte(`"hello"`), &u); err != nil {
		t.Fatal(err)
	}
	if u != "HELLO" {
		t.Fatalf("expected HELLO, got %q", u)
	}
}

func TestMarshalerHook(t *testing.T) {
	u := upperString("WORLD")
	out, err := Marshal(u)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "world" {
		t.Fatalf("unexpected marshal output: %s", out)
	}
}

func TestUnmarshalIntOverflow(t *testing.T) {
	var v int8
	err := Unmarshal([]byte("1000"), &v)
	if err == nil {
		t.Fatal("expected an overflow error assigning 1000 into int8")
	}
}

func TestUnmarshalTypeMismatch(t *testing.T) {
	var v int
	err := Unmarshal([]byte(`"not a number"`), &v)
	if err == nil {
		t.Fatal("expected a type-mismatch error assigning a string into int")
	}
}
