package token_test

import (
	"testing"

	"github.com/toon-go/toon/token"
)

func TestIsNumericLiteral(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"0", true},
		{"1", true},
		{"-1", true},
		{"3.14", true},
		{"-3.14", true},
		{"1e10", true},
		{"1E-10", true},
		{"-1.5e+3", true},
		{"007", false},
		{"0.5", true},
		{"00", false},
		{"", false},
		{"-", false},
		{"1.", false},
		{".5", false},
		{"1e", false},
		{"abc", false},
		{"1,2", false},
		{"NaN", false},
		{"Infinity", false},
	}
	for _, tt := range tests {
		if got := token.IsNumericLiteral(tt.in); got != tt.want {
			t.Errorf("IsNumericLiteral(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestIsBooleanOrNullLiteral(t *testing.T) {
	for _, s := range []string{"true", "false", "null"} {
		if !token.IsBooleanOrNullLiteral(s) {
			t.Errorf("IsBooleanOrNullLiteral(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"True", "NULL", "", "nul"} {
		if token.IsBooleanOrNullLiteral(s) {
			t.Errorf("IsBooleanOrNullLiteral(%q) = true, want false", s)
		}
	}
}

func TestIsIdentifierSegment(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"abc", true},
		{"_abc", true},
		{"a1_2", true},
		{"1abc", false},
		{"a.b", false},
		{"", false},
		{"a-b", false},
	}
	for _, tt := range tests {
		if got := token.IsIdentifierSegment(tt.in); got != tt.want {
			t.Errorf("IsIdentifierSegment(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestIsValidUnquotedKey(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"abc", true},
		{"a.b.c", true},
		{"_a.b", true},
		{"1abc", false},
		{"a b", false},
		{"", false},
		{"a.", true},
	}
	for _, tt := range tests {
		if got := token.IsValidUnquotedKey(tt.in); got != tt.want {
			t.Errorf("IsValidUnquotedKey(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestIsSafeUnquotedString(t *testing.T) {
	tests := []struct {
		in    string
		delim token.Delimiter
		want  bool
	}{
		{"hello", token.DelimiterComma, true},
		{"", token.DelimiterComma, false},
		{" hello", token.DelimiterComma, false},
		{"true", token.DelimiterComma, false},
		{"42", token.DelimiterComma, false},
		{"a,b", token.DelimiterComma, false},
		{"a,b", token.DelimiterPipe, true},
		{"a:b", token.DelimiterComma, false},
		{`a"b`, token.DelimiterComma, false},
		{"a\nb", token.DelimiterComma, false},
		{"- item", token.DelimiterComma, false},
		{"-", token.DelimiterComma, true},
		{"a[1]", token.DelimiterComma, false},
	}
	for _, tt := range tests {
		if got := token.IsSafeUnquotedString(tt.in, tt.delim); got != tt.want {
			t.Errorf("IsSafeUnquotedString(%q, %v) = %v, want %v", tt.in, tt.delim, got, tt.want)
		}
	}
}
