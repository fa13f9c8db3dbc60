package token_test

import (
	"math"
	"testing"

	"github.com/toon-go/toon/token"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{1, "1"},
		{-1, "-1"},
		{3.14, "3.14"},
		{100, "100"},
		{0.1, "0.1"},
		{1.5, "1.5"},
		{1.100, "1.1"},
		{123456789012345, "123456789012345"},
	}
	for _, tt := range tests {
		if got := token.FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatNumberNoExponent(t *testing.T) {
	for _, x := range []float64{1e20, 1e-20, 1.23e15, 5e-7} {
		s := token.FormatNumber(x)
		for _, r := range s {
			if r == 'e' || r == 'E' {
				t.Errorf("FormatNumber(%v) = %q contains an exponent", x, s)
			}
		}
	}
}

func TestNormalizeSignedZero(t *testing.T) {
	got := token.NormalizeSignedZero(math.Copysign(0, -1))
	if math.Signbit(got) {
		t.Errorf("NormalizeSignedZero(-0.0) retained the sign bit")
	}
}
