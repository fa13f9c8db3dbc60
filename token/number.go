package token

import (
	"math"
	"strconv"
	"strings"
)

// NormalizeSignedZero returns +0.0 for any bit pattern equal to -0.0, and
// x unchanged otherwise.
func NormalizeSignedZero(x float64) float64 {
	if x == 0 {
		return 0
	}
	return x
}

// ParseNumber parses s as a finite float64. NaN, +Inf and -Inf are all
// rejected: TOON numbers are always finite (callers normalize NaN/Inf to
// null before reaching here; this function exists so IsNumericLiteral and
// the parser share one source of truth for "is this text a TOON number").
func ParseNumber(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// maxSafeInteger is the largest integer exactly representable in a
// float64, 2^53.
const maxSafeInteger = 1 << 53

// FormatNumber renders x in plain decimal form: no exponent, up to 16
// significant digits, trailing fractional zeros trimmed. NaN and +-Inf
// must be normalized to null by the caller before calling this function;
// FormatNumber only ever sees finite values.
func FormatNumber(x float64) string {
	x = NormalizeSignedZero(x)
	if x == 0 {
		return "0"
	}
	if x == math.Trunc(x) && math.Abs(x) < maxSafeInteger {
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	if math.Abs(x) >= maxSafeInteger {
		// Outside the double-precision safe integer range: emit verbatim,
		// still without an exponent.
		return strconv.FormatFloat(x, 'f', -1, 64)
	}

	s := strconv.FormatFloat(x, 'g', 16, 64)
	if !strings.ContainsAny(s, "eE") {
		return trimTrailingZeros(s)
	}

	abs := math.Abs(x)
	var frac int
	if abs < 1 {
		frac = 15 - int(math.Floor(math.Log10(abs)))
	} else {
		frac = 15
	}
	if frac < 0 {
		frac = 0
	}
	s = strconv.FormatFloat(x, 'f', frac, 64)
	return trimTrailingZeros(s)
}

func trimTrailingZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "" || s == "-" {
		return "0"
	}
	return s
}
