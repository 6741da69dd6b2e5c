package json

import (
	"math"
	"strconv"

	"github.com/verdaderoken/json/internal"
)

// Number is a JSON number that remembers whether its source literal was
// an integer or a float. The distinction survives round trips: integers
// encode without a decimal point, floats always with one.
type Number struct {
	isInt bool
	i     int64
	f     float64
}

// IntNumber returns an integer-typed number
func IntNumber(i int64) Number {
	return Number{isInt: true, i: i}
}

// FloatNumber returns a float-typed number
func FloatNumber(f float64) Number {
	return Number{f: f}
}

// IsInt reports whether the number carries an integer payload
func (n Number) IsInt() bool {
	return n.isInt
}

// Int64 returns the number as an int64, truncating a float payload
func (n Number) Int64() int64 {
	if n.isInt {
		return n.i
	}
	return int64(n.f)
}

// Float64 returns the number as a float64
func (n Number) Float64() float64 {
	if n.isInt {
		return float64(n.i)
	}
	return n.f
}

// Equal reports whether two numbers have the same payload type and value
func (n Number) Equal(other Number) bool {
	if n.isInt != other.isInt {
		return false
	}
	if n.isInt {
		return n.i == other.i
	}
	return n.f == other.f
}

// IsFinite reports whether the number has a JSON representation.
// Integer payloads always do; float payloads exclude NaN and the
// infinities, which JSON cannot express.
func (n Number) IsFinite() bool {
	return n.isInt || (!math.IsNaN(n.f) && !math.IsInf(n.f, 0))
}

// String returns the canonical decimal text of the number. Integers are
// written without a decimal point. Floats use fixed-point notation in a
// reasonable range and always carry a decimal point or exponent.
func (n Number) String() string {
	if n.isInt {
		return strconv.FormatInt(n.i, 10)
	}

	var s string
	if n.f >= -1e15 && n.f <= 1e15 {
		s = strconv.FormatFloat(n.f, 'f', -1, 64)
	} else {
		s = strconv.FormatFloat(n.f, 'g', -1, 64)
	}

	// An integral float still formats as a float
	if !internal.ContainsAnyByte(s, ".eE") {
		s += ".0"
	}
	return s
}

// parseNumberLiteral classifies a scanned literal token as an integer or
// a float number. The literal must already satisfy the JSON number
// grammar; see isValidNumberLiteral.
func parseNumberLiteral(lit string) (Number, bool) {
	if !isValidNumberLiteral(lit) {
		return Number{}, false
	}

	if !internal.ContainsAnyByte(lit, ".eE") {
		if i, err := strconv.ParseInt(lit, 10, 64); err == nil {
			return IntNumber(i), true
		}
		// Integer too large for int64, fall back to float64
		if f, err := strconv.ParseFloat(lit, 64); err == nil {
			return FloatNumber(f), true
		}
		return Number{}, false
	}

	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return Number{}, false
	}
	return FloatNumber(f), true
}

// isValidNumberLiteral checks the strict JSON number grammar:
// '-'? ('0' | [1-9][0-9]*) ('.' [0-9]+)? ([eE] [+-]? [0-9]+)?
// strconv alone is too permissive here (it accepts "+1", ".5", "1.",
// hex floats and Inf/NaN, none of which are valid JSON).
func isValidNumberLiteral(s string) bool {
	i := 0
	if i < len(s) && s[i] == '-' {
		i++
	}

	// Integer part
	switch {
	case i < len(s) && s[i] == '0':
		i++
	case i < len(s) && '1' <= s[i] && s[i] <= '9':
		i++
		for i < len(s) && internal.IsDigit(s[i]) {
			i++
		}
	default:
		return false
	}

	// Fraction part
	if i < len(s) && s[i] == '.' {
		i++
		if i >= len(s) || !internal.IsDigit(s[i]) {
			return false
		}
		for i < len(s) && internal.IsDigit(s[i]) {
			i++
		}
	}

	// Exponent part
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		if i >= len(s) || !internal.IsDigit(s[i]) {
			return false
		}
		for i < len(s) && internal.IsDigit(s[i]) {
			i++
		}
	}

	return i == len(s)
}
