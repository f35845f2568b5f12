package arith

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxSafeInteger is the largest integer n such that n and n+1 are both exactly
// representable as float64, 2^53-1. Exact integer results beyond it are
// reported as decimal strings.
const MaxSafeInteger = 1<<53 - 1

// Kind identifies the representation of a Value.
type Kind int8

const (
	// KindNone is the kind of the zero Value.
	KindNone Kind = iota
	// KindInt is an exact integer within ±MaxSafeInteger.
	KindInt
	// KindBig is an exact integer outside ±MaxSafeInteger, held as its
	// decimal digits.
	KindBig
	// KindFloat is a finite double-precision result.
	KindFloat
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindInt:
		return "Int"
	case KindBig:
		return "Big"
	case KindFloat:
		return "Float"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is the numeric result of a successful evaluation.
type Value struct {
	kind Kind
	i    int64
	f    float64
	big  string
}

// IntValue returns a Value holding an integer. Panics if i is outside the
// safe integer range.
func IntValue(i int64) Value {
	if i > MaxSafeInteger || i < -MaxSafeInteger {
		panic("arith: unsafe integer " + strconv.FormatInt(i, 10))
	}
	return Value{kind: KindInt, i: i}
}

// FloatValue returns a Value holding f unchanged. Panics if f is not finite.
func FloatValue(f float64) Value {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		panic("arith: non-finite value " + strconv.FormatFloat(f, 'g', -1, 64))
	}
	return Value{kind: KindFloat, f: f}
}

// bigValue converts an exact integer to a Value of the appropriate kind.
func bigValue(x *big.Int) Value {
	if x.IsInt64() {
		if i := x.Int64(); -MaxSafeInteger <= i && i <= MaxSafeInteger {
			return Value{kind: KindInt, i: i}
		}
	}
	return Value{kind: KindBig, big: x.String()}
}

// Kind returns the representation of v.
func (v Value) Kind() Kind {
	return v.kind
}

// Int64 returns v as an int64 if it is a safe integer.
func (v Value) Int64() (int64, bool) {
	return v.i, v.kind == KindInt
}

// Float64 returns the nearest float64 to v. Big values beyond the range of
// float64 become infinities.
func (v Value) Float64() float64 {
	switch v.kind {
	case KindInt:
		return float64(v.i)
	case KindBig:
		f, _ := strconv.ParseFloat(v.big, 64)
		return f
	default:
		return v.f
	}
}

// BigInt returns v as a new big.Int if v is an exact integer. Otherwise, the
// result is nil.
func (v Value) BigInt() *big.Int {
	switch v.kind {
	case KindInt:
		return big.NewInt(v.i)
	case KindBig:
		x, ok := new(big.Int).SetString(v.big, 10)
		if !ok {
			panic("arith: corrupt big value " + strconv.Quote(v.big))
		}
		return x
	default:
		return nil
	}
}

// String formats v for display. Integers are plain digits. Floats use the
// shortest text that reads back to the same float64, in positional notation
// unless the magnitude is below 1e-6 or at least 1e21.
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindBig:
		return v.big
	case KindFloat:
		return formatFloat(v.f)
	default:
		return ""
	}
}

// MarshalJSON encodes v as a JSON number, or as a JSON string for big values
// so that no digits are lost.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNone:
		return []byte("null"), nil
	case KindBig:
		return strconv.AppendQuote(nil, v.big), nil
	default:
		return []byte(v.String()), nil
	}
}

// exponential reports whether the shortest display of f uses exponential
// notation.
func exponential(f float64) bool {
	a := math.Abs(f)
	return a != 0 && (a < 1e-6 || a >= 1e21)
}

func formatFloat(f float64) string {
	if !exponential(f) {
		return decimal.NewFromFloat(f).String()
	}
	s := strconv.FormatFloat(f, 'e', -1, 64)
	// Go writes at least two exponent digits, e.g. 1e-07.
	k := strings.IndexByte(s, 'e')
	m, sign, exp := s[:k], s[k+1], strings.TrimLeft(s[k+2:], "0")
	return m + "e" + string(sign) + exp
}
