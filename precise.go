package arith

import (
	"errors"
	"math"
	"strconv"
)

// SignificantDigits is the number of significant decimal digits to which
// RoundPrecise rounds. It is the most that every float64 can carry through a
// decimal round trip.
const SignificantDigits = 15

// Float evaluates e in double-precision floating point. Division by zero and
// other invalid operations produce infinities or NaN rather than errors.
func (e *Expr) Float() float64 {
	return e.n.float()
}

func (n *node) float() float64 {
	switch n.kind {
	case nodeNum:
		f, err := strconv.ParseFloat(n.name, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			panic("arith: invalid number: " + n.name + " (" + err.Error() + ")")
		}
		// Literals too large for float64 parse to infinity.
		return f
	case nodeNeg:
		return -n.left.float()
	case nodeNop:
		return n.left.float()
	case nodeAdd:
		return n.left.float() + n.right.float()
	case nodeSub:
		return n.left.float() - n.right.float()
	case nodeMul:
		return n.left.float() * n.right.float()
	case nodeDiv:
		return n.left.float() / n.right.float()
	case nodeMod:
		return math.Mod(n.left.float(), n.right.float())
	case nodePow:
		return math.Pow(n.left.float(), n.right.float())
	default:
		panic("arith: invalid AST node " + n.kind.String())
	}
}

// RoundPrecise removes binary representation noise from a floating-point
// result, so that e.g. 0.1+0.2 gives 0.3 instead of 0.30000000000000004. The
// second result is false if f is infinite or NaN.
//
// Magnitudes below 1e-10 and values which would display in exponential
// notation are kept as they are. Integral values become KindInt when they are
// safe integers. Other values are rounded to SignificantDigits significant
// digits by formatting and parsing back.
func RoundPrecise(f float64) (Value, bool) {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return Value{}, false
	}
	if a := math.Abs(f); a != 0 && a < 1e-10 {
		return FloatValue(f), true
	}
	if f == math.Trunc(f) {
		return integral(f), true
	}
	if exponential(f) {
		return FloatValue(f), true
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(f, 'g', SignificantDigits, 64), 64)
	if err != nil {
		panic("arith: rounding " + strconv.FormatFloat(f, 'g', -1, 64) + ": " + err.Error())
	}
	if r == math.Trunc(r) {
		return integral(r), true
	}
	return FloatValue(r), true
}

// integral converts an integral float to a Value, preferring KindInt.
func integral(f float64) Value {
	if math.Abs(f) <= MaxSafeInteger {
		return IntValue(int64(f))
	}
	return FloatValue(f)
}
