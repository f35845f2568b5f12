package arith

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultMaxLen is the default limit on the length of text accepted by
// Evaluate, in bytes.
const DefaultMaxLen = 1024

// Option is an option for Evaluate.
type Option interface {
	evalOption()
}

type maxlenopt int

func (maxlenopt) evalOption() {}

// MaxLen sets the maximum length in bytes of text that Evaluate accepts.
// Longer text fails with InvalidInput. n <= 0 removes the limit.
func MaxLen(n int) Option {
	return maxlenopt(n)
}

// Evaluate evaluates an arithmetic expression over decimal literals with the
// operators + - * / % ^ and parentheses.
//
// Integer expressions without division or exponentiation are computed exactly,
// however large. Everything else is computed in double precision and rounded
// to SignificantDigits significant digits. Failures, including malformed
// syntax and internal faults, are reported in the Result; Evaluate never
// panics.
func Evaluate(text string, opts ...Option) Result {
	maxlen := DefaultMaxLen
	for _, opt := range opts {
		switch opt := opt.(type) {
		case nil:
			// do nothing
		case maxlenopt:
			maxlen = int(opt)
		default:
			panic("arith: unknown option type")
		}
	}
	if text == "" {
		return failure(InvalidInput, "", nil)
	}
	if maxlen > 0 && len(text) > maxlen {
		return failure(InvalidInput, "longer than "+strconv.Itoa(maxlen)+" bytes", nil)
	}
	cleaned := trimSpace(text)
	if cleaned == "" {
		return failure(EmptyInput, "", nil)
	}
	if !allowedChars(cleaned) {
		return failure(InvalidCharacters, "", nil)
	}
	if !hasOperator(cleaned) && !isBareNumber(cleaned) {
		return failure(NotAnExpression, "", nil)
	}
	return guard(func() Result { return evaluate(cleaned) })
}

// guard calls f, converting a panic into an EvaluationError result.
func guard(f func() Result) (r Result) {
	defer func() {
		p := recover()
		if p == nil {
			return
		}
		err, _ := p.(error)
		r = failure(EvaluationError, fmt.Sprint(p), err)
	}()
	return f()
}

// evaluate computes a cleaned expression, trying the exact strategy before
// the floating-point one.
func evaluate(cleaned string) Result {
	if !strings.ContainsAny(cleaned, "./") {
		// Integers may be grouped with spaces, as in "1 000 000 * 3".
		if e, err := ParseString(stripSpace(cleaned)); err == nil {
			if v, ok := e.Exact(); ok {
				return success(v)
			}
		}
	}
	e, err := ParseString(cleaned)
	if err != nil {
		return failure(EvaluationFailed, "", err)
	}
	v, ok := RoundPrecise(e.Float())
	if !ok {
		return failure(InvalidResult, "", nil)
	}
	return success(v)
}
