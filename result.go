package arith

import (
	"encoding/json"
	"strconv"
)

// ErrorKind classifies why an evaluation produced no value.
type ErrorKind int8

const (
	// NoError is the ErrorKind of a successful Result.
	NoError ErrorKind = iota
	// InvalidInput means the input was empty or too long.
	InvalidInput
	// EmptyInput means the input was only whitespace.
	EmptyInput
	// InvalidCharacters means the input contained a rune that cannot appear
	// in an arithmetic expression.
	InvalidCharacters
	// NotAnExpression means the input had no operator and was not a number.
	NotAnExpression
	// EvaluationFailed means the input was not a well-formed expression.
	EvaluationFailed
	// InvalidResult means the result was infinite or NaN, e.g. after a
	// division by zero.
	InvalidResult
	// EvaluationError means an unexpected fault during evaluation.
	EvaluationError
)

func (k ErrorKind) String() string {
	switch k {
	case NoError:
		return "NoError"
	case InvalidInput:
		return "InvalidInput"
	case EmptyInput:
		return "EmptyInput"
	case InvalidCharacters:
		return "InvalidCharacters"
	case NotAnExpression:
		return "NotAnExpression"
	case EvaluationFailed:
		return "EvaluationFailed"
	case InvalidResult:
		return "InvalidResult"
	case EvaluationError:
		return "EvaluationError"
	default:
		return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Message returns the user-facing description of the error kind.
func (k ErrorKind) Message() string {
	switch k {
	case InvalidInput:
		return "Invalid expression"
	case EmptyInput:
		return "Empty expression"
	case InvalidCharacters:
		return "Invalid characters in expression"
	case NotAnExpression:
		return "Not a valid mathematical expression"
	case EvaluationFailed:
		return "Evaluation failed"
	case InvalidResult:
		return "Invalid result"
	case EvaluationError:
		return "Evaluation error"
	default:
		return ""
	}
}

// EvalError is the error held by a failed Result.
type EvalError struct {
	// Kind classifies the failure.
	Kind ErrorKind
	// Detail is a diagnostic message. It is always set for EvaluationError.
	Detail string
	// Err is the underlying error, e.g. the InputError that made parsing
	// fail, or nil.
	Err error
}

func (err *EvalError) Error() string {
	if err.Detail == "" {
		return err.Kind.Message()
	}
	return err.Kind.Message() + ": " + err.Detail
}

func (err *EvalError) Unwrap() error {
	return err.Err
}

// Result is the outcome of evaluating an expression. Exactly one of its value
// and its error is set.
type Result struct {
	val Value
	err *EvalError
}

func success(v Value) Result {
	return Result{val: v}
}

func failure(kind ErrorKind, detail string, cause error) Result {
	return Result{err: &EvalError{Kind: kind, Detail: detail, Err: cause}}
}

// OK returns whether r holds a value.
func (r Result) OK() bool {
	return r.err == nil && r.val.kind != KindNone
}

// Value returns the value of a successful result.
func (r Result) Value() (Value, bool) {
	return r.val, r.OK()
}

// Err returns the error of a failed result as an *EvalError, or nil if r
// succeeded.
func (r Result) Err() error {
	if r.err == nil {
		return nil
	}
	return r.err
}

// Kind returns the kind of error in r, or NoError if r succeeded.
func (r Result) Kind() ErrorKind {
	if r.err == nil {
		return NoError
	}
	return r.err.Kind
}

// String returns the display text of the value, or the error message.
func (r Result) String() string {
	if r.err != nil {
		return r.err.Error()
	}
	return r.val.String()
}

type envelope struct {
	Success bool    `json:"success"`
	Result  *Value  `json:"result"`
	Error   *string `json:"error"`
}

// MarshalJSON encodes r as {"success": bool, "result": number|string|null,
// "error": string|null}.
func (r Result) MarshalJSON() ([]byte, error) {
	var e envelope
	if r.err != nil {
		msg := r.err.Error()
		e.Error = &msg
	} else {
		e.Success = true
		e.Result = &r.val
	}
	return json.Marshal(e)
}
