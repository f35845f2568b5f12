package arith

import "strconv"

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the 1-based rune column of the token that caused the error,
	// or of the end of input.
	Pos() int
}

// OperatorError reports an operator in a place where a term must begin.
// Only + and - can be used as signs.
type OperatorError struct {
	// Col is the column of the operator.
	Col int
	// Operator is the operator text.
	Operator string
}

func (err *OperatorError) Error() string {
	return atcol(err.Col, "operator "+strconv.Quote(err.Operator)+" cannot begin a term")
}

func (err *OperatorError) Pos() int { return err.Col }

// BracketError reports an unbalanced parenthesis.
type BracketError struct {
	// Col is the column of the unmatched close parenthesis, or of the end of
	// input when a parenthesis is left open.
	Col int
	// Unclosed is true when the input ended inside parentheses and false
	// when a close parenthesis had nothing to close.
	Unclosed bool
}

func (err *BracketError) Error() string {
	if err.Unclosed {
		return atcol(err.Col, "unclosed parenthesis (")
	}
	return atcol(err.Col, "unmatched parenthesis )")
}

func (err *BracketError) Pos() int { return err.Col }

// EmptyExpressionError reports a missing term: empty input, "()", or an
// operator with nothing after it.
type EmptyExpressionError struct {
	// Col is the column of the token where a term was expected.
	Col int
	// End is that token, or empty at the end of input.
	End string
}

func (err *EmptyExpressionError) Error() string {
	switch {
	case err.End != "":
		return atcol(err.Col, "expected a term before "+strconv.Quote(err.End))
	case err.Col <= 1:
		return atcol(err.Col, "empty expression")
	default:
		return atcol(err.Col, "expected a term at end of input")
	}
}

func (err *EmptyExpressionError) Pos() int { return err.Col }

// TermError reports two terms with no operator between them, as in "2 3" or
// "2(3)".
type TermError struct {
	// Col is the column of the second term.
	Col int
	// Text is the token which begins the second term.
	Text string
}

func (err *TermError) Error() string {
	return atcol(err.Col, "missing operator before "+strconv.Quote(err.Text))
}

func (err *TermError) Pos() int { return err.Col }

func atcol(col int, msg string) string {
	return "column " + strconv.Itoa(col) + ": " + msg
}

var (
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*TermError)(nil)
	_ InputError = (*LexError)(nil)
)
