package arith

import (
	"io"
	"strings"
)

// Grammar, loosest to tightest:
//
//	expr  = expr ('+' | '-') expr
//	      | expr ('*' | '/' | '%') expr
//	      | ('+' | '-') expr
//	      | expr '^' expr          (right to left)
//	      | num | '(' expr ')'
//
// A sign after ^ applies to the exponent, so 2^-1 is 2^(-1).

// Expr is a parsed arithmetic expression.
type Expr struct {
	// n is the root node of the expression.
	n *node
}

// Parse parses an arithmetic expression. The entire input up to EOF must form
// a single expression.
func Parse(src io.RuneScanner) (*Expr, error) {
	scan := lex(src)
	n, err := parseterm(scan, exprprec)
	if err != nil {
		return nil, err
	}
	// parseterm stops at EOF or at a close parenthesis, which is unmatched
	// at the top level.
	end := scan.must()
	if n == nil || end.kind != tokenEOF {
		return nil, unbalanced(end)
	}
	return &Expr{n: n}, nil
}

// ParseString is a shortcut to parse an expression from a string.
func ParseString(src string) (*Expr, error) {
	return Parse(strings.NewReader(src))
}

// parseterm parses operators binding more tightly than until, along with
// their operands. Without error, the token which stopped it is pushed back.
// An empty term ended by a close parenthesis gives nil without error so that
// the caller can report it in context.
func parseterm(scan *lexer, until operator) (*node, error) {
	n, err := parselhs(scan, until)
	if n == nil || err != nil {
		return nil, err
	}
	for {
		tok, err := scan.next()
		if err != nil {
			return nil, err
		}
		switch tok.kind {
		case tokenOp:
			op, ok := binops[tok.text]
			if !ok {
				panic("arith: no binary operator for " + tok.String())
			}
			if !op.moreBinding(until) {
				scan.push(tok)
				return n, nil
			}
			rhs, err := operand(scan, op)
			if err != nil {
				return nil, err
			}
			n = &node{kind: op.op, left: n, right: rhs}
		case tokenClose, tokenEOF:
			scan.push(tok)
			return n, nil
		case tokenNum, tokenOpen:
			return nil, &TermError{Col: tok.pos, Text: tok.text}
		default:
			panic("arith: unknown token: " + tok.String())
		}
	}
}

// operand parses a term which must not be empty.
func operand(scan *lexer, until operator) (*node, error) {
	n, err := parseterm(scan, until)
	if err != nil {
		return nil, err
	}
	if n == nil {
		end := scan.must()
		return nil, &EmptyExpressionError{Col: end.pos, End: end.text}
	}
	return n, nil
}

// parselhs parses the start of a term: a number, a signed term, or a
// parenthesized expression.
func parselhs(scan *lexer, until operator) (*node, error) {
	tok, err := scan.next()
	if err != nil {
		return nil, err
	}
	switch tok.kind {
	case tokenNum:
		return &node{kind: nodeNum, name: tok.text}, nil
	case tokenOp:
		op, ok := signs[tok.text]
		if !ok {
			return nil, &OperatorError{Col: tok.pos, Operator: tok.text}
		}
		if !op.moreBinding(until) {
			// The sign takes the binding of the operator before it, so the
			// exponent in x^-y^z is -(y^z).
			op.prec, op.right = until.prec, until.right
		}
		x, err := operand(scan, op)
		if err != nil {
			return nil, err
		}
		return &node{kind: op.op, left: x}, nil
	case tokenOpen:
		x, err := parseterm(scan, exprprec)
		if err != nil {
			return nil, err
		}
		end := scan.must()
		switch {
		case end.kind != tokenClose:
			return nil, unbalanced(end)
		case x == nil:
			return nil, &EmptyExpressionError{Col: end.pos, End: end.text}
		}
		return x, nil
	case tokenClose:
		scan.push(tok)
		return nil, nil
	case tokenEOF:
		return nil, &EmptyExpressionError{Col: tok.pos}
	default:
		panic("arith: unknown token: " + tok.String())
	}
}

// unbalanced returns the error for a term ended by tok in the wrong place:
// EOF inside parentheses or a close parenthesis outside them.
func unbalanced(tok lexToken) error {
	switch tok.kind {
	case tokenEOF:
		return &BracketError{Col: tok.pos, Unclosed: true}
	case tokenClose:
		return &BracketError{Col: tok.pos}
	default:
		panic("arith: unexpected end of term: " + tok.String())
	}
}

// String formats the expression with every term parenthesized.
func (e *Expr) String() string {
	return e.n.String()
}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
	// op is the node kind to use when this operator is selected.
	op nodeKind
}

func (p operator) moreBinding(than operator) bool {
	if p.prec != than.prec {
		return p.prec > than.prec
	}
	return p.right
}

var binops = map[string]operator{
	"+": {1, false, nodeAdd},
	"-": {1, false, nodeSub},
	"*": {5, false, nodeMul},
	"/": {5, false, nodeDiv},
	"%": {5, false, nodeMod},
	"^": {15, true, nodePow},
}

var signs = map[string]operator{
	"+": {10, true, nodeNop},
	"-": {10, true, nodeNeg},
}

// exprprec is the precedence required to parse an entire subexpression.
var exprprec = operator{-128, true, nodeNone}
