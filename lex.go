package arith

import (
	"errors"
	"io"
	"strconv"
	"strings"
)

type lexToken struct {
	text string
	kind tokenKind
	// pos is the 1-based rune column where the token starts.
	pos int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int8

const (
	tokenNone tokenKind = iota
	tokenEOF
	tokenNum   // decimal literal
	tokenOp    // one of Operators
	tokenOpen  // (
	tokenClose // )
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenEOF:
		return "EOF"
	case tokenNum:
		return "Num"
	case tokenOp:
		return "Op"
	case tokenOpen:
		return "Open"
	case tokenClose:
		return "Close"
	default:
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Operators contains the runes which are operators. All of them are binary;
// + and - are also signs.
const Operators = "+-*/%^"

// lexer splits its source into tokens. The parser may push back one token to
// be returned again by the next call to next.
type lexer struct {
	src io.RuneScanner
	num strings.Builder
	// col is the column of the next rune to read.
	col  int
	back lexToken
	done bool
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{src: src, col: 1}
}

// push pushes back tok. Panics if a token is already pushed back.
func (l *lexer) push(tok lexToken) {
	if l.back.kind != tokenNone {
		panic("arith: token already pushed back")
	}
	l.back = tok
}

// must takes the pushed back token. Panics if there is none.
func (l *lexer) must() lexToken {
	tok := l.back
	if tok.kind == tokenNone {
		panic("arith: no token pushed back")
	}
	l.back = lexToken{}
	return tok
}

func (l *lexer) read() (rune, error) {
	r, _, err := l.src.ReadRune()
	if err != nil {
		return 0, err
	}
	l.col++
	return r, nil
}

func (l *lexer) unread() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.col--
}

// next returns the next token. The end of input produces one tokenEOF with a
// nil error, and after that io.EOF. A token with an error has only its pos set.
func (l *lexer) next() (lexToken, error) {
	if l.back.kind != tokenNone {
		return l.must(), nil
	}
	if l.done {
		return lexToken{}, io.EOF
	}
	for {
		start := l.col
		r, err := l.read()
		switch {
		case errors.Is(err, io.EOF):
			l.done = true
			return lexToken{kind: tokenEOF, pos: start}, nil
		case err != nil:
			return lexToken{pos: start}, err
		case isSpace(r):
			continue
		case r == '(':
			return lexToken{text: "(", kind: tokenOpen, pos: start}, nil
		case r == ')':
			return lexToken{text: ")", kind: tokenClose, pos: start}, nil
		case isDigit(r), r == '.':
			l.unread()
			text, err := l.number()
			if err != nil {
				return lexToken{pos: start}, err
			}
			return lexToken{text: text, kind: tokenNum, pos: start}, nil
		}
		if k := strings.IndexRune(Operators, r); k >= 0 {
			return lexToken{text: Operators[k : k+1], kind: tokenOp, pos: start}, nil
		}
		return lexToken{pos: start}, &LexError{Text: string(r), Col: start}
	}
}

// number scans a decimal literal: digits with at most one point, at least one
// of them a digit.
func (l *lexer) number() (string, error) {
	l.num.Reset()
	var digits, point bool
	for {
		r, err := l.read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}
		if r == '.' {
			l.num.WriteRune(r)
			if point {
				return "", l.badNumber()
			}
			point = true
			continue
		}
		if !isDigit(r) {
			l.unread()
			break
		}
		l.num.WriteRune(r)
		digits = true
	}
	if !digits {
		return "", l.badNumber()
	}
	return l.num.String(), nil
}

// badNumber reports the number scanned so far as invalid at the last rune
// read.
func (l *lexer) badNumber() error {
	return &LexError{Text: l.num.String(), Kind: "number", Col: l.col - 1}
}

// LexError indicates text which is not a token.
type LexError struct {
	// Text is the offending text. For a malformed number, it is the number
	// up to and including the rune where it went wrong.
	Text string
	// Kind is "number" for a malformed number or empty for a rune that
	// cannot begin any token.
	Kind string
	// Col is the column of the offending rune.
	Col int
}

func (err *LexError) Error() string {
	if err.Kind == "" {
		return atcol(err.Col, "invalid character "+strconv.Quote(err.Text))
	}
	return atcol(err.Col, "invalid "+err.Kind+" "+strconv.Quote(err.Text))
}

func (err *LexError) Pos() int { return err.Col }
