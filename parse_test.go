package arith

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"testing"
)

// diff finds the first in-order node of n that differs from m, or nil, nil if
// the two ASTs are equal. If any node is nodeNone, it is returned.
func (n *node) diff(m *node) (*node, *node) {
	if n == nil {
		if m != nil {
			return n, m
		}
		return nil, nil
	}
	if m == nil {
		return n, m
	}
	if n.kind == nodeNone || m.kind == nodeNone {
		return n, m
	}
	if n.kind != m.kind {
		return n, m
	}
	switch n.kind {
	case nodeNum:
		if n.name != m.name {
			return n, m
		}
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodeMod, nodePow:
		if d, e := n.left.diff(m.left); d != nil || e != nil {
			return d, e
		}
		if d, e := n.right.diff(m.right); d != nil || e != nil {
			return d, e
		}
	case nodeNeg, nodeNop:
		if d, e := n.left.diff(m.left); d != nil || e != nil {
			return d, e
		}
	default:
		panic(fmt.Errorf("invalid node kind: n=%+v m=%+v", n, m))
	}
	return nil, nil
}

func TestOpPrecsExist(t *testing.T) {
	for _, r := range Operators {
		if _, ok := binops[string(r)]; !ok {
			t.Errorf("no binary operator for %c", r)
		}
	}
	if len(binops) != len(Operators) {
		t.Errorf("binary operators %v do not match lexer operators %q", binops, Operators)
	}
	for s := range signs {
		if !strings.Contains(Operators, s) {
			t.Errorf("sign %q is not lexed as an operator", s)
		}
	}
}

func TestParseTrees(t *testing.T) {
	cases := []struct {
		name string
		a, b string
	}{
		{"paren", "(1)", "1"},
		{"multi", "((((1))))", "1"},

		{"plus", "+1", "(+(1))"},
		{"neg", "-1", "(-(1))"},
		{"add", "1+2", "((1)+(2))"},
		{"sub", "1-2", "((1)-(2))"},
		{"mul", "1*2", "((1)*(2))"},
		{"div", "1/2", "((1)/(2))"},
		{"mod", "1%2", "((1)%(2))"},
		{"pow", "1^2", "((1)^(2))"},
		{"spaces", " 1 +\t2 ", "1+2"},

		{"add4", "1+2+3+4", "((1+2)+3)+4"},
		{"sub4", "1-2-3-4", "((1-2)-3)-4"},
		{"mul4", "1*2*3*4", "((1*2)*3)*4"},
		{"div4", "1/2/3/4", "((1/2)/3)/4"},
		{"mod4", "1%2%3%4", "((1%2)%3)%4"},
		{"pow4", "1^2^3^4", "1^(2^(3^4))"},
		{"muldivmod", "1*2/3%4", "((1*2)/3)%4"},

		{"negpow", "-1^2", "-(1^2)"},
		{"desc", "1^2*3+4", "((1^2)*3)+4"},
		{"asc", "1+2*3^4", "1+(2*(3^4))"},
		{"descasc", "1^2*3+4+5*6^7", "(((1^2)*3)+4)+5*(6^7)"},
		{"ascdesc", "1+2*3^4^5*6+7", "1+((2*(3^(4^5)))*6)+7"},
		{"negneg", "--1", "-(-1)"},
		{"negsub", "-1-1", "(-1)-1"},
		{"negmul", "-2*3", "(-2)*3"},
		{"powneg", "2^-1", "2^(-1)"},
		{"pownegpow", "1^-2^-3", "1^(-(2^(-3)))"},
		{"pownegneg", "1^--2", "1^(-(-2))"},
		{"parens", "(5+3)*2", "(5+3)*2"},
		{"decimals", "0.1+.2", "(0.1)+(.2)"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := ParseString(c.a)
			if err != nil {
				t.Fatalf("failed to parse %q: %v", c.a, err)
			}
			b, err := ParseString(c.b)
			if err != nil {
				t.Fatalf("failed to parse %q: %v", c.b, err)
			}
			d, e := a.n.diff(b.n)
			if d != nil || e != nil {
				t.Errorf("mismatched AST:\n\t%q parses %v has %v\n\t%q parses %v has %v", c.a, a.n, d, c.b, b.n, e)
			}
		})
	}
}

// has reports whether the tree rooted at n contains a node of kind k.
func (n *node) has(k nodeKind) bool {
	if n == nil {
		return false
	}
	if n.kind == k {
		return true
	}
	return n.left.has(k) || n.right.has(k)
}

func TestParseKinds(t *testing.T) {
	cases := []struct {
		name string
		src  string
		kind nodeKind
		want bool
	}{
		{"parens", "((1))", nodeNop, false},
		{"plus", "+1", nodeNop, true},
		{"sub", "1-1", nodeNeg, false},
		{"negsub", "-1-1", nodeSub, true},
		{"powneg", "2^-1", nodeNeg, true},
		{"mod", "7 % 3 + 1", nodeMod, true},
		{"nodiv", "(1+2)*3", nodeDiv, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := ParseString(c.src)
			if err != nil {
				t.Fatalf("%q failed to parse: %v", c.src, err)
			}
			if got := a.n.has(c.kind); got != c.want {
				t.Errorf("%q parsed to %v: has %v is %t, want %t", c.src, a.n, c.kind, got, c.want)
			}
		})
	}
}

func TestParseExact(t *testing.T) {
	cases := []struct {
		name string
		src  string
		n    *node
	}{
		{
			name: "num",
			src:  "007",
			n:    &node{kind: nodeNum, name: "007"},
		},
		{
			name: "negpow",
			src:  "-2^2",
			n: &node{
				kind: nodeNeg,
				left: &node{
					kind:  nodePow,
					left:  &node{kind: nodeNum, name: "2"},
					right: &node{kind: nodeNum, name: "2"},
				},
			},
		},
		{
			name: "mod",
			src:  "17 % 5",
			n: &node{
				kind:  nodeMod,
				left:  &node{kind: nodeNum, name: "17"},
				right: &node{kind: nodeNum, name: "5"},
			},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := ParseString(c.src)
			if err != nil {
				t.Fatalf("%q failed to parse: %v", c.src, err)
			}
			d, e := a.n.diff(c.n)
			if d != nil || e != nil {
				t.Errorf("mismatched AST:\n\twant %v which has %v\n\tgot  %v which has %v from %q", c.n, e, a.n, d, c.src)
			}
		})
	}
}

func TestExprString(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"num", "1", "(1)"},
		{"neg", "-1", "(-(1))"},
		{"plus", "+1", "(+(1))"},
		{"add", "1+2", "((1) + (2))"},
		{"mod", "7%3", "((7) % (3))"},
		{"prec", "1+2*3^4", "((1) + ((2) * ((3) ^ (4))))"},
		{"negpow", "-2^2", "(-((2) ^ (2)))"},
		{"parens", "((1+2))*3", "(((1) + (2)) * (3))"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := ParseString(c.src)
			if err != nil {
				t.Fatalf("%q failed to parse: %v", c.src, err)
			}
			s := a.String()
			if s != c.want {
				t.Errorf("%q formatted as %q, want %q", c.src, s, c.want)
			}
			b, err := ParseString(s)
			if err != nil {
				t.Fatalf("%q -> %q failed to parse: %v", c.src, s, err)
			}
			d, e := a.n.diff(b.n)
			if d != nil || e != nil {
				t.Errorf("mismatched AST:\n\t%q parses %v has %v\n\t%q parses %v has %v", c.src, a.n, d, s, b.n, e)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  InputError
		res  []string
		excl []string
	}{
		{"empty", "", new(EmptyExpressionError), []string{`(?i)\bempty expression\b`}, []string{`(?i)\bend\b`}},
		{"emptyparen", "()", new(EmptyExpressionError), []string{`(?i)\bexpected a term\b`, `"\)"`}, nil},
		{"emptyoperand", "1*", new(EmptyExpressionError), []string{`(?i)\bexpected a term\b`, `(?i)\bend of input\b`}, nil},
		{"emptyunary", "1*-", new(EmptyExpressionError), []string{`(?i)\bexpected a term\b`, `(?i)\bend of input\b`}, nil},
		{"doubleplus", "1++", new(EmptyExpressionError), []string{`(?i)\bend\b`}, nil},
		{"left", "(1", new(BracketError), []string{`(?i)\bunclosed parenthesis\b`, `\(`}, nil},
		{"right", "1)", new(BracketError), []string{`(?i)\bunmatched parenthesis\b`, `\)`}, nil},
		{"onlyright", ")", new(BracketError), []string{`(?i)\bunmatched parenthesis\b`, `\)`}, nil},
		{"unbalanced", "((1+2)", new(BracketError), []string{`(?i)\bunclosed\b`, `\(`}, nil},
		{"nonunary", "*1", new(OperatorError), []string{`(?i)\bcannot begin\b`, `"\*"`}, nil},
		{"nonunary-pow", "^1", new(OperatorError), []string{`(?i)\bcannot begin\b`, `\^`}, nil},
		{"nonunary-after-op", "1*/2", new(OperatorError), []string{`"/"`}, nil},
		{"terms", "1 2", new(TermError), []string{`(?i)\boperator\b`, `"2"`}, nil},
		{"parenterms", "2(3)", new(TermError), []string{`(?i)\boperator\b`, `"\("`}, nil},
		{"lexer", "2^(-$)", new(LexError), []string{`\$`}, nil},
		{"dots", "1.2.3+1", new(LexError), []string{`(?i)\bnumber\b`}, nil},

		{"op-paren", "(1*)", new(EmptyExpressionError), []string{`\)`}, nil},
		{"haskell", "(+)", new(EmptyExpressionError), []string{`\)`}, nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := ParseString(c.src)
			if a != nil {
				t.Errorf("%q parsed non-nil to %v", c.src, a.n)
			}
			if reflect.TypeOf(err) != reflect.TypeOf(c.err) {
				t.Errorf("wrong error type from %q: want %T, got %T", c.src, c.err, err)
			}
			if err == nil {
				return
			}
			msg := err.Error()
			for _, re := range c.res {
				if !regexp.MustCompile(re).MatchString(msg) {
					t.Errorf("error message %q does not match %s", msg, re)
				}
			}
			for _, re := range c.excl {
				if regexp.MustCompile(re).MatchString(msg) {
					t.Errorf("error message %q matches %s", msg, re)
				}
			}
		})
	}
}

func TestParseErrorPos(t *testing.T) {
	cases := []struct {
		name string
		src  string
		pos  int
	}{
		{"close", "1 + 2)", 6},
		{"terms", "12 34", 4},
		{"lex", "1 + a", 5},
		{"end", "1 +", 4},
		{"unclosed", "(1 + 2", 7},
		{"sign", "2 * * 3", 5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(c.src))
			ierr, ok := err.(InputError)
			if !ok {
				t.Fatalf("%q gave %#v, not an InputError", c.src, err)
			}
			if ierr.Pos() != c.pos {
				t.Errorf("%q gave error at %d, want %d: %v", c.src, ierr.Pos(), c.pos, err)
			}
		})
	}
}

func BenchmarkParse(b *testing.B) {
	cases := []struct {
		name string
		src  string
	}{
		{"descasc", "1^2*3+4+5*6^7"},
		{"descasc-parens", "(((1^2)*3)+4)+5*(6^7)"},
		{"ascdesc", "1+2*3^4^5*6+7"},
		{"ascdesc-parens", "1+((2*(3^(4^5)))*6)+7"},
		{"decimals", "0.1+0.2*3.3-1.1/.5%7.25"},
	}
	for _, c := range cases {
		b.Run(c.name, func(b *testing.B) {
			b.ReportAllocs()
			var src strings.Reader
			for i := 0; i < b.N; i++ {
				src.Reset(c.src)
				Parse(&src)
			}
		})
	}
}
