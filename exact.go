package arith

import "math/big"

// Exact evaluates e in arbitrary-precision integers. The second result is
// false if e cannot be evaluated exactly: it contains a decimal literal, a
// division, an exponentiation, or a remainder by zero.
//
// Results within ±MaxSafeInteger have KindInt. Larger results have KindBig.
func (e *Expr) Exact() (Value, bool) {
	x, ok := e.n.exact()
	if !ok {
		return Value{}, false
	}
	return bigValue(x), true
}

// exact computes the node's value as an integer. The result may alias a
// value computed for a child node.
func (n *node) exact() (*big.Int, bool) {
	switch n.kind {
	case nodeNum:
		return new(big.Int).SetString(n.name, 10)
	case nodeNeg:
		x, ok := n.left.exact()
		if !ok {
			return nil, false
		}
		return x.Neg(x), true
	case nodeNop:
		return n.left.exact()
	case nodeAdd, nodeSub, nodeMul, nodeMod:
		l, ok := n.left.exact()
		if !ok {
			return nil, false
		}
		r, ok := n.right.exact()
		if !ok {
			return nil, false
		}
		switch n.kind {
		case nodeAdd:
			l.Add(l, r)
		case nodeSub:
			l.Sub(l, r)
		case nodeMul:
			l.Mul(l, r)
		case nodeMod:
			// Truncated remainder, so the sign follows the dividend.
			if r.Sign() == 0 {
				return nil, false
			}
			l.Rem(l, r)
		}
		return l, true
	case nodeDiv, nodePow:
		// Integer quotients truncate, and powers can grow without bound.
		return nil, false
	default:
		panic("arith: invalid AST node " + n.kind.String())
	}
}
