package eqtree

import (
	"math"
	"strconv"
	"strings"
)

// Operator is a binary arithmetic operation. OpNone marks a leaf.
type Operator int8

const (
	OpNone Operator = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpPow
)

// operatorFor gets the operator for a rune. If r is not an operator, the
// result is OpNone.
func operatorFor(r rune) Operator {
	switch r {
	case '+':
		return OpAdd
	case '-':
		return OpSub
	case '*':
		return OpMul
	case '/':
		return OpDiv
	case '^':
		return OpPow
	default:
		return OpNone
	}
}

// Apply computes l op r with IEEE-754 semantics: division by zero gives an
// infinity or NaN, and a negative base with a fractional exponent gives NaN.
// OpNone returns l.
func (op Operator) Apply(l, r float64) float64 {
	switch op {
	case OpNone:
		return l
	case OpAdd:
		return l + r
	case OpSub:
		return l - r
	case OpMul:
		return l * r
	case OpDiv:
		return l / r
	case OpPow:
		return math.Pow(l, r)
	default:
		panic("eqtree: invalid operator " + op.String())
	}
}

func (op Operator) String() string {
	switch op {
	case OpNone:
		return "none"
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpPow:
		return "^"
	default:
		return "Operator(" + strconv.Itoa(int(op)) + ")"
	}
}

// node is a node in the expression tree. A leaf has op OpNone and holds its
// value; any other node owns exactly two children.
type node struct {
	op Operator

	// text is the leaf's source text.
	text string
	val  float64

	left  *node
	right *node
}

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b, false)
	return b.String()
}

// fmt writes the node with alternating round and square brackets around each
// level of the tree.
func (n *node) fmt(b *strings.Builder, square bool) {
	var l, r byte = '(', ')'
	if square {
		l, r = '[', ']'
	}
	b.WriteByte(l)
	defer b.WriteByte(r)
	if n.op == OpNone {
		b.WriteString(n.text)
		return
	}
	n.left.fmt(b, !square)
	b.WriteByte(' ')
	b.WriteString(n.op.String())
	b.WriteByte(' ')
	n.right.fmt(b, !square)
}
