package eqtree

import (
	"errors"
	"math"
	"strconv"
)

// Expr = num | const | num const | Expr op Expr | '-' '(' Expr ')' | '(' Expr ')'
// op = '+' | '-' | '*' | '/' | '^'
// num = [ '+' | '-' ] digits [ '.' digits ]
// const = 'π' | 'pi' | 'e'
//
// Implicit multiplication is written out before parsing: digit-constant,
// operand-group, and group-operand adjacencies become explicit *.

// Expr is a parsed expression.
type Expr struct {
	// n is the root node of the expression.
	n *node
	// text is the sanitized expression.
	text string
}

// constant is a named constant usable as a term.
type constant struct {
	name []rune
	val  float64
}

// constants lists the named constants in the order a term is searched for
// them.
var constants = []constant{
	{[]rune("π"), math.Pi},
	{[]rune("e"), math.E},
	{[]rune("pi"), math.Pi},
}

// Parse parses an expression. Any error implements InputError; use Kind to
// classify it.
func Parse(src string) (*Expr, error) {
	s, err := sanitize(newSource(src))
	if err != nil {
		return nil, err
	}
	n, err := build(s)
	if err != nil {
		return nil, err
	}
	return &Expr{n: n, text: s.String()}, nil
}

// build splits src recursively into a tree. The first error aborts the build.
func build(src source) (*node, error) {
	sp, err := splitExpr(src)
	if err != nil {
		return nil, err
	}
	if sp.op == OpNone {
		return parseterm(sp.left)
	}
	l, err := build(sp.left)
	if err != nil {
		return nil, err
	}
	r, err := build(sp.right)
	if err != nil {
		return nil, err
	}
	return &node{op: sp.op, left: l, right: r}, nil
}

// parseterm resolves a leaf to its value.
func parseterm(src source) (*node, error) {
	if err := checkterm(src); err != nil {
		return nil, err
	}
	v, err := termvalue(src)
	if err != nil {
		return nil, err
	}
	return &node{op: OpNone, text: src.String(), val: v}, nil
}

// checkterm rejects terms that can't be values no matter what characters they
// contain otherwise: empty terms, and terms with operators or brackets other
// than a leading sign.
func checkterm(src source) error {
	if src.len() == 0 {
		return &SyntaxError{Col: src.end}
	}
	for i, r := range src.text {
		sign := i == 0 && inTier(r, TierLow)
		if r == '(' || r == ')' || IsOperator(r) && !sign {
			return &SyntaxError{Col: src.cols[i], Text: src.String()}
		}
	}
	return nil
}

// termvalue computes the value of a term that is a number, a constant, or a
// number immediately followed by a constant.
func termvalue(src source) (float64, error) {
	k, c := findconst(src.text)
	if k < 0 {
		return parsenum(src)
	}
	end := k + len(c.name)
	if k == 0 {
		if end != src.len() {
			return 0, &SyntaxError{Col: src.cols[0], Text: src.String()}
		}
		return c.val, nil
	}
	v, err := parsenum(src.slice(0, k))
	if err != nil {
		return 0, err
	}
	if end != src.len() {
		return 0, &SyntaxError{Col: src.cols[end], Text: src.String()}
	}
	return v * c.val, nil
}

// findconst finds the first constant, in order of the constants list, that
// occurs in text. The index is -1 if there is none.
func findconst(text []rune) (int, constant) {
	for _, c := range constants {
		if k := runeindex(text, c.name); k >= 0 {
			return k, c
		}
	}
	return -1, constant{}
}

func runeindex(text, sub []rune) int {
	for i := 0; i+len(sub) <= len(text); i++ {
		match := true
		for j, r := range sub {
			if text[i+j] != r {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}

// parsenum parses a decimal number with an optional sign.
func parsenum(src source) (float64, error) {
	text := src.String()
	fail := &NumberError{Col: src.col(0), Text: text}
	dig, dot := false, false
	for i, r := range src.text {
		switch {
		case isDigit(r):
			dig = true
		case r == '.' && !dot:
			dot = true
		case i == 0 && (r == '+' || r == '-'):
		default:
			return 0, fail
		}
	}
	if !dig {
		return 0, fail
	}
	// Out of range values parse as infinities, which is what we want.
	v, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, fail
	}
	return v, nil
}

// String creates a string representation of the parsed expression, with
// alternating round and square brackets grouping each term.
func (e *Expr) String() string {
	return e.n.String()
}

// Sanitized returns the expression's text with whitespace removed and
// implicit multiplications written out.
func (e *Expr) Sanitized() string {
	return e.text
}
