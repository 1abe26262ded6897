package eqtree

// Eval computes the value of the expression. Arithmetic follows IEEE-754 with
// no rounding beyond float64 precision; e.g. 1/0 is +Inf and (-8)^(1/3) is NaN.
func (e *Expr) Eval() float64 {
	return e.n.eval()
}

// eval computes the node's value bottom-up.
func (n *node) eval() float64 {
	if n.op == OpNone {
		return n.val
	}
	return n.op.Apply(n.left.eval(), n.right.eval())
}

// EvalString is a shortcut to parse an expression and return its result.
func EvalString(src string) (float64, error) {
	e, err := Parse(src)
	if err != nil {
		return 0, err
	}
	return e.Eval(), nil
}
