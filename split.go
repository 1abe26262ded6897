package eqtree

// split is a sequence divided at its weakest operator. For a leaf, op is
// OpNone and left is the whole sequence.
type split struct {
	left, right source
	op          Operator
}

// splitExpr finds the operator that belongs at the root of the tree for src.
// Parentheses must be balanced at every level, so the only errors come from
// the locator on the outermost call and from a bad operator in front of a
// trailing group.
//
// The rules, in order:
//
//	(a+b)     strip the brackets and split the inside
//	-(a+b)    -1 * (a+b)
//	+(a+b)    *OperatorError
//	otherwise split at the weakest operator outside of any group
//
// The weakest operator is the last genuine + or -, else the last * or /, else
// the last ^. A + or - is genuine when it follows an operand; after another
// operator or at the start it is the sign of the operand that follows. Taking
// the last operator of a tier makes every operator left-associative, ^
// included: 2^3^2 is (2^3)^2.
func splitExpr(src source) (split, error) {
	sp, ok, err := findFirst(src)
	if err != nil {
		return split{}, err
	}
	if !ok {
		return splitLevel(src), nil
	}
	n := src.len()
	switch {
	case sp.Open == 0 && sp.Close == n-1:
		// The result isn't necessarily a leaf even if the inside is one term;
		// the inside may be another group.
		return splitExpr(src.slice(1, n-1))
	case sp.Open == 1 && sp.Close == n-1:
		return negateGroup(src)
	}
	// The first group is followed by more of the expression, or something
	// other than a lone sign precedes a group at the end. Either way the
	// group is only an operand; the root operator is somewhere outside it.
	return splitLevel(src), nil
}

// negateGroup splits -(expr) into -1 * (expr).
func negateGroup(src source) (split, error) {
	if src.text[0] != '-' {
		return split{}, &OperatorError{Col: src.cols[0], Operator: string(src.text[0])}
	}
	c := src.cols[0]
	neg := source{text: []rune{'-', '1'}, cols: []int{c, c}, end: src.cols[1]}
	s := split{
		left:  neg,
		right: src.slice(1, src.len()),
		op:    OpMul,
	}
	return s, nil
}

// splitLevel splits src at the weakest operator of its top nesting level.
// Groups are skipped as single operands.
func splitLevel(src source) split {
	if k := lastLow(src); k >= 0 {
		return splitAt(src, k)
	}
	if k := lastBackward(src, TierMedium); k >= 0 {
		return splitAt(src, k)
	}
	if k := lastBackward(src, TierHigh); k >= 0 {
		return splitAt(src, k)
	}
	return split{left: src, op: OpNone}
}

// lastLow scans src from left to right and returns the index of the last
// genuine + or - outside of groups, or -1 if there is none. The last one is
// kept rather than the first so that 1-2-3 is (1-2)-3.
func lastLow(src source) int {
	k := -1
	for i := 0; i < src.len(); i++ {
		r := src.text[i]
		if r == '(' {
			i = closeOf(src, i)
			continue
		}
		if i > 0 && inTier(r, TierLow) && !IsOperator(src.text[i-1]) {
			k = i
		}
	}
	return k
}

// lastBackward scans src from right to left and returns the index of the
// first operator of tier t it finds outside of groups, or -1. Index 0 never
// counts, since the left side of the split would be empty.
func lastBackward(src source, t Tier) int {
	for i := src.len() - 1; i > 0; i-- {
		r := src.text[i]
		if r == ')' {
			i = openOf(src, i)
			continue
		}
		if inTier(r, t) {
			return i
		}
	}
	return -1
}

// closeOf returns the index of the bracket closing the group opened at i.
// Balance was already checked, so the scan stops at the matching bracket.
func closeOf(src source, i int) int {
	if src.text[i] == '(' {
		depth := 0
		for j := i; j < src.len(); j++ {
			switch src.text[j] {
			case '(':
				depth++
			case ')':
				depth--
				if depth == 0 {
					return j
				}
			}
		}
	}
	panic("eqtree: no group at " + src.slice(i, src.len()).String())
}

// openOf returns the index of the bracket opening the group closed at i.
func openOf(src source, i int) int {
	if src.text[i] == ')' {
		depth := 0
		for j := i; j >= 0; j-- {
			switch src.text[j] {
			case ')':
				depth++
			case '(':
				depth--
				if depth == 0 {
					return j
				}
			}
		}
	}
	panic("eqtree: no group at " + src.slice(0, i+1).String())
}

// splitAt splits src around the operator at index k.
func splitAt(src source, k int) split {
	op := operatorFor(src.text[k])
	if op == OpNone {
		panic("eqtree: split at non-operator " + string(src.text[k]))
	}
	return split{
		left:  src.slice(0, k),
		right: src.slice(k+1, src.len()),
		op:    op,
	}
}
