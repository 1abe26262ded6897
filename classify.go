package eqtree

import "strconv"

// Operators contains the runes which are considered to be binary operators.
const Operators = "+-*/^"

// Tier is the binding strength of an operator. A lower tier binds later, so
// the weakest operator of an expression sits at the root of its tree.
type Tier int8

const (
	// TierLow is addition and subtraction. These are also the unary signs.
	TierLow Tier = iota
	// TierMedium is multiplication and division.
	TierMedium
	// TierHigh is exponentiation.
	TierHigh
)

func (t Tier) String() string {
	switch t {
	case TierLow:
		return "low"
	case TierMedium:
		return "medium"
	case TierHigh:
		return "high"
	default:
		return "Tier(" + strconv.Itoa(int(t)) + ")"
	}
}

// Classify returns the tier of an operator rune. The second result is false
// if r is not an operator.
func Classify(r rune) (Tier, bool) {
	switch r {
	case '+', '-':
		return TierLow, true
	case '*', '/':
		return TierMedium, true
	case '^':
		return TierHigh, true
	default:
		return 0, false
	}
}

// IsOperator returns whether r is any of the binary operators.
func IsOperator(r rune) bool {
	_, ok := Classify(r)
	return ok
}

// inTier is a shortcut to check whether r is an operator of exactly tier t.
func inTier(r rune, t Tier) bool {
	k, ok := Classify(r)
	return ok && k == t
}
