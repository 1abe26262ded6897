package eqtree

import "unicode"

// Sanitize normalizes an expression: it removes whitespace and writes out
// implicit multiplications, so "2 π" becomes "2*π" and "5(1+2)(3)" becomes
// "5*(1+2)*(3)". Sanitizing sanitized text changes nothing. An error is a
// *BracketError for unbalanced parentheses.
func Sanitize(s string) (string, error) {
	src, err := sanitize(newSource(s))
	if err != nil {
		return "", err
	}
	return src.String(), nil
}

func sanitize(src source) (source, error) {
	src = stripSpace(src)
	src = markConstants(src)
	return markGroups(src)
}

func stripSpace(src source) source {
	var b builder
	for i, r := range src.text {
		if !unicode.IsSpace(r) {
			b.add(r, src.cols[i])
		}
	}
	return b.source(src.end)
}

// markConstants inserts * between a digit and a following constant rune.
// Only the single preceding rune is consulted; every number ends in a digit.
func markConstants(src source) source {
	var b builder
	for i, r := range src.text {
		if i > 0 && isConstantRune(r) && isDigit(src.text[i-1]) {
			b.add('*', src.cols[i])
		}
		b.add(r, src.cols[i])
	}
	return b.source(src.end)
}

// markGroups inserts * on either side of each parenthesized group wherever
// the group touches an operand: 5(, e(, )(, )5, )e. A group is one unit when
// looking at what follows it. Group interiors are marked recursively.
func markGroups(src source) (source, error) {
	var b builder
	rest := src
	for rest.len() > 0 {
		sp, ok, err := findFirst(rest)
		if err != nil {
			return source{}, err
		}
		if !ok {
			b.addSource(rest)
			break
		}
		b.addSource(rest.slice(0, sp.Open))
		if sp.Open > 0 {
			if prev := rest.text[sp.Open-1]; !IsOperator(prev) && prev != '(' {
				b.add('*', rest.cols[sp.Open])
			}
		}
		inner, err := markGroups(rest.slice(sp.Open+1, sp.Close))
		if err != nil {
			return source{}, err
		}
		b.add('(', rest.cols[sp.Open])
		b.addSource(inner)
		b.add(')', rest.cols[sp.Close])
		if next := sp.Close + 1; next < rest.len() && !IsOperator(rest.text[next]) {
			b.add('*', rest.cols[next])
		}
		rest = rest.slice(sp.Close+1, rest.len())
	}
	return b.source(src.end), nil
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// isConstantRune returns whether r can start a named constant. The letters of
// pi are both included.
func isConstantRune(r rune) bool {
	switch r {
	case 'e', 'π', 'p', 'i':
		return true
	default:
		return false
	}
}
