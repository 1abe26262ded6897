package eqtree

// Span is a balanced pair of parentheses at the top nesting level of a
// sequence, given as rune indices.
type Span struct {
	Open, Close int
}

// FindFirst finds the first top-level parenthesis pair in text. Open is the
// first '(' and Close is the ')' that brings the nesting depth back to zero.
// The second result is false if text contains no parentheses. The whole of
// text is checked for balance; an error is a *BracketError.
func FindFirst(text []rune) (Span, bool, error) {
	return findFirst(runeSource(text))
}

// FindLast is the mirror of FindFirst: it finds the last top-level pair,
// scanning from the end of text.
func FindLast(text []rune) (Span, bool, error) {
	return findLast(runeSource(text))
}

func findFirst(src source) (Span, bool, error) {
	depth := 0
	open, shut, group := -1, -1, -1
	for i, r := range src.text {
		switch r {
		case '(':
			if open < 0 {
				open = i
			}
			if depth == 0 {
				group = i
			}
			depth++
		case ')':
			if depth == 0 {
				return Span{}, false, &BracketError{Col: src.cols[i]}
			}
			depth--
			if depth == 0 && shut < 0 {
				shut = i
			}
		}
	}
	if depth > 0 {
		return Span{}, false, &BracketError{Col: src.cols[group], Open: true}
	}
	if open < 0 {
		return Span{}, false, nil
	}
	return Span{Open: open, Close: shut}, true, nil
}

func findLast(src source) (Span, bool, error) {
	depth := 0
	open, shut, group := -1, -1, -1
	for i := src.len() - 1; i >= 0; i-- {
		switch src.text[i] {
		case ')':
			if shut < 0 {
				shut = i
			}
			if depth == 0 {
				group = i
			}
			depth++
		case '(':
			if depth == 0 {
				return Span{}, false, &BracketError{Col: src.cols[i], Open: true}
			}
			depth--
			if depth == 0 && open < 0 {
				open = i
			}
		}
	}
	if depth > 0 {
		return Span{}, false, &BracketError{Col: src.cols[group]}
	}
	if shut < 0 {
		return Span{}, false, nil
	}
	return Span{Open: open, Close: shut}, true, nil
}
