package eqtree

// source is a sequence of runes in which every rune remembers the input
// column it came from. Transformations build new sources; a source is never
// modified once another view of it exists.
type source struct {
	text []rune
	// cols holds the 1-based input column of each rune in text.
	cols []int
	// end is the column just past the last rune, used for errors at the end
	// of an empty or exhausted sequence.
	end int
}

// newSource creates a source whose columns count runes of s from 1.
func newSource(s string) source {
	return runeSource([]rune(s))
}

func runeSource(r []rune) source {
	cols := make([]int, len(r))
	for i := range cols {
		cols[i] = i + 1
	}
	return source{text: r, cols: cols, end: len(r) + 1}
}

func (s source) len() int {
	return len(s.text)
}

// col returns the input column of the rune at i. i may be len(s), in which
// case the result is the column just past the end.
func (s source) col(i int) int {
	if i < len(s.cols) {
		return s.cols[i]
	}
	return s.end
}

// slice returns the view s[i:j].
func (s source) slice(i, j int) source {
	return source{text: s.text[i:j], cols: s.cols[i:j], end: s.col(j)}
}

func (s source) String() string {
	return string(s.text)
}

// builder accumulates a new source rune by rune.
type builder struct {
	text []rune
	cols []int
}

func (b *builder) add(r rune, col int) {
	b.text = append(b.text, r)
	b.cols = append(b.cols, col)
}

func (b *builder) addSource(s source) {
	b.text = append(b.text, s.text...)
	b.cols = append(b.cols, s.cols...)
}

// source finishes the builder. end is the column just past the last rune.
func (b *builder) source(end int) source {
	return source{text: b.text, cols: b.cols, end: end}
}
