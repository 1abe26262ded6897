package eqtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkConstants(t *testing.T) {
	cases := []struct {
		src, want string
	}{
		{"e(e)e+2e^ep", "e(e)e+2*e^ep"},
		{"5pi", "5*pi"},
		{"5π", "5*π"},
		{"1.5e", "1.5*e"},
		{"5e2", "5*e2"},
		{"e5", "e5"},
		{"πe", "πe"},
		{"12", "12"},
	}
	for _, c := range cases {
		got := markConstants(newSource(c.src))
		assert.Equal(t, c.want, got.String(), "marking %q", c.src)
	}
}

func TestMarkGroups(t *testing.T) {
	cases := []struct {
		src, want string
	}{
		{"(5+5)+5(7+3)(5*8)", "(5+5)+5*(7+3)*(5*8)"},
		{"(5+5)5+5(7+3)(5*8)", "(5+5)*5+5*(7+3)*(5*8)"},
		{"(5+5)*5+5(7+3)(5*8)", "(5+5)*5+5*(7+3)*(5*8)"},
		{"(1+2)*5π(5+2)/4", "(1+2)*5π*(5+2)/4"},
		{"(1+2)π*5π(5+2)/4", "(1+2)*π*5π*(5+2)/4"},
		{"-(1+3)(5+34)(5+3341)", "-(1+3)*(5+34)*(5+3341)"},
		{"((1)(2))", "((1)*(2))"},
		{"((5+2)+2)", "((5+2)+2)"},
		{"e(2)e", "e*(2)*e"},
		{"(2)", "(2)"},
		{"", ""},
	}
	for _, c := range cases {
		got, err := markGroups(newSource(c.src))
		require.NoError(t, err, "marking %q", c.src)
		assert.Equal(t, c.want, got.String(), "marking %q", c.src)
	}
}

func TestSanitize(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"plain", "1+2", "1+2"},
		{"spaces", " 1 +\t2 ", "1+2"},
		{"pi-group", "5pi(5+2)/4", "5*pi*(5+2)/4"},
		{"spaced-pi-group", "5 pi (5 + 2) / 4", "5*pi*(5+2)/4"},
		{"nested", "2(e+2)^π*2+-((5+7/2)-3^pi)", "2*(e+2)^π*2+-((5+7/2)-3^pi)"},
		{"leading-group", "(1)(2)3", "(1)*(2)*3"},
		{"sign-group", "-(1)", "-(1)"},
		{"digit-after-space", "2 e", "2*e"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Sanitize(c.src)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	srcs := []string{
		"0.1+(2+3)*5/3*2+((5+2)+2)",
		"5pi(5+2)/4",
		"-(1+3)(5+34)(5+3341)",
		"e(e)e+2e^ep",
		"((1)(2))(3)4",
		"2(e+2)^π*2+-((5+7/2)-3^pi)",
	}
	for _, src := range srcs {
		once, err := Sanitize(src)
		require.NoError(t, err)
		twice, err := Sanitize(once)
		require.NoError(t, err)
		assert.Equal(t, once, twice, "sanitizing %q", src)
	}
}

func TestSanitizeUnbalanced(t *testing.T) {
	_, err := Sanitize("(1+2")
	assert.Equal(t, UnmatchedOpen, Kind(err))
	_, err = Sanitize("1+2)")
	assert.Equal(t, UnmatchedClose, Kind(err))
	_, err = Sanitize("((1)+(2)")
	assert.Equal(t, UnmatchedOpen, Kind(err))
}

func TestSanitizeColumns(t *testing.T) {
	// Inserted multiplications take the column of the rune that follows them.
	src, err := sanitize(newSource("5 π(2)"))
	require.NoError(t, err)
	assert.Equal(t, "5*π*(2)", src.String())
	assert.Equal(t, []int{1, 3, 3, 4, 4, 5, 6}, src.cols)
	assert.Equal(t, 7, src.end)
}
