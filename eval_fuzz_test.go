//go:build go1.18
// +build go1.18

package eqtree_test

import (
	"testing"

	"github.com/zephyrtronium/eqtree"
)

func FuzzEval(f *testing.F) {
	f.Add("0.1+(2+3)*5/3*2+((5+2)+2)")
	f.Add("2^3^2")
	f.Add("1/0")
	f.Fuzz(func(t *testing.T, s string) {
		eqtree.EvalString(s)
	})
}
