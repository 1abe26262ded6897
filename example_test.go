package eqtree_test

import (
	"fmt"

	"github.com/zephyrtronium/eqtree"
)

func ExampleEvalString() {
	for _, src := range []string{
		"0.1+(2+3)*5/3*2+((5+2)+2)",
		"5pi(5+2)/4",
		"-(1+3)(5+34)(5+3341)",
		"2^3^2",
		"(1+2",
		"--1",
	} {
		fmt.Println(eqtree.EvalString(src))
	}

	// Output:
	// 25.76666666666667 <nil>
	// 27.48893571891069 <nil>
	// -521976 <nil>
	// 64 <nil>
	// 0 1: open bracket ( with no close bracket
	// 0 2: invalid syntax "--1"
}

func ExampleParse() {
	a, err := eqtree.Parse("1 - 2 - 3 * 4")
	if err != nil {
		panic(err)
	}
	fmt.Println(a)
	fmt.Println(a.Sanitized())
	fmt.Println(a.Eval())

	// Output:
	// ([(1) - (2)] - [(3) * (4)])
	// 1-2-3*4
	// -13
}

func ExampleKind() {
	_, err := eqtree.Parse("+(1+2)")
	fmt.Println(eqtree.Kind(err))
	fmt.Println(err)

	// Output:
	// invalid operator before bracket
	// 1: invalid operator "+" in front of bracket
}
