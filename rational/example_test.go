package rational_test

import (
	"fmt"

	"github.com/corvidlabs/simplex/rational"
)

func ExampleParse() {
	a, _ := rational.Parse("1/50")
	b, _ := rational.Parse("0.02")
	fmt.Println(a.Add(b).String())
	// Output: 1/25
}

func ExampleRational_Cmp() {
	a := rational.FromInt64(3)
	b, _ := rational.FromFraction(7, 2)
	switch a.Cmp(b) {
	case -1:
		fmt.Println("a < b")
	case 0:
		fmt.Println("a == b")
	case 1:
		fmt.Println("a > b")
	}
	// Output: a < b
}
