package tableau_test

import (
	"fmt"

	"github.com/corvidlabs/simplex/model"
	"github.com/corvidlabs/simplex/rational"
	"github.com/corvidlabs/simplex/tableau"
)

// ExampleTableau_Solve solves a small two-variable maximization and
// prints the exact optimum.
func ExampleTableau_Solve() {
	r := func(n int64) rational.Rational { return rational.FromInt64(n) }
	m := model.New(true)
	m.SetObjective(map[string]rational.Rational{"x": r(6), "y": r(4)})
	m.AddConstraint(map[string]rational.Rational{"x": r(6), "y": r(8)}, model.LE, r(12), "")
	m.AddConstraint(map[string]rational.Rational{"x": r(10), "y": r(5)}, model.LE, r(10), "")

	tb, err := tableau.New(m)
	if err != nil {
		fmt.Println(err)
		return
	}
	if err := tb.Solve(0); err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println("objective =", tb.ObjectiveValue())
	fmt.Println("x =", tb.VariableValue(m, "x"))
	fmt.Println("y =", tb.VariableValue(m, "y"))
	// Output:
	// objective = 36/5
	// x = 2/5
	// y = 6/5
}
