package reporter

import (
	"errors"

	"github.com/corvidlabs/simplex/model"
	"github.com/corvidlabs/simplex/rational"
	"github.com/corvidlabs/simplex/tableau"
)

// VarValue is one variable's value in the reported solution.
type VarValue struct {
	Name  string
	Value rational.Rational
}

// ShadowPrice is one constraint row's shadow price and RHS range.
type ShadowPrice struct {
	Row      int
	Price    rational.Rational
	RHSLower rational.Bound
	RHSUpper rational.Bound
}

// Activity is one constraint row's left-hand-side value at the
// reported solution, alongside its relation and original RHS, so a
// reader can see at a glance which constraints bind.
type Activity struct {
	Row   int
	Name  string
	Value rational.Rational
	Rel   model.Relation
	RHS   rational.Rational
}

// CoeffRange is one variable's objective-coefficient range.
type CoeffRange struct {
	Name  string
	Lower rational.Bound
	Upper rational.Bound
}

// Report is the rendered solution plus sensitivity analysis for one
// solved Tableau, built from the structural variables of the Model it
// came from (not the synthesized surplus/slack/artificial/shadow
// columns, which are implementation detail).
type Report struct {
	Objective rational.Rational
	Solution  []VarValue
	Activity  []Activity
	Shadow    []ShadowPrice
	Coeffs    []CoeffRange
}

// New gathers a Report from a solved Tableau and the Model it
// canonicalized. Returns ErrNotOptimal if the tableau is not at a
// phase-II optimum.
func New(tb *tableau.Tableau, m *model.Model) (*Report, error) {
	sens, err := tb.Sensitivity()
	if err != nil {
		if errors.Is(err, tableau.ErrNotOptimal) {
			return nil, ErrNotOptimal
		}
		return nil, err
	}

	r := &Report{Objective: tb.ObjectiveValue()}

	for _, v := range m.Vars {
		r.Solution = append(r.Solution, VarValue{Name: v, Value: tb.VariableValue(m, v)})
		if col := columnOf(tb, v); col >= 0 {
			r.Coeffs = append(r.Coeffs, CoeffRange{Name: v, Lower: sens.CoeffLower[col], Upper: sens.CoeffUpper[col]})
		}
	}

	for row := 1; row <= tb.M(); row++ {
		r.Shadow = append(r.Shadow, ShadowPrice{
			Row:      row,
			Price:    sens.Shadow[row],
			RHSLower: sens.RHSLower[row],
			RHSUpper: sens.RHSUpper[row],
		})
	}

	for i, c := range m.Constraints() {
		row := i + 1
		var lhs rational.Rational
		for v, coeff := range c.Coeffs {
			lhs = lhs.Add(coeff.Mul(tb.VariableValue(m, v)))
		}
		r.Activity = append(r.Activity, Activity{Row: row, Name: c.Name, Value: lhs, Rel: c.Rel, RHS: c.RHS})
	}

	return r, nil
}

// columnOf finds v's tableau column position. Reporter sits outside
// package tableau, so it walks the exported Vars slice rather than
// reaching for the package's own unexported column-index helper.
func columnOf(tb *tableau.Tableau, v string) int {
	for i, name := range tb.Vars {
		if name == v {
			return i
		}
	}
	return -1
}
