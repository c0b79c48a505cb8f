package reporter

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

// Render writes the four report tables to w: the solution, constraint
// activity, shadow prices with RHS ranges, and objective-coefficient
// ranges. The
// objective value's label is colored to match the "sigma" optimality
// highlight tableau.Tableau.Render uses elsewhere in the display.
func (r *Report) Render(w io.Writer) {
	fmt.Fprintf(w, "%s %s\n\n", color.GreenString("objective ="), r.Objective.String())

	solution := tablewriter.NewTable(w)
	solution.Header([]string{"variable", "value"})
	for _, v := range r.Solution {
		solution.Append([]string{v.Name, v.Value.String()})
	}
	solution.Render()
	fmt.Fprintln(w)

	activity := tablewriter.NewTable(w)
	activity.Header([]string{"row", "activity", "relation", "rhs"})
	for _, a := range r.Activity {
		label := a.Name
		if label == "" {
			label = fmt.Sprintf("%d", a.Row)
		}
		activity.Append([]string{label, a.Value.String(), a.Rel.String(), a.RHS.String()})
	}
	activity.Render()
	fmt.Fprintln(w)

	shadow := tablewriter.NewTable(w)
	shadow.Header([]string{"row", "shadow price", "rhs lower", "rhs upper"})
	for _, s := range r.Shadow {
		shadow.Append([]string{
			fmt.Sprintf("%d", s.Row),
			s.Price.String(),
			s.RHSLower.String(),
			s.RHSUpper.String(),
		})
	}
	shadow.Render()
	fmt.Fprintln(w)

	coeffs := tablewriter.NewTable(w)
	coeffs.Header([]string{"variable", "coeff lower", "coeff upper"})
	for _, c := range r.Coeffs {
		coeffs.Append([]string{c.Name, c.Lower.String(), c.Upper.String()})
	}
	coeffs.Render()
}
