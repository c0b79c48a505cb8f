package tableau

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/corvidlabs/simplex/rational"
)

// Render writes the tableau to w per the display contract: a header
// row of column labels (position 0 replaced by the iteration marker
// "[itn]"), one row per constraint labelled by its basic variable, and
// a trailing "sigma" row. In formula mode every numeric cell is
// prefixed with "=" so the dump can be recomputed by a spreadsheet.
func (t *Tableau) Render(w io.Writer, itn int, asFormula bool) {
	table := tablewriter.NewTable(w)

	cols := t.Cols()
	header := make([]string, cols)
	header[0] = fmt.Sprintf("[%d]", itn)
	for c := 1; c < cols; c++ {
		header[c] = t.Vars[c]
	}
	table.Header(header)

	for r := 1; r <= t.M(); r++ {
		table.Append(t.renderRow(t.Vars[t.Base[r]], t.Rows[r], asFormula))
	}
	table.Append(t.renderRow(sigmaLabel(t.optimal()), t.Rows[0], asFormula))

	table.Render()
}

// sigmaLabel colors the reduced-cost row's label to flag optimality at
// a glance: green once no column can still improve, yellow otherwise.
func sigmaLabel(optimal bool) string {
	if optimal {
		return color.GreenString("sigma")
	}
	return color.YellowString("sigma")
}

// optimal reports whether sigma <= 0 on every live column — the
// phase-II optimality condition under the maximization convention.
func (t *Tableau) optimal() bool {
	sigma := t.Sigma()
	for c := 1; c < t.Cols(); c++ {
		if sigma[c].IsPositive() {
			return false
		}
	}
	return true
}

func (t *Tableau) renderRow(label string, row []rational.Rational, asFormula bool) []string {
	out := make([]string, t.Cols())
	out[0] = label
	for c := 1; c < t.Cols(); c++ {
		out[c] = formatCell(row[c], asFormula)
	}
	return out
}

func formatCell(v rational.Rational, asFormula bool) string {
	s := v.String()
	if asFormula {
		return "=" + s
	}
	return s
}
