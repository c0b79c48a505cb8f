package replay

import (
	"fmt"
	"io"
	"strings"

	"github.com/corvidlabs/simplex/model"
	"github.com/corvidlabs/simplex/rational"
	"github.com/corvidlabs/simplex/reporter"
	"github.com/corvidlabs/simplex/tableau"
)

// noteLine is the replay file's mandatory first line: it tells a
// spreadsheet reader that the literal token "Infty" appearing later in
// the dump stands for an unbounded sensitivity range, not a cell
// reference.
const noteLine = "NOTE:\tInfty\tdenotes infinity."

// Sink is a tab-separated, formula-mode replay writer. It wraps any
// io.Writer — a *os.File for the CLI, a *bytes.Buffer in tests — and
// also implements tableau.Interactor, so attaching it to a Tableau via
// tableau.WithInteractor makes every pivot self-record without the
// caller driving the dump by hand.
type Sink struct {
	w   io.Writer
	itn int
}

// NewSink wraps w. w is never closed by Sink.
func NewSink(w io.Writer) *Sink {
	if w == nil {
		panic("replay: NewSink(nil)")
	}
	return &Sink{w: w}
}

// WriteHeader writes the mandatory first line.
func (s *Sink) WriteHeader() {
	fmt.Fprintln(s.w, noteLine)
}

// WriteModel writes m rendered back into the model grammar by
// Model.Text, in a form model.Parse reads back.
func (s *Sink) WriteModel(m *model.Model) {
	fmt.Fprintln(s.w, m.Text())
}

// AfterPivot implements tableau.Interactor: it appends one tab-
// separated tableau snapshot per completed pivot, in formula mode
// (every numeric cell prefixed with "=").
func (s *Sink) AfterPivot(t *tableau.Tableau) {
	s.itn++
	s.writeTableau(t)
}

// ChooseColumn implements tableau.Interactor for completeness; Sink
// never drives interactive pivot selection, so it always falls back to
// SmallestIndex.
func (s *Sink) ChooseColumn(*tableau.Tableau) int { return 0 }

func (s *Sink) writeTableau(t *tableau.Tableau) {
	cols := t.Cols()
	header := make([]string, cols)
	header[0] = fmt.Sprintf("[%d]", s.itn)
	for c := 1; c < cols; c++ {
		header[c] = t.Vars[c]
	}
	fmt.Fprintln(s.w, strings.Join(header, "\t"))

	for r := 1; r <= t.M(); r++ {
		fmt.Fprintln(s.w, strings.Join(formulaRow(t.Vars[t.Base[r]], t.Rows[r], cols), "\t"))
	}
	fmt.Fprintln(s.w, strings.Join(formulaRow("sigma", t.Rows[0], cols), "\t"))
	fmt.Fprintln(s.w)
}

// formulaRow renders one tableau row as label plus cols-1 "=value"
// cells, matching the display contract's formula-mode prefix.
func formulaRow(label string, row []rational.Rational, cols int) []string {
	out := make([]string, cols)
	out[0] = label
	for c := 1; c < cols; c++ {
		out[c] = "=" + row[c].String()
	}
	return out
}

// WriteReport writes the four report tables, tab-separated: solution,
// constraint activity, shadow prices with RHS ranges, and objective-
// coefficient ranges.
func (s *Sink) WriteReport(r *reporter.Report) {
	fmt.Fprintf(s.w, "objective\t%s\n\n", r.Objective.String())

	fmt.Fprintln(s.w, "variable\tvalue")
	for _, v := range r.Solution {
		fmt.Fprintf(s.w, "%s\t%s\n", v.Name, v.Value.String())
	}
	fmt.Fprintln(s.w)

	fmt.Fprintln(s.w, "row\tactivity\trelation\trhs")
	for _, a := range r.Activity {
		label := a.Name
		if label == "" {
			label = fmt.Sprintf("%d", a.Row)
		}
		fmt.Fprintf(s.w, "%s\t%s\t%s\t%s\n", label, a.Value.String(), a.Rel.String(), a.RHS.String())
	}
	fmt.Fprintln(s.w)

	fmt.Fprintln(s.w, "row\tshadow price\trhs lower\trhs upper")
	for _, sp := range r.Shadow {
		fmt.Fprintf(s.w, "%d\t%s\t%s\t%s\n", sp.Row, sp.Price.String(), sp.RHSLower.String(), sp.RHSUpper.String())
	}
	fmt.Fprintln(s.w)

	fmt.Fprintln(s.w, "variable\tcoeff lower\tcoeff upper")
	for _, c := range r.Coeffs {
		fmt.Fprintf(s.w, "%s\t%s\t%s\n", c.Name, c.Lower.String(), c.Upper.String())
	}
}
