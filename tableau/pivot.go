package tableau

import "github.com/corvidlabs/simplex/rational"

// pivot divides row r by its entry in column c, eliminates column c
// from every other row (including row 0, updating sigma), and —
// unless hist is false, as used by undo/peek/shake replay — records
// the leaving/entering pair before updating Base. Recording before the
// Base update matters: hist must capture the variable that WAS basic
// in row r, not the one that becomes basic.
func (t *Tableau) pivot(r, c int, recordHist bool) {
	pivotVal := t.Rows[r][c]
	t.Rows[r] = scaleRow(t.Rows[r], pivotVal)

	for r2 := range t.Rows {
		if r2 == r {
			continue
		}
		factor := t.Rows[r2][c]
		if factor.IsZero() {
			continue
		}
		t.Rows[r2] = eliminateRow(t.Rows[r2], t.Rows[r], factor)
	}

	if recordHist {
		t.Hist = append(t.Hist, PivotEvent{Leaving: t.Base[r], Entering: c})
	}
	t.Base[r] = c
}

// scaleRow returns row / pivotVal, element-wise.
func scaleRow(row []rational.Rational, pivotVal rational.Rational) []rational.Rational {
	out := make([]rational.Rational, len(row))
	for i, v := range row {
		out[i] = v.Quot(pivotVal)
	}
	return out
}

// eliminateRow returns row - factor*pivotRow, element-wise.
func eliminateRow(row, pivotRow []rational.Rational, factor rational.Rational) []rational.Rational {
	out := make([]rational.Rational, len(row))
	for i, v := range row {
		out[i] = v.Sub(factor.Mul(pivotRow[i]))
	}
	return out
}
