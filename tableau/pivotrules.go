package tableau

import "github.com/corvidlabs/simplex/rational"

// enteringColumn dispatches to the configured rule and returns a
// column index in [1, Cols()-1], or 0 when no improving column
// remains (optimality reached).
func (t *Tableau) enteringColumn() int {
	switch t.Method {
	case LargestSigma:
		return t.largestSigma()
	case BestObjective:
		return t.bestObjective()
	case UserChoice:
		return t.userChoice()
	default:
		return t.smallestIndex()
	}
}

// smallestIndex is Bland's rule: the smallest column with sigma > 0.
func (t *Tableau) smallestIndex() int {
	sigma := t.Sigma()
	for c := 1; c < t.Cols(); c++ {
		if sigma[c].IsPositive() {
			return c
		}
	}
	return 0
}

// largestSigma picks argmax sigma[c] > 0, tie-broken by smallest c.
func (t *Tableau) largestSigma() int {
	sigma := t.Sigma()
	best := rational.Zero()
	idx := 0
	for c := 1; c < t.Cols(); c++ {
		if sigma[c].Cmp(best) <= 0 {
			continue
		}
		best, idx = sigma[c], c
	}
	return idx
}

// improvement returns minRatio(c) * sigma[c], or nil if the ratio set
// is empty (the column's direction is unbounded).
func (t *Tableau) improvement(c int) *rational.Rational {
	var min *rational.Rational
	for r := 1; r <= t.M(); r++ {
		a := t.Rows[r][c]
		if !a.IsPositive() {
			continue
		}
		ratio := t.Rows[r][0].Quot(a)
		if min == nil || ratio.Cmp(*min) < 0 {
			min = &ratio
		}
	}
	if min == nil {
		return nil
	}
	out := min.Mul(t.Sigma()[c])
	return &out
}

// bestObjective picks argmax over sigma[c]>0 of improvement(c); a
// column whose ratio set is empty (unbounded direction) is chosen
// immediately since no finite improvement can compete with it.
func (t *Tableau) bestObjective() int {
	sigma := t.Sigma()
	best := rational.FromInt64(-1)
	idx := 0
	for c := 1; c < t.Cols(); c++ {
		if !sigma[c].IsPositive() {
			continue
		}
		imp := t.improvement(c)
		if imp == nil {
			return c
		}
		if imp.Cmp(best) <= 0 {
			continue
		}
		best, idx = *imp, c
	}
	return idx
}

// userChoice consults the attached Interactor; a non-interactive
// tableau (or a zero return) falls back to smallestIndex.
func (t *Tableau) userChoice() int {
	if !t.Interactive {
		return t.smallestIndex()
	}
	c := t.interactor.ChooseColumn(t)
	if c == 0 {
		return t.smallestIndex()
	}
	return c
}
