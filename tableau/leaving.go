package tableau

import "github.com/corvidlabs/simplex/rational"

// rowCandidate is one row that qualified for the minimum-ratio test.
type rowCandidate struct {
	row   int
	ratio rational.Rational
}

// activeRows returns the row indices the ratio test should scan:
// every constraint row normally, or only the rows flagged degenerated
// once a flat-wolf perturbation is in progress.
func (t *Tableau) activeRows() []int {
	if len(t.Degenerated) > 0 {
		return t.Degenerated
	}
	rows := make([]int, t.M())
	for i := range rows {
		rows[i] = i + 1
	}
	return rows
}

// leavingRow implements the leaving-row rule and degeneracy policy
// (spec §4.4). It returns 0 when no row admits a positive coefficient
// in column c outside of perturbation, signalling an unbounded LP.
func (t *Tableau) leavingRow(c int) int {
	rows := t.activeRows()

	var cands []rowCandidate
	for _, r := range rows {
		a := t.Rows[r][c]
		if !a.IsPositive() {
			continue
		}
		cands = append(cands, rowCandidate{row: r, ratio: t.Rows[r][0].Quot(a)})
	}

	if len(cands) == 0 {
		if len(t.Degenerated) == 0 {
			return 0 // unbounded
		}
		t.restore()
		return t.leavingRow(c)
	}

	mrat := cands[0].ratio
	for _, cd := range cands[1:] {
		if cd.ratio.Cmp(mrat) < 0 {
			mrat = cd.ratio
		}
	}
	var tied []rowCandidate
	for _, cd := range cands {
		if cd.ratio.Cmp(mrat) == 0 {
			tied = append(tied, cd)
		}
	}

	if mrat.IsPositive() || len(tied) == 1 {
		return t.smallestIndexTieBreak(tied)
	}

	// Degenerate tie: mrat == 0 and more than one row attains it.
	if t.VirtualPerturbation {
		return t.virtualPerturbationPick(rows, c)
	}
	if t.FlatWolf {
		return t.flatWolfPick(rows, c)
	}
	return t.smallestIndexTieBreak(tied)
}

// smallestIndexTieBreak resolves a tie by the column index of each
// candidate row's current basic variable; proven cycle-free.
func (t *Tableau) smallestIndexTieBreak(tied []rowCandidate) int {
	best, ri := len(t.Vars)+1, -1
	for _, cd := range tied {
		if t.Base[cd.row] < best {
			best, ri = t.Base[cd.row], cd.row
		}
	}
	return ri
}

// virtualPerturbationPick is the experimental lexicographic stand-in:
// among rows with rhs==0, pick the one with the smallest positive
// coefficient in the entering column.
func (t *Tableau) virtualPerturbationPick(rows []int, c int) int {
	var lmin rational.Rational
	haveMin := false
	idx := -1
	for _, r := range rows {
		if !t.Rows[r][0].IsZero() {
			continue
		}
		a := t.Rows[r][c]
		if !a.IsPositive() {
			continue
		}
		if !haveMin || a.Cmp(lmin) < 0 {
			lmin, haveMin, idx = a, true, r
		}
	}
	return idx
}

// flatWolfPick is the experimental randomized-RHS degeneracy escape.
// On first entry it snapshots the true objective value and the set of
// zero-RHS rows, then assigns each such row a random RHS of 1/k for
// k in [2,10] (non-recursive "flat" wolf), and retries the ratio test
// with the perturbed values. Requires a non-nil *rand.Rand (WithRand).
func (t *Tableau) flatWolfPick(rows []int, c int) int {
	if len(t.Degenerated) == 0 {
		t.VObj = t.Rows[0][0]
		for _, r := range rows {
			if t.Rows[r][0].IsZero() {
				t.Degenerated = append(t.Degenerated, r)
			}
		}
	}
	for _, r := range t.Degenerated {
		if !t.Rows[r][0].IsZero() {
			continue
		}
		k := int64(t.rng.Intn(9) + 2) // [2, 10]
		t.Rows[r][0], _ = rational.FromFraction(1, k)
	}
	return t.leavingRow(c)
}

// restore recomputes RHS as B^-1 . b from the preserved b vector,
// restores the objective value from VObj, and clears Degenerated.
func (t *Tableau) restore() {
	for i := 1; i <= t.M(); i++ {
		var sum rational.Rational
		for k := 1; k <= t.M(); k++ {
			col := t.initialBasis[k]
			sum = sum.Add(t.B[k].Mul(t.Rows[i][col]))
		}
		t.Rows[i][0] = sum
	}
	t.Rows[0][0] = t.VObj
	t.Degenerated = nil
}
