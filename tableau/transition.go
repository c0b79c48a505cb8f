package tableau

// transferToPhaseII performs the phase-I/II transition (spec §4.6). It
// returns (true, nil) when the transition completed and phase 2 is
// ready to solve, (false, nil) when t is not in phase 1, and
// (false, err) for infeasibility or an unremovable artificial.
func (t *Tableau) transferToPhaseII() (bool, error) {
	if t.Phase != Phase1 {
		return false, nil
	}
	if !t.Rows[0][0].IsZero() {
		return false, ErrInfeasible
	}

	for r, b := range append([]int(nil), t.Base...) {
		if r == 0 || !isArtificial(t.Vars[b]) {
			continue
		}
		pivoted := false
		for c, v := range t.Rows[r] {
			if isBasisColumn(t.Base, c) || v.IsZero() || isArtificial(t.Vars[c]) {
				continue
			}
			t.pivot(r, c, true)
			pivoted = true
			break
		}
		if !pivoted {
			return false, ErrCanonicalization
		}
	}

	t.artificialCols = t.totalArtificialCols

	sigma := cloneRow(t.FObj)
	for r, b := range t.Base {
		if r == 0 {
			continue
		}
		e := sigma[b]
		if e.IsZero() {
			continue
		}
		sigma = eliminateRow(sigma, t.Rows[r], e)
	}
	t.Rows[0] = sigma

	t.Phase = Phase2
	t.HistI = t.Hist
	t.Hist = nil
	return true, nil
}

func isBasisColumn(base []int, c int) bool {
	for _, b := range base {
		if b == c {
			return true
		}
	}
	return false
}
