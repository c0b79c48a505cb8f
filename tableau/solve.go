package tableau

// phaseSolve drives the current phase to optimality, to iteration-cap
// suspension, or to an unbounded detection (spec §4.7). maxit <= 0
// means unbounded iterations.
func (t *Tableau) phaseSolve(maxit int) error {
	if maxit <= 0 {
		maxit = -1
	}
	for maxit != 0 {
		c := t.enteringColumn()
		if c == 0 {
			if len(t.Degenerated) > 0 {
				t.restore()
			}
			t.Hist = append(t.Hist, PivotEvent{Leaving: 0, Entering: 0})
			t.interactor.AfterPivot(t)
			return nil
		}
		r := t.leavingRow(c)
		if r == 0 {
			t.Phase = PhaseUnbounded
			t.Hist = append(t.Hist, PivotEvent{Leaving: 0, Entering: c})
			return ErrUnbounded
		}
		t.pivot(r, c, true)
		t.interactor.AfterPivot(t)
		if maxit > 0 {
			maxit--
		}
	}
	t.Phase = -t.Phase
	return ErrIterationCapHit
}

// Solve runs phase I (if any) then phase II to completion. maxit
// bounds the iterations of each phase; pass 0 or a negative value for
// unbounded iteration. It returns ErrInfeasible, ErrUnbounded,
// ErrCanonicalization, or ErrIterationCapHit; a nil error means the
// tableau holds a phase-II optimum.
func (t *Tableau) Solve(maxit int) error {
	if err := t.phaseSolve(maxit); err != nil {
		return err
	}
	transitioned, err := t.transferToPhaseII()
	if err != nil {
		return err
	}
	if !transitioned {
		return nil // already phase 2, or phase 3 (unbounded) — nothing further to do
	}
	return t.phaseSolve(maxit)
}
