package tableau

import "github.com/corvidlabs/simplex/rational"

// rowOf returns the row currently holding basic variable (column) v.
func (t *Tableau) rowOf(v int) int {
	for r, b := range t.Base {
		if b == v {
			return r
		}
	}
	return -1
}

// Undo reverses the last pivot in the current phase's history: it
// pivots the variable that left back into the basis, with history
// suppressed, leaving Base and sigma consistent with the state before
// that pivot. The trailing optimum marker (an Entering of 0, pushed by
// Solve on reaching optimality) carries no actual pivot and is simply
// popped. Returns ErrNoHistory if Hist is empty.
func (t *Tableau) Undo() error {
	if len(t.Hist) == 0 {
		return ErrNoHistory
	}
	last := t.Hist[len(t.Hist)-1]
	t.Hist = t.Hist[:len(t.Hist)-1]
	if last.Entering == 0 {
		return nil
	}
	r := t.rowOf(last.Entering)
	t.pivot(r, last.Leaving, false)
	return nil
}

// PeekBackward steps one pivot back through history for inspection,
// without discarding the entry (unlike Undo). Call PeekAbort to
// return to the state before peeking began.
func (t *Tableau) PeekBackward() error {
	if t.peekPos < 0 {
		t.peekPos = len(t.Hist) - 1
	}
	for t.peekPos >= 0 && t.Hist[t.peekPos].Entering == 0 {
		t.peekPos-- // skip the optimum marker, it has no pivot to undo
	}
	if t.peekPos < 0 {
		return ErrNoHistory
	}
	ev := t.Hist[t.peekPos]
	r := t.rowOf(ev.Entering)
	t.pivot(r, ev.Leaving, false)
	t.peekPos--
	return nil
}

// PeekForward steps one pivot forward, replaying history in its
// original direction.
func (t *Tableau) PeekForward() error {
	if t.peekPos < 0 || t.peekPos >= len(t.Hist)-1 {
		return ErrNoHistory
	}
	t.peekPos++
	for t.peekPos < len(t.Hist) && t.Hist[t.peekPos].Entering == 0 {
		t.peekPos++
	}
	if t.peekPos >= len(t.Hist) {
		t.peekPos = len(t.Hist) - 1
		return ErrNoHistory
	}
	ev := t.Hist[t.peekPos]
	r := t.rowOf(ev.Leaving)
	t.pivot(r, ev.Entering, false)
	return nil
}

// PeekAbort fast-forwards to the end of history, so state is identical
// to what it was before peeking began, and clears the peek cursor.
func (t *Tableau) PeekAbort() {
	for t.peekPos >= 0 && t.peekPos < len(t.Hist)-1 {
		if err := t.PeekForward(); err != nil {
			break
		}
	}
	t.peekPos = -1
}

// Shake adds a small random positive integer to every RHS, then
// replays the undo chain backward to the start of the current phase's
// history. If any RHS ever goes negative during that backward walk,
// it returns ErrShakeInfeasible. It always replays forward afterward
// and restores the original RHS before returning; history semantics
// across a Shake are not guaranteed beyond that restoration.
func (t *Tableau) Shake() error {
	saved := make([]rational.Rational, t.M()+1)
	for r := 1; r <= t.M(); r++ {
		saved[r] = t.Rows[r][0]
		t.Rows[r][0] = t.Rows[r][0].Add(rational.FromInt64(int64(t.rng.Intn(20) + 1)))
	}

	last := len(t.Hist) - 1
	current := last
	var shakeErr error
	for current >= 0 {
		ev := t.Hist[current]
		if ev.Entering != 0 {
			r := t.rowOf(ev.Entering)
			t.pivot(r, ev.Leaving, false)
		}
		current--
		if minRHS(t) < 0 {
			shakeErr = ErrShakeInfeasible
			break
		}
	}
	for current < last {
		current++
		ev := t.Hist[current]
		if ev.Entering != 0 {
			r := t.rowOf(ev.Leaving)
			t.pivot(r, ev.Entering, false)
		}
	}
	for r := 1; r <= t.M(); r++ {
		t.Rows[r][0] = saved[r]
	}
	return shakeErr
}

func minRHS(t *Tableau) int {
	for r := 1; r <= t.M(); r++ {
		if t.Rows[r][0].IsNegative() {
			return -1
		}
	}
	return 0
}
