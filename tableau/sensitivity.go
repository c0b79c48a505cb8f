package tableau

import "github.com/corvidlabs/simplex/rational"

// Sensitivity holds the post-optimal analysis of a phase-II solve
// (spec §4.9). Shadow, RHSLower, and RHSUpper are indexed by
// constraint row 1..M(); CoeffLower and CoeffUpper are indexed by
// column 1..Cols()-1. Index 0 of every slice is unused zero value.
type Sensitivity struct {
	Shadow     []rational.Rational
	RHSLower   []rational.Bound
	RHSUpper   []rational.Bound
	CoeffLower []rational.Bound
	CoeffUpper []rational.Bound
}

// Sensitivity computes shadow prices, RHS ranges, and objective-
// coefficient ranges at a phase-II optimum. Returns ErrNotOptimal if
// the tableau has not reached one.
func (t *Tableau) Sensitivity() (*Sensitivity, error) {
	if t.Phase != Phase2 || !t.optimal() {
		return nil, ErrNotOptimal
	}
	m := t.M()

	// tiB[k] is B^-1's k-th column, read across rows 1..m through the
	// row's original (construction-time) basis column for row k — see
	// initialBasis in canon.go.
	tiB := make([][]rational.Rational, m+1)
	for k := 1; k <= m; k++ {
		col := t.initialBasis[k]
		tiB[k] = make([]rational.Rational, m+1)
		for r := 1; r <= m; r++ {
			tiB[k][r] = t.Rows[r][col]
		}
	}

	cB := make([]rational.Rational, m+1)
	for r := 1; r <= m; r++ {
		cB[r] = t.FObj[t.Base[r]]
	}

	shadow := make([]rational.Rational, m+1)
	for k := 1; k <= m; k++ {
		var sum rational.Rational
		for r := 1; r <= m; r++ {
			sum = sum.Add(cB[r].Mul(tiB[k][r]))
		}
		if t.ObjDir < 0 {
			sum = sum.Neg()
		}
		shadow[k] = sum
	}

	sig := make([]rational.Rational, m+1)
	for r := 1; r <= m; r++ {
		sig[r] = t.Rows[r][0]
	}

	rhsLower := make([]rational.Bound, m+1)
	rhsUpper := make([]rational.Bound, m+1)
	for k := 1; k <= m; k++ {
		var maxNeg, minPos rational.Rational
		haveNeg, havePos := false, false
		for j := 1; j <= m; j++ {
			a := tiB[k][j]
			switch {
			case a.IsNegative():
				ratio := sig[j].Quot(a)
				if !haveNeg || ratio.Cmp(maxNeg) > 0 {
					maxNeg, haveNeg = ratio, true
				}
			case a.IsPositive():
				ratio := sig[j].Quot(a)
				if !havePos || ratio.Cmp(minPos) < 0 {
					minPos, havePos = ratio, true
				}
			}
		}
		if haveNeg {
			rhsUpper[k] = rational.NewFinite(t.B[k].Sub(maxNeg))
		} else {
			rhsUpper[k] = rational.PositiveInfinity()
		}
		if havePos {
			rhsLower[k] = rational.NewFinite(t.B[k].Sub(minPos))
		} else {
			rhsLower[k] = rational.NegativeInfinity()
		}
	}

	cols := t.Cols()
	sigma := t.Sigma()
	coeffLower := make([]rational.Bound, cols)
	coeffUpper := make([]rational.Bound, cols)
	for i := 1; i < cols; i++ {
		var lower, upper rational.Bound
		if r, ok := t.isBasic(i); ok {
			row := t.Rows[r]
			var minTerm, maxTerm rational.Rational
			haveMin, haveMax := false, false
			for c := 1; c < cols; c++ {
				rc := row[c]
				switch {
				case rc.IsNegative():
					ratio := sigma[c].Quot(rc)
					if !haveMin || ratio.Cmp(minTerm) < 0 {
						minTerm, haveMin = ratio, true
					}
				case rc.IsPositive() && c != i:
					ratio := sigma[c].Quot(rc)
					if !haveMax || ratio.Cmp(maxTerm) > 0 {
						maxTerm, haveMax = ratio, true
					}
				}
			}
			if haveMin {
				upper = rational.NewFinite(t.FObj[i].Add(minTerm))
			} else {
				upper = rational.PositiveInfinity()
			}
			if haveMax {
				lower = rational.NewFinite(t.FObj[i].Add(maxTerm))
			} else {
				lower = rational.NegativeInfinity()
			}
		} else {
			lower = rational.NegativeInfinity()
			upper = rational.NewFinite(t.FObj[i].Sub(sigma[i]))
		}
		if t.ObjDir < 0 {
			lower, upper = invertBound(upper), invertBound(lower)
		}
		coeffLower[i] = lower
		coeffUpper[i] = upper
	}

	return &Sensitivity{
		Shadow:     shadow,
		RHSLower:   rhsLower,
		RHSUpper:   rhsUpper,
		CoeffLower: coeffLower,
		CoeffUpper: coeffUpper,
	}, nil
}

// isBasic reports whether column i is currently basic and, if so, in
// which row.
func (t *Tableau) isBasic(i int) (row int, ok bool) {
	for r := 1; r <= t.M(); r++ {
		if t.Base[r] == i {
			return r, true
		}
	}
	return 0, false
}

func invertBound(b rational.Bound) rational.Bound {
	switch b.Kind() {
	case rational.PosInf:
		return rational.NegativeInfinity()
	case rational.NegInf:
		return rational.PositiveInfinity()
	default:
		v, _ := b.Value()
		return rational.NewFinite(v.Neg())
	}
}
