package tableau

import (
	"fmt"
	"math/rand"

	"github.com/corvidlabs/simplex/model"
	"github.com/corvidlabs/simplex/rational"
)

// Option configures a Tableau at construction time.
type Option func(*Tableau)

// WithMethod sets the entering-column rule. Default is SmallestIndex.
func WithMethod(m Method) Option {
	return func(t *Tableau) { t.Method = m }
}

// WithVirtualPerturbation toggles the experimental lexicographic
// degeneracy escape. Mutually informative with WithFlatWolf; the
// caller decides which (if either) is active.
func WithVirtualPerturbation(on bool) Option {
	return func(t *Tableau) { t.VirtualPerturbation = on }
}

// WithFlatWolf toggles the experimental randomized-RHS degeneracy
// escape and requires a non-nil source of randomness (see WithRand).
func WithFlatWolf(on bool) Option {
	return func(t *Tableau) { t.FlatWolf = on }
}

// WithInteractive marks the tableau as driven by a human operator;
// user_choice then actually prompts instead of falling back silently.
func WithInteractive(on bool) Option {
	return func(t *Tableau) { t.Interactive = on }
}

// WithInteractor attaches the after-pivot hook and, for UserChoice,
// the column-choice callback. Panics on nil: a missing interactor is a
// caller bug, not a runtime condition to recover from.
func WithInteractor(i Interactor) Option {
	if i == nil {
		panic("tableau: WithInteractor(nil)")
	}
	return func(t *Tableau) { t.interactor = i }
}

// WithRand supplies the pseudo-random source consumed by FlatWolf
// perturbation. Panics on nil; callers seeking reproducible runs
// should construct the *rand.Rand with an explicit seed and pass it
// here rather than rely on a package-level default.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("tableau: WithRand(nil)")
	}
	return func(t *Tableau) { t.rng = r }
}

// New canonicalizes m into a Tableau ready for Solve, per the
// canonicalization rules: objective-direction and RHS sign
// normalization, free-variable shadow columns, deterministic column
// ordering, and synthesis of surplus/slack/artificial columns.
func New(m *model.Model, opts ...Option) (*Tableau, error) {
	objDir := -1
	if m.Maximize {
		objDir = 1
	}

	objTerms := cloneTerms(m.Objective().Coeffs)
	if !m.Maximize {
		negateTerms(objTerms)
	}

	type workRow struct {
		terms map[string]rational.Rational
		rel   model.Relation
		rhs   rational.Rational
	}

	constraints := m.Constraints()
	work := make([]workRow, len(constraints))
	for i, c := range constraints {
		terms := cloneTerms(c.Coeffs)
		rel := c.Rel
		rhs := c.RHS
		if rhs.IsNegative() {
			negateTerms(terms)
			rhs = rhs.Neg()
			switch rel {
			case model.LE:
				rel = model.GE
			case model.GE:
				rel = model.LE
			}
		}
		work[i] = workRow{terms: terms, rel: rel, rhs: rhs}
	}

	free := m.FreeVars()
	for _, v := range free {
		shadow := "!" + v
		if coeff, ok := objTerms[v]; ok {
			objTerms[shadow] = coeff.Neg()
		}
		for i := range work {
			if coeff, ok := work[i].terms[v]; ok {
				work[i].terms[shadow] = coeff.Neg()
			}
		}
	}

	shadowNames := make([]string, len(free))
	for i, v := range free {
		shadowNames[i] = "!" + v
	}
	structural := m.SortedVars(shadowNames...)

	// Three passes over the rows, exactly in this order, so that the
	// trailing block of columns holds exactly one unit-basis column
	// per row: surplus columns never serve as a basis and are placed
	// first; slack and artificial columns do serve as a basis and are
	// placed after.
	type extraCol struct {
		name       string
		rowIdx     int // 0-based into work
		coeff      rational.Rational
		isBasis    bool
	}
	var extras []extraCol
	for i, w := range work {
		if w.rel == model.GE {
			extras = append(extras, extraCol{name: fmt.Sprintf("#%d", i+1), rowIdx: i, coeff: rational.FromInt64(-1)})
		}
	}
	for i, w := range work {
		if w.rel == model.LE {
			extras = append(extras, extraCol{name: fmt.Sprintf("$%d", i+1), rowIdx: i, coeff: rational.One(), isBasis: true})
		}
	}
	for i, w := range work {
		if w.rel == model.GE || w.rel == model.EQ {
			extras = append(extras, extraCol{name: fmt.Sprintf("@%d", i+1), rowIdx: i, coeff: rational.One(), isBasis: true})
		}
	}

	cols := make([]string, 0, 1+len(structural)+len(extras))
	cols = append(cols, "(RHS)")
	cols = append(cols, structural...)
	for _, e := range extras {
		cols = append(cols, e.name)
	}
	colIndex := make(map[string]int, len(cols))
	for i, c := range cols {
		colIndex[c] = i
	}

	mrows := len(work)
	rows := make([][]rational.Rational, mrows+1)
	for i := range rows {
		rows[i] = make([]rational.Rational, len(cols))
	}

	fobj := make([]rational.Rational, len(cols))
	for v, coeff := range objTerms {
		fobj[colIndex[v]] = coeff
	}

	base := make([]int, mrows+1)
	var artificialCount int
	for i, w := range work {
		row := rows[i+1]
		row[0] = w.rhs
		for v, coeff := range w.terms {
			row[colIndex[v]] = coeff
		}
	}
	for _, e := range extras {
		idx := colIndex[e.name]
		rows[e.rowIdx+1][idx] = e.coeff
		if e.isBasis {
			base[e.rowIdx+1] = idx
		}
		if e.name[0] == '@' {
			artificialCount++
		}
	}

	origRows := make([][]rational.Rational, mrows+1)
	for i, r := range rows {
		origRows[i] = cloneRow(r)
	}
	b := make([]rational.Rational, mrows+1)
	for i := 1; i <= mrows; i++ {
		b[i] = rows[i][0]
	}

	t := &Tableau{
		Vars:           cols,
		Rows:           rows,
		Base:           base,
		FObj:           fobj,
		OrigRows:       origRows,
		B:              b,
		ObjDir:         objDir,
		Method:              SmallestIndex,
		interactor:          noopInteractor{},
		totalArtificialCols: artificialCount,
		peekPos:             -1,
	}
	t.initialBasis = make([]int, mrows+1)
	copy(t.initialBasis, base)

	for _, opt := range opts {
		opt(t)
	}

	t.initPhase()
	return t, nil
}

// initPhase sets Phase and the initial sigma row per the phase-1/2
// detection rule.
func (t *Tableau) initPhase() {
	if t.totalArtificialCols == 0 {
		t.Phase = Phase2
		t.Rows[0] = cloneRow(t.FObj)
		return
	}
	t.Phase = Phase1
	sigma := make([]rational.Rational, len(t.Vars))
	for i, v := range t.Vars {
		if isArtificial(v) {
			sigma[i] = rational.FromInt64(-1)
		}
	}
	for r := 1; r <= t.M(); r++ {
		if !isArtificial(t.Vars[t.Base[r]]) {
			continue
		}
		for c := range sigma {
			sigma[c] = sigma[c].Add(t.Rows[r][c])
		}
	}
	t.Rows[0] = sigma
}

func isArtificial(name string) bool {
	return len(name) > 0 && name[0] == '@'
}

func cloneTerms(in map[string]rational.Rational) map[string]rational.Rational {
	out := make(map[string]rational.Rational, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func negateTerms(in map[string]rational.Rational) {
	for k, v := range in {
		in[k] = v.Neg()
	}
}

func cloneRow(in []rational.Rational) []rational.Rational {
	out := make([]rational.Rational, len(in))
	copy(out, in)
	return out
}
