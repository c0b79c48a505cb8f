package tableau

import (
	"math/rand"

	"github.com/corvidlabs/simplex/rational"
)

// Method selects which rule chooses the entering column.
type Method int

const (
	// LargestSigma picks argmax sigma[c] > 0, tie-broken by smallest c.
	LargestSigma Method = iota
	// SmallestIndex is Bland's rule: smallest c with sigma[c] > 0. Proven
	// cycle-free; the package default.
	SmallestIndex
	// BestObjective picks the column maximizing minRatio(c) * sigma[c].
	BestObjective
	// UserChoice asks the attached Interactor for a column; 0 falls back
	// to SmallestIndex.
	UserChoice
)

// String renders m the way a menu prompt would.
func (m Method) String() string {
	switch m {
	case LargestSigma:
		return "largest_sigma"
	case SmallestIndex:
		return "smallest_index"
	case BestObjective:
		return "best_objective"
	case UserChoice:
		return "user_choice"
	default:
		return "unknown"
	}
}

// Phase values. Phase1 and Phase2 are the normal operating phases;
// PhaseUnbounded records an unbounded detection; a negative value
// records an iteration-cap suspension of the phase whose magnitude it
// carries (e.g. -1 means "phase 1, suspended").
type Phase int

const (
	Phase1         Phase = 1
	Phase2         Phase = 2
	PhaseUnbounded Phase = 3
)

// PivotEvent is one entry of a Tableau's pivot history: the column
// index that left the basis and the one that entered it. An Entering
// of 0 records the optimum sentinel pushed by Solve when no further
// improving column exists.
type PivotEvent struct {
	Leaving  int
	Entering int
}

// Interactor is the interaction hook invoked after every pivot (a
// no-op implementation suffices for non-interactive use) and consulted
// by the UserChoice entering-column rule. It is the seam an injected
// display/REPL layer attaches through; Tableau never writes to any
// output stream directly.
type Interactor interface {
	// AfterPivot is called once per completed pivot, including the
	// final one that reaches optimality.
	AfterPivot(t *Tableau)
	// ChooseColumn is consulted by the UserChoice method; it returns a
	// column index, or 0 to fall back to SmallestIndex.
	ChooseColumn(t *Tableau) int
}

// noopInteractor implements Interactor with no side effects.
type noopInteractor struct{}

func (noopInteractor) AfterPivot(*Tableau)       {}
func (noopInteractor) ChooseColumn(*Tableau) int { return 0 }

// Tableau is a two-phase simplex engine over exact rational
// arithmetic. Its zero value is not usable; construct one with New.
type Tableau struct {
	// Vars holds ordered column labels; Vars[0] is always "(RHS)".
	Vars []string
	// Rows[0] is the reduced-cost (sigma) row; Rows[1:] are constraints.
	Rows [][]rational.Rational
	// Base[i] is the column index of row i's basic variable; Base[0]==0.
	Base []int

	// FObj is the canonicalized phase-II objective vector over the
	// full column layout, preserved across phase transition for
	// sensitivity and for recomputing sigma in phase 2.
	FObj []rational.Rational
	// OrigRows are the constraint rows as they stood right after
	// canonicalization. No method of this package reads them; the
	// wolf-perturbation restore recomputes the RHS from B instead.
	OrigRows [][]rational.Rational
	// B is the original RHS vector, after sign normalization.
	B []rational.Rational

	ObjDir int // +1 for max, -1 for min
	Phase  Phase

	Hist  []PivotEvent // current phase's pivot history
	HistI []PivotEvent // frozen phase-I history, set at transition

	// Degenerated holds the row indices currently carrying a perturbed
	// RHS under flat_wolf; empty outside that mode. VObj preserves the
	// true objective value while perturbed.
	Degenerated []int
	VObj        rational.Rational

	Method              Method
	VirtualPerturbation bool
	FlatWolf            bool
	Interactive         bool

	rng        *rand.Rand
	interactor Interactor

	// totalArtificialCols is the fixed count of artificial columns
	// synthesized at construction; it decides the initial phase and
	// never changes afterward.
	totalArtificialCols int

	// artificialCols is the count of artificial columns currently
	// dropped from Cols(): zero through phase 1 (they are live, ordinary
	// columns while artificials are still in the basis) and set to
	// totalArtificialCols at the phase-I/II transition, once they have
	// all been driven out.
	artificialCols int

	// initialBasis[i] is the column that supplied row i's unit basis
	// at construction time (before any pivot). Sensitivity and
	// degeneracy-restore gather B^-1 through this mapping rather than
	// by slicing the trailing columns positionally, so the result is
	// correct regardless of how relation types are interleaved across
	// rows (see DESIGN.md).
	initialBasis []int

	// peekPos is the history cursor used by PeekBackward/PeekForward;
	// -1 means "not currently peeking".
	peekPos int
}

// Cols reports the number of live columns (artificials logically
// dropped after phase-I/II transition are excluded).
func (t *Tableau) Cols() int { return len(t.Vars) - t.artificialCols }

// M reports the number of constraint rows.
func (t *Tableau) M() int { return len(t.Rows) - 1 }

// Sigma returns the reduced-cost row.
func (t *Tableau) Sigma() []rational.Rational { return t.Rows[0] }
