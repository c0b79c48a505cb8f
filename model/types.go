package model

import (
	"regexp"
	"strings"

	"github.com/corvidlabs/simplex/rational"
)

// Relation is the comparison operator of a constraint row.
type Relation int

const (
	// LE is "<=" (and "<", which the grammar treats identically).
	LE Relation = iota
	// GE is ">=" (and ">").
	GE
	// EQ is "=" or "==".
	EQ
)

// String renders the relation the way the grammar would read it back.
func (r Relation) String() string {
	switch r {
	case LE:
		return "<="
	case GE:
		return ">="
	case EQ:
		return "="
	default:
		return "?"
	}
}

// Row is one line of the model: an objective (Row 0) or a constraint.
// Coeffs maps variable name to its (possibly zero, but typically
// nonzero) coefficient. For the objective row, Rel and RHS are unused.
type Row struct {
	Coeffs map[string]rational.Rational
	Rel    Relation
	RHS    rational.Rational
	Name   string
}

// varNamePattern is the grammar's variable-name rule.
var varNamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*$`)

// Model is a normalized linear program: an objective row, zero or more
// constraint rows, a free-variable set, and an integer-variable set.
// Every variable appearing in any row is present in Vars.
type Model struct {
	Rows     []Row // Rows[0] is the objective
	Maximize bool

	Vars []string // first-seen declaration order, pre-sort

	free map[string]bool
	ints map[string]bool
}

// New constructs an empty Model with the given objective direction and
// an empty objective row ready for terms to be attached.
func New(maximize bool) *Model {
	return &Model{
		Rows:     []Row{{Coeffs: map[string]rational.Rational{}}},
		Maximize: maximize,
		free:     map[string]bool{},
		ints:     map[string]bool{},
	}
}

// Objective returns the objective row (Rows[0]).
func (m *Model) Objective() Row { return m.Rows[0] }

// Constraints returns the constraint rows (Rows[1:]).
func (m *Model) Constraints() []Row { return m.Rows[1:] }

// IsFree reports whether v was declared free.
func (m *Model) IsFree(v string) bool { return m.free[v] }

// IsInt reports whether v was declared integer (directly, or via bin:).
func (m *Model) IsInt(v string) bool { return m.ints[v] }

// FreeVars returns the free-variable set in SortVarNames order.
func (m *Model) FreeVars() []string {
	out := make([]string, 0, len(m.free))
	for v := range m.free {
		out = append(out, v)
	}
	return SortVarNames(out)
}

// IntVars returns the integer-variable set, in first-seen declaration
// order (branch-and-bound's ChooseVar walks this order, see bnb).
func (m *Model) IntVars() []string {
	out := make([]string, 0, len(m.ints))
	for _, v := range m.Vars {
		if m.ints[v] {
			out = append(out, v)
		}
	}
	return out
}

// HasIntVars reports whether the model declares any integer variables,
// i.e. whether it requires branch-and-bound rather than a plain LP solve.
func (m *Model) HasIntVars() bool { return len(m.ints) > 0 }

// registerVar validates name and appends it to Vars if new.
func (m *Model) registerVar(name string) error {
	if !varNamePattern.MatchString(name) {
		return ErrInvalidVarName
	}
	for _, v := range m.Vars {
		if v == name {
			return nil
		}
	}
	m.Vars = append(m.Vars, name)
	return nil
}

// SetObjective attaches the objective row's coefficients, registering
// every variable named in terms.
func (m *Model) SetObjective(terms map[string]rational.Rational) error {
	for v := range terms {
		if err := m.registerVar(v); err != nil {
			return err
		}
	}
	m.Rows[0].Coeffs = terms
	return nil
}

// AddConstraint appends a constraint row, registering every variable
// named in terms.
func (m *Model) AddConstraint(terms map[string]rational.Rational, rel Relation, rhs rational.Rational, name string) error {
	for v := range terms {
		if err := m.registerVar(v); err != nil {
			return err
		}
	}
	m.Rows = append(m.Rows, Row{Coeffs: terms, Rel: rel, RHS: rhs, Name: name})
	return nil
}

// MarkFree declares v free (unrestricted in sign). Returns
// ErrConflictingDecl if v is already declared integer.
func (m *Model) MarkFree(v string) error {
	if err := m.registerVar(v); err != nil {
		return err
	}
	if m.ints[v] {
		return ErrConflictingDecl
	}
	m.free[v] = true
	return nil
}

// MarkInt declares v integer. Returns ErrConflictingDecl if v is
// already declared free.
func (m *Model) MarkInt(v string) error {
	if err := m.registerVar(v); err != nil {
		return err
	}
	if m.free[v] {
		return ErrConflictingDecl
	}
	m.ints[v] = true
	return nil
}

// MarkBin declares v integer and appends an automatic "v <= 1" row,
// per the grammar's bin: sugar.
func (m *Model) MarkBin(v string) error {
	if err := m.MarkInt(v); err != nil {
		return err
	}
	one := rational.One()
	return m.AddConstraint(map[string]rational.Rational{v: one}, LE, one, v+"]")
}

// SortedVars returns m.Vars (plus any shadow "!v" names passed in)
// ordered by the model's stable name-stripped/trailing-index rule.
func (m *Model) SortedVars(extra ...string) []string {
	all := make([]string, 0, len(m.Vars)+len(extra))
	all = append(all, m.Vars...)
	all = append(all, extra...)
	return SortVarNames(all)
}

// ParsedVarStripPrefix reports whether a column name is a shadow
// column synthesized for a free variable ("!v").
func ParsedVarStripPrefix(name string) (stripped string, isShadow bool) {
	if strings.HasPrefix(name, "!") {
		return name[1:], true
	}
	return name, false
}
