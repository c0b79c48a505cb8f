package bnb

import (
	"github.com/corvidlabs/simplex/model"
	"github.com/corvidlabs/simplex/rational"
)

// ancestorPath walks parent links from idx up to (and including) the
// root, returning the bound chain in root-to-node order.
func (tr *Tree) ancestorPath(idx int) []bound {
	var rev []bound
	for idx >= 0 {
		n := tr.Nodes[idx]
		if n.Bound.Var != "" {
			rev = append(rev, n.Bound)
		}
		idx = n.ParentIdx
	}
	path := make([]bound, len(rev))
	for i, b := range rev {
		path[len(rev)-1-i] = b
	}
	return path
}

// buildModel reconstructs a fresh Model holding exactly the root's
// objective and Morig constraint rows, plus one constraint row per
// entry of path, in order — per spec.md §4.10 step 1's "truncate, then
// replay ancestor bounds" rule.
func (tr *Tree) buildModel(path []bound) (*model.Model, error) {
	root := tr.orig
	m := model.New(root.Maximize)

	if err := m.SetObjective(cloneCoeffs(root.Objective().Coeffs)); err != nil {
		return nil, err
	}
	constraints := root.Constraints()
	for i := 0; i < tr.Morig; i++ {
		c := constraints[i]
		if err := m.AddConstraint(cloneCoeffs(c.Coeffs), c.Rel, c.RHS, c.Name); err != nil {
			return nil, err
		}
	}
	for _, v := range root.FreeVars() {
		if err := m.MarkFree(v); err != nil {
			return nil, err
		}
	}
	for _, v := range root.IntVars() {
		if err := m.MarkInt(v); err != nil {
			return nil, err
		}
	}
	for _, b := range path {
		terms := map[string]rational.Rational{b.Var: rational.One()}
		if err := m.AddConstraint(terms, b.Rel, rational.FromInt64(b.K), ""); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func cloneCoeffs(in map[string]rational.Rational) map[string]rational.Rational {
	out := make(map[string]rational.Rational, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
