package model

import "errors"

// Sentinel errors for model. Parse wraps these with line-level context
// via fmt.Errorf("%w: ..."); callers branch with errors.Is.
var (
	// ErrParse marks any malformed-grammar condition: a missing
	// max/min keyword, an illegal number, a missing "st" line, an
	// unrecognized relation, a line with no comparison, or similar.
	ErrParse = errors.New("model: malformed model")

	// ErrInvalidVarName indicates a variable name did not match
	// [A-Za-z][A-Za-z0-9]*.
	ErrInvalidVarName = errors.New("model: invalid variable name")

	// ErrDuplicateVarInRow indicates the same variable appeared twice
	// in one linear expression.
	ErrDuplicateVarInRow = errors.New("model: repeated variable in expression")

	// ErrConflictingDecl indicates a variable was declared both free
	// and integer (or binary), which the grammar forbids.
	ErrConflictingDecl = errors.New("model: variable declared both free and integer")

	// ErrUnknownVar indicates an operation referenced a variable that
	// does not appear in any row of the model.
	ErrUnknownVar = errors.New("model: unknown variable")
)
