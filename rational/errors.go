package rational

import "errors"

// Sentinel errors for rational. Callers should branch with errors.Is;
// messages are never stringified with caller-specific context here —
// wrap with fmt.Errorf("%w: ...") at the call site if more detail helps.
var (
	// ErrBadLiteral indicates a string failed to parse as an integer,
	// decimal, or p/q fraction.
	ErrBadLiteral = errors.New("rational: malformed numeric literal")

	// ErrZeroDenominator indicates a p/q literal (or a direct
	// numerator/denominator construction) had q == 0.
	ErrZeroDenominator = errors.New("rational: zero denominator")
)
