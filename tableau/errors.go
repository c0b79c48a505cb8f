package tableau

import "errors"

var (
	// ErrInfeasible is returned when phase I ends with a nonzero
	// sum-of-artificials objective: no feasible point exists.
	ErrInfeasible = errors.New("tableau: infeasible")

	// ErrUnbounded is returned when the leaving-row rule finds no row
	// with a positive coefficient in the entering column.
	ErrUnbounded = errors.New("tableau: unbounded")

	// ErrCanonicalization is returned when phase-I/II transition finds
	// an artificial stuck in the basis at a zero RHS with no non-
	// artificial column available to pivot it out. Whether this means
	// the relaxation is infeasible or merely carries a redundant row
	// is undetermined by the tableau alone; the caller must inspect
	// and decide rather than have the solve silently continue.
	ErrCanonicalization = errors.New("tableau: artificial variable could not be removed from basis")

	// ErrIterationCapHit is returned when Solve exhausts maxit without
	// reaching optimality. The tableau's phase is negated to record
	// the suspension; resuming is not guaranteed to behave as a single
	// continuous solve and should be treated as terminal for reporting.
	ErrIterationCapHit = errors.New("tableau: iteration cap reached")

	// ErrNoHistory is returned by Undo/Peek when there is no pivot to
	// reverse or inspect.
	ErrNoHistory = errors.New("tableau: no pivot history")

	// ErrNotOptimal is returned by sensitivity computations when the
	// tableau has not reached a phase-II optimum.
	ErrNotOptimal = errors.New("tableau: sensitivity requires a phase-II optimum")

	// ErrShakeInfeasible is returned by Shake when the backward replay
	// of the perturbed RHS ever drives a row negative.
	ErrShakeInfeasible = errors.New("tableau: shake found infeasibility")
)
