package reporter

import "errors"

// ErrNotOptimal is returned by New when the tableau has not reached a
// phase-II optimum — sensitivity analysis is undefined before then.
var ErrNotOptimal = errors.New("reporter: tableau has not reached a phase-II optimum")
