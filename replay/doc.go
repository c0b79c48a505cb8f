// Package replay writes a tab-separated, formula-mode dump of a solve
// suitable for re-import into a spreadsheet: the original model text,
// every tableau of phase I and phase II, and the four report tables
// (solution, constraint activity, shadow prices with RHS ranges, and
// objective-coefficient ranges).
//
// A Sink wraps any io.Writer — a *os.File for the CLI, a *bytes.Buffer
// in tests — rather than redirecting a package-global output stream.
package replay
