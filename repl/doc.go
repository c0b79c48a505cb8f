// Package repl provides a minimal, non-interactive-by-default driver
// around package tableau: a numbered menu of built-in example models,
// a bufio.Scanner prompt loop implementing tableau.Interactor for the
// method/perturbation/wolf/undo/peek/shake commands, and a thin
// wrapper for loading a user-typed or file-based model. It is not a
// polished line-editing terminal UI — that is explicitly out of scope.
package repl
