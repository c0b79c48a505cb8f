package repl

import "errors"

// ErrNoSelection is returned by Menu.Choose when the input line is
// blank or the input is closed (EOF).
var ErrNoSelection = errors.New("repl: no selection")

// ErrBadSelection is returned for a menu choice outside 0..8.
var ErrBadSelection = errors.New("repl: selection out of range")
