// Package commands implements the reversible operations over a board and
// the bounded undo/redo history that orchestrates them. Each command
// captures, at execute time, exactly the state its undo needs — the
// actual indices used after clamping, and full card values for anything
// destroyed — so an undo restores the board byte for byte.
package commands

import (
	"fmt"

	"github.com/hylla/tavle/internal/board"
)

// Result reports how a command invocation concluded. A failed invocation
// performs no mutation.
type Result struct {
	Ok      bool
	Message string
}

// Succeeded reports whether the invocation mutated the board.
func (r Result) Succeeded() bool {
	return r.Ok
}

func success() Result {
	return Result{Ok: true}
}

func failure(format string, args ...any) Result {
	return Result{Message: fmt.Sprintf(format, args...)}
}

// Command is one reversible edit. Execute moves the command from
// unexecuted to executed; Undo moves it back. Executing an executed
// command, or undoing an unexecuted one, fails without mutating anything.
type Command interface {
	Execute(b *board.Board) Result
	Undo(b *board.Board) Result
	Description() string
}
