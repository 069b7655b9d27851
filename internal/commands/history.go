package commands

import "github.com/hylla/tavle/internal/board"

// DefaultMaxHistory bounds both stacks when no capacity is given.
const DefaultMaxHistory = 50

// History keeps two bounded stacks of commands. Executing a new command
// forks no timelines: the redo stack is cleared. A command whose undo or
// redo fails is restored to the stack it came from, so it is never lost
// and a later retry stays possible.
type History struct {
	undoStack  []Command
	redoStack  []Command
	maxHistory int
}

// NewHistory constructs a history bounded at DefaultMaxHistory.
func NewHistory() *History {
	return NewHistoryWithCapacity(DefaultMaxHistory)
}

// NewHistoryWithCapacity constructs a history bounded at maxHistory
// entries per stack. Non-positive capacities fall back to the default.
func NewHistoryWithCapacity(maxHistory int) *History {
	if maxHistory <= 0 {
		maxHistory = DefaultMaxHistory
	}
	return &History{maxHistory: maxHistory}
}

// ExecuteCommand runs cmd against b. On success the command is pushed
// onto the undo stack, evicting the oldest entry at capacity; on failure
// it is discarded.
func (h *History) ExecuteCommand(cmd Command, b *board.Board) Result {
	h.redoStack = h.redoStack[:0]

	result := cmd.Execute(b)
	if result.Succeeded() {
		h.pushUndo(cmd)
	}
	return result
}

// Undo inverts the most recent command and moves it to the redo stack.
func (h *History) Undo(b *board.Board) Result {
	if len(h.undoStack) == 0 {
		return failure("Nothing to undo")
	}

	cmd := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]

	result := cmd.Undo(b)
	if result.Succeeded() {
		h.pushRedo(cmd)
	} else {
		h.undoStack = append(h.undoStack, cmd)
	}
	return result
}

// Redo re-executes the most recently undone command and moves it back to
// the undo stack.
func (h *History) Redo(b *board.Board) Result {
	if len(h.redoStack) == 0 {
		return failure("Nothing to redo")
	}

	cmd := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]

	result := cmd.Execute(b)
	if result.Succeeded() {
		h.pushUndo(cmd)
	} else {
		h.redoStack = append(h.redoStack, cmd)
	}
	return result
}

// CanUndo reports whether the undo stack is non-empty.
func (h *History) CanUndo() bool {
	return len(h.undoStack) > 0
}

// CanRedo reports whether the redo stack is non-empty.
func (h *History) CanRedo() bool {
	return len(h.redoStack) > 0
}

// UndoCount returns the undo stack depth.
func (h *History) UndoCount() int {
	return len(h.undoStack)
}

// RedoCount returns the redo stack depth.
func (h *History) RedoCount() int {
	return len(h.redoStack)
}

// Clear drops both stacks.
func (h *History) Clear() {
	h.undoStack = nil
	h.redoStack = nil
}

// LastUndoDescription returns the description of the command Undo would
// invert next.
func (h *History) LastUndoDescription() (string, bool) {
	if len(h.undoStack) == 0 {
		return "", false
	}
	return h.undoStack[len(h.undoStack)-1].Description(), true
}

// LastRedoDescription returns the description of the command Redo would
// re-execute next.
func (h *History) LastRedoDescription() (string, bool) {
	if len(h.redoStack) == 0 {
		return "", false
	}
	return h.redoStack[len(h.redoStack)-1].Description(), true
}

func (h *History) pushUndo(cmd Command) {
	if len(h.undoStack) >= h.maxHistory {
		h.undoStack = h.undoStack[1:]
	}
	h.undoStack = append(h.undoStack, cmd)
}

func (h *History) pushRedo(cmd Command) {
	if len(h.redoStack) >= h.maxHistory {
		h.redoStack = h.redoStack[1:]
	}
	h.redoStack = append(h.redoStack, cmd)
}
