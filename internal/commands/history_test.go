package commands

import (
	"fmt"
	"testing"
	"time"

	"github.com/hylla/tavle/internal/board"
)

// stubCommand lets history tests control execute/undo outcomes without
// touching the board.
type stubCommand struct {
	name       string
	executeOk  bool
	undoOk     bool
	executions int
	undos      int
}

func (s *stubCommand) Execute(*board.Board) Result {
	s.executions++
	if s.executeOk {
		return success()
	}
	return failure("execute refused")
}

func (s *stubCommand) Undo(*board.Board) Result {
	s.undos++
	if s.undoOk {
		return success()
	}
	return failure("undo refused")
}

func (s *stubCommand) Description() string { return s.name }

func TestHistoryExecuteUndoRedo(t *testing.T) {
	b := makeBoard(t, "A", "B", "C")
	before := snapshot(t, b)
	h := NewHistory()

	cmd := NewInsertCard(0, 1, board.NewCard("X", time.Now()))
	if result := h.ExecuteCommand(cmd, b); !result.Succeeded() {
		t.Fatalf("execute failed: %s", result.Message)
	}
	assertColumn(t, b, 0, []string{"A", "X", "B", "C"})
	after := snapshot(t, b)

	if result := h.Undo(b); !result.Succeeded() {
		t.Fatalf("undo failed: %s", result.Message)
	}
	if snapshot(t, b) != before {
		t.Fatal("undo must restore the original board")
	}
	if !h.CanRedo() || h.CanUndo() {
		t.Fatal("undo must move the command to the redo stack")
	}

	if result := h.Redo(b); !result.Succeeded() {
		t.Fatalf("redo failed: %s", result.Message)
	}
	if snapshot(t, b) != after {
		t.Fatal("redo must reapply the command")
	}
	if !h.CanUndo() || h.CanRedo() {
		t.Fatal("redo must move the command back to the undo stack")
	}
}

func TestHistoryEmptyStacks(t *testing.T) {
	b := makeBoard(t, "A")
	h := NewHistory()

	if result := h.Undo(b); result.Succeeded() || result.Message != "Nothing to undo" {
		t.Fatalf("empty undo = %+v", result)
	}
	if result := h.Redo(b); result.Succeeded() || result.Message != "Nothing to redo" {
		t.Fatalf("empty redo = %+v", result)
	}
}

func TestHistoryFailedExecuteNotRecorded(t *testing.T) {
	b := makeBoard(t, "A")
	h := NewHistory()

	cmd := &stubCommand{name: "refuses", executeOk: false}
	if result := h.ExecuteCommand(cmd, b); result.Succeeded() {
		t.Fatal("execute must report the command's failure")
	}
	if h.CanUndo() {
		t.Fatal("failed command must not reach the undo stack")
	}
}

func TestHistoryExecuteClearsRedo(t *testing.T) {
	b := makeBoard(t, "A", "B")
	h := NewHistory()

	if result := h.ExecuteCommand(NewRemoveCard(0, 0), b); !result.Succeeded() {
		t.Fatalf("execute failed: %s", result.Message)
	}
	if result := h.Undo(b); !result.Succeeded() {
		t.Fatalf("undo failed: %s", result.Message)
	}
	if !h.CanRedo() {
		t.Fatal("expected a redoable command")
	}

	if result := h.ExecuteCommand(NewRemoveCard(0, 1), b); !result.Succeeded() {
		t.Fatalf("execute failed: %s", result.Message)
	}
	if h.CanRedo() {
		t.Fatal("a new command must clear the redo stack")
	}
}

func TestHistoryEvictsOldestAtCapacity(t *testing.T) {
	b := makeBoard(t)
	h := NewHistoryWithCapacity(3)
	now := time.Now()

	for i := 0; i < 5; i++ {
		cmd := NewInsertCard(0, i, board.NewCard(fmt.Sprintf("card-%d", i), now))
		if result := h.ExecuteCommand(cmd, b); !result.Succeeded() {
			t.Fatalf("execute %d failed: %s", i, result.Message)
		}
	}
	if got := h.UndoCount(); got != 3 {
		t.Fatalf("undo count = %d, want 3", got)
	}

	// Only the three newest inserts survive; undoing all of them leaves
	// the two evicted cards behind.
	for h.CanUndo() {
		if result := h.Undo(b); !result.Succeeded() {
			t.Fatalf("undo failed: %s", result.Message)
		}
	}
	assertColumn(t, b, 0, []string{"card-0", "card-1"})
}

func TestHistoryFailedUndoRestoresCommand(t *testing.T) {
	b := makeBoard(t, "A")
	h := NewHistory()

	cmd := &stubCommand{name: "sticky", executeOk: true, undoOk: false}
	if result := h.ExecuteCommand(cmd, b); !result.Succeeded() {
		t.Fatalf("execute failed: %s", result.Message)
	}

	if result := h.Undo(b); result.Succeeded() {
		t.Fatal("undo must report the command's failure")
	}
	if !h.CanUndo() || h.CanRedo() {
		t.Fatal("failed undo must restore the command to the undo stack")
	}
	if result := h.Undo(b); result.Succeeded() {
		t.Fatal("retried undo still fails")
	}
	if cmd.undos != 2 {
		t.Fatalf("undo attempts = %d, want 2", cmd.undos)
	}
}

func TestHistoryFailedRedoRestoresCommand(t *testing.T) {
	b := makeBoard(t, "A")
	h := NewHistory()

	cmd := &stubCommand{name: "flaky", executeOk: true, undoOk: true}
	if result := h.ExecuteCommand(cmd, b); !result.Succeeded() {
		t.Fatalf("execute failed: %s", result.Message)
	}
	if result := h.Undo(b); !result.Succeeded() {
		t.Fatalf("undo failed: %s", result.Message)
	}

	cmd.executeOk = false
	if result := h.Redo(b); result.Succeeded() {
		t.Fatal("redo must report the command's failure")
	}
	if !h.CanRedo() || h.CanUndo() {
		t.Fatal("failed redo must restore the command to the redo stack")
	}
}

func TestHistoryDescriptions(t *testing.T) {
	b := makeBoard(t, "A")
	h := NewHistory()

	if _, ok := h.LastUndoDescription(); ok {
		t.Fatal("empty history has no undo description")
	}
	if _, ok := h.LastRedoDescription(); ok {
		t.Fatal("empty history has no redo description")
	}

	if result := h.ExecuteCommand(NewRemoveCard(0, 0), b); !result.Succeeded() {
		t.Fatalf("execute failed: %s", result.Message)
	}
	if desc, ok := h.LastUndoDescription(); !ok || desc != "Remove card" {
		t.Fatalf("undo description = %q, %v", desc, ok)
	}

	if result := h.Undo(b); !result.Succeeded() {
		t.Fatalf("undo failed: %s", result.Message)
	}
	if desc, ok := h.LastRedoDescription(); !ok || desc != "Remove card" {
		t.Fatalf("redo description = %q, %v", desc, ok)
	}
}

func TestHistoryClear(t *testing.T) {
	b := makeBoard(t, "A", "B")
	h := NewHistory()

	if result := h.ExecuteCommand(NewRemoveCard(0, 0), b); !result.Succeeded() {
		t.Fatalf("execute failed: %s", result.Message)
	}
	if result := h.Undo(b); !result.Succeeded() {
		t.Fatalf("undo failed: %s", result.Message)
	}
	if result := h.ExecuteCommand(NewRemoveCard(0, 1), b); !result.Succeeded() {
		t.Fatalf("execute failed: %s", result.Message)
	}

	h.Clear()
	if h.CanUndo() || h.CanRedo() {
		t.Fatal("clear must drop both stacks")
	}
}

func TestHistoryNonPositiveCapacity(t *testing.T) {
	b := makeBoard(t)
	h := NewHistoryWithCapacity(0)
	now := time.Now()

	for i := 0; i < DefaultMaxHistory+10; i++ {
		cmd := NewInsertCard(0, i, board.NewCard(fmt.Sprintf("card-%d", i), now))
		if result := h.ExecuteCommand(cmd, b); !result.Succeeded() {
			t.Fatalf("execute %d failed: %s", i, result.Message)
		}
	}
	if got := h.UndoCount(); got != DefaultMaxHistory {
		t.Fatalf("undo count = %d, want %d", got, DefaultMaxHistory)
	}
}
