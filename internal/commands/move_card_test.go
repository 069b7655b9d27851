package commands

import (
	"testing"
	"time"

	"github.com/hylla/tavle/internal/board"
)

func TestMoveCardAcrossColumns(t *testing.T) {
	b := makeBoard(t, "A", "B")
	if err := b.InsertCard(1, 0, board.NewCard("X", time.Now())); err != nil {
		t.Fatalf("seed: %v", err)
	}
	before := snapshot(t, b)

	cmd := NewMoveCard(0, 0, 1, 1)
	if result := cmd.Execute(b); !result.Succeeded() {
		t.Fatalf("execute failed: %s", result.Message)
	}
	assertColumn(t, b, 0, []string{"B"})
	assertColumn(t, b, 1, []string{"X", "A"})

	if result := cmd.Undo(b); !result.Succeeded() {
		t.Fatalf("undo failed: %s", result.Message)
	}
	if snapshot(t, b) != before {
		t.Fatal("undo must restore the exact serialized board")
	}
}

func TestMoveCardSameColumnForward(t *testing.T) {
	b := makeBoard(t, "A", "B", "C", "D")
	before := snapshot(t, b)

	// Moving A to nominal index 2 lands on index 1 after the removal
	// shifts everything left.
	cmd := NewMoveCard(0, 0, 0, 2)
	if result := cmd.Execute(b); !result.Succeeded() {
		t.Fatalf("execute failed: %s", result.Message)
	}
	assertColumn(t, b, 0, []string{"B", "A", "C", "D"})

	if result := cmd.Undo(b); !result.Succeeded() {
		t.Fatalf("undo failed: %s", result.Message)
	}
	if snapshot(t, b) != before {
		t.Fatal("undo must restore the original order")
	}
}

func TestMoveCardMissingTargetColumnLeavesBoardUntouched(t *testing.T) {
	b := makeBoard(t, "X")
	before := snapshot(t, b)

	cmd := NewMoveCard(0, 0, 9, 0)
	if result := cmd.Execute(b); result.Succeeded() {
		t.Fatal("expected failure for a missing target column")
	}
	if snapshot(t, b) != before {
		t.Fatal("rejected move must leave the board untouched")
	}
	assertColumn(t, b, 0, []string{"X"})

	if result := cmd.Undo(b); result.Succeeded() {
		t.Fatal("undo of a failed move must fail")
	}
}

func TestMoveCardNegativeTargetIndexLandsOnTop(t *testing.T) {
	b := makeBoard(t, "A", "B")
	if err := b.InsertCard(1, 0, board.NewCard("X", time.Now())); err != nil {
		t.Fatalf("seed: %v", err)
	}
	before := snapshot(t, b)

	cmd := NewMoveCard(0, 0, 1, -5)
	if result := cmd.Execute(b); !result.Succeeded() {
		t.Fatalf("execute failed: %s", result.Message)
	}
	assertColumn(t, b, 1, []string{"A", "X"})

	if result := cmd.Undo(b); !result.Succeeded() {
		t.Fatalf("undo failed: %s", result.Message)
	}
	if snapshot(t, b) != before {
		t.Fatal("undo must restore the exact serialized board")
	}
}

func TestMoveCardSameColumnBackward(t *testing.T) {
	b := makeBoard(t, "A", "B", "C")
	before := snapshot(t, b)

	cmd := NewMoveCard(0, 2, 0, 0)
	if result := cmd.Execute(b); !result.Succeeded() {
		t.Fatalf("execute failed: %s", result.Message)
	}
	assertColumn(t, b, 0, []string{"C", "A", "B"})

	if result := cmd.Undo(b); !result.Succeeded() {
		t.Fatalf("undo failed: %s", result.Message)
	}
	if snapshot(t, b) != before {
		t.Fatal("undo must restore the original order")
	}
}

func TestMoveCardClampsTargetIndex(t *testing.T) {
	b := makeBoard(t, "A", "B")

	// Cross-column target past the end clamps to an append.
	cmd := NewMoveCard(0, 0, 1, 99)
	if result := cmd.Execute(b); !result.Succeeded() {
		t.Fatalf("execute failed: %s", result.Message)
	}
	assertColumn(t, b, 1, []string{"A"})

	if result := cmd.Undo(b); !result.Succeeded() {
		t.Fatalf("undo failed: %s", result.Message)
	}
	assertColumn(t, b, 0, []string{"A", "B"})
}

func TestMoveCardSameColumnClampsToLastIndex(t *testing.T) {
	b := makeBoard(t, "A", "B", "C")

	cmd := NewMoveCard(0, 0, 0, 99)
	if result := cmd.Execute(b); !result.Succeeded() {
		t.Fatalf("execute failed: %s", result.Message)
	}
	assertColumn(t, b, 0, []string{"B", "C", "A"})
}

func TestMoveCardMissingSource(t *testing.T) {
	b := makeBoard(t, "A")
	before := snapshot(t, b)

	cmd := NewMoveCard(0, 5, 1, 0)
	if result := cmd.Execute(b); result.Succeeded() {
		t.Fatal("moving a missing card must fail")
	}
	if snapshot(t, b) != before {
		t.Fatal("failed execute must not mutate the board")
	}
}

func TestMoveCardGuards(t *testing.T) {
	b := makeBoard(t, "A")
	cmd := NewMoveCard(0, 0, 1, 0)

	if result := cmd.Undo(b); result.Succeeded() {
		t.Fatal("undo before execute must fail")
	}
	if result := cmd.Execute(b); !result.Succeeded() {
		t.Fatalf("execute failed: %s", result.Message)
	}
	if result := cmd.Execute(b); result.Succeeded() {
		t.Fatal("double execute must fail")
	}
}
