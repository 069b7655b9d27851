package commands

import "github.com/hylla/tavle/internal/board"

// MarkCardCommand moves a card to the adjacent column through the board's
// done/undone transitions. The board reports a boundary by returning the
// input position unchanged; execute turns that into a failure. Undo runs
// the opposite transition and refuses to report success unless the card
// lands exactly on the originally captured position.
type MarkCardCommand struct {
	columnIndex         int
	cardIndex           int
	markDone            bool
	originalColumnIndex int
	originalCardIndex   int
	hasOriginal         bool
	executed            bool
}

// NewMarkDone moves the card to the top of the next column.
func NewMarkDone(columnIndex, cardIndex int) *MarkCardCommand {
	return &MarkCardCommand{
		columnIndex: columnIndex,
		cardIndex:   cardIndex,
		markDone:    true,
	}
}

// NewMarkUndone moves the card to the top of the previous column.
func NewMarkUndone(columnIndex, cardIndex int) *MarkCardCommand {
	return &MarkCardCommand{
		columnIndex: columnIndex,
		cardIndex:   cardIndex,
	}
}

func (c *MarkCardCommand) Execute(b *board.Board) Result {
	if result, done := checkAlreadyExecuted(c.executed); done {
		return result
	}
	if result, ok := validateCardExists(b, c.columnIndex, c.cardIndex); !ok {
		return result
	}

	c.originalColumnIndex = c.columnIndex
	c.originalCardIndex = c.cardIndex
	c.hasOriginal = true

	var newColumn, newCardIndex int
	if c.markDone {
		newColumn, newCardIndex = b.MarkCardDone(c.columnIndex, c.cardIndex)
	} else {
		newColumn, newCardIndex = b.MarkCardUndone(c.columnIndex, c.cardIndex)
	}

	if newColumn == c.columnIndex && newCardIndex == c.cardIndex {
		return failure("Cannot mark card done/undone at column boundary")
	}

	c.columnIndex = newColumn
	c.cardIndex = newCardIndex
	c.executed = true
	return success()
}

func (c *MarkCardCommand) Undo(b *board.Board) Result {
	if result, done := checkNotExecuted(c.executed); done {
		return result
	}
	if !c.hasOriginal {
		return failure("Original position not available for undo")
	}
	if result, ok := validateCardExistsForUndo(b, c.columnIndex, c.cardIndex); !ok {
		return result
	}

	var newColumn, newCardIndex int
	if c.markDone {
		newColumn, newCardIndex = b.MarkCardUndone(c.columnIndex, c.cardIndex)
	} else {
		newColumn, newCardIndex = b.MarkCardDone(c.columnIndex, c.cardIndex)
	}

	if newColumn != c.originalColumnIndex || newCardIndex != c.originalCardIndex {
		return failure("Failed to undo mark card operation")
	}

	c.columnIndex = c.originalColumnIndex
	c.cardIndex = c.originalCardIndex
	c.executed = false
	return success()
}

func (c *MarkCardCommand) Description() string {
	if c.markDone {
		return "Mark card done"
	}
	return "Mark card undone"
}
