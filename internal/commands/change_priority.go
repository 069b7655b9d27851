package commands

import "github.com/hylla/tavle/internal/board"

// ChangePriorityCommand swaps a card with its neighbor within a column.
// Execute tracks the index the card actually landed on; undo swaps back
// in the opposite direction from there.
type ChangePriorityCommand struct {
	columnIndex       int
	cardIndex         int
	increase          bool
	originalCardIndex int
	hasOriginal       bool
	executed          bool
}

// NewIncreasePriority moves the card one position toward the top.
func NewIncreasePriority(columnIndex, cardIndex int) *ChangePriorityCommand {
	return &ChangePriorityCommand{
		columnIndex: columnIndex,
		cardIndex:   cardIndex,
		increase:    true,
	}
}

// NewDecreasePriority moves the card one position toward the bottom.
func NewDecreasePriority(columnIndex, cardIndex int) *ChangePriorityCommand {
	return &ChangePriorityCommand{
		columnIndex: columnIndex,
		cardIndex:   cardIndex,
	}
}

func (c *ChangePriorityCommand) Execute(b *board.Board) Result {
	if result, done := checkAlreadyExecuted(c.executed); done {
		return result
	}
	if _, ok := b.Card(c.columnIndex, c.cardIndex); !ok {
		return failure("Card not found at column %d, index %d", c.columnIndex, c.cardIndex)
	}

	c.originalCardIndex = c.cardIndex
	c.hasOriginal = true

	var newIndex int
	if c.increase {
		_, newIndex = b.IncreasePriority(c.columnIndex, c.cardIndex)
	} else {
		_, newIndex = b.DecreasePriority(c.columnIndex, c.cardIndex)
	}

	c.cardIndex = newIndex
	c.executed = true
	return success()
}

func (c *ChangePriorityCommand) Undo(b *board.Board) Result {
	if result, done := checkNotExecuted(c.executed); done {
		return result
	}
	if !c.hasOriginal {
		return failure("Original card index not available for undo")
	}
	if _, ok := b.Card(c.columnIndex, c.cardIndex); !ok {
		return failure("Card not found at column %d, index %d for undo", c.columnIndex, c.cardIndex)
	}

	if c.increase {
		b.DecreasePriority(c.columnIndex, c.cardIndex)
	} else {
		b.IncreasePriority(c.columnIndex, c.cardIndex)
	}

	c.cardIndex = c.originalCardIndex
	c.executed = false
	return success()
}

func (c *ChangePriorityCommand) Description() string {
	if c.increase {
		return "Increase priority"
	}
	return "Decrease priority"
}
