package commands

import "github.com/hylla/tavle/internal/board"

// RemoveCardCommand deletes the card at a position, keeping the removed
// card's full value so undo can reinsert it at the original index.
type RemoveCardCommand struct {
	columnIndex int
	cardIndex   int
	card        *board.Card
	executed    bool
}

// NewRemoveCard constructs the command.
func NewRemoveCard(columnIndex, cardIndex int) *RemoveCardCommand {
	return &RemoveCardCommand{
		columnIndex: columnIndex,
		cardIndex:   cardIndex,
	}
}

func (c *RemoveCardCommand) Execute(b *board.Board) Result {
	if result, done := checkAlreadyExecuted(c.executed); done {
		return result
	}
	if result, ok := validateCardExists(b, c.columnIndex, c.cardIndex); !ok {
		return result
	}

	card, _ := b.Card(c.columnIndex, c.cardIndex)
	c.card = &card

	if _, err := b.RemoveCard(c.columnIndex, c.cardIndex); err != nil {
		return failure("Failed to remove card: %v", err)
	}
	c.executed = true
	return success()
}

func (c *RemoveCardCommand) Undo(b *board.Board) Result {
	if result, done := checkNotExecuted(c.executed); done {
		return result
	}
	if c.card == nil {
		return failure("Card data not available for undo")
	}

	if err := b.InsertCard(c.columnIndex, c.cardIndex, *c.card); err != nil {
		return failure("Failed to undo remove: %v", err)
	}
	c.executed = false
	return success()
}

func (c *RemoveCardCommand) Description() string {
	return "Remove card"
}
