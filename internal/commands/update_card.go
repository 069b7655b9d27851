package commands

import "github.com/hylla/tavle/internal/board"

// UpdateCardCommand replaces a card's value in place, capturing the
// pre-update value for undo.
type UpdateCardCommand struct {
	columnIndex int
	cardIndex   int
	newCard     board.Card
	oldCard     *board.Card
	executed    bool
}

// NewUpdateCard constructs the command.
func NewUpdateCard(columnIndex, cardIndex int, newCard board.Card) *UpdateCardCommand {
	return &UpdateCardCommand{
		columnIndex: columnIndex,
		cardIndex:   cardIndex,
		newCard:     newCard,
	}
}

func (c *UpdateCardCommand) Execute(b *board.Board) Result {
	if result, done := checkAlreadyExecuted(c.executed); done {
		return result
	}
	if result, ok := validateCardExists(b, c.columnIndex, c.cardIndex); !ok {
		return result
	}

	oldCard, _ := b.Card(c.columnIndex, c.cardIndex)
	c.oldCard = &oldCard

	if err := b.UpdateCard(c.columnIndex, c.cardIndex, c.newCard); err != nil {
		return failure("Failed to update card: %v", err)
	}
	c.executed = true
	return success()
}

func (c *UpdateCardCommand) Undo(b *board.Board) Result {
	if result, done := checkNotExecuted(c.executed); done {
		return result
	}
	if c.oldCard == nil {
		return failure("Old card data not available for undo")
	}

	if err := b.UpdateCard(c.columnIndex, c.cardIndex, *c.oldCard); err != nil {
		return failure("Failed to undo update: %v", err)
	}
	c.executed = false
	return success()
}

func (c *UpdateCardCommand) Description() string {
	return "Update card"
}
