package commands

import "github.com/hylla/tavle/internal/board"

// InsertCardCommand places a new card at a fixed position. Undo removes
// the card at that exact position.
type InsertCardCommand struct {
	columnIndex int
	cardIndex   int
	card        board.Card
	executed    bool
}

// NewInsertCard constructs the command; cardIndex may equal the column
// size to append.
func NewInsertCard(columnIndex, cardIndex int, card board.Card) *InsertCardCommand {
	return &InsertCardCommand{
		columnIndex: columnIndex,
		cardIndex:   cardIndex,
		card:        card,
	}
}

func (c *InsertCardCommand) Execute(b *board.Board) Result {
	if result, done := checkAlreadyExecuted(c.executed); done {
		return result
	}

	if err := b.InsertCard(c.columnIndex, c.cardIndex, c.card); err != nil {
		return failure("Failed to insert card: %v", err)
	}
	c.executed = true
	return success()
}

func (c *InsertCardCommand) Undo(b *board.Board) Result {
	if result, done := checkNotExecuted(c.executed); done {
		return result
	}

	if _, err := b.RemoveCard(c.columnIndex, c.cardIndex); err != nil {
		return failure("Failed to undo insert: %v", err)
	}
	c.executed = false
	return success()
}

func (c *InsertCardCommand) Description() string {
	return "Insert card"
}
