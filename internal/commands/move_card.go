package commands

import "github.com/hylla/tavle/internal/board"

// MoveCardCommand relocates a card to an arbitrary position, possibly in
// another column. A same-column move past the source must account for the
// leftward shift the removal causes, so execute records the actual target
// index used after that adjustment and clamping; undo removes from the
// actual target and reinserts at the original source.
type MoveCardCommand struct {
	sourceColumnIndex int
	sourceCardIndex   int
	targetColumnIndex int
	targetCardIndex   int
	actualTargetIndex int
	hasActualTarget   bool
	card              *board.Card
	executed          bool
}

// NewMoveCard constructs the command.
func NewMoveCard(sourceColumnIndex, sourceCardIndex, targetColumnIndex, targetCardIndex int) *MoveCardCommand {
	return &MoveCardCommand{
		sourceColumnIndex: sourceColumnIndex,
		sourceCardIndex:   sourceCardIndex,
		targetColumnIndex: targetColumnIndex,
		targetCardIndex:   targetCardIndex,
	}
}

func (c *MoveCardCommand) Execute(b *board.Board) Result {
	if result, done := checkAlreadyExecuted(c.executed); done {
		return result
	}

	card, ok := b.Card(c.sourceColumnIndex, c.sourceCardIndex)
	if !ok {
		return failure("Card not found at column %d, index %d", c.sourceColumnIndex, c.sourceCardIndex)
	}
	c.card = &card

	// The target column must exist before anything is removed, or a
	// rejected move would destroy the source card.
	column, ok := b.Column(c.targetColumnIndex)
	if !ok {
		return failure("Failed to move card: no column at index %d", c.targetColumnIndex)
	}
	columnSize := column.Size()

	adjustedTarget := c.targetCardIndex
	if c.sourceColumnIndex == c.targetColumnIndex && c.sourceCardIndex < c.targetCardIndex {
		adjustedTarget = c.targetCardIndex - 1
	}
	if c.sourceColumnIndex == c.targetColumnIndex {
		adjustedTarget = min(adjustedTarget, columnSize-1)
	} else {
		adjustedTarget = min(adjustedTarget, columnSize)
	}
	adjustedTarget = max(adjustedTarget, 0)

	c.actualTargetIndex = adjustedTarget
	c.hasActualTarget = true

	if _, err := b.RemoveCard(c.sourceColumnIndex, c.sourceCardIndex); err != nil {
		return failure("Failed to move card: %v", err)
	}
	if err := b.InsertCard(c.targetColumnIndex, adjustedTarget, card); err != nil {
		return failure("Failed to move card: %v", err)
	}

	c.executed = true
	return success()
}

func (c *MoveCardCommand) Undo(b *board.Board) Result {
	if result, done := checkNotExecuted(c.executed); done {
		return result
	}
	if c.card == nil {
		return failure("Card data not available for undo")
	}
	if !c.hasActualTarget {
		return failure("Actual target index not available for undo")
	}

	if _, err := b.RemoveCard(c.targetColumnIndex, c.actualTargetIndex); err != nil {
		return failure("Failed to undo move: %v", err)
	}
	if err := b.InsertCard(c.sourceColumnIndex, c.sourceCardIndex, *c.card); err != nil {
		return failure("Failed to undo move: %v", err)
	}

	c.executed = false
	return success()
}

func (c *MoveCardCommand) Description() string {
	return "Move card"
}
