package app

import (
	"github.com/hylla/tavle/internal/board"
	"github.com/hylla/tavle/internal/commands"
)

// InsertPosition addresses where a new card lands relative to the
// cursor.
type InsertPosition int

// Insert positions relative to the selected card.
const (
	InsertCurrent InsertPosition = iota
	InsertNext
	InsertTop
	InsertBottom
)

// DefaultCardTitle is the short description every new card starts with.
const DefaultCardTitle = "TODO"

// SelectNextColumn moves the selection one column right.
func (a *App) SelectNextColumn() {
	a.cardSelection(a.selector.SelectNextColumn)
}

// SelectPrevColumn moves the selection one column left.
func (a *App) SelectPrevColumn() {
	a.cardSelection(a.selector.SelectPrevColumn)
}

// SelectNextCard moves the selection one card down.
func (a *App) SelectNextCard() {
	a.cardSelection(a.selector.SelectNextCard)
}

// SelectPrevCard moves the selection one card up.
func (a *App) SelectPrevCard() {
	a.cardSelection(a.selector.SelectPrevCard)
}

// DisableSelection clears the selected card's flag and then disables
// the cursor.
func (a *App) DisableSelection() {
	if columnIndex, cardIndex, ok := a.selector.Get(); ok {
		if err := a.board.DeselectCard(columnIndex, cardIndex); err != nil {
			a.logf("Failed to deselect card: %v", err)
		}
	}
	a.selector.DisableSelection()
}

// InsertCard creates a fresh card relative to the cursor and selects
// it. It returns the newly selected card, or ok=false when nothing is
// selected.
func (a *App) InsertCard(position InsertPosition) (board.Card, bool) {
	a.withSelectedCard(func(columnIndex, cardIndex int) (int, int) {
		if err := a.board.DeselectCard(columnIndex, cardIndex); err != nil {
			a.logf("Failed to deselect card: %v", err)
		}

		columnSize := 0
		if column, ok := a.board.Column(columnIndex); ok {
			columnSize = column.Size()
		}

		insertIndex := cardIndex
		switch position {
		case InsertNext:
			insertIndex = cardIndex + 1
		case InsertTop:
			insertIndex = 0
		case InsertBottom:
			insertIndex = columnSize
		}
		if insertIndex > columnSize {
			insertIndex = columnSize
		}

		card := board.NewCard(DefaultCardTitle, a.clock())
		cmd := commands.NewInsertCard(columnIndex, insertIndex, card)
		result := a.history.ExecuteCommand(cmd, a.board)
		if !result.Succeeded() {
			a.logf("Failed to insert card: %s", result.Message)
			return columnIndex, cardIndex
		}

		if err := a.board.SelectCard(columnIndex, insertIndex); err != nil {
			a.logf("Failed to select card: %v", err)
		}
		return columnIndex, insertIndex
	})

	return a.SelectedCard()
}

// RemoveCard deletes the selected card and moves the cursor to the
// nearest remaining card in the column.
func (a *App) RemoveCard() {
	a.withSelectedCard(func(columnIndex, cardIndex int) (int, int) {
		cmd := commands.NewRemoveCard(columnIndex, cardIndex)
		result := a.history.ExecuteCommand(cmd, a.board)
		if !result.Succeeded() {
			a.logf("Failed to remove card: %s", result.Message)
			return columnIndex, cardIndex
		}

		newSize := 0
		if column, ok := a.board.Column(columnIndex); ok {
			newSize = column.Size()
		}
		newCardIndex := 0
		if newSize > 0 {
			newCardIndex = cardIndex
			if newCardIndex > newSize-1 {
				newCardIndex = newSize - 1
			}
			if err := a.board.SelectCard(columnIndex, newCardIndex); err != nil {
				a.logf("Failed to select card: %v", err)
			}
		}
		return columnIndex, newCardIndex
	})
}

// UpdateCard replaces the selected card's content.
func (a *App) UpdateCard(card board.Card) {
	a.withSelectedCard(func(columnIndex, cardIndex int) (int, int) {
		cmd := commands.NewUpdateCard(columnIndex, cardIndex, card)
		result := a.history.ExecuteCommand(cmd, a.board)
		if !result.Succeeded() {
			a.logf("Failed to update card: %s", result.Message)
		}
		return columnIndex, cardIndex
	})
}

// IncreasePriority swaps the selected card with its upper neighbor and
// follows it with the cursor.
func (a *App) IncreasePriority() {
	a.withSelectedCard(func(columnIndex, cardIndex int) (int, int) {
		cmd := commands.NewIncreasePriority(columnIndex, cardIndex)
		result := a.history.ExecuteCommand(cmd, a.board)
		if !result.Succeeded() {
			a.logf("Failed to increase priority: %s", result.Message)
			return columnIndex, cardIndex
		}
		return columnIndex, a.flaggedIndexIn(columnIndex, cardIndex)
	})
}

// DecreasePriority swaps the selected card with its lower neighbor and
// follows it with the cursor.
func (a *App) DecreasePriority() {
	a.withSelectedCard(func(columnIndex, cardIndex int) (int, int) {
		cmd := commands.NewDecreasePriority(columnIndex, cardIndex)
		result := a.history.ExecuteCommand(cmd, a.board)
		if !result.Succeeded() {
			a.logf("Failed to decrease priority: %s", result.Message)
			return columnIndex, cardIndex
		}
		return columnIndex, a.flaggedIndexIn(columnIndex, cardIndex)
	})
}

// MarkCardDone moves the selected card to the top of the next column.
func (a *App) MarkCardDone() {
	a.withSelectedCard(func(columnIndex, cardIndex int) (int, int) {
		cmd := commands.NewMarkDone(columnIndex, cardIndex)
		result := a.history.ExecuteCommand(cmd, a.board)
		if !result.Succeeded() {
			a.logf("Failed to mark card done: %s", result.Message)
			return columnIndex, cardIndex
		}
		return a.flaggedPositionIn(columnIndex+1, columnIndex, cardIndex)
	})
}

// MarkCardUndone moves the selected card to the top of the previous
// column.
func (a *App) MarkCardUndone() {
	a.withSelectedCard(func(columnIndex, cardIndex int) (int, int) {
		cmd := commands.NewMarkUndone(columnIndex, cardIndex)
		result := a.history.ExecuteCommand(cmd, a.board)
		if !result.Succeeded() {
			a.logf("Failed to mark card undone: %s", result.Message)
			return columnIndex, cardIndex
		}
		return a.flaggedPositionIn(columnIndex-1, columnIndex, cardIndex)
	})
}

// Undo inverts the most recent command and resynchronizes the cursor to
// the flagged card wherever the inversion left it.
func (a *App) Undo() {
	result := a.history.Undo(a.board)
	if !result.Succeeded() {
		a.log(result.Message)
		return
	}
	a.resyncSelection()
}

// Redo re-executes the most recently undone command.
func (a *App) Redo() {
	result := a.history.Redo(a.board)
	if !result.Succeeded() {
		a.log(result.Message)
		return
	}
	a.resyncSelection()
}

// CanUndo reports whether an undo is available.
func (a *App) CanUndo() bool {
	return a.history.CanUndo()
}

// CanRedo reports whether a redo is available.
func (a *App) CanRedo() bool {
	return a.history.CanRedo()
}

// LastUndoDescription names the command Undo would invert next.
func (a *App) LastUndoDescription() (string, bool) {
	return a.history.LastUndoDescription()
}

// LastRedoDescription names the command Redo would re-execute next.
func (a *App) LastRedoDescription() (string, bool) {
	return a.history.LastRedoDescription()
}

// Write saves the board to the current file name.
func (a *App) Write() {
	if err := a.files.SaveBoard(a.board, a.fileName); err != nil {
		a.logf("Failed to save board to '%s': %v", a.fileName, err)
		return
	}
	a.logf("Board successfully saved to '%s'", a.fileName)
}

// WriteToFile retargets the save path and saves immediately.
func (a *App) WriteToFile(fileName string) {
	a.fileName = fileName
	a.Write()
}

// flaggedIndexIn scans columnIndex for the card carrying the selection
// flag, falling back to fallbackIndex.
func (a *App) flaggedIndexIn(columnIndex, fallbackIndex int) int {
	column, ok := a.board.Column(columnIndex)
	if !ok {
		return fallbackIndex
	}
	for i := 0; i < column.Size(); i++ {
		if card, ok := column.Card(i); ok && card.Selected {
			return i
		}
	}
	return fallbackIndex
}

// flaggedPositionIn scans targetColumn for the flagged card after a
// mark operation, keeping the previous position when the scan comes up
// empty.
func (a *App) flaggedPositionIn(targetColumn, fallbackColumn, fallbackIndex int) (int, int) {
	column, ok := a.board.Column(targetColumn)
	if !ok {
		return fallbackColumn, fallbackIndex
	}
	for i := 0; i < column.Size(); i++ {
		if card, ok := column.Card(i); ok && card.Selected {
			return targetColumn, i
		}
	}
	return fallbackColumn, fallbackIndex
}

// resyncSelection re-derives the cursor by scanning outward from the
// last known column for the flagged card. Structural undo/redo moves
// cards between physical positions, so the pre-command cursor cannot be
// trusted.
func (a *App) resyncSelection() {
	columnIndex, cardIndex, ok := a.selector.Get()
	if !ok {
		return
	}
	if foundColumn, foundIndex, found := a.board.FindSelectedFrom(columnIndex); found {
		a.selector.Set(foundColumn, foundIndex)
		return
	}
	a.selector.Set(columnIndex, cardIndex)
}
