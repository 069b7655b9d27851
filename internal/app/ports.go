package app

import (
	"time"

	"github.com/hylla/tavle/internal/board"
)

// FileService loads and saves boards. The concrete implementation lives
// in the storage layer; tests substitute a fake.
type FileService interface {
	LoadBoard(fileName string) (*board.Board, error)
	SaveBoard(b *board.Board, fileName string) error
}

// Logger receives every user-facing status and failure message.
type Logger interface {
	Log(message string)
}

// Selector tracks the cursor over the board.
type Selector interface {
	Get() (columnIndex, cardIndex int, ok bool)
	Set(columnIndex, cardIndex int)
	SelectedCard() (board.Card, bool)
	SelectNextColumn() (int, int)
	SelectPrevColumn() (int, int)
	SelectNextCard() (int, int)
	SelectPrevCard() (int, int)
	DisableSelection()
}

// Clock returns the current time.
type Clock func() time.Time
