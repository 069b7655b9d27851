// Package app coordinates the board, the command history, the selection
// cursor, and the injected collaborators. One input event is processed
// fully, command construction through selection resync, before the next
// is accepted.
package app

import (
	"fmt"
	"time"

	"github.com/hylla/tavle/internal/board"
	"github.com/hylla/tavle/internal/commands"
	"github.com/hylla/tavle/internal/selector"
)

// App is the central coordinator. It owns the board and the history and
// talks to the file service, logger, and selector through their
// interfaces.
type App struct {
	fileName string
	logger   Logger
	board    *board.Board
	selector Selector
	files    FileService
	history  *commands.History
	clock    Clock
}

// New loads the board from fileName through files, falling back to a
// fresh board when the file is missing or unreadable. An empty fileName
// skips loading entirely.
func New(fileName string, files FileService, logger Logger) *App {
	return NewWithHistory(fileName, files, logger, commands.NewHistory())
}

// NewWithHistory is New with a caller-provided undo history, letting the
// binary honor a configured capacity.
func NewWithHistory(fileName string, files FileService, logger Logger, history *commands.History) *App {
	if history == nil {
		history = commands.NewHistory()
	}
	var b *board.Board
	if fileName != "" {
		loaded, err := files.LoadBoard(fileName)
		if err != nil {
			logger.Log(fmt.Sprintf("Cannot read file %s because %v, creating a new board", fileName, err))
			b = board.NewBoard()
		} else {
			b = loaded
		}
	} else {
		logger.Log("No file to open, creating a new board")
		b = board.NewBoard()
	}

	return NewFromParts(fileName, logger, b, selector.New(b), files, history, time.Now)
}

// NewFromParts wires an App from explicit collaborators.
func NewFromParts(
	fileName string,
	logger Logger,
	b *board.Board,
	sel Selector,
	files FileService,
	history *commands.History,
	clock Clock,
) *App {
	if clock == nil {
		clock = time.Now
	}
	return &App{
		fileName: fileName,
		logger:   logger,
		board:    b,
		selector: sel,
		files:    files,
		history:  history,
		clock:    clock,
	}
}

// Board exposes the board for rendering.
func (a *App) Board() *board.Board {
	return a.board
}

// FileName returns the current save target.
func (a *App) FileName() string {
	return a.fileName
}

// Selection returns the cursor position, or ok=false when selection is
// disabled.
func (a *App) Selection() (columnIndex, cardIndex int, ok bool) {
	return a.selector.Get()
}

// SelectedCard returns the card under the cursor.
func (a *App) SelectedCard() (board.Card, bool) {
	return a.selector.SelectedCard()
}

func (a *App) log(msg string) {
	a.logger.Log(msg)
}

func (a *App) logf(format string, args ...any) {
	a.logger.Log(fmt.Sprintf(format, args...))
}

// withSelectedCard runs action against the current cursor position and
// moves the cursor to the position action reports back. Without a
// selection it only logs.
func (a *App) withSelectedCard(action func(columnIndex, cardIndex int) (int, int)) {
	columnIndex, cardIndex, ok := a.selector.Get()
	if !ok {
		a.log("No card selected")
		return
	}
	newColumn, newCard := action(columnIndex, cardIndex)
	a.selector.Set(newColumn, newCard)
}

// cardSelection clears the flag at the old cursor position, runs the
// navigation move, and flags the card at the new position.
func (a *App) cardSelection(move func() (int, int)) {
	if columnIndex, cardIndex, ok := a.selector.Get(); ok {
		if err := a.board.DeselectCard(columnIndex, cardIndex); err != nil {
			a.logf("Failed to deselect card: %v", err)
		}
	}

	columnIndex, cardIndex := move()
	if err := a.board.SelectCard(columnIndex, cardIndex); err != nil {
		a.logf("Failed to select card: %v", err)
	}
}
