package commands

import "github.com/hylla/tavle/internal/board"

func checkAlreadyExecuted(executed bool) (Result, bool) {
	if executed {
		return failure("Command already executed"), true
	}
	return Result{}, false
}

func checkNotExecuted(executed bool) (Result, bool) {
	if !executed {
		return failure("Command was not executed"), true
	}
	return Result{}, false
}

func validateCardExists(b *board.Board, columnIndex, cardIndex int) (Result, bool) {
	if _, ok := b.Card(columnIndex, cardIndex); !ok {
		return failure("Card not found at column %d, index %d", columnIndex, cardIndex), false
	}
	return success(), true
}

func validateCardExistsForUndo(b *board.Board, columnIndex, cardIndex int) (Result, bool) {
	if _, ok := b.Card(columnIndex, cardIndex); !ok {
		return failure("Card not found at column %d, index %d for undo", columnIndex, cardIndex), false
	}
	return success(), true
}
