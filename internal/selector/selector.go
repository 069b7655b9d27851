// Package selector tracks the cursor over a board. The cursor is a cached
// position; the card's Selected flag remains the source of truth after
// structural mutations, and callers resynchronize through Set.
package selector

import "github.com/hylla/tavle/internal/board"

// CardSelector addresses one card on a board by column and card index.
// It starts disabled at (0, 0); the first navigation call of any kind
// enables the selection without moving it, and later calls move the
// cursor with every index clamped to the board's current sizes.
type CardSelector struct {
	board          *board.Board
	selectedColumn int
	selectedCard   int
	enabled        bool
}

// New returns a disabled selector anchored at (0, 0).
func New(b *board.Board) *CardSelector {
	return &CardSelector{board: b}
}

// Get returns the cursor position, or ok=false while selection is
// disabled.
func (s *CardSelector) Get() (columnIndex, cardIndex int, ok bool) {
	if !s.enabled {
		return 0, 0, false
	}
	return s.selectedColumn, s.selectedCard, true
}

// Set moves the cursor to the given position, clamping both coordinates
// to the board's current sizes. An empty target column pins the card
// index to 0.
func (s *CardSelector) Set(columnIndex, cardIndex int) {
	s.selectedColumn = clamp(columnIndex, s.board.ColumnsCount()-1)
	s.selectedCard = s.cardIndexIn(s.selectedColumn, cardIndex)
}

// SelectedCard returns the card under the cursor, or ok=false when
// selection is disabled or the column is empty.
func (s *CardSelector) SelectedCard() (board.Card, bool) {
	if !s.enabled {
		return board.Card{}, false
	}
	column, ok := s.board.Column(s.selectedColumn)
	if !ok || column.IsEmpty() {
		return board.Card{}, false
	}
	return s.board.Card(s.selectedColumn, s.selectedCard)
}

// SelectNextColumn moves the cursor one column right.
func (s *CardSelector) SelectNextColumn() (int, int) {
	return s.navigate(func() {
		s.selectedColumn = clamp(s.selectedColumn+1, s.board.ColumnsCount()-1)
		s.selectedCard = s.cardIndexIn(s.selectedColumn, s.selectedCard)
	})
}

// SelectPrevColumn moves the cursor one column left.
func (s *CardSelector) SelectPrevColumn() (int, int) {
	return s.navigate(func() {
		if s.selectedColumn > 0 {
			s.selectedColumn = clamp(s.selectedColumn-1, s.board.ColumnsCount()-1)
		}
		s.selectedCard = s.cardIndexIn(s.selectedColumn, s.selectedCard)
	})
}

// SelectNextCard moves the cursor one card down within the column.
func (s *CardSelector) SelectNextCard() (int, int) {
	return s.navigate(func() {
		s.selectedCard = s.cardIndexIn(s.selectedColumn, s.selectedCard+1)
	})
}

// SelectPrevCard moves the cursor one card up within the column.
func (s *CardSelector) SelectPrevCard() (int, int) {
	return s.navigate(func() {
		if s.selectedCard > 0 {
			s.selectedCard = s.cardIndexIn(s.selectedColumn, s.selectedCard-1)
		}
	})
}

// DisableSelection clears the enabled flag. The cursor position is kept,
// and any Selected flag on the board stays with the caller to clear.
func (s *CardSelector) DisableSelection() {
	s.enabled = false
}

// navigate runs move only when selection is already enabled; the first
// call anchors the cursor where it stands.
func (s *CardSelector) navigate(move func()) (int, int) {
	if s.enabled {
		move()
	} else {
		s.enabled = true
	}
	return s.selectedColumn, s.selectedCard
}

// cardIndexIn clamps cardIndex into the column's occupied range, pinning
// to 0 for empty or missing columns.
func (s *CardSelector) cardIndexIn(columnIndex, cardIndex int) int {
	column, ok := s.board.Column(columnIndex)
	if !ok || column.IsEmpty() {
		return 0
	}
	return clamp(cardIndex, column.Size()-1)
}

func clamp(v, max int) int {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}
