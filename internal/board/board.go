// Package board holds the owned task-board hierarchy: a board of ordered
// columns, each an ordered list of cards. Every operation is addressed by
// position; out-of-range access fails with a typed error instead of
// panicking.
package board

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"
)

// Board is an ordered sequence of columns. It owns its columns
// exclusively; callers mutate it only through the methods below.
type Board struct {
	Columns []Column `json:"columns"`
}

// NewBoard constructs a board with the three default columns.
func NewBoard() *Board {
	return &Board{
		Columns: []Column{
			NewColumn("TODO", nil),
			NewColumn("Doing", nil),
			NewColumn("Done!", nil),
		},
	}
}

// Open reads a board from the JSON file at fileName. Selection flags are
// not persisted, so every loaded card starts deselected.
func Open(fileName string) (*Board, error) {
	content, err := os.ReadFile(fileName)
	if err != nil {
		return nil, fmt.Errorf("read board file: %w", err)
	}

	var b Board
	if err := json.Unmarshal(content, &b); err != nil {
		return nil, &InvalidFormatError{FileName: fileName, Err: err}
	}
	for i := range b.Columns {
		if b.Columns[i].Cards == nil {
			b.Columns[i].Cards = []Card{}
		}
	}
	return &b, nil
}

// WriteFile serializes the board as indented JSON to fileName.
func (b *Board) WriteFile(fileName string) error {
	content, err := b.MarshalJSONPretty()
	if err != nil {
		return err
	}
	if err := os.WriteFile(fileName, content, 0o644); err != nil {
		return fmt.Errorf("write board file: %w", err)
	}
	return nil
}

// MarshalJSONPretty returns the persisted JSON form of the board.
func (b *Board) MarshalJSONPretty() ([]byte, error) {
	content, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serialize board: %w", err)
	}
	return content, nil
}

// Column returns the column at index, or false when out of range.
func (b *Board) Column(index int) (*Column, bool) {
	if index < 0 || index >= len(b.Columns) {
		return nil, false
	}
	return &b.Columns[index], true
}

// Card returns the card at (columnIndex, cardIndex), or false when either
// index is out of range.
func (b *Board) Card(columnIndex, cardIndex int) (Card, bool) {
	column, ok := b.Column(columnIndex)
	if !ok {
		return Card{}, false
	}
	return column.Card(cardIndex)
}

// ColumnsCount returns the number of columns.
func (b *Board) ColumnsCount() int {
	return len(b.Columns)
}

// InsertCard places card at (columnIndex, cardIndex), shifting later cards
// right. cardIndex may equal the column size to append; anything outside
// [0, size] is rejected so a bad index cannot silently land elsewhere.
func (b *Board) InsertCard(columnIndex, cardIndex int, card Card) error {
	if columnIndex < 0 || columnIndex >= len(b.Columns) {
		return outOfBounds(columnIndex, len(b.Columns))
	}
	if size := b.Columns[columnIndex].Size(); cardIndex < 0 || cardIndex > size {
		return outOfBounds(cardIndex, size)
	}
	b.Columns[columnIndex].InsertCard(card, cardIndex)
	return nil
}

// RemoveCard deletes the card at (columnIndex, cardIndex) and returns the
// index the cursor should now rest on within that column. An index that
// names no card is rejected rather than treated as a removal.
func (b *Board) RemoveCard(columnIndex, cardIndex int) (int, error) {
	if columnIndex < 0 || columnIndex >= len(b.Columns) {
		return 0, outOfBounds(columnIndex, len(b.Columns))
	}
	if size := b.Columns[columnIndex].Size(); cardIndex < 0 || cardIndex >= size {
		return 0, outOfBounds(cardIndex, size)
	}
	return b.Columns[columnIndex].RemoveCard(cardIndex), nil
}

// SelectCard flags the card at (columnIndex, cardIndex) as selected.
func (b *Board) SelectCard(columnIndex, cardIndex int) error {
	if columnIndex < 0 || columnIndex >= len(b.Columns) {
		return outOfBounds(columnIndex, len(b.Columns))
	}
	b.Columns[columnIndex].SelectCard(cardIndex)
	return nil
}

// DeselectCard clears the selection flag at (columnIndex, cardIndex).
func (b *Board) DeselectCard(columnIndex, cardIndex int) error {
	if columnIndex < 0 || columnIndex >= len(b.Columns) {
		return outOfBounds(columnIndex, len(b.Columns))
	}
	b.Columns[columnIndex].DeselectCard(cardIndex)
	return nil
}

// UpdateCard replaces the card at (columnIndex, cardIndex).
func (b *Board) UpdateCard(columnIndex, cardIndex int, card Card) error {
	if columnIndex < 0 || columnIndex >= len(b.Columns) {
		return outOfBounds(columnIndex, len(b.Columns))
	}
	b.Columns[columnIndex].UpdateCard(cardIndex, card)
	return nil
}

// IncreasePriority swaps the card with its predecessor in the same column
// and returns the resulting position. Boundary positions are a no-op that
// returns the input unchanged.
func (b *Board) IncreasePriority(columnIndex, cardIndex int) (int, int) {
	if columnIndex < 0 || columnIndex >= len(b.Columns) {
		return columnIndex, cardIndex
	}
	return columnIndex, b.Columns[columnIndex].IncreasePriority(cardIndex)
}

// DecreasePriority swaps the card with its successor in the same column
// and returns the resulting position.
func (b *Board) DecreasePriority(columnIndex, cardIndex int) (int, int) {
	if columnIndex < 0 || columnIndex >= len(b.Columns) {
		return columnIndex, cardIndex
	}
	return columnIndex, b.Columns[columnIndex].DecreasePriority(cardIndex)
}

// MarkCardDone moves the card to index 0 of the next column. On the last
// column it is a no-op returning the input unchanged; callers use that
// unchanged return to detect the boundary.
func (b *Board) MarkCardDone(columnIndex, cardIndex int) (int, int) {
	if columnIndex < 0 || columnIndex >= len(b.Columns)-1 {
		return columnIndex, cardIndex
	}

	if card, ok := b.Columns[columnIndex].TakeCard(cardIndex); ok {
		b.Columns[columnIndex+1].InsertCard(card, 0)
	}

	return columnIndex + 1, 0
}

// MarkCardUndone moves the card to index 0 of the previous column. On the
// first column it is a no-op returning the input unchanged.
func (b *Board) MarkCardUndone(columnIndex, cardIndex int) (int, int) {
	if columnIndex <= 0 || columnIndex >= len(b.Columns) {
		return columnIndex, cardIndex
	}

	if card, ok := b.Columns[columnIndex].TakeCard(cardIndex); ok {
		b.Columns[columnIndex-1].InsertCard(card, 0)
	}

	return columnIndex - 1, 0
}

// FindSelectedFrom scans for the card carrying the selection flag,
// starting at the given column and fanning outward, so the nearest match
// to the last known position wins. Returns false when no card is flagged.
func (b *Board) FindSelectedFrom(columnIndex int) (int, int, bool) {
	if len(b.Columns) == 0 {
		return 0, 0, false
	}
	if columnIndex < 0 {
		columnIndex = 0
	}
	if columnIndex >= len(b.Columns) {
		columnIndex = len(b.Columns) - 1
	}

	for offset := 0; offset < len(b.Columns); offset++ {
		for _, col := range []int{columnIndex - offset, columnIndex + offset} {
			if col < 0 || col >= len(b.Columns) {
				continue
			}
			for i := range b.Columns[col].Cards {
				if b.Columns[col].Cards[i].Selected {
					return col, i, true
				}
			}
			if offset == 0 {
				break
			}
		}
	}
	return 0, 0, false
}
