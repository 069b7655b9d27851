package board

// Column is an ordered list of cards under an immutable header. Positions
// are zero-based and dense; removals shift later cards left.
type Column struct {
	Header string `json:"header"`
	Cards  []Card `json:"cards"`
}

// NewColumn constructs a column over the given cards.
func NewColumn(header string, cards []Card) Column {
	if cards == nil {
		cards = []Card{}
	}
	return Column{Header: header, Cards: cards}
}

// Size returns the number of cards in the column.
func (c *Column) Size() int {
	return len(c.Cards)
}

// IsEmpty reports whether the column holds no cards.
func (c *Column) IsEmpty() bool {
	return len(c.Cards) == 0
}

// Card returns the card at index, or false when the index is out of range.
func (c *Column) Card(index int) (Card, bool) {
	if index < 0 || index >= len(c.Cards) {
		return Card{}, false
	}
	return c.Cards[index], true
}

// InsertCard places card at index, shifting later cards right. The index
// is clamped into [0, size], so size appends.
func (c *Column) InsertCard(card Card, index int) {
	if index < 0 {
		index = 0
	}
	if index > len(c.Cards) {
		index = len(c.Cards)
	}
	c.Cards = append(c.Cards, Card{})
	copy(c.Cards[index+1:], c.Cards[index:])
	c.Cards[index] = card
}

// RemoveCard deletes the card at index and returns the position the cursor
// should rest on afterwards: min(index, new size - 1), or 0 once the
// column is empty. Removing from an empty column is a no-op returning 0.
func (c *Column) RemoveCard(index int) int {
	if len(c.Cards) == 0 {
		return 0
	}
	if index < 0 || index >= len(c.Cards) {
		return len(c.Cards) - 1
	}

	c.Cards = append(c.Cards[:index], c.Cards[index+1:]...)

	if len(c.Cards) == 0 {
		return 0
	}
	return min(index, len(c.Cards)-1)
}

// TakeCard removes and returns the card at index. Out-of-range indices
// leave the column untouched.
func (c *Column) TakeCard(index int) (Card, bool) {
	if index < 0 || index >= len(c.Cards) {
		return Card{}, false
	}
	card := c.Cards[index]
	c.Cards = append(c.Cards[:index], c.Cards[index+1:]...)
	return card, true
}

// SelectCard flags the card at index. No-op on an empty column.
func (c *Column) SelectCard(index int) {
	if c.IsEmpty() || index < 0 || index >= len(c.Cards) {
		return
	}
	c.Cards[index].Select()
}

// DeselectCard clears the flag on the card at index. No-op on an empty
// column.
func (c *Column) DeselectCard(index int) {
	if c.IsEmpty() || index < 0 || index >= len(c.Cards) {
		return
	}
	c.Cards[index].Deselect()
}

// UpdateCard replaces the card at index. No-op when the index is out of
// range.
func (c *Column) UpdateCard(index int, card Card) {
	if index < 0 || index >= len(c.Cards) {
		return
	}
	c.Cards[index] = card
}

// IncreasePriority swaps the card at index with its predecessor and
// returns the new index. The first card stays put.
func (c *Column) IncreasePriority(index int) int {
	if index > 0 && index < len(c.Cards) {
		c.Cards[index], c.Cards[index-1] = c.Cards[index-1], c.Cards[index]
		return index - 1
	}
	return index
}

// DecreasePriority swaps the card at index with its successor and returns
// the new index. The last card stays put.
func (c *Column) DecreasePriority(index int) int {
	if index >= 0 && index < len(c.Cards)-1 {
		c.Cards[index], c.Cards[index+1] = c.Cards[index+1], c.Cards[index]
		return index + 1
	}
	return index
}
