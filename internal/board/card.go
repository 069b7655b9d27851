package board

import "time"

// Card is a single task on the board. Selected marks the card the cursor
// rests on; it is runtime state and is never written to disk.
type Card struct {
	ShortDescription string    `json:"short_description"`
	LongDescription  string    `json:"long_description"`
	CreationDate     time.Time `json:"creation_date"`
	Selected         bool      `json:"-"`
}

// NewCard constructs a card with an empty long description.
func NewCard(shortDescription string, now time.Time) Card {
	return Card{
		ShortDescription: shortDescription,
		CreationDate:     now,
	}
}

// Select flags the card as the visually selected one.
func (c *Card) Select() {
	c.Selected = true
}

// Deselect clears the selection flag.
func (c *Card) Deselect() {
	c.Selected = false
}
