package board

import (
	"testing"
	"time"
)

func TestColumnInsertAndRemoveCards(t *testing.T) {
	now := time.Now()
	column := NewColumn("test", nil)

	column.InsertCard(NewCard("card 3", now), 0)
	column.InsertCard(NewCard("card 1", now), 0)
	column.InsertCard(NewCard("card 2", now), 1)
	column.InsertCard(NewCard("card 4", now), 3)

	assertShortDescriptions(t, &column, []string{"card 1", "card 2", "card 3", "card 4"})

	if idx := column.RemoveCard(0); idx != 0 {
		t.Fatalf("cursor after removing head = %d, want 0", idx)
	}
	assertShortDescriptions(t, &column, []string{"card 2", "card 3", "card 4"})

	if idx := column.RemoveCard(2); idx != 1 {
		t.Fatalf("cursor after removing tail = %d, want 1", idx)
	}
	assertShortDescriptions(t, &column, []string{"card 2", "card 3"})

	if idx := column.RemoveCard(1); idx != 0 {
		t.Fatalf("cursor after removing last index = %d, want 0", idx)
	}
	assertShortDescriptions(t, &column, []string{"card 2"})

	if column.IsEmpty() {
		t.Fatal("column should still hold one card")
	}
	if idx := column.RemoveCard(0); idx != 0 {
		t.Fatalf("cursor after emptying column = %d, want 0", idx)
	}
	if !column.IsEmpty() {
		t.Fatal("column should be empty")
	}

	// Removing from an empty column is a no-op that still reports 0.
	if idx := column.RemoveCard(0); idx != 0 {
		t.Fatalf("cursor after removing from empty column = %d, want 0", idx)
	}
}

func TestColumnChangePriority(t *testing.T) {
	now := time.Now()
	column := NewColumn("test", []Card{
		NewCard("card 1", now),
		NewCard("card 2", now),
		NewCard("card 3", now),
	})

	column.IncreasePriority(0)
	column.IncreasePriority(2)
	column.IncreasePriority(1)
	column.IncreasePriority(2)
	assertShortDescriptions(t, &column, []string{"card 3", "card 2", "card 1"})

	column.DecreasePriority(2)
	column.DecreasePriority(1)
	column.DecreasePriority(0)
	column.DecreasePriority(1)
	assertShortDescriptions(t, &column, []string{"card 1", "card 2", "card 3"})
}

func TestColumnPriorityBoundaries(t *testing.T) {
	now := time.Now()
	column := NewColumn("test", []Card{NewCard("a", now), NewCard("b", now)})

	if idx := column.IncreasePriority(0); idx != 0 {
		t.Fatalf("increase at head = %d, want 0", idx)
	}
	if idx := column.DecreasePriority(1); idx != 1 {
		t.Fatalf("decrease at tail = %d, want 1", idx)
	}

	empty := NewColumn("empty", nil)
	if idx := empty.IncreasePriority(0); idx != 0 {
		t.Fatalf("increase on empty column = %d, want 0", idx)
	}
	if idx := empty.DecreasePriority(0); idx != 0 {
		t.Fatalf("decrease on empty column = %d, want 0", idx)
	}
}

func TestColumnSafeCardAccess(t *testing.T) {
	now := time.Now()
	column := NewColumn("test", []Card{
		NewCard("card 1", now),
		NewCard("card 2", now),
		NewCard("card 3", now),
	})

	for i := 0; i < 3; i++ {
		if _, ok := column.Card(i); !ok {
			t.Fatalf("card(%d) should exist", i)
		}
	}
	if _, ok := column.Card(3); ok {
		t.Fatal("card(3) should not exist")
	}
	if _, ok := column.Card(999); ok {
		t.Fatal("card(999) should not exist")
	}
	if _, ok := column.Card(-1); ok {
		t.Fatal("card(-1) should not exist")
	}
}

func TestColumnTakeCard(t *testing.T) {
	now := time.Now()
	column := NewColumn("test", []Card{NewCard("a", now), NewCard("b", now)})

	card, ok := column.TakeCard(1)
	if !ok {
		t.Fatal("take within bounds should succeed")
	}
	if card.ShortDescription != "b" {
		t.Fatalf("took %q, want %q", card.ShortDescription, "b")
	}
	if column.Size() != 1 {
		t.Fatalf("size after take = %d, want 1", column.Size())
	}

	if _, ok := column.TakeCard(5); ok {
		t.Fatal("take out of bounds must not mutate")
	}
	if column.Size() != 1 {
		t.Fatalf("size after failed take = %d, want 1", column.Size())
	}
}

func assertShortDescriptions(t *testing.T, column *Column, want []string) {
	t.Helper()
	if column.Size() != len(want) {
		t.Fatalf("column size = %d, want %d", column.Size(), len(want))
	}
	for i, desc := range want {
		card, ok := column.Card(i)
		if !ok {
			t.Fatalf("card(%d) missing", i)
		}
		if card.ShortDescription != desc {
			t.Fatalf("card(%d) = %q, want %q", i, card.ShortDescription, desc)
		}
	}
}
