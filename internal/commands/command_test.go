package commands

import (
	"testing"
	"time"

	"github.com/hylla/tavle/internal/board"
)

// makeBoard builds a board whose first column holds the given short
// descriptions.
func makeBoard(t *testing.T, descriptions ...string) *board.Board {
	t.Helper()
	b := board.NewBoard()
	now := time.Now()
	for i, desc := range descriptions {
		if err := b.InsertCard(0, i, board.NewCard(desc, now)); err != nil {
			t.Fatalf("seed card %q: %v", desc, err)
		}
	}
	return b
}

// failer is the slice of testing.TB the helpers need; rapid's T
// satisfies it too.
type failer interface {
	Helper()
	Fatalf(format string, args ...any)
}

// snapshot returns the serialized board, the equality baseline the
// round-trip assertions compare against.
func snapshot(t failer, b *board.Board) string {
	t.Helper()
	content, err := b.MarshalJSONPretty()
	if err != nil {
		t.Fatalf("serialize board: %v", err)
	}
	return string(content)
}

func columnContents(t *testing.T, b *board.Board, columnIndex int) []string {
	t.Helper()
	column, ok := b.Column(columnIndex)
	if !ok {
		t.Fatalf("column %d missing", columnIndex)
	}
	out := make([]string, 0, column.Size())
	for i := 0; i < column.Size(); i++ {
		card, _ := column.Card(i)
		out = append(out, card.ShortDescription)
	}
	return out
}

func assertColumn(t *testing.T, b *board.Board, columnIndex int, want []string) {
	t.Helper()
	got := columnContents(t, b, columnIndex)
	if len(got) != len(want) {
		t.Fatalf("column %d = %v, want %v", columnIndex, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("column %d = %v, want %v", columnIndex, got, want)
		}
	}
}

func TestResultSucceeded(t *testing.T) {
	if !success().Succeeded() {
		t.Fatal("success must report succeeded")
	}
	if failure("boom").Succeeded() {
		t.Fatal("failure must not report succeeded")
	}
	if got := failure("bad index %d", 7).Message; got != "bad index 7" {
		t.Fatalf("failure message = %q", got)
	}
}
