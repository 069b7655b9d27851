package tui

import (
	"charm.land/bubbles/v2/key"

	"github.com/hylla/tavle/internal/config"
)

// keyMap represents key map data used by this package.
type keyMap struct {
	quit             key.Binding
	toggleHelp       key.Binding
	prevColumn       key.Binding
	nextColumn       key.Binding
	prevCard         key.Binding
	nextCard         key.Binding
	markUndone       key.Binding
	markDone         key.Binding
	increasePriority key.Binding
	decreasePriority key.Binding
	insertCurrent    key.Binding
	insertNext       key.Binding
	insertTop        key.Binding
	insertBottom     key.Binding
	editCard         key.Binding
	removeCard       key.Binding
	yankCard         key.Binding
	undo             key.Binding
	redo             key.Binding
	save             key.Binding
	saveAs           key.Binding
	clearSelection   key.Binding
}

// newKeyMap constructs key map, applying configured overrides for the
// rebindable actions.
func newKeyMap(cfg config.KeyConfig) keyMap {
	undoKey := cfg.Undo
	if undoKey == "" {
		undoKey = "u"
	}
	redoKey := cfg.Redo
	if redoKey == "" {
		redoKey = "ctrl+r"
	}
	saveKey := cfg.Save
	if saveKey == "" {
		saveKey = "w"
	}
	helpKey := cfg.Help
	if helpKey == "" {
		helpKey = "?"
	}

	return keyMap{
		quit:             key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		toggleHelp:       key.NewBinding(key.WithKeys(helpKey), key.WithHelp(helpKey, "toggle help")),
		prevColumn:       key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/←", "column left")),
		nextColumn:       key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l/→", "column right")),
		prevCard:         key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "card up")),
		nextCard:         key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "card down")),
		markUndone:       key.NewBinding(key.WithKeys("H"), key.WithHelp("H", "mark undone")),
		markDone:         key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "mark done")),
		increasePriority: key.NewBinding(key.WithKeys("K"), key.WithHelp("K", "raise priority")),
		decreasePriority: key.NewBinding(key.WithKeys("J"), key.WithHelp("J", "lower priority")),
		insertCurrent:    key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "insert here")),
		insertNext:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "insert after")),
		insertTop:        key.NewBinding(key.WithKeys("I"), key.WithHelp("I", "insert at top")),
		insertBottom:     key.NewBinding(key.WithKeys("A"), key.WithHelp("A", "insert at bottom")),
		editCard:         key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e/enter", "edit card")),
		removeCard:       key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x/del", "remove card")),
		yankCard:         key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "yank card")),
		undo:             key.NewBinding(key.WithKeys(undoKey), key.WithHelp(undoKey, "undo")),
		redo:             key.NewBinding(key.WithKeys(redoKey), key.WithHelp(redoKey, "redo")),
		save:             key.NewBinding(key.WithKeys(saveKey), key.WithHelp(saveKey, "save")),
		saveAs:           key.NewBinding(key.WithKeys("W"), key.WithHelp("W", "save as")),
		clearSelection:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear selection")),
	}
}

// ShortHelp handles short help.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.nextCard, k.nextColumn, k.editCard, k.insertCurrent, k.markDone, k.undo, k.save, k.quit,
	}
}

// FullHelp handles full help.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.prevColumn, k.nextColumn, k.prevCard, k.nextCard, k.clearSelection},
		{k.insertCurrent, k.insertNext, k.insertTop, k.insertBottom, k.editCard, k.removeCard, k.yankCard},
		{k.markUndone, k.markDone, k.increasePriority, k.decreasePriority, k.undo, k.redo},
		{k.save, k.saveAs, k.toggleHelp, k.quit},
	}
}
