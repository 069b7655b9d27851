// Package tui renders the board and maps keyboard input onto the app
// layer's operations.
package tui

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/atotto/clipboard"

	"github.com/hylla/tavle/internal/app"
	"github.com/hylla/tavle/internal/config"
	"github.com/hylla/tavle/internal/logging"
)

// inputMode represents a selectable mode.
type inputMode int

// modeNormal and related constants define package defaults.
const (
	modeNormal inputMode = iota
	modeEdit
	modeSave
	modeHelp
)

// edit-form field indexes used by keyboard focus logic.
const (
	editFieldShort = iota
	editFieldLong
)

// logPaneLines bounds how many recorded messages the footer shows.
const logPaneLines = 3

// Model drives the interactive board session.
type Model struct {
	app      *app.App
	recorder *logging.Recorder

	ready  bool
	width  int
	height int

	status string

	help help.Model
	keys keyMap

	mode      inputMode
	editFocus int

	shortInput textinput.Model
	longInput  textinput.Model
	saveInput  textinput.Model

	markdown markdownRenderer

	clipboardWrite func(string) error
}

// Option adjusts a Model at construction time.
type Option func(*Model)

// WithRecorder attaches the message tail rendered in the log pane.
func WithRecorder(r *logging.Recorder) Option {
	return func(m *Model) {
		m.recorder = r
	}
}

// WithClipboard substitutes the clipboard sink.
func WithClipboard(write func(string) error) Option {
	return func(m *Model) {
		if write != nil {
			m.clipboardWrite = write
		}
	}
}

// NewModel constructs the board model.
func NewModel(a *app.App, keys config.KeyConfig, opts ...Option) Model {
	h := help.New()
	h.ShowAll = false

	shortInput := textinput.New()
	shortInput.Prompt = "title: "
	shortInput.CharLimit = 120
	longInput := textinput.New()
	longInput.Prompt = "details: "
	longInput.CharLimit = 512
	saveInput := textinput.New()
	saveInput.Prompt = "save to: "
	saveInput.CharLimit = 512

	m := Model{
		app:            a,
		status:         "ready",
		help:           h,
		keys:           newKeyMap(keys),
		shortInput:     shortInput,
		longInput:      longInput,
		saveInput:      saveInput,
		clipboardWrite: clipboard.WriteAll,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&m)
		}
	}
	return m
}

// Init handles init.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update updates state for the requested operation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch m.mode {
		case modeEdit:
			return m.handleEditModeKey(msg)
		case modeSave:
			return m.handleSaveModeKey(msg)
		case modeHelp:
			m.mode = modeNormal
			m.status = "ready"
			return m, nil
		default:
			return m.handleNormalModeKey(msg)
		}

	default:
		return m, nil
	}
}

// handleNormalModeKey handles normal mode key.
func (m Model) handleNormalModeKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.toggleHelp):
		m.mode = modeHelp
		m.status = "help"
		return m, nil

	case key.Matches(msg, m.keys.prevColumn):
		m.app.SelectPrevColumn()
	case key.Matches(msg, m.keys.nextColumn):
		m.app.SelectNextColumn()
	case key.Matches(msg, m.keys.prevCard):
		m.app.SelectPrevCard()
	case key.Matches(msg, m.keys.nextCard):
		m.app.SelectNextCard()
	case key.Matches(msg, m.keys.clearSelection):
		m.app.DisableSelection()

	case key.Matches(msg, m.keys.markUndone):
		m.app.MarkCardUndone()
	case key.Matches(msg, m.keys.markDone):
		m.app.MarkCardDone()
	case key.Matches(msg, m.keys.increasePriority):
		m.app.IncreasePriority()
	case key.Matches(msg, m.keys.decreasePriority):
		m.app.DecreasePriority()

	case key.Matches(msg, m.keys.insertCurrent):
		return m.insertAndEdit(app.InsertCurrent)
	case key.Matches(msg, m.keys.insertNext):
		return m.insertAndEdit(app.InsertNext)
	case key.Matches(msg, m.keys.insertTop):
		return m.insertAndEdit(app.InsertTop)
	case key.Matches(msg, m.keys.insertBottom):
		return m.insertAndEdit(app.InsertBottom)
	case key.Matches(msg, m.keys.editCard):
		return m.openEditor()
	case key.Matches(msg, m.keys.removeCard):
		m.app.RemoveCard()
	case key.Matches(msg, m.keys.yankCard):
		m.yankSelectedCard()
		return m, nil

	case key.Matches(msg, m.keys.undo):
		m.app.Undo()
	case key.Matches(msg, m.keys.redo):
		m.app.Redo()

	case key.Matches(msg, m.keys.save):
		m.app.Write()
	case key.Matches(msg, m.keys.saveAs):
		m.mode = modeSave
		m.saveInput.SetValue(m.app.FileName())
		m.status = "save as"
		return m, m.saveInput.Focus()
	}

	m.refreshStatus()
	return m, nil
}

// insertAndEdit creates a card relative to the cursor and drops into
// the editor for it.
func (m Model) insertAndEdit(position app.InsertPosition) (tea.Model, tea.Cmd) {
	if _, ok := m.app.InsertCard(position); !ok {
		m.refreshStatus()
		return m, nil
	}
	return m.openEditor()
}

// openEditor loads the selected card into the edit form.
func (m Model) openEditor() (tea.Model, tea.Cmd) {
	card, ok := m.app.SelectedCard()
	if !ok {
		m.status = "no card selected"
		return m, nil
	}
	m.mode = modeEdit
	m.editFocus = editFieldShort
	m.shortInput.SetValue(card.ShortDescription)
	m.longInput.SetValue(card.LongDescription)
	m.longInput.Blur()
	m.status = "edit card"
	return m, m.shortInput.Focus()
}

// handleEditModeKey handles edit mode key.
func (m Model) handleEditModeKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeNormal
		m.status = "edit cancelled"
		return m, nil
	case "tab", "shift+tab", "down", "up":
		if m.editFocus == editFieldShort {
			m.editFocus = editFieldLong
			m.shortInput.Blur()
			return m, m.longInput.Focus()
		}
		m.editFocus = editFieldShort
		m.longInput.Blur()
		return m, m.shortInput.Focus()
	case "enter":
		card, ok := m.app.SelectedCard()
		if !ok {
			m.mode = modeNormal
			m.status = "no card selected"
			return m, nil
		}
		card.ShortDescription = m.shortInput.Value()
		card.LongDescription = m.longInput.Value()
		m.app.UpdateCard(card)
		m.mode = modeNormal
		m.refreshStatus()
		return m, nil
	}

	var cmd tea.Cmd
	if m.editFocus == editFieldShort {
		m.shortInput, cmd = m.shortInput.Update(msg)
	} else {
		m.longInput, cmd = m.longInput.Update(msg)
	}
	return m, cmd
}

// handleSaveModeKey handles save mode key.
func (m Model) handleSaveModeKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeNormal
		m.status = "save cancelled"
		return m, nil
	case "enter":
		fileName := strings.TrimSpace(m.saveInput.Value())
		if fileName == "" {
			m.status = "file name required"
			return m, nil
		}
		m.app.WriteToFile(fileName)
		m.mode = modeNormal
		m.refreshStatus()
		return m, nil
	}

	var cmd tea.Cmd
	m.saveInput, cmd = m.saveInput.Update(msg)
	return m, cmd
}

// yankSelectedCard copies the selected card's text to the clipboard.
func (m *Model) yankSelectedCard() {
	card, ok := m.app.SelectedCard()
	if !ok {
		m.status = "no card selected"
		return
	}
	text := card.ShortDescription
	if card.LongDescription != "" {
		text += "\n\n" + card.LongDescription
	}
	if err := m.clipboardWrite(text); err != nil {
		m.status = fmt.Sprintf("clipboard: %v", err)
		return
	}
	m.status = fmt.Sprintf("yanked %q", card.ShortDescription)
}

// refreshStatus promotes the newest logged message into the status
// line.
func (m *Model) refreshStatus() {
	if m.recorder == nil {
		return
	}
	if entry, ok := m.recorder.Latest(); ok {
		m.status = entry.Message
	}
}

// View handles view.
func (m Model) View() tea.View {
	if !m.ready {
		v := tea.NewView("loading...")
		v.AltScreen = true
		return v
	}

	accent := lipgloss.Color("62")
	muted := lipgloss.Color("241")
	dim := lipgloss.Color("239")

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252"))
	statusStyle := lipgloss.NewStyle().Foreground(dim)

	title := titleStyle.Render("tavle") + statusStyle.Render("  "+m.app.FileName())
	body := m.renderColumns(accent, muted, dim)
	footer := m.renderFooter(muted, dim)

	sections := []string{title, "", body}
	if pane := m.renderLogPane(dim); pane != "" {
		sections = append(sections, pane)
	}
	sections = append(sections, footer)
	fullContent := strings.Join(sections, "\n")

	if overlay := m.renderOverlay(accent, muted); overlay != "" {
		overlayHeight := lipgloss.Height(fullContent)
		if m.height > 0 {
			overlayHeight = m.height
		}
		fullContent = overlayOnContent(fullContent, overlay, max(1, m.width), max(1, overlayHeight))
	}

	v := tea.NewView(fullContent)
	v.AltScreen = true
	return v
}

// renderColumns lays the board's columns side by side, bordering the
// selected column with the accent color.
func (m Model) renderColumns(accent, muted, dim color.Color) string {
	b := m.app.Board()
	selCol, selCard, hasSelection := m.app.Selection()

	colWidth := 28
	if m.width > 0 {
		colWidth = max(16, m.width/max(1, b.ColumnsCount())-4)
	}

	baseColStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(dim).
		Padding(0, 1).
		MarginRight(1).
		Width(colWidth)
	selColStyle := baseColStyle.BorderForeground(accent)
	colTitle := lipgloss.NewStyle().Bold(true).Foreground(accent)
	emptyStyle := lipgloss.NewStyle().Foreground(muted)
	selectedCardStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	subStyle := lipgloss.NewStyle().Foreground(muted)

	columnViews := make([]string, 0, b.ColumnsCount())
	for colIdx := 0; colIdx < b.ColumnsCount(); colIdx++ {
		column, _ := b.Column(colIdx)

		lines := []string{colTitle.Render(fmt.Sprintf("%s (%d)", column.Header, column.Size()))}
		if column.IsEmpty() {
			lines = append(lines, emptyStyle.Render("(empty)"))
		}
		for cardIdx := 0; cardIdx < column.Size(); cardIdx++ {
			card, _ := column.Card(cardIdx)
			selected := hasSelection && colIdx == selCol && cardIdx == selCard

			prefix := "  "
			if selected {
				prefix = "│ "
			}
			title := prefix + truncate(card.ShortDescription, max(1, colWidth-4))
			if selected {
				title = selectedCardStyle.Render(title)
			}
			lines = append(lines, title)
			if card.LongDescription != "" {
				lines = append(lines, prefix+subStyle.Render(truncate(card.LongDescription, max(1, colWidth-4))))
			}
		}

		content := strings.Join(lines, "\n")
		if hasSelection && colIdx == selCol {
			columnViews = append(columnViews, selColStyle.Render(content))
		} else {
			columnViews = append(columnViews, baseColStyle.Render(content))
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, columnViews...)
}

// renderLogPane shows the newest recorded messages.
func (m Model) renderLogPane(dim color.Color) string {
	if m.recorder == nil {
		return ""
	}
	entries := m.recorder.Entries()
	if len(entries) == 0 {
		return ""
	}
	if len(entries) > logPaneLines {
		entries = entries[len(entries)-logPaneLines:]
	}
	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		lines = append(lines, entry.Time.Format("15:04:05")+" "+entry.Message)
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(dim).
		Padding(0, 1).
		Width(max(10, m.width-2)).
		Render(strings.Join(lines, "\n"))
}

// renderFooter shows the status line and key help.
func (m Model) renderFooter(muted, dim color.Color) string {
	helpBubble := m.help
	helpBubble.ShowAll = false
	helpBubble.SetWidth(max(0, m.width-2))
	helpLine := lipgloss.NewStyle().
		Foreground(muted).
		Padding(0, 1).
		Render(helpBubble.View(m.keys))
	statusLine := lipgloss.NewStyle().Foreground(dim).Padding(0, 1).Render(m.status)
	return statusLine + "\n" + helpLine
}

// renderOverlay renders the modal for the current mode, or "" in
// normal mode.
func (m Model) renderOverlay(accent, muted color.Color) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(accent).
		Padding(1, 2)
	hintStyle := lipgloss.NewStyle().Foreground(muted)

	switch m.mode {
	case modeEdit:
		lines := []string{
			m.shortInput.View(),
			m.longInput.View(),
			"",
			hintStyle.Render("tab switch field • enter apply • esc cancel"),
		}
		return boxStyle.Render(strings.Join(lines, "\n"))
	case modeSave:
		lines := []string{
			m.saveInput.View(),
			"",
			hintStyle.Render("enter save • esc cancel"),
		}
		return boxStyle.Render(strings.Join(lines, "\n"))
	case modeHelp:
		width := m.width - 8
		if width < 24 {
			width = 24
		}
		return boxStyle.Render(m.markdown.render(helpMarkdown, width))
	default:
		return ""
	}
}
