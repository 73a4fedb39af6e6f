// Package ui projects the router's state onto a single-row terminal
// surface: a text entry next to a horizontal suggestion bar. All
// business decisions live in the input router; this package only
// translates terminal events in and renders state out.
package ui

import (
	"log"
	"os"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"runbar/internal/config"
	"runbar/internal/index"
	"runbar/internal/input"
	"runbar/internal/input/types"
	"runbar/internal/suggest"
)

// entryColumns is the entry width while suggestions are visible; with
// no suggestions the entry expands to the full row.
const entryColumns = 24

// Runner launches resolved commands. Satisfied by launch.Dispatcher.
type Runner interface {
	RunLine(line string) error
	RunCommand(name string) error
}

// span is the rendered x-range of one suggestion item, used to
// resolve pointer presses.
type span struct {
	start int
	end   int
}

// Model represents the UI state
type Model struct {
	entry  textinput.Model
	router *input.Router
	runner Runner
	styles *Styles

	matches []index.Command
	spans   []span
	width   int

	readySignal bool // emit an e2e readiness sentinel in the view
	quitting    bool
}

// New creates the UI model over a pre-built, read-only command index.
func New(cfg *config.Config, ix index.Index, runner Runner) Model {
	styles := NewStyles(cfg.UI.AccentColor)
	engine := suggest.New(ix, cfg.UI.MaxSuggestions)

	ti := textinput.New()
	ti.Prompt = cfg.UI.Prompt
	ti.PromptStyle = styles.Prompt
	ti.Focus()

	return Model{
		entry:       ti,
		router:      input.New(engine),
		runner:      runner,
		styles:      styles,
		readySignal: os.Getenv("RUNBAR_E2E_TEST") == "1",
	}
}

// Init returns the initial command
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update translates terminal messages into router events and executes
// the resulting actions.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.layout()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	var cmd tea.Cmd
	m.entry, cmd = m.entry.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	actions, consumed := m.router.HandleKey(msg)
	if cmd := m.processActions(actions); cmd != nil {
		return m, cmd
	}
	if consumed {
		return m, nil
	}

	// Unconsumed keys belong to the entry widget. A change in its
	// value is the "text changed" notification.
	before := m.entry.Value()
	var cmd tea.Cmd
	m.entry, cmd = m.entry.Update(msg)
	if after := m.entry.Value(); after != before {
		m.processActions(m.router.HandleTextChanged(after))
	}
	return m, cmd
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if msg.Y != 0 {
		return m, nil // the bar occupies the first row
	}
	for i, s := range m.spans {
		if msg.X >= s.start && msg.X < s.end {
			return m, m.processActions(m.router.HandleClick(i, msg.Ctrl))
		}
	}
	return m, nil
}

// processActions executes router actions against the widgets and the
// runner. Returns the quit command when termination was requested.
func (m *Model) processActions(actions []types.Action) tea.Cmd {
	var cmd tea.Cmd
	textChanged := false

	for _, action := range actions {
		switch a := action.(type) {
		case types.SetEntryAction:
			m.entry.SetValue(a.Text)
			m.entry.CursorEnd()
			textChanged = true
		case types.AppendEntryAction:
			m.entry.SetValue(m.entry.Value() + a.Text)
			m.entry.CursorEnd()
			textChanged = true
		case types.BackspaceAction:
			if value := []rune(m.entry.Value()); len(value) > 0 {
				m.entry.SetValue(string(value[:len(value)-1]))
				m.entry.CursorEnd()
				textChanged = true
			}
		case types.FocusEntryAction:
			cmd = m.entry.Focus()
		case types.FocusItemAction:
			m.entry.Blur()
		case types.RefreshSuggestionsAction:
			m.matches = m.router.Matches()
			m.layout()
		case types.ExecLineAction:
			// Fire and forget; the launcher is already exiting.
			if err := m.runner.RunLine(a.Line); err != nil {
				log.Printf("spawn failed: %v", err)
			}
		case types.ExecCommandAction:
			if err := m.runner.RunCommand(a.Name); err != nil {
				log.Printf("spawn failed: %v", err)
			}
		case types.QuitAction:
			m.quitting = true
			cmd = tea.Quit
		}
	}

	if textChanged {
		// A programmatic edit notifies like any keystroke would.
		m.processActions(m.router.HandleTextChanged(m.entry.Value()))
	}
	return cmd
}

// layout sizes the entry and recomputes item hit-spans. The entry
// claims the whole row when no suggestions are visible and yields
// space to the bar otherwise.
func (m *Model) layout() {
	if m.width <= 0 {
		return
	}

	promptWidth := lipgloss.Width(m.entry.Prompt)
	if len(m.matches) == 0 {
		m.entry.Width = max(1, m.width-promptWidth-1)
		m.spans = nil
		return
	}

	m.entry.Width = entryColumns
	x := lipgloss.Width(m.entry.View())
	spans := make([]span, 0, len(m.matches))
	for i, cmd := range m.matches {
		w := lipgloss.Width(m.renderItem(i, cmd.Name))
		spans = append(spans, span{start: x, end: x + w})
		x += w
	}
	m.spans = spans
}

func (m Model) renderItem(i int, name string) string {
	if m.router.Mode() == types.ModeBrowsing && m.router.FocusIndex() == i {
		return m.styles.Focused.Render(name)
	}
	return m.styles.Item.Render(name)
}

// View renders the launcher row and a hint line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	row := m.entry.View()
	if len(m.matches) > 0 {
		parts := make([]string, 0, len(m.matches)+1)
		parts = append(parts, row)
		for i, cmd := range m.matches {
			parts = append(parts, m.renderItem(i, cmd.Name))
		}
		row = lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	}
	if m.width > 0 {
		row = lipgloss.NewStyle().MaxWidth(m.width).Render(row)
	}

	hint := m.styles.Hint.Render("enter run · alt+enter pick · esc close")
	if m.readySignal {
		hint += " __READY__"
	}
	return row + "\n" + hint
}
