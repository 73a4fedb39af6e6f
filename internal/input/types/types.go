package types

import tea "github.com/charmbracelet/bubbletea"

// Mode represents an input mode
type Mode int

const (
	// ModeEditing routes keys to the entry field.
	ModeEditing Mode = iota
	// ModeBrowsing routes keys to the focused suggestion item.
	ModeBrowsing
)

// Action represents a command the UI model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to router state needed by mode
// handlers.
type Context interface {
	Query() string
	MatchCount() int
	MatchAt(index int) string
	FocusIndex() int
}

// ModeHandler handles key input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and
	// whether the event was consumed. Unconsumed keys fall through to
	// the entry widget.
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Name returns the mode name for logging
	Name() string
}
