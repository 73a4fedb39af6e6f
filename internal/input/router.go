// Package input routes keyboard and pointer events between the entry
// field and the suggestion list, and resolves them into edit or
// execute actions.
package input

import (
	tea "github.com/charmbracelet/bubbletea"

	"runbar/internal/index"
	"runbar/internal/input/modes"
	"runbar/internal/input/types"
	"runbar/internal/launch"
	"runbar/internal/suggest"
)

// Router is the keyboard/pointer state machine. It owns the current
// mode, the focused suggestion index and the derived match list; the
// UI model executes the actions it returns. All calls happen on the
// single bubbletea event loop goroutine.
type Router struct {
	mode    types.Mode
	focus   int
	query   string
	matches []index.Command
	engine  *suggest.Engine
	modes   map[types.Mode]types.ModeHandler
}

// New creates a router in editing mode with an empty query and no
// suggestions.
func New(engine *suggest.Engine) *Router {
	r := &Router{
		mode:   types.ModeEditing,
		engine: engine,
		modes:  make(map[types.Mode]types.ModeHandler),
	}

	r.modes[types.ModeEditing] = modes.NewEditingMode()
	r.modes[types.ModeBrowsing] = modes.NewBrowsingMode()

	return r
}

// HandleKey dispatches a key to the current mode handler and applies
// any resulting mode transitions. It reports whether the key was
// consumed; unconsumed keys belong to the entry widget.
func (r *Router) HandleKey(msg tea.KeyMsg) ([]types.Action, bool) {
	switch msg.String() {
	case "esc", "ctrl+c":
		// Termination is unconditional, whatever has focus.
		return []types.Action{types.QuitAction{}}, true
	}

	handler := r.modes[r.mode]
	if handler == nil {
		return nil, false
	}

	actions, consumed := handler.HandleKey(msg, r)
	r.apply(actions)
	return actions, consumed
}

// HandleTextChanged recomputes the match list for the new entry text.
// Called on every change; each keystroke is one full filter pass.
func (r *Router) HandleTextChanged(text string) []types.Action {
	r.query = text
	r.matches = r.engine.Refresh(text)
	if r.focus >= len(r.matches) {
		r.focus = 0
	}
	return []types.Action{types.RefreshSuggestionsAction{Query: text}}
}

// HandleClick resolves a pointer press on a suggestion item. Ctrl
// picks the item into the entry, a plain press executes it — the same
// pair of outcomes as Return on a focused item.
func (r *Router) HandleClick(item int, ctrl bool) []types.Action {
	if item < 0 || item >= len(r.matches) {
		return nil
	}

	name := r.matches[item].Name
	var actions []types.Action
	if ctrl {
		actions = []types.Action{
			types.SetEntryAction{Text: launch.Quote(name)},
			types.FocusEntryAction{},
		}
	} else {
		actions = []types.Action{
			types.ExecCommandAction{Name: name},
			types.QuitAction{},
		}
	}
	r.apply(actions)
	return actions
}

// apply folds focus actions back into router state. Mode transitions
// only ever happen here.
func (r *Router) apply(actions []types.Action) {
	for _, action := range actions {
		switch a := action.(type) {
		case types.FocusItemAction:
			r.mode = types.ModeBrowsing
			r.focus = a.Index
		case types.FocusEntryAction:
			r.mode = types.ModeEditing
			r.focus = 0
		}
	}
}

// Mode returns the current input mode.
func (r *Router) Mode() types.Mode {
	return r.mode
}

// Matches returns the current match list in index order.
func (r *Router) Matches() []index.Command {
	return r.matches
}

// Context implementation for mode handlers.

func (r *Router) Query() string { return r.query }

func (r *Router) MatchCount() int { return len(r.matches) }

func (r *Router) MatchAt(index int) string {
	if index < 0 || index >= len(r.matches) {
		return ""
	}
	return r.matches[index].Name
}

func (r *Router) FocusIndex() int { return r.focus }
