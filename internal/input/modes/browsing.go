package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"runbar/internal/input/types"
	"runbar/internal/launch"
)

// BrowsingMode is active while a suggestion item owns keyboard focus.
// Tab, Enter and Escape keep their special meaning inside the list;
// ordinary typing leaks back into the entry so the user can keep
// editing the query without explicitly leaving the list.
type BrowsingMode struct{}

func NewBrowsingMode() *BrowsingMode {
	return &BrowsingMode{}
}

func (m *BrowsingMode) Name() string {
	return "browsing"
}

func (m *BrowsingMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "enter":
		// Run the focused item as a single quoted token.
		return []types.Action{
			types.ExecCommandAction{Name: ctx.MatchAt(ctx.FocusIndex())},
			types.QuitAction{},
		}, true
	case "alt+enter", "ctrl+enter":
		// Pick without running: copy the quoted name into the entry
		// for further editing.
		name := ctx.MatchAt(ctx.FocusIndex())
		return []types.Action{
			types.SetEntryAction{Text: launch.Quote(name)},
			types.FocusEntryAction{},
		}, true
	case "tab", "right":
		next := ctx.FocusIndex() + 1
		if next >= ctx.MatchCount() {
			// Off the end of the list, back to the entry.
			return []types.Action{types.FocusEntryAction{}}, true
		}
		return []types.Action{types.FocusItemAction{Index: next}}, true
	case "shift+tab", "left":
		prev := ctx.FocusIndex() - 1
		if prev < 0 {
			return []types.Action{types.FocusEntryAction{}}, true
		}
		return []types.Action{types.FocusItemAction{Index: prev}}, true
	case " ":
		// Space would activate the focused item in most toolkits;
		// here it is query text.
		return []types.Action{
			types.AppendEntryAction{Text: " "},
			types.FocusEntryAction{},
		}, true
	}

	switch msg.Type {
	case tea.KeyBackspace:
		return []types.Action{
			types.BackspaceAction{},
			types.FocusEntryAction{},
		}, true
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return nil, false
		}
		// Printable characters continue the query.
		return []types.Action{
			types.AppendEntryAction{Text: string(msg.Runes)},
			types.FocusEntryAction{},
		}, true
	}

	return nil, false
}
