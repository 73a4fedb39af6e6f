package modes

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"runbar/internal/input/types"
)

// EditingMode is active while the entry field owns keyboard focus.
// Almost everything falls through to the entry; only activation and
// traversal into the suggestion list are handled here.
type EditingMode struct{}

func NewEditingMode() *EditingMode {
	return &EditingMode{}
}

func (m *EditingMode) Name() string {
	return "editing"
}

func (m *EditingMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "enter":
		// Entry activated: a trimmed-empty line is a no-op, anything
		// else is dispatched as a full shell line.
		line := strings.TrimSpace(ctx.Query())
		if line == "" {
			return nil, true
		}
		return []types.Action{
			types.ExecLineAction{Line: line},
			types.QuitAction{},
		}, true
	case "tab", "down":
		// Traverse into the suggestion list when there is one.
		if ctx.MatchCount() > 0 {
			return []types.Action{types.FocusItemAction{Index: 0}}, true
		}
		return nil, true
	default:
		// Let the entry widget process it.
		return nil, false
	}
}
