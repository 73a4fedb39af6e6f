package types

// Focus actions
type FocusEntryAction struct{}

func (a FocusEntryAction) Type() string { return "focus_entry" }

type FocusItemAction struct {
	Index int
}

func (a FocusItemAction) Type() string { return "focus_item" }

// Entry text actions
type SetEntryAction struct {
	Text string
}

func (a SetEntryAction) Type() string { return "set_entry" }

type AppendEntryAction struct {
	Text string
}

func (a AppendEntryAction) Type() string { return "append_entry" }

type BackspaceAction struct{}

func (a BackspaceAction) Type() string { return "backspace" }

// Suggestion actions
type RefreshSuggestionsAction struct {
	Query string
}

func (a RefreshSuggestionsAction) Type() string { return "refresh_suggestions" }

// Execution actions
type ExecLineAction struct {
	Line string // full command line, shell-interpreted
}

func (a ExecLineAction) Type() string { return "exec_line" }

type ExecCommandAction struct {
	Name string // bare command name, quoted before the shell sees it
}

func (a ExecCommandAction) Type() string { return "exec_command" }

type QuitAction struct{}

func (a QuitAction) Type() string { return "quit" }
