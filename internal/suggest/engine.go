// Package suggest derives the bounded suggestion list from the typed
// query and the command index.
package suggest

import (
	"runbar/internal/index"
	"runbar/internal/match"
)

// DefaultLimit caps the suggestion list when no limit is configured.
const DefaultLimit = 20

// Engine filters the pre-sorted index against the current query. The
// index order is the ranking; matches are never re-sorted.
type Engine struct {
	index index.Index
	limit int
}

// New creates an engine over the given index. A non-positive limit
// falls back to DefaultLimit.
func New(ix index.Index, limit int) *Engine {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Engine{index: ix, limit: limit}
}

// Refresh recomputes the match list for the query. Every call is a
// complete, linear pass over the index; there is no incremental state
// to invalidate between keystrokes.
func (e *Engine) Refresh(query string) []index.Command {
	var matches []index.Command
	for _, cmd := range e.index.Commands() {
		if !match.Matches(query, cmd.Name) {
			continue
		}
		matches = append(matches, cmd)
		if len(matches) == e.limit {
			break
		}
	}
	return matches
}

// Visible reports whether the suggestion surface should be shown for a
// match list. The surface is hidden exactly when the list is empty, in
// which case the entry reclaims the full row.
func Visible(matches []index.Command) bool {
	return len(matches) > 0
}
