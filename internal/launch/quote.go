package launch

import "strings"

// Quote returns s as a single shell token. Plain tokens pass through
// untouched; anything else is single-quoted with embedded quotes
// escaped the POSIX way.
func Quote(s string) string {
	if s == "" {
		return "''"
	}
	if !strings.ContainsAny(s, " \t\n'\"\\$&;|*?<>`()[]{}") {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'"'"'`) + "'"
}
