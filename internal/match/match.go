// Package match implements the subsequence predicate that decides
// whether a typed query selects a command name.
package match

// Matches reports whether query occurs in candidate as an ordered
// subsequence: every rune of query must be found in candidate at
// strictly increasing positions. Comparison is exact; there is no case
// folding or normalization.
//
// An empty query matches nothing. No typed input means no suggestions,
// not all of them.
func Matches(query, candidate string) bool {
	if query == "" {
		return false
	}

	cand := []rune(candidate)
	pos := 0
	for _, q := range query {
		for pos < len(cand) && cand[pos] != q {
			pos++
		}
		if pos == len(cand) {
			return false
		}
		pos++
	}
	return true
}
