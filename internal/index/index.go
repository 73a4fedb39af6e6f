// Package index builds the catalog of executable command names found
// on the search path.
package index

import (
	"os"
	"path/filepath"
	"sort"
)

// Command is a single invocable name, the base filename of an
// executable found in a search-path directory. Immutable once built.
type Command struct {
	Name string
}

// Index is the ordered, duplicate-free catalog of commands. It is
// materialized once at startup, before the UI is shown, and read-only
// for the rest of the process lifetime. Iteration order is sorted by
// (name length ascending, name lexicographically ascending) and is the
// ranking basis for all suggestions.
type Index struct {
	commands []Command
}

// Build scans the directories named by the PATH environment variable.
func Build() Index {
	return BuildFrom(os.Getenv("PATH"))
}

// BuildFrom scans the directories of the given search-path string, in
// the order listed. Entries that are not existing directories are
// skipped, as are directories that cannot be read; index construction
// never fails. Each regular file executable by the current user
// contributes its base name, deduplicated across directories.
func BuildFrom(pathVar string) Index {
	seen := make(map[string]struct{})
	for _, dir := range filepath.SplitList(pathVar) {
		if dir == "" {
			continue
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			// Unreadable or not a directory: skip, never abort.
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			full := filepath.Join(dir, entry.Name())
			info, err := os.Stat(full) // follows symlinks
			if err != nil || !info.Mode().IsRegular() {
				continue
			}
			if !executable(full, info) {
				continue
			}
			seen[entry.Name()] = struct{}{}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	return FromNames(names...)
}

// FromNames builds an index directly from command names, applying the
// same dedup and sort rules as a path scan.
func FromNames(names ...string) Index {
	seen := make(map[string]struct{}, len(names))
	commands := make([]Command, 0, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		commands = append(commands, Command{Name: name})
	}

	sort.Slice(commands, func(i, j int) bool {
		a, b := commands[i].Name, commands[j].Name
		if len(a) != len(b) {
			return len(a) < len(b)
		}
		return a < b
	})
	return Index{commands: commands}
}

// Commands returns the catalog in index order.
func (ix Index) Commands() []Command {
	return ix.commands
}

// Len returns the number of distinct commands.
func (ix Index) Len() int {
	return len(ix.commands)
}
