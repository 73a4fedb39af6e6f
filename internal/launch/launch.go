// Package launch spawns commands as detached child processes. The
// launcher never waits on, retries, or inspects the outcome of a
// spawn; it is already exiting by the time the child starts.
package launch

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/shlex"
)

// Dispatcher launches command lines through a shell interpreter.
type Dispatcher struct {
	argv []string // shell invocation prefix, e.g. ["/bin/sh", "-c"]
}

// New resolves the shell invocation once. A non-empty override (from
// config, e.g. "bash -lc") is split shell-style and used verbatim;
// otherwise $SHELL when it resolves to an executable, otherwise plain
// sh with -c.
func New(override string) *Dispatcher {
	if override != "" {
		if argv, err := shlex.Split(override); err == nil && len(argv) > 0 {
			return &Dispatcher{argv: argv}
		}
	}
	return &Dispatcher{argv: []string{resolveShell(), "-c"}}
}

func resolveShell() string {
	shell := strings.TrimSpace(os.Getenv("SHELL"))
	if shell == "" {
		return "sh"
	}
	if filepath.IsAbs(shell) {
		if _, err := os.Stat(shell); err == nil {
			return shell
		}
	} else if resolved, err := exec.LookPath(shell); err == nil {
		return resolved
	}
	return "sh"
}

// RunLine starts line through the shell, detached. Arguments, pipes
// and operators pass through exactly as typed. The call returns as
// soon as the child is started; nothing observes its exit.
func (d *Dispatcher) RunLine(line string) error {
	args := append(append([]string(nil), d.argv[1:]...), line)
	cmd := exec.Command(d.argv[0], args...)
	// nil stdio means /dev/null; the child must not inherit the
	// launcher's terminal.
	detach(cmd)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("spawn %q: %w", line, err)
	}
	return cmd.Process.Release()
}

// RunCommand starts a single command name with no argument splitting.
// Names come from directory listings and should not contain shell
// metacharacters, but they are quoted anyway.
func (d *Dispatcher) RunCommand(name string) error {
	return d.RunLine(Quote(name))
}
