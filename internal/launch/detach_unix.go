//go:build unix

package launch

import (
	"os/exec"
	"syscall"
)

// detach puts the child in its own session so it survives the
// launcher exiting and releasing the terminal.
func detach(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
}
