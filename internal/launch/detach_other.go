//go:build !unix

package launch

import "os/exec"

func detach(_ *exec.Cmd) {}
