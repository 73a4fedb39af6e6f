//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"syscall"
	"testing"
	"time"
	"unsafe"

	"github.com/creack/pty"
)

const ringSize = 1 << 20    // 1 MiB of scrollback
var binPath = "runbar_e2e"  // unified binary path

// Key constants for better readability
const (
	KeyEnter    = "\r"
	KeyAltEnter = "\x1b\r" // ESC prefix is how a pty carries the Alt chord
	KeyEsc      = "\x1b"
	KeyTab      = "\t"
	KeyShiftTab = "\x1b[Z"
	KeyCtrlC    = "\x03"
	KeySpace    = " "
	KeyBackspace = "\x7f"
)

// ANSI escape sequence regex for normalization - covers CSI, OSC, charset, keypad modes
var ansiRe = regexp.MustCompile(
	`(?:\x1b\[[0-9;?]*[ -/]*[@-~])|` + // CSI sequences
		`(?:\x1b\][^\x07]*\x07)|` + // OSC sequences
		`(?:\x1b[\(\)][A-Za-z])|` + // charset sequences
		`(?:\x1b=|\x1b>)|` + // keypad mode sequences
		`\r`, // carriage returns
)

// LauncherTest drives the launcher binary through a PTY.
type LauncherTest struct {
	t         *testing.T
	pty       *os.File
	tty       *os.File
	cmd       *exec.Cmd
	workspace string
	binDir    string

	// Ring buffer for continuous output capture
	mu   sync.Mutex
	buf  []byte
	head int
	full bool
	cond *sync.Cond
}

// NewLauncherTest creates a test instance with an isolated workspace
// and an empty fixture bin directory that will serve as the only PATH
// entry the launcher sees.
func NewLauncherTest(t *testing.T) *LauncherTest {
	workspace, err := os.MkdirTemp("", "runbar-e2e-*")
	if err != nil {
		t.Fatalf("failed to create workspace: %v", err)
	}
	binDir := filepath.Join(workspace, "bin")
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		t.Fatalf("failed to create fixture bin dir: %v", err)
	}

	lt := &LauncherTest{
		t:         t,
		workspace: workspace,
		binDir:    binDir,
		buf:       make([]byte, ringSize),
	}
	lt.cond = sync.NewCond(&lt.mu)
	return lt
}

// AddCommand drops an executable script into the fixture bin
// directory so the launcher will index it.
func (lt *LauncherTest) AddCommand(name, script string) error {
	return os.WriteFile(filepath.Join(lt.binDir, name),
		[]byte("#!/bin/sh\n"+script+"\n"), 0o755)
}

// AddFile drops a non-executable file into the fixture bin directory;
// it must never show up in suggestions.
func (lt *LauncherTest) AddFile(name string) error {
	return os.WriteFile(filepath.Join(lt.binDir, name), []byte("data\n"), 0o644)
}

// MarkerPath returns a path inside the workspace for spawn markers.
func (lt *LauncherTest) MarkerPath(name string) string {
	return filepath.Join(lt.workspace, name)
}

// StartApp launches the runbar binary in a PTY with PATH pinned to
// the fixture bin directory.
func (lt *LauncherTest) StartApp(args ...string) error {
	cmdArgs := append([]string{binPath}, args...)
	lt.cmd = exec.Command(cmdArgs[0], cmdArgs[1:]...)

	lt.cmd.Env = append(os.Environ(),
		"TERM=xterm-256color",
		"LC_ALL=C",
		"LANG=C",
		"HOME="+lt.workspace, // isolate $HOME so no user config leaks in
		"XDG_CONFIG_HOME="+filepath.Join(lt.workspace, ".config"),
		// The fixture dir is the entire search path, so the index is
		// fully deterministic. Scripts must stick to shell builtins.
		"PATH="+lt.binDir,
		"SHELL=/bin/sh",
		"RUNBAR_E2E_TEST=1",
	)

	ptyFile, tty, err := pty.Open()
	if err != nil {
		return fmt.Errorf("failed to open pty: %w", err)
	}

	lt.pty = ptyFile
	lt.tty = tty
	lt.cmd.Stdout = tty
	lt.cmd.Stdin = tty
	lt.cmd.Stderr = tty

	// Set terminal size
	ws := struct {
		Row uint16
		Col uint16
		X   uint16
		Y   uint16
	}{40, 120, 0, 0}
	syscall.Syscall(syscall.SYS_IOCTL, ptyFile.Fd(), uintptr(syscall.TIOCSWINSZ), uintptr(unsafe.Pointer(&ws)))

	if err := lt.cmd.Start(); err != nil {
		ptyFile.Close()
		tty.Close()
		return fmt.Errorf("failed to start command: %w", err)
	}

	lt.startReader()
	return nil
}

// startReader starts the continuous reader goroutine
func (lt *LauncherTest) startReader() {
	go func() {
		buf := make([]byte, 8192)
		for {
			n, err := lt.pty.Read(buf)
			if n > 0 {
				lt.mu.Lock()
				for i := 0; i < n; i++ {
					lt.buf[lt.head] = buf[i]
					lt.head = (lt.head + 1) % ringSize
					if lt.head == 0 {
						lt.full = true
					}
				}
				lt.cond.Broadcast()
				lt.mu.Unlock()
			}
			if err != nil {
				lt.mu.Lock()
				lt.cond.Broadcast()
				lt.mu.Unlock()
				return
			}
		}
	}()
}

// SendKeys sends keystrokes to the application
func (lt *LauncherTest) SendKeys(keys string) error {
	lt.t.Helper()
	_, err := lt.pty.Write([]byte(keys))
	return err
}

// TypeSlowly sends one character at a time so every keystroke gets
// its own filter pass, the way interactive typing would.
func (lt *LauncherTest) TypeSlowly(text string) error {
	lt.t.Helper()
	for _, r := range text {
		if err := lt.SendKeys(string(r)); err != nil {
			return err
		}
		time.Sleep(30 * time.Millisecond)
	}
	return nil
}

// Ready waits for the app to signal it's ready
func (lt *LauncherTest) Ready() bool {
	lt.t.Helper()
	return lt.OutputContains("__READY__", 5*time.Second)
}

// SeePlain waits for specific plain text to appear (normalized output)
func (lt *LauncherTest) SeePlain(text string) bool {
	lt.t.Helper()
	return lt.OutputContainsPlain(text, 3*time.Second)
}

// OutputContains checks if the output contains specific text within a timeout
func (lt *LauncherTest) OutputContains(text string, timeout time.Duration) bool {
	lt.t.Helper()
	return lt.WaitFor(func(s string) bool { return strings.Contains(s, text) }, timeout)
}

// OutputContainsPlain checks if the normalized output contains specific text within a timeout
func (lt *LauncherTest) OutputContainsPlain(text string, timeout time.Duration) bool {
	lt.t.Helper()
	return lt.WaitFor(func(s string) bool {
		return strings.Contains(ansiRe.ReplaceAllString(s, ""), text)
	}, timeout)
}

// WaitFor waits for a predicate to be true in the output
func (lt *LauncherTest) WaitFor(pred func(string) bool, timeout time.Duration) bool {
	lt.t.Helper()
	deadline := time.Now().Add(timeout)
	for {
		if pred(lt.Snapshot()) {
			return true
		}
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(25 * time.Millisecond) // simple, reliable polling; tests only
	}
}

// WaitExit waits for the launcher process to terminate.
func (lt *LauncherTest) WaitExit(timeout time.Duration) bool {
	lt.t.Helper()
	done := make(chan struct{})
	go func() {
		_, _ = lt.cmd.Process.Wait()
		close(done)
	}()
	select {
	case <-done:
		return true
	case <-time.After(timeout):
		return false
	}
}

// Snapshot returns the current contents of the ring buffer (thread-safe)
func (lt *LauncherTest) Snapshot() string {
	lt.t.Helper()
	lt.mu.Lock()
	defer lt.mu.Unlock()
	if !lt.full {
		return string(lt.buf[:lt.head])
	}
	out := make([]byte, ringSize)
	copy(out, lt.buf[lt.head:])
	copy(out[ringSize-lt.head:], lt.buf[:lt.head])
	return string(out)
}

// SnapshotPlain returns the ring buffer with ANSI sequences removed
func (lt *LauncherTest) SnapshotPlain() string {
	lt.t.Helper()
	return ansiRe.ReplaceAllString(lt.Snapshot(), "")
}

// Cleanup closes the PTY and terminates the application
func (lt *LauncherTest) Cleanup() {
	// Close PTY first to deliver SIGHUP to child process
	if lt.pty != nil {
		_ = lt.pty.Close()
		lt.pty = nil
	}
	if lt.tty != nil {
		_ = lt.tty.Close()
		lt.tty = nil
	}
	if lt.cmd != nil && lt.cmd.Process != nil {
		_ = lt.cmd.Process.Kill()
		_, _ = lt.cmd.Process.Wait()
		lt.cmd = nil
	}
	if lt.workspace != "" {
		_ = os.RemoveAll(lt.workspace)
		lt.workspace = ""
	}
}
