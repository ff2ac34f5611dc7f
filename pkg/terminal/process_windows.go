// ABOUTME: Windows stub for ProcessTerminal; termios raw mode is unix-only.
// ABOUTME: Every operation reports ErrUnsupported so callers fail fast.

//go:build windows

package terminal

import "os"

// ProcessTerminal is a placeholder on Windows. Raw console input there
// requires SetConsoleMode and ReadConsoleInput, which is left for a
// future implementation.
type ProcessTerminal struct{}

// NewProcessTerminal returns a controller whose operations all fail
// with ErrUnsupported.
func NewProcessTerminal() *ProcessTerminal {
	return &ProcessTerminal{}
}

// NewProcessTerminalFrom ignores its arguments on Windows.
func NewProcessTerminalFrom(in, out *os.File) *ProcessTerminal {
	return &ProcessTerminal{}
}

func (t *ProcessTerminal) Capture() error      { return ErrUnsupported }
func (t *ProcessTerminal) EnterRawMode() error { return ErrUnsupported }
func (t *ProcessTerminal) Restore() error      { return nil }

func (t *ProcessTerminal) ReadByte() (byte, bool, error) {
	return 0, false, ErrUnsupported
}

func (t *ProcessTerminal) Write(p []byte) (int, error) {
	return os.Stdout.Write(p)
}
