// ABOUTME: ProcessTerminal implements Terminal over a real tty using termios ioctls.
// ABOUTME: Enforces the Uncaptured -> Captured -> Raw -> Restored lifecycle with a mutex.

//go:build unix

package terminal

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// mode tracks the controller's position in its linear lifecycle.
type mode int

const (
	modeUncaptured mode = iota
	modeCaptured
	modeRaw
	modeRestored
)

// ProcessTerminal is a real terminal backed by a pair of tty files,
// normally os.Stdin and os.Stdout. The original termios configuration
// is captured once and never mutated afterward; Restore re-applies it
// at most once per process lifetime.
type ProcessTerminal struct {
	mu   sync.Mutex
	in   *os.File
	out  *os.File
	inFd int
	mode mode
	orig *unix.Termios
}

// NewProcessTerminal returns a controller bound to the process's
// standard input and output.
func NewProcessTerminal() *ProcessTerminal {
	return NewProcessTerminalFrom(os.Stdin, os.Stdout)
}

// NewProcessTerminalFrom returns a controller bound to the given tty
// files. Used by tests that drive a pty pair instead of the real stdin.
func NewProcessTerminalFrom(in, out *os.File) *ProcessTerminal {
	return &ProcessTerminal{in: in, out: out, inFd: int(in.Fd())}
}

// Capture snapshots the terminal's current configuration. It must be
// called before EnterRawMode; without the snapshot there is nothing to
// restore, so any failure here is fatal to the caller.
func (t *ProcessTerminal) Capture() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.mode != modeUncaptured {
		return errors.New("capturing terminal state: already captured")
	}
	if !term.IsTerminal(t.inFd) {
		return ErrNotTerminal
	}

	orig, err := unix.IoctlGetTermios(t.inFd, ioctlReadTermios)
	if err != nil {
		return fmt.Errorf("capturing terminal state: %w: %w", ErrQuery, err)
	}
	t.orig = orig
	t.mode = modeCaptured
	return nil
}

// EnterRawMode derives the raw configuration from the captured
// original and applies it with flush-on-apply semantics: pending
// output is drained and unread input discarded at the switch.
func (t *ProcessTerminal) EnterRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch t.mode {
	case modeUncaptured:
		return errors.New("entering raw mode: original state not captured")
	case modeRaw:
		return errors.New("entering raw mode: already in raw mode")
	case modeRestored:
		return errors.New("entering raw mode: terminal already restored")
	}

	raw := makeRaw(*t.orig)
	if err := unix.IoctlSetTermios(t.inFd, ioctlWriteTermios, &raw); err != nil {
		return fmt.Errorf("entering raw mode: %w: %w", ErrConfigure, err)
	}
	t.mode = modeRaw
	return nil
}

// Restore re-applies the originally captured configuration, with the
// same flush semantics as EnterRawMode. Only the first call after
// entering raw mode touches the device; later calls are no-ops, so the
// guard paths (defer, panic handler, signal handler) can all call it
// without a second restoration attempt ever reaching the tty.
func (t *ProcessTerminal) Restore() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.mode != modeRaw {
		return nil
	}
	// Mark restored before checking the result: a failed restoration
	// is reported to the caller but never retried.
	t.mode = modeRestored
	if err := unix.IoctlSetTermios(t.inFd, ioctlWriteTermios, t.orig); err != nil {
		return fmt.Errorf("restoring terminal state: %w: %w", ErrConfigure, err)
	}
	return nil
}

// ReadByte performs one read under the VMIN=0/VTIME=1 timing set by
// EnterRawMode: it returns a byte as soon as one is pending, or
// (0, false, nil) after the 100ms bound elapses with no data. End of
// input on the underlying stream is indistinguishable from the timeout
// here; both read as zero bytes.
func (t *ProcessTerminal) ReadByte() (byte, bool, error) {
	var buf [1]byte
	n, err := unix.Read(t.inFd, buf[:])
	if err != nil {
		// EAGAIN shows up instead of a zero-byte result on some
		// platforms when VTIME expires; EINTR is a retryable wakeup.
		if err == unix.EAGAIN || err == unix.EINTR {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("reading input byte: %w", err)
	}
	if n == 0 {
		return 0, false, nil
	}
	return buf[0], true, nil
}

// Write sends bytes to the terminal's output file.
func (t *ProcessTerminal) Write(p []byte) (int, error) {
	n, err := t.out.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to terminal: %w", err)
	}
	return n, nil
}
