// ABOUTME: VirtualTerminal implements Terminal for testing without a real tty.
// ABOUTME: Serves scripted input bytes, captures output, and tracks lifecycle transitions.

package terminal

import (
	"bytes"
	"errors"
	"sync"
)

// VirtualTerminal is a fake Terminal for unit tests. Input bytes are
// scripted with FeedInput and served one at a time by ReadByte; an
// exhausted script reads like a timeout (no data this tick). Output is
// captured in an internal buffer.
type VirtualTerminal struct {
	mu           sync.Mutex
	input        []byte
	buf          bytes.Buffer
	captured     bool
	raw          bool
	restored     bool
	enterCount   int
	restoreCount int
	readErr      error
}

// NewVirtualTerminal returns an empty VirtualTerminal in the
// uncaptured state.
func NewVirtualTerminal() *VirtualTerminal {
	return &VirtualTerminal{}
}

// FeedInput appends bytes to the scripted input.
func (v *VirtualTerminal) FeedInput(p []byte) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.input = append(v.input, p...)
}

// FailReads makes every subsequent ReadByte return err.
func (v *VirtualTerminal) FailReads(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.readErr = err
}

// Capture records the capture transition.
func (v *VirtualTerminal) Capture() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.captured {
		return errors.New("capturing terminal state: already captured")
	}
	v.captured = true
	return nil
}

// EnterRawMode records a raw-mode entry, enforcing the same lifecycle
// as ProcessTerminal.
func (v *VirtualTerminal) EnterRawMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.captured {
		return errors.New("entering raw mode: original state not captured")
	}
	if v.raw {
		return errors.New("entering raw mode: already in raw mode")
	}
	if v.restored {
		return errors.New("entering raw mode: terminal already restored")
	}
	v.raw = true
	v.enterCount++
	return nil
}

// Restore records a restoration; like the real controller, only the
// first call after raw mode counts.
func (v *VirtualTerminal) Restore() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.raw {
		return nil
	}
	v.raw = false
	v.restored = true
	v.restoreCount++
	return nil
}

// ReadByte serves the next scripted byte, or reports "no data" when
// the script is exhausted.
func (v *VirtualTerminal) ReadByte() (byte, bool, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.readErr != nil {
		return 0, false, v.readErr
	}
	if len(v.input) == 0 {
		return 0, false, nil
	}
	b := v.input[0]
	v.input = v.input[1:]
	return b, true, nil
}

// Write appends data to the captured output buffer.
func (v *VirtualTerminal) Write(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.buf.Write(p)
}

// Output returns everything written so far.
func (v *VirtualTerminal) Output() string {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.buf.String()
}

// Unread returns the scripted input bytes not yet consumed.
func (v *VirtualTerminal) Unread() []byte {
	v.mu.Lock()
	defer v.mu.Unlock()

	out := make([]byte, len(v.input))
	copy(out, v.input)
	return out
}

// IsRawMode reports whether the fake is currently in raw mode.
func (v *VirtualTerminal) IsRawMode() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.raw
}

// EnterCount returns the number of raw-mode entries.
func (v *VirtualTerminal) EnterCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.enterCount
}

// RestoreCount returns the number of device-touching restorations.
func (v *VirtualTerminal) RestoreCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.restoreCount
}
