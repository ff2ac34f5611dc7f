// ABOUTME: Defines the Terminal interface for raw mode control and byte-at-a-time input.
// ABOUTME: Abstracts terminal operations so implementations can target real or virtual terminals.

package terminal

import "errors"

// Sentinel errors for the three failure classes of terminal control.
// Callers match them with errors.Is; the wrapped error carries the
// underlying OS detail.
var (
	// ErrNotTerminal is returned by Capture when the input file is not
	// attached to a terminal device.
	ErrNotTerminal = errors.New("input is not a terminal")

	// ErrQuery is returned when the current terminal attributes cannot
	// be read. Fatal: without them there is nothing to restore.
	ErrQuery = errors.New("terminal attribute query failed")

	// ErrConfigure is returned when a terminal configuration cannot be
	// applied, whether entering raw mode or restoring the original.
	ErrConfigure = errors.New("terminal attribute update failed")

	// ErrUnsupported is returned on platforms without termios support.
	ErrUnsupported = errors.New("raw mode is not supported on this platform")
)

// Terminal abstracts low-level terminal operations: capturing the
// original configuration, raw-mode transitions, timed byte reads, and
// output writing.
//
// The lifecycle is linear and one-directional per process:
// Capture, then EnterRawMode, then Restore. Restore is safe to call
// more than once; only the first call touches the device.
type Terminal interface {
	Capture() error
	EnterRawMode() error
	Restore() error

	// ReadByte performs a single-byte read under the raw-mode timing
	// established by EnterRawMode. ok is false when the bounded wait
	// elapsed with no data; that is not an error.
	ReadByte() (b byte, ok bool, err error)

	Write(p []byte) (n int, err error)
}
