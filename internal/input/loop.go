// ABOUTME: The byte-input loop: read one byte per tick, classify, report, stop on the sentinel.
// ABOUTME: Timeout and end-of-input ticks are skipped; read failures are fatal.

package input

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/mauromedda/keyprobe/internal/log"
)

// ErrRead is returned when the underlying read fails for any reason
// other than the bounded-wait timeout. Fatal to the caller.
var ErrRead = errors.New("input read failed")

// DefaultSentinel is the byte that terminates the loop.
const DefaultSentinel byte = 'q'

// ByteReader is the single-byte read the loop depends on; ok is false
// when the bounded wait elapsed with no data. terminal.Terminal
// satisfies it.
type ByteReader interface {
	ReadByte() (b byte, ok bool, err error)
}

// Loop reads bytes one at a time under raw-mode timing, reports each
// one to Out, and terminates when the sentinel byte is read.
type Loop struct {
	src      ByteReader
	out      io.Writer
	sentinel byte
}

// NewLoop returns a loop reading from src, reporting to out, and
// terminating on DefaultSentinel.
func NewLoop(src ByteReader, out io.Writer) *Loop {
	return &Loop{src: src, out: out, sentinel: DefaultSentinel}
}

// Run drives the loop until the sentinel byte is read or ctx is
// cancelled. A tick with no data (timeout or end of input — the two
// are indistinguishable under VMIN=0/VTIME=1) continues the loop; the
// 100ms read bound keeps cancellation responsive. The sentinel is
// reported like any other byte before the loop stops.
func (l *Loop) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		b, ok, err := l.src.ReadByte()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrRead, err)
		}
		if !ok {
			continue
		}

		cb := Classify(b)
		log.Debug("read byte %d (%s)", cb.Value, cb.Kind)
		if _, err := io.WriteString(l.out, Format(cb)); err != nil {
			return fmt.Errorf("reporting byte: %w", err)
		}

		if b == l.sentinel {
			return nil
		}
	}
}
