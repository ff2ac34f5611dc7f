// ABOUTME: Derives the raw-mode termios configuration from a captured original.
// ABOUTME: Toggles individual flags only, leaving undocumented driver state intact.

//go:build unix

package terminal

import "golang.org/x/sys/unix"

// makeRaw returns a copy of orig with the line-discipline behaviors
// that interfere with byte-at-a-time input switched off. Each flag is
// cleared or set individually rather than overwriting the whole field,
// so attributes the driver maintains for its own reasons survive the
// raw session and the later restore.
func makeRaw(orig unix.Termios) unix.Termios {
	raw := orig

	// ECHO: typed characters are not written back.
	// ICANON: input is delivered per byte, not per line.
	// ISIG: Ctrl-C and Ctrl-Z no longer raise SIGINT/SIGTSTP.
	// IEXTEN: Ctrl-V literal-next and similar extensions are off.
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN

	// IXON: Ctrl-S/Ctrl-Q software flow control is off.
	// ICRNL: carriage returns arrive as 13, not translated to 10.
	// BRKINT: a break condition no longer raises SIGINT.
	// INPCK: parity checking off.
	// ISTRIP: the 8th bit is not stripped.
	raw.Iflag &^= unix.IXON | unix.ICRNL | unix.BRKINT | unix.INPCK | unix.ISTRIP

	// OPOST: no output post-processing; "\n" stays a bare line feed.
	raw.Oflag &^= unix.OPOST

	// 8-bit characters.
	raw.Cflag |= unix.CS8

	// A read is satisfied with zero or more pending bytes, bounded by
	// a 1-decisecond wait: non-blocking with a 100ms timeout.
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 1

	return raw
}
