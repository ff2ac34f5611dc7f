// ABOUTME: BSD/Darwin ioctl request constants for termios get/set.
// ABOUTME: TIOCSETAF is the flush-on-apply variant, matching Linux TCSETSF.

//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import "golang.org/x/sys/unix"

const (
	ioctlReadTermios  = unix.TIOCGETA
	ioctlWriteTermios = unix.TIOCSETAF
)
