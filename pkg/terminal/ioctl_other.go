// ABOUTME: Termios ioctl request constants for the remaining unix platforms.
// ABOUTME: Solaris and AIX use the Linux-style TCGETS/TCSETSF requests.

//go:build aix || solaris

package terminal

import "golang.org/x/sys/unix"

const (
	ioctlReadTermios  = unix.TCGETS
	ioctlWriteTermios = unix.TCSETSF
)
