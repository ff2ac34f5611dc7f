// ABOUTME: Linux ioctl request constants for termios get/set.
// ABOUTME: TCSETSF drains pending output and discards unread input on apply.

package terminal

import "golang.org/x/sys/unix"

const (
	ioctlReadTermios  = unix.TCGETS
	ioctlWriteTermios = unix.TCSETSF
)
