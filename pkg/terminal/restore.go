// ABOUTME: RestoreOnPanic recovers from panics, restores the terminal, and prints the stack trace.
// ABOUTME: Intended for use as a deferred call in the main goroutine.

package terminal

import (
	"fmt"
	"os"
	"runtime/debug"
)

// osExit is swapped out by tests.
var osExit = os.Exit

// RestoreOnPanic should be deferred in main immediately after the
// original terminal state is captured. On panic it restores the
// terminal, prints the panic value and stack trace, then exits with
// code 1. Without it a panic under raw mode leaves the shell with
// echo off and no line buffering.
func RestoreOnPanic(t Terminal) {
	r := recover()
	if r == nil {
		return
	}

	// Best-effort; a restore failure must not mask the panic.
	if err := t.Restore(); err != nil {
		fmt.Fprintf(os.Stderr, "restoring terminal after panic: %v\r\n", err)
	}

	fmt.Fprintf(os.Stderr, "\npanic: %v\n\n%s\n", r, debug.Stack())
	osExit(1)
}
