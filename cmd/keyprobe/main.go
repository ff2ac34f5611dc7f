// ABOUTME: CLI entry point for keyprobe with guaranteed terminal restoration
// ABOUTME: Captures terminal state, enters raw mode, runs the byte loop, restores on every exit path

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mauromedda/keyprobe/internal/input"
	kplog "github.com/mauromedda/keyprobe/internal/log"
	"github.com/mauromedda/keyprobe/pkg/terminal"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	args := parseFlags()

	if args.version {
		fmt.Printf("keyprobe %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	if err := run(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run captures the terminal state, registers every restoration guard
// before the first mutation, then enters raw mode and drives the loop.
func run(args cliArgs) error {
	if args.verbose {
		kplog.SetLevel(kplog.LevelDebug)
	}

	term := terminal.NewProcessTerminal()
	if err := term.Capture(); err != nil {
		return err
	}

	// Guards go up before any mutation. Defers run inside-out: the
	// plain restore fires first, then the panic handler (whose own
	// Restore call is then a no-op). Restore touches the device at
	// most once regardless of how many paths reach it.
	defer terminal.RestoreOnPanic(term)
	defer func() {
		if err := term.Restore(); err != nil {
			kplog.Error("restoring terminal: %v", err)
		}
	}()

	// Keyboard signals are off under raw mode (ISIG is cleared), but
	// an external SIGTERM or SIGHUP still needs to unwind through the
	// restore guards rather than kill the process mid-session.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	if err := term.EnterRawMode(); err != nil {
		return err
	}
	kplog.Debug("raw mode enabled, press q to quit")

	loop := input.NewLoop(term, os.Stdout)
	err := loop.Run(ctx)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.Canceled):
		return errors.New("terminated by signal before the sentinel byte")
	default:
		return fmt.Errorf("input loop: %w", err)
	}
}
