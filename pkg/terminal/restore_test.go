// ABOUTME: Tests for RestoreOnPanic covering the panic and no-panic paths.
// ABOUTME: Swaps the exit hook to observe the exit code without killing the test binary.

package terminal

import (
	"os"
	"testing"
)

func TestRestoreOnPanic_RestoresAndExits(t *testing.T) {
	vt := NewVirtualTerminal()
	if err := vt.Capture(); err != nil {
		t.Fatal(err)
	}
	if err := vt.EnterRawMode(); err != nil {
		t.Fatal(err)
	}

	var code int
	osExit = func(c int) { code = c }
	defer func() { osExit = os.Exit }()

	func() {
		defer RestoreOnPanic(vt)
		panic("boom")
	}()

	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if vt.IsRawMode() {
		t.Error("terminal left in raw mode after panic")
	}
	if vt.RestoreCount() != 1 {
		t.Errorf("RestoreCount() = %d, want 1", vt.RestoreCount())
	}
}

func TestRestoreOnPanic_NoPanicIsNoOp(t *testing.T) {
	vt := NewVirtualTerminal()
	if err := vt.Capture(); err != nil {
		t.Fatal(err)
	}
	if err := vt.EnterRawMode(); err != nil {
		t.Fatal(err)
	}

	exited := false
	osExit = func(int) { exited = true }
	defer func() { osExit = os.Exit }()

	func() {
		defer RestoreOnPanic(vt)
	}()

	if exited {
		t.Error("RestoreOnPanic exited without a panic")
	}
	if vt.RestoreCount() != 0 {
		t.Errorf("RestoreCount() = %d, want 0", vt.RestoreCount())
	}
}
