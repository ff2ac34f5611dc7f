// ABOUTME: E2E harness: builds the keyprobe binary once and runs it under a real pty.
// ABOUTME: Pumps pty output into a buffer and exposes send/expect/waitExit helpers.

//go:build unix

package e2e

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/creack/pty"
	"golang.org/x/sync/errgroup"
)

var (
	buildOnce sync.Once
	binPath   string
	buildErr  error
)

// buildBinary compiles cmd/keyprobe once per test run.
func buildBinary(t *testing.T) string {
	t.Helper()

	buildOnce.Do(func() {
		dir, err := os.MkdirTemp("", "keyprobe-e2e")
		if err != nil {
			buildErr = err
			return
		}
		binPath = filepath.Join(dir, "keyprobe")
		cmd := exec.Command("go", "build", "-o", binPath, "github.com/mauromedda/keyprobe/cmd/keyprobe")
		if out, err := cmd.CombinedOutput(); err != nil {
			buildErr = fmt.Errorf("go build: %v\n%s", err, out)
		}
	})
	if buildErr != nil {
		t.Fatalf("building keyprobe: %v", buildErr)
	}
	return binPath
}

// session is one keyprobe process running under a pty.
type session struct {
	cmd    *exec.Cmd
	ptmx   *os.File
	mu     sync.Mutex
	out    bytes.Buffer
	pump   *errgroup.Group
	exited chan error
	closed sync.Once
}

// startKeyprobe launches the binary on a fresh pty. Tests that need to
// feed input should pass --verbose and wait for the raw-mode debug
// line first: entering raw mode flushes unread input, so bytes sent
// too early are discarded.
func startKeyprobe(t *testing.T, args ...string) *session {
	t.Helper()

	bin := buildBinary(t)
	cmd := exec.Command(bin, args...)

	ptmx, err := pty.Start(cmd)
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}

	s := &session{cmd: cmd, ptmx: ptmx, exited: make(chan error, 1)}

	s.pump = &errgroup.Group{}
	s.pump.Go(func() error {
		buf := make([]byte, 1024)
		for {
			n, err := ptmx.Read(buf)
			if n > 0 {
				s.mu.Lock()
				s.out.Write(buf[:n])
				s.mu.Unlock()
			}
			if err != nil {
				// EIO is the normal read result once the child side
				// of the pty closes.
				return nil
			}
		}
	})

	go func() {
		s.exited <- cmd.Wait()
	}()

	t.Cleanup(s.close)
	return s
}

func (s *session) close() {
	s.closed.Do(func() {
		select {
		case <-s.exited:
		default:
			_ = s.cmd.Process.Kill()
			<-s.exited
		}
		_ = s.ptmx.Close()
		_ = s.pump.Wait()
	})
}

// send writes bytes to the pty master, as if typed.
func (s *session) send(t *testing.T, p []byte) {
	t.Helper()

	if _, err := s.ptmx.Write(p); err != nil {
		t.Fatalf("writing to pty: %v", err)
	}
}

// output returns everything the child has written so far.
func (s *session) output() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.out.String()
}

// expectOutput polls until substr appears in the child's output.
func (s *session) expectOutput(t *testing.T, substr string, timeout time.Duration) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for {
		if strings.Contains(s.output(), substr) {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("output never contained %q; got:\n%s", substr, s.output())
		}
		time.Sleep(10 * time.Millisecond)
	}
}

// waitExit waits for the child to exit and returns its exit code.
func (s *session) waitExit(t *testing.T, timeout time.Duration) int {
	t.Helper()

	select {
	case err := <-s.exited:
		// Put the result back so close() can observe it too.
		s.exited <- err
		if err == nil {
			return 0
		}
		var ee *exec.ExitError
		if errors.As(err, &ee) {
			return ee.ExitCode()
		}
		t.Fatalf("waiting for exit: %v", err)
		return -1
	case <-time.After(timeout):
		t.Fatalf("process did not exit within %v; output:\n%s", timeout, s.output())
		return -1
	}
}
