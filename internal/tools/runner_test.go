package tools

import (
	"errors"
	"strings"
	"testing"

	"github.com/danmuck/cellkit/internal/testutil/testlog"
)

func TestOutputTrimsStdout(t *testing.T) {
	testlog.Start(t)

	runner := FuncRunner(func(name string, args ...string) ([]byte, []byte, int32, error) {
		if name != "uname" || len(args) != 1 || args[0] != "-a" {
			t.Fatalf("unexpected invocation: %s %v", name, args)
		}
		return []byte("Linux host\n"), nil, 0, nil
	})

	out, err := Output(runner, "uname", "-a")
	if err != nil {
		t.Fatalf("output failed: %v", err)
	}
	if out != "Linux host" {
		t.Fatalf("expected trimmed stdout, got %q", out)
	}
}

func TestOutputCarriesStderrOnFailure(t *testing.T) {
	testlog.Start(t)

	boom := errors.New("exit status 2")
	runner := FuncRunner(func(name string, args ...string) ([]byte, []byte, int32, error) {
		return nil, []byte("no such device\n"), 2, boom
	})

	_, err := Output(runner, "ip", "link")
	if err == nil {
		t.Fatalf("expected failure")
	}
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped cause, got %v", err)
	}
	if !strings.Contains(err.Error(), "no such device") {
		t.Fatalf("expected stderr in error, got %v", err)
	}
	if !strings.Contains(err.Error(), "exit 2") {
		t.Fatalf("expected exit code in error, got %v", err)
	}
}
