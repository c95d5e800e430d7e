package tools

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// CommandRunner abstracts shell command execution for resource builders.
type CommandRunner interface {
	Run(name string, args ...string) ([]byte, []byte, int32, error)
}

// ExecRunner executes commands on the local host.
type ExecRunner struct{}

func (r ExecRunner) Run(name string, args ...string) ([]byte, []byte, int32, error) {
	cmd := exec.Command(name, args...)
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return stdout.Bytes(), stderr.Bytes(), 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return stdout.Bytes(), stderr.Bytes(), int32(exitErr.ExitCode()), err
	}

	exitCode := int32(1)
	var execErr *exec.Error
	if errors.As(err, &execErr) {
		exitCode = 127
	}
	return stdout.Bytes(), stderr.Bytes(), exitCode, err
}

// Output runs name with args and returns trimmed stdout. On failure the
// error carries the exit code and whatever stderr produced.
func Output(r CommandRunner, name string, args ...string) (string, error) {
	stdout, stderr, code, err := r.Run(name, args...)
	if err != nil {
		return "", fmt.Errorf("command %s failed (exit %d): %w: %s", name, code, err, strings.TrimSpace(string(stderr)))
	}
	return strings.TrimSpace(string(stdout)), nil
}

// FuncRunner adapts a function into a CommandRunner for tests.
type FuncRunner func(name string, args ...string) ([]byte, []byte, int32, error)

func (f FuncRunner) Run(name string, args ...string) ([]byte, []byte, int32, error) {
	return f(name, args...)
}
