package adapter

import (
	"bytes"
	"context"
	"log/slog"
	"os/exec"
	"strings"
	"time"
)

// CommandRunner abstracts process execution for the bootstrap steps.
type CommandRunner interface {
	// LookPath reports where an executable lives, or an error when it is
	// not installed.
	LookPath(name string) (string, error)

	// Run executes name in dir and returns the combined stdout/stderr output.
	Run(ctx context.Context, dir, name string, args ...string) (output string, err error)

	// Output executes name in dir and returns its trimmed stdout.
	Output(ctx context.Context, dir, name string, args ...string) (string, error)
}

// LocalCommandRunner provides a concrete implementation using os/exec.
type LocalCommandRunner struct {
	timeout time.Duration
}

// NewLocalCommandRunner constructs a LocalCommandRunner with a default 10 minute timeout.
func NewLocalCommandRunner() *LocalCommandRunner {
	return &LocalCommandRunner{
		timeout: 10 * time.Minute,
	}
}

// NewLocalCommandRunnerWithTimeout constructs a LocalCommandRunner that kills
// commands running longer than timeout.
func NewLocalCommandRunnerWithTimeout(timeout time.Duration) *LocalCommandRunner {
	return &LocalCommandRunner{timeout: timeout}
}

// LookPath searches PATH for name.
func (r *LocalCommandRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// Run executes the command and returns its combined output.
func (r *LocalCommandRunner) Run(ctx context.Context, dir, name string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	slog.Debug("running command", "dir", dir, "name", name, "args", args)

	err := cmd.Run()

	output := stdout.String() + stderr.String()

	return output, err
}

// Output executes the command and returns its stdout without surrounding whitespace.
func (r *LocalCommandRunner) Output(ctx context.Context, dir, name string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	out, err := cmd.Output()
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(out)), nil
}
