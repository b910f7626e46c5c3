package adapter

import (
	"context"
	"log/slog"
	"os"
	"os/user"
)

// EnvironmentAdapter reads facts about the user running the tool. They seed
// prompt defaults only.
type EnvironmentAdapter interface {
	// Getwd returns the current working directory.
	Getwd() (string, error)

	// CurrentUsername returns the operating system account name.
	CurrentUsername() string

	// GitConfig returns a git configuration value, or "" when git is missing
	// or the key is unset.
	GitConfig(ctx context.Context, key string) string
}

// LocalEnvironmentAdapter reads the environment of the current process.
type LocalEnvironmentAdapter struct {
	runner CommandRunner
}

// NewLocalEnvironmentAdapter constructs a LocalEnvironmentAdapter that runs
// git through runner.
func NewLocalEnvironmentAdapter(runner CommandRunner) *LocalEnvironmentAdapter {
	return &LocalEnvironmentAdapter{runner: runner}
}

// Getwd returns the current working directory.
func (e *LocalEnvironmentAdapter) Getwd() (string, error) {
	return os.Getwd()
}

// CurrentUsername returns the login name, falling back to $USER.
func (e *LocalEnvironmentAdapter) CurrentUsername() string {
	u, err := user.Current()
	if err == nil && u.Username != "" {
		return u.Username
	}

	return os.Getenv("USER")
}

// GitConfig runs `git config --get key`.
func (e *LocalEnvironmentAdapter) GitConfig(ctx context.Context, key string) string {
	if _, err := e.runner.LookPath("git"); err != nil {
		return ""
	}

	value, err := e.runner.Output(ctx, "", "git", "config", "--get", key)
	if err != nil {
		slog.Debug("git config lookup failed", "key", key, "error", err)
		return ""
	}

	return value
}
