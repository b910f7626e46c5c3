package domain

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"skeletor.dev/pkg/skeletor/internal/adapter"
	m "skeletor.dev/pkg/skeletor/internal/model"
)

// GitPolicy decides when the destination gets a fresh repository.
type GitPolicy string

// Available GitPolicy values.
const (
	GitIfMissing GitPolicy = "if-missing"
	GitAlways    GitPolicy = "always"
	GitNever     GitPolicy = "never"
)

// DefaultInstallCommand installs the generated package's dependencies.
const DefaultInstallCommand = "composer install"

// Bootstrap step names.
const (
	StepInstall = "install"
	StepGit     = "git"
)

// ParseGitPolicy accepts if-missing, always and never.
func ParseGitPolicy(s string) (GitPolicy, error) {
	switch p := GitPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case GitIfMissing, GitAlways, GitNever:
		return p, nil
	case "":
		return GitIfMissing, nil
	default:
		return "", fmt.Errorf("unknown git policy %q (want if-missing, always or never)", s)
	}
}

// BootstrapOptions selects the post-generation steps.
type BootstrapOptions struct {
	Install        bool
	InstallCommand string
	Git            GitPolicy
}

// Bootstrapper runs the optional commands after a project is written.
// Missing tools and failing commands never fail the run; they come back as
// warnings on the step result.
type Bootstrapper struct {
	runner adapter.CommandRunner
	fs     adapter.SourceFSAdapter
}

// NewBootstrapper creates a Bootstrapper.
func NewBootstrapper(runner adapter.CommandRunner, fs adapter.SourceFSAdapter) *Bootstrapper {
	return &Bootstrapper{runner: runner, fs: fs}
}

// Run executes the install step and then the git step in dir.
func (b *Bootstrapper) Run(ctx context.Context, dir m.Path, opts BootstrapOptions) []m.BootstrapResult {
	return []m.BootstrapResult{
		b.install(ctx, dir, opts),
		b.git(ctx, dir, opts.Git),
	}
}

func (b *Bootstrapper) install(ctx context.Context, dir m.Path, opts BootstrapOptions) m.BootstrapResult {
	command := opts.InstallCommand
	if strings.TrimSpace(command) == "" {
		command = DefaultInstallCommand
	}

	result := m.BootstrapResult{Step: StepInstall, Command: command}

	if !opts.Install {
		result.Skipped = true
		return result
	}

	fields := strings.Fields(command)

	return b.run(ctx, dir, result, fields[0], fields[1:]...)
}

func (b *Bootstrapper) git(ctx context.Context, dir m.Path, policy GitPolicy) m.BootstrapResult {
	result := m.BootstrapResult{Step: StepGit, Command: "git init"}

	if policy == GitNever {
		result.Skipped = true
		return result
	}

	if policy != GitAlways {
		exists, err := b.fs.Exists(ctx, b.fs.JoinPath(ctx, string(dir), ".git"))
		if err == nil && exists {
			slog.Info("git is already initialized", "dir", dir)

			result.Skipped = true

			return result
		}
	}

	return b.run(ctx, dir, result, "git", "init")
}

func (b *Bootstrapper) run(ctx context.Context, dir m.Path, result m.BootstrapResult, name string, args ...string) m.BootstrapResult {
	path, err := b.runner.LookPath(name)
	if err != nil {
		result.Skipped = true
		result.Warning = fmt.Sprintf("%s not found. Please run `%s` manually.", name, result.Command)

		return result
	}

	slog.Info("running bootstrap step", "step", result.Step, "command", result.Command, "dir", dir)

	output, err := b.runner.Run(ctx, string(dir), path, args...)
	if err != nil {
		slog.Error("bootstrap step failed", "step", result.Step, "error", err, "output", output)
		result.Warning = fmt.Sprintf("`%s` failed: %v", result.Command, err)
	}

	return result
}
