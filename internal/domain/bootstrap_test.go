package domain

import (
	"context"
	"errors"
	"os/exec"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"skeletor.dev/pkg/skeletor/internal/adapter"
	adaptermocks "skeletor.dev/pkg/skeletor/internal/adapter/mocks"
	m "skeletor.dev/pkg/skeletor/internal/model"
)

func TestParseGitPolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    GitPolicy
		wantErr bool
	}{
		{in: "", want: GitIfMissing},
		{in: "if-missing", want: GitIfMissing},
		{in: " Always ", want: GitAlways},
		{in: "never", want: GitNever},
		{in: "sometimes", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseGitPolicy(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBootstrapper_Run(t *testing.T) {
	t.Run("install disabled and git never", func(t *testing.T) {
		// Arrange
		runner := adaptermocks.NewMockCommandRunner(t)
		b := NewBootstrapper(runner, adapter.NewSourceFSAdapter(afero.NewMemMapFs()))

		// Act
		results := b.Run(context.Background(), "/out", BootstrapOptions{Git: GitNever})

		// Assert
		require.Len(t, results, 2)
		assert.Equal(t, m.BootstrapResult{Step: StepInstall, Command: DefaultInstallCommand, Skipped: true}, results[0])
		assert.Equal(t, m.BootstrapResult{Step: StepGit, Command: "git init", Skipped: true}, results[1])
	})

	t.Run("both steps run", func(t *testing.T) {
		// Arrange
		runner := adaptermocks.NewMockCommandRunner(t)
		runner.EXPECT().LookPath("composer").Return("/usr/bin/composer", nil).Once()
		runner.EXPECT().Run(mock.Anything, "/out", "/usr/bin/composer", "install").Return("", nil).Once()
		runner.EXPECT().LookPath("git").Return("/usr/bin/git", nil).Once()
		runner.EXPECT().Run(mock.Anything, "/out", "/usr/bin/git", "init").Return("Initialized", nil).Once()

		b := NewBootstrapper(runner, adapter.NewSourceFSAdapter(afero.NewMemMapFs()))

		// Act
		results := b.Run(context.Background(), "/out", BootstrapOptions{Install: true, Git: GitIfMissing})

		// Assert
		for _, r := range results {
			assert.False(t, r.Skipped, r.Step)
			assert.Empty(t, r.Warning, r.Step)
		}
	})

	t.Run("custom install command", func(t *testing.T) {
		runner := adaptermocks.NewMockCommandRunner(t)
		runner.EXPECT().LookPath("composer").Return("/opt/composer", nil).Once()
		runner.EXPECT().Run(mock.Anything, "/out", "/opt/composer", "install", "--no-dev").Return("", nil).Once()

		b := NewBootstrapper(runner, adapter.NewSourceFSAdapter(afero.NewMemMapFs()))
		results := b.Run(context.Background(), "/out", BootstrapOptions{
			Install:        true,
			InstallCommand: "composer install --no-dev",
			Git:            GitNever,
		})

		assert.Equal(t, "composer install --no-dev", results[0].Command)
		assert.False(t, results[0].Skipped)
	})

	t.Run("missing tools become warnings", func(t *testing.T) {
		runner := adaptermocks.NewMockCommandRunner(t)
		runner.EXPECT().LookPath(mock.Anything).Return("", exec.ErrNotFound).Times(2)

		b := NewBootstrapper(runner, adapter.NewSourceFSAdapter(afero.NewMemMapFs()))
		results := b.Run(context.Background(), "/out", BootstrapOptions{Install: true, Git: GitAlways})

		assert.True(t, results[0].Skipped)
		assert.Equal(t, "composer not found. Please run `composer install` manually.", results[0].Warning)
		assert.True(t, results[1].Skipped)
		assert.Equal(t, "git not found. Please run `git init` manually.", results[1].Warning)
	})

	t.Run("failing command becomes a warning", func(t *testing.T) {
		runner := adaptermocks.NewMockCommandRunner(t)
		runner.EXPECT().LookPath("composer").Return("/usr/bin/composer", nil).Once()
		runner.EXPECT().Run(mock.Anything, "/out", "/usr/bin/composer", "install").
			Return("Your requirements could not be resolved", errors.New("exit status 2")).Once()

		b := NewBootstrapper(runner, adapter.NewSourceFSAdapter(afero.NewMemMapFs()))
		results := b.Run(context.Background(), "/out", BootstrapOptions{Install: true, Git: GitNever})

		assert.False(t, results[0].Skipped)
		assert.Equal(t, "`composer install` failed: exit status 2", results[0].Warning)
	})
}

func TestBootstrapper_GitPolicyWithExistingRepository(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/out/.git", 0o755))

	t.Run("if-missing skips", func(t *testing.T) {
		runner := adaptermocks.NewMockCommandRunner(t)
		b := NewBootstrapper(runner, adapter.NewSourceFSAdapter(fs))

		results := b.Run(context.Background(), "/out", BootstrapOptions{Git: GitIfMissing})

		assert.True(t, results[1].Skipped)
		assert.Empty(t, results[1].Warning)
	})

	t.Run("always runs", func(t *testing.T) {
		runner := adaptermocks.NewMockCommandRunner(t)
		runner.EXPECT().LookPath("git").Return("/usr/bin/git", nil).Once()
		runner.EXPECT().Run(mock.Anything, "/out", "/usr/bin/git", "init").Return("Reinitialized", nil).Once()

		b := NewBootstrapper(runner, adapter.NewSourceFSAdapter(fs))
		results := b.Run(context.Background(), "/out", BootstrapOptions{Git: GitAlways})

		assert.False(t, results[1].Skipped)
	})
}
