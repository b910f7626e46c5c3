package controller

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "skeletor.dev/pkg/skeletor/internal/model"
)

func newTestUI() (*SimpleUI, *bytes.Buffer) {
	var out bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	return NewSimpleUI(cmd), &out
}

func TestSimpleUI_DisplayStage(t *testing.T) {
	ui, out := newTestUI()
	ctx := context.Background()

	require.NoError(t, ui.Start(ctx, WithNewMode()))
	ui.DisplayStage(ctx, m.CollectingInput)
	ui.DisplayStage(ctx, m.Done)
	ui.Close(ctx)

	assert.Equal(t, "==> collecting input\n==> done\n", out.String())
}

func TestSimpleUI_DisplayReport(t *testing.T) {
	ui, out := newTestUI()

	report := m.Report{
		Stage:       m.Done,
		Destination: "pipeline",
		Variables:   m.Variables{PackageName: "pipeline"},
		Files: []m.FileResult{
			{Path: "README.md", Bytes: 120, Transformed: true, Changed: true},
			{Path: "logo.png", Bytes: 42},
		},
		Bootstrap: []m.BootstrapResult{
			{Step: "install", Command: "composer install", Warning: "composer not found"},
			{Step: "git", Command: "git init", Skipped: true},
		},
	}

	require.NoError(t, ui.DisplayReport(context.Background(), report))

	text := out.String()
	assert.Contains(t, text, "README.md")
	assert.Contains(t, text, "logo.png")
	assert.Contains(t, strings.ToLower(text), "total files 2")
	assert.Contains(t, text, "install: composer not found")
	assert.Contains(t, text, "git: skipped")
	assert.Contains(t, text, "Package pipeline created in pipeline")
}

func TestSimpleUI_DisplayFiles(t *testing.T) {
	ui, out := newTestUI()

	err := ui.DisplayFiles(context.Background(), "bundled skeleton", []m.Path{".gitignore", "src/SkeletonClass.php"})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Template: bundled skeleton")
	assert.Contains(t, out.String(), "src/SkeletonClass.php")
	assert.Contains(t, strings.ToLower(out.String()), "total files 2")
}

func TestSimpleUI_DisplayWarningAndDiff(t *testing.T) {
	ui, out := newTestUI()
	ctx := context.Background()

	ui.DisplayWarning(ctx, "git not found")
	ui.DisplayDiff(ctx, "README.md", "")
	ui.DisplayDiff(ctx, "README.md", "--- a\n+++ b\n")
	ui.DisplayFileWritten(ctx, m.FileResult{Path: "composer.json"})

	assert.Equal(t, "warning: git not found\n--- a\n+++ b\n\n  composer.json\n", out.String())
}

func TestSimpleUI_CancelledContext(t *testing.T) {
	ui, out := newTestUI()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Error(t, ui.Start(ctx))
	assert.Error(t, ui.DisplayReport(ctx, m.Report{}))
	ui.DisplayStage(ctx, m.Done)
	assert.Empty(t, out.String())
}

func TestNewUI(t *testing.T) {
	cmd := &cobra.Command{}

	plain, ok := NewUI(cmd, false).(*SimpleUI)
	require.True(t, ok)
	assert.False(t, plain.styled)

	styled, ok := NewUI(cmd, true).(*SimpleUI)
	require.True(t, ok)
	assert.True(t, styled.styled)
}

func TestIsTTY_Nil(t *testing.T) {
	assert.False(t, IsTTY(nil))
}
