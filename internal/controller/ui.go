// Package controller provides terminal output and interactive prompts for skeletor.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	m "skeletor.dev/pkg/skeletor/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeNew StartMode = iota
	ModeList
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithNewMode sets the UI to project generation mode.
func WithNewMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeNew
	}
}

// WithListMode sets the UI to template listing mode.
func WithListMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeList
	}
}

// UI defines how workflow progress and results reach the user.
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	DisplayStage(ctx context.Context, stage m.Stage)
	DisplayFileWritten(ctx context.Context, result m.FileResult)
	DisplayWarning(ctx context.Context, message string)
	DisplayReport(ctx context.Context, report m.Report) error
	DisplayFiles(ctx context.Context, origin string, files []m.Path) error
	DisplayDiff(ctx context.Context, path m.Path, diff string)
}

// IsTTY reports whether f is an interactive terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}

// NewUI returns the UI for cmd. Output is styled when tty is true.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewStyledUI(cmd)
	}

	return NewSimpleUI(cmd)
}
