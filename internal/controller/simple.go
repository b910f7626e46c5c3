package controller

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	m "skeletor.dev/pkg/skeletor/internal/model"
)

var (
	stageStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	failureStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	fileStyle    = lipgloss.NewStyle().Faint(true)
)

// SimpleUI implements UI using cobra Command's output writer. Calls may
// arrive from several workers, so every write holds mu.
type SimpleUI struct {
	cmd    *cobra.Command
	styled bool
	mode   StartMode
	mu     sync.Mutex
}

// NewSimpleUI creates a new SimpleUI that prints plain text.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// NewStyledUI creates a SimpleUI that colors stages and warnings.
func NewStyledUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd, styled: true}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg := StartConfig{}
	for _, opt := range options {
		opt(&cfg)
	}

	s.mu.Lock()
	s.mode = cfg.mode
	s.mu.Unlock()

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// DisplayStage announces a stage transition.
func (s *SimpleUI) DisplayStage(ctx context.Context, stage m.Stage) {
	if err := ctx.Err(); err != nil {
		return
	}

	switch stage {
	case m.Done:
		s.printf("%s\n", s.render(successStyle, "==> "+stage.String()))
	case m.Failed:
		s.printf("%s\n", s.render(failureStyle, "==> "+stage.String()))
	default:
		s.printf("%s\n", s.render(stageStyle, "==> "+stage.String()))
	}
}

// DisplayFileWritten reports one materialized file.
func (s *SimpleUI) DisplayFileWritten(ctx context.Context, result m.FileResult) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("  %s\n", s.render(fileStyle, string(result.Path)))
}

// DisplayWarning prints a non-fatal problem.
func (s *SimpleUI) DisplayWarning(ctx context.Context, message string) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s\n", s.render(warningStyle, "warning: "+message))
}

// DisplayReport prints the generated-files summary and bootstrap outcome.
func (s *SimpleUI) DisplayReport(ctx context.Context, report m.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderReportTable(report))

	for _, step := range report.Bootstrap {
		switch {
		case step.Warning != "":
			s.printf("%s\n", s.render(warningStyle, fmt.Sprintf("%s: %s", step.Step, step.Warning)))
		case step.Skipped:
			s.printf("%s: skipped\n", step.Step)
		default:
			s.printf("%s: ran %s\n", step.Step, step.Command)
		}
	}

	s.printf("Package %s created in %s\n", report.Variables.PackageName, report.Destination)

	return nil
}

// DisplayFiles lists the files a template would produce.
func (s *SimpleUI) DisplayFiles(ctx context.Context, origin string, files []m.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("Template: %s\n\n%s", origin, renderFilesTable(files))

	return nil
}

// DisplayDiff prints a unified diff for path.
func (s *SimpleUI) DisplayDiff(ctx context.Context, path m.Path, diff string) {
	if err := ctx.Err(); err != nil {
		return
	}

	if diff == "" {
		return
	}

	s.printf("%s\n", diff)
}

func renderReportTable(report m.Report) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Bytes", "Rewritten"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_CENTER})

	for _, f := range report.Files {
		table.Append([]string{string(f.Path), fmt.Sprintf("%d", f.Bytes), yesNo(f.Changed)})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(report.Files)),
		"",
		fmt.Sprintf("%d", report.ChangedCount()),
	})

	table.Render()

	return tableBuffer.String()
}

func renderFilesTable(files []m.Path) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT})

	for _, f := range files {
		table.Append([]string{string(f)})
	}

	table.SetFooter([]string{fmt.Sprintf("Total Files %d", len(files))})

	table.Render()

	return tableBuffer.String()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}

	return "no"
}

func (s *SimpleUI) render(style lipgloss.Style, text string) string {
	if !s.styled {
		return text
	}

	return style.Render(text)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
