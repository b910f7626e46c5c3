package controller

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrPromptCancelled is returned when the user aborts the prompt.
var ErrPromptCancelled = errors.New("prompt cancelled")

var (
	questionStyle = lipgloss.NewStyle().Bold(true)
	answerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	hintStyle     = lipgloss.NewStyle().Faint(true)
)

// TUIPrompter implements Prompter with Bubble Tea text inputs.
type TUIPrompter struct {
	in  io.Reader
	out io.Writer
}

// NewTUIPrompter creates a new TUIPrompter.
func NewTUIPrompter(in io.Reader, out io.Writer) *TUIPrompter {
	return &TUIPrompter{in: in, out: out}
}

// Ask runs one Bubble Tea program that walks through all questions.
func (p *TUIPrompter) Ask(ctx context.Context, questions []Question) (map[string]string, error) {
	if len(questions) == 0 {
		return map[string]string{}, nil
	}

	program := tea.NewProgram(
		newPromptModel(questions),
		tea.WithContext(ctx),
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
	)

	final, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("running prompt: %w", err)
	}

	model, ok := final.(promptModel)
	if !ok {
		return nil, fmt.Errorf("unexpected prompt model %T", final)
	}

	if model.cancelled {
		return nil, ErrPromptCancelled
	}

	return model.answers, nil
}

// promptModel represents the Bubble Tea model for a question sequence.
type promptModel struct {
	questions []Question
	index     int
	input     textinput.Model
	answers   map[string]string
	errMsg    string
	cancelled bool
	done      bool
}

func newPromptModel(questions []Question) promptModel {
	pm := promptModel{
		questions: questions,
		input:     textinput.New(),
		answers:   make(map[string]string, len(questions)),
	}
	pm.input.Focus()
	pm.input.Placeholder = questions[0].Default

	return pm
}

func (pm promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (pm promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			pm.cancelled = true
			return pm, tea.Quit
		case tea.KeyEnter:
			return pm.submit()
		}
	}

	var cmd tea.Cmd
	pm.input, cmd = pm.input.Update(msg)

	return pm, cmd
}

func (pm promptModel) submit() (tea.Model, tea.Cmd) {
	q := pm.questions[pm.index]

	value, err := q.resolve(strings.TrimSpace(pm.input.Value()))
	if err != nil {
		pm.errMsg = err.Error()
		return pm, nil
	}

	pm.answers[q.Key] = value
	pm.errMsg = ""
	pm.index++

	if pm.index >= len(pm.questions) {
		pm.done = true
		return pm, tea.Quit
	}

	pm.input.Reset()
	pm.input.Placeholder = pm.questions[pm.index].Default

	return pm, nil
}

func (pm promptModel) View() string {
	var b strings.Builder

	for _, q := range pm.questions[:pm.index] {
		fmt.Fprintf(&b, "%s %s\n", questionStyle.Render(q.Message+":"), answerStyle.Render(pm.answers[q.Key]))
	}

	if pm.done || pm.cancelled {
		return b.String()
	}

	q := pm.questions[pm.index]
	fmt.Fprintf(&b, "%s %s\n", questionStyle.Render(q.Message+":"), pm.input.View())

	if pm.errMsg != "" {
		b.WriteString(errorStyle.Render("  "+pm.errMsg) + "\n")
	}

	b.WriteString(hintStyle.Render(fmt.Sprintf("  %d/%d  enter to accept, esc to cancel", pm.index+1, len(pm.questions))) + "\n")

	return b.String()
}
