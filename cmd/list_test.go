package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"skeletor.dev/pkg/skeletor/internal/domain"
	domainmocks "skeletor.dev/pkg/skeletor/internal/domain/mocks"
	m "skeletor.dev/pkg/skeletor/internal/model"
)

func TestListCmd(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newListCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("List", mock.Anything, mock.MatchedBy(func(args domain.ListArgs) bool {
		return !args.Diff && args.Source != nil && args.Destination == "" && args.AnswersFile == ""
	})).Return(nil)

	cmd.SetArgs([]string{"list"})
	err := cmd.Execute()
	require.NoError(t, err)

	mockWorkflow.AssertExpectations(t)
}

func TestListCmd_Diff(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newListCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("List", mock.Anything, mock.MatchedBy(func(args domain.ListArgs) bool {
		return args.Diff &&
			args.Destination == m.Path("pipeline") &&
			args.AnswersFile == m.Path("answers.yml") &&
			len(args.Denylist) == 1 && args.Denylist[0] == ".travis.yml"
	})).Return(nil)

	cmd.SetArgs([]string{"list", "pipeline", "--diff", "-a", "answers.yml", "-x", ".travis.yml"})
	err := cmd.Execute()
	require.NoError(t, err)

	mockWorkflow.AssertExpectations(t)
}
