package controller

import (
	"context"

	"github.com/spf13/cobra"
)

// Validator checks one answer. A nil error accepts the value.
type Validator func(value string) error

// Question asks for the value stored under Key.
type Question struct {
	Key      string
	Message  string
	Default  string
	Validate Validator
}

// resolve applies the default and the validator to a raw answer.
func (q Question) resolve(raw string) (string, error) {
	value := raw
	if value == "" {
		value = q.Default
	}

	if q.Validate != nil {
		if err := q.Validate(value); err != nil {
			return "", err
		}
	}

	return value, nil
}

// Prompter collects answers for a list of questions, in order.
type Prompter interface {
	Ask(ctx context.Context, questions []Question) (map[string]string, error)
}

// NewPrompter returns the interactive prompter for cmd.
func NewPrompter(cmd *cobra.Command, tty bool) Prompter {
	if tty {
		return NewTUIPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
	}

	return NewSimplePrompter(cmd.InOrStdin(), cmd.OutOrStdout())
}

