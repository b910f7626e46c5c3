package controller

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	serrors "skeletor.dev/pkg/skeletor/internal/errors"
)

// SimplePrompter asks questions one line at a time. It is used when stdin
// is not a terminal, which includes piped answers.
type SimplePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewSimplePrompter creates a SimplePrompter reading from in.
func NewSimplePrompter(in io.Reader, out io.Writer) *SimplePrompter {
	return &SimplePrompter{in: bufio.NewReader(in), out: out}
}

// Ask prompts for each question until its validator accepts the answer.
// At end of input the default is tried once more before giving up.
func (p *SimplePrompter) Ask(ctx context.Context, questions []Question) (map[string]string, error) {
	answers := make(map[string]string, len(questions))

	for _, q := range questions {
		value, err := p.ask(ctx, q)
		if err != nil {
			return nil, err
		}

		answers[q.Key] = value
	}

	return answers, nil
}

func (p *SimplePrompter) ask(ctx context.Context, q Question) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		if q.Default != "" {
			_, _ = fmt.Fprintf(p.out, "%s [%s]: ", q.Message, q.Default)
		} else {
			_, _ = fmt.Fprintf(p.out, "%s: ", q.Message)
		}

		line, readErr := p.in.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return "", fmt.Errorf("reading answer for %s: %w", q.Key, readErr)
		}

		value, err := q.resolve(strings.TrimSpace(line))
		if err == nil {
			if readErr == io.EOF {
				_, _ = fmt.Fprintln(p.out)
			}

			return value, nil
		}

		_, _ = fmt.Fprintf(p.out, "\n  %v\n", err)

		if readErr == io.EOF {
			return "", serrors.NewValidationError(q.Key, fmt.Sprintf("no valid answer before end of input: %v", err))
		}
	}
}
