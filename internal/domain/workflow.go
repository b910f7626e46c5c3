package domain

import (
	"context"
	"fmt"
	"log/slog"
	"maps"

	"skeletor.dev/pkg/skeletor/internal/adapter"
	"skeletor.dev/pkg/skeletor/internal/controller"
	m "skeletor.dev/pkg/skeletor/internal/model"
)

// NewArgs contains the arguments for generating a project.
type NewArgs struct {
	Destination   m.Path
	Source        adapter.SourceAcquirer
	AnswersFile   m.Path
	SaveAnswers   m.Path
	NoInteraction bool
	Threads       int
	Denylist      []string
	Verbose       bool
	Rules         RuleOptions
	Validation    ValidationPolicy
	Bootstrap     BootstrapOptions
}

// ListArgs contains the arguments for listing a template.
type ListArgs struct {
	Source      adapter.SourceAcquirer
	Destination m.Path
	AnswersFile m.Path
	Denylist    []string
	Diff        bool
	Rules       RuleOptions
}

// Workflow defines the interface for the skeletor commands.
type Workflow interface {
	New(ctx context.Context, args NewArgs) (m.Report, error)
	List(ctx context.Context, args ListArgs) error
}

type workflow struct {
	dst          adapter.SourceFSAdapter
	answers      adapter.AnswersStore
	env          adapter.EnvironmentAdapter
	ui           controller.UI
	prompter     controller.Prompter
	bootstrapper *Bootstrapper
}

// NewWorkflow creates a Workflow writing projects to dst.
func NewWorkflow(
	dst adapter.SourceFSAdapter,
	answers adapter.AnswersStore,
	env adapter.EnvironmentAdapter,
	ui controller.UI,
	prompter controller.Prompter,
	bootstrapper *Bootstrapper,
) Workflow {
	return &workflow{
		dst:          dst,
		answers:      answers,
		env:          env,
		ui:           ui,
		prompter:     prompter,
		bootstrapper: bootstrapper,
	}
}

// New runs CollectingInput, AcquiringSource and Transforming in order and
// ends in Done or Failed. Files written before a failure are left in place.
func (w *workflow) New(ctx context.Context, args NewArgs) (m.Report, error) {
	report := m.Report{Stage: m.CollectingInput, Destination: args.Destination}

	if err := w.ui.Start(ctx, controller.WithNewMode()); err != nil {
		return report, err
	}
	defer w.ui.Close(ctx)

	fail := func(err error) (m.Report, error) {
		stage := report.Stage
		report.Stage = m.Failed

		slog.Error("project generation failed", "stage", stage.String(), "error", err)
		w.ui.DisplayStage(ctx, m.Failed)

		return report, fmt.Errorf("%s: %w", stage, err)
	}

	w.ui.DisplayStage(ctx, m.CollectingInput)

	vars, err := w.collect(ctx, args)
	if err != nil {
		return fail(err)
	}

	report.Variables = vars
	report.Stage = m.AcquiringSource
	w.ui.DisplayStage(ctx, m.AcquiringSource)

	tree, err := args.Source.Acquire(ctx)
	if err != nil {
		return fail(err)
	}
	defer w.release(ctx, tree)

	report.Origin = tree.Origin
	report.Stage = m.Transforming
	w.ui.DisplayStage(ctx, m.Transforming)

	slog.Info("materializing template", "origin", tree.Origin, "destination", args.Destination, "threads", args.Threads)

	files, err := NewMaterializer(w.dst).Materialize(ctx, tree, args.Destination, NewRuleSet(vars, args.Rules), MaterializeOptions{
		Threads:  args.Threads,
		Denylist: args.Denylist,
		OnFile: func(res m.FileResult) {
			if args.Verbose {
				w.ui.DisplayFileWritten(ctx, res)
			}
		},
	})
	if err != nil {
		return fail(err)
	}

	report.Files = files
	report.Bootstrap = w.bootstrapper.Run(ctx, args.Destination, args.Bootstrap)
	report.Stage = m.Done
	w.ui.DisplayStage(ctx, m.Done)

	if err := w.ui.DisplayReport(ctx, report); err != nil {
		return report, err
	}

	return report, nil
}

// List shows the files a template would produce, optionally with the diff
// each rewritten file would get. Nothing is written.
func (w *workflow) List(ctx context.Context, args ListArgs) error {
	if err := w.ui.Start(ctx, controller.WithListMode()); err != nil {
		return err
	}
	defer w.ui.Close(ctx)

	tree, err := args.Source.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", m.AcquiringSource, err)
	}
	defer w.release(ctx, tree)

	if !args.Diff {
		files, err := ListFiles(ctx, tree, args.Denylist)
		if err != nil {
			return err
		}

		return w.ui.DisplayFiles(ctx, tree.Origin, files)
	}

	known, err := w.loadAnswers(ctx, args.AnswersFile)
	if err != nil {
		return fmt.Errorf("%s: %w", m.CollectingInput, err)
	}

	vars := m.FromMap(Defaults(ctx, w.env, args.Destination, known))

	previews, err := Preview(ctx, tree, NewRuleSet(vars, args.Rules), args.Denylist)
	if err != nil {
		return err
	}

	paths := make([]m.Path, 0, len(previews))
	for _, p := range previews {
		paths = append(paths, p.Path)
	}

	if err := w.ui.DisplayFiles(ctx, tree.Origin, paths); err != nil {
		return err
	}

	for _, p := range previews {
		if !p.Text {
			continue
		}

		diff, err := UnifiedDiff(p.Path, p.Original, p.Transformed)
		if err != nil {
			return fmt.Errorf("diffing %s: %w", p.Path, err)
		}

		w.ui.DisplayDiff(ctx, p.Path, diff)
	}

	return nil
}

func (w *workflow) collect(ctx context.Context, args NewArgs) (m.Variables, error) {
	known, err := w.loadAnswers(ctx, args.AnswersFile)
	if err != nil {
		return m.Variables{}, err
	}

	defaults := Defaults(ctx, w.env, args.Destination, known)
	values := maps.Clone(defaults)

	if !args.NoInteraction {
		questions := Questions(defaults, args.Validation, known)
		if len(questions) > 0 {
			answers, err := w.prompter.Ask(ctx, questions)
			if err != nil {
				return m.Variables{}, err
			}

			maps.Copy(values, answers)
		}
	}

	vars := m.FromMap(values)

	if err := args.Validation.ValidateVariables(vars); err != nil {
		return m.Variables{}, err
	}

	if args.SaveAnswers != "" {
		if err := w.answers.SaveAnswers(ctx, args.SaveAnswers, vars); err != nil {
			return m.Variables{}, err
		}

		slog.Info("saved answers", "path", args.SaveAnswers)
	}

	return vars, nil
}

func (w *workflow) loadAnswers(ctx context.Context, path m.Path) (map[string]string, error) {
	if path == "" {
		return map[string]string{}, nil
	}

	return w.answers.LoadAnswers(ctx, path)
}

func (w *workflow) release(ctx context.Context, tree *adapter.SourceTree) {
	if err := tree.Release(); err != nil {
		slog.Error("failed to release source tree", "origin", tree.Origin, "error", err)
		w.ui.DisplayWarning(ctx, fmt.Sprintf("could not remove staging for %s: %v", tree.Origin, err))
	}
}
