package model

// Stage is a state of the materialization run.
type Stage int

const (
	// CollectingInput gathers the variables from the answers file and prompts.
	CollectingInput Stage = iota
	// AcquiringSource resolves the template tree.
	AcquiringSource
	// Transforming rewrites and writes every template file.
	Transforming
	// Done means every file was written.
	Done
	// Failed means a stage returned an error.
	Failed
)

func (s Stage) String() string {
	switch s {
	case CollectingInput:
		return "collecting input"
	case AcquiringSource:
		return "acquiring source"
	case Transforming:
		return "transforming"
	case Done:
		return "done"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether no further transition is possible.
func (s Stage) IsTerminal() bool {
	return s == Done || s == Failed
}

// FileResult describes one materialized file.
type FileResult struct {
	Path        Path
	Bytes       int
	Transformed bool // content was treated as text and run through the rules
	Changed     bool // at least one rule matched
}

// BootstrapResult describes one post-generation step.
type BootstrapResult struct {
	Step    string
	Command string
	Skipped bool
	Warning string
}

// Report is the outcome of a materialization run.
type Report struct {
	Stage       Stage
	Origin      string
	Destination Path
	Variables   Variables
	Files       []FileResult
	Bootstrap   []BootstrapResult
}

// ChangedCount returns how many files had at least one substitution.
func (r Report) ChangedCount() int {
	count := 0

	for _, f := range r.Files {
		if f.Changed {
			count++
		}
	}

	return count
}
