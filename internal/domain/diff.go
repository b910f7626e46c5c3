package domain

import (
	"github.com/pmezard/go-difflib/difflib"
	m "skeletor.dev/pkg/skeletor/internal/model"
)

// UnifiedDiff renders the change a transformation makes to one file. It
// returns "" when nothing changed.
func UnifiedDiff(path m.Path, before, after string) (string, error) {
	if before == after {
		return "", nil
	}

	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: "template/" + string(path),
		ToFile:   "generated/" + string(path),
		Context:  3,
	})
}
