package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypedErrorsMatchSentinels(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"validation", NewValidationError("author_email", "must look like an email"), ErrValidation},
		{"fetch", &FetchError{URL: "https://example.com/a.tar.gz", Cause: cause}, ErrFetch},
		{"extraction", &ExtractionError{Archive: "a.tar.gz", Expected: "org-repo-abc1234"}, ErrExtraction},
		{"io", &IOError{Op: "write", Path: "src/A.php", Cause: fs.ErrPermission}, ErrIO},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("stage: %w", tt.err)
			assert.ErrorIs(t, wrapped, tt.sentinel)

			for _, other := range []error{ErrValidation, ErrFetch, ErrExtraction, ErrIO} {
				if other == tt.sentinel {
					continue
				}
				assert.NotErrorIs(t, wrapped, other)
			}
		})
	}
}

func TestErrorsUnwrapCause(t *testing.T) {
	ioErr := &IOError{Op: "read", Path: "README.md", Cause: fs.ErrPermission}
	assert.ErrorIs(t, ioErr, fs.ErrPermission)
	assert.Equal(t, "read README.md: permission denied", ioErr.Error())

	fetchErr := &FetchError{URL: "https://api.github.com/x", Cause: fs.ErrNotExist}
	assert.ErrorIs(t, fetchErr, fs.ErrNotExist)
	assert.Contains(t, fetchErr.Error(), "https://api.github.com/x")
}

func TestValidationErrorMessage(t *testing.T) {
	assert.Equal(t, "validation failed for namespace: required", NewValidationError("namespace", "required").Error())
	assert.Equal(t, "validation failed: no answers", NewValidationError("", "no answers").Error())
}

func TestExtractionErrorMessage(t *testing.T) {
	err := &ExtractionError{Archive: "tarball", Expected: "thephpleague-skeleton-abc1234"}
	assert.Equal(t, `extracting tarball: expected top-level directory "thephpleague-skeleton-abc1234"`, err.Error())

	err.Cause = errors.New("found other-dir")
	assert.Contains(t, err.Error(), "found other-dir")
}
