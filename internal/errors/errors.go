// Package errors defines the error taxonomy shared by the skeletor adapters
// and domain workflow.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for known failure classes. Typed errors below match them
// through errors.Is.
var (
	// ErrValidation indicates a missing or malformed input variable.
	ErrValidation = errors.New("validation error")

	// ErrFetch indicates the remote archive could not be downloaded or read.
	ErrFetch = errors.New("fetch error")

	// ErrExtraction indicates the archive did not contain the expected tree.
	ErrExtraction = errors.New("extraction error")

	// ErrIO indicates a read or write failure while materializing files.
	ErrIO = errors.New("io error")
)

// ValidationError reports an invalid variable.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation failed: %s", e.Message)
	}

	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
}

// Is reports whether target is ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError creates a ValidationError for field.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// FetchError reports a failure to download or decode the remote archive.
type FetchError struct {
	URL   string
	Cause error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching %s: %v", e.URL, e.Cause)
}

// Unwrap returns the underlying error.
func (e *FetchError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is ErrFetch.
func (e *FetchError) Is(target error) bool {
	return target == ErrFetch
}

// ExtractionError reports that the extracted archive lacks the expected root.
type ExtractionError struct {
	Archive  string
	Expected string
	Cause    error
}

func (e *ExtractionError) Error() string {
	msg := fmt.Sprintf("extracting %s: expected top-level directory %q", e.Archive, e.Expected)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}

	return msg
}

// Unwrap returns the underlying error.
func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is ErrExtraction.
func (e *ExtractionError) Is(target error) bool {
	return target == ErrExtraction
}

// IOError reports a per-file read or write failure.
type IOError struct {
	Op    string
	Path  string
	Cause error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Cause)
}

// Unwrap returns the underlying error.
func (e *IOError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is ErrIO.
func (e *IOError) Is(target error) bool {
	return target == ErrIO
}
