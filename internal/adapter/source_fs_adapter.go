// Package adapter contains the filesystem, network and process adapters the
// skeletor domain relies on.
package adapter

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	m "skeletor.dev/pkg/skeletor/internal/model"
)

// SourceFSAdapter abstracts filesystem operations used while reading template
// trees and writing generated projects. It hides direct `os` access so the
// workflow can run against an in-memory filesystem in tests.
//
//nolint:interfacebloat // A richer interface keeps workflow logic decoupled from os/fs.
type SourceFSAdapter interface {
	// Walk traverses root recursively in lexical order.
	Walk(ctx context.Context, root m.Path, fn FilepathWalkFunc) error

	// ReadFile loads a file and returns its contents.
	ReadFile(ctx context.Context, path m.Path) ([]byte, error)

	// WriteFile writes content to a file, truncating it if it exists.
	WriteFile(ctx context.Context, path m.Path, content []byte, perm os.FileMode) error

	// Create opens path for writing, truncating it if it exists.
	Create(ctx context.Context, path m.Path, perm os.FileMode) (io.WriteCloser, error)

	// MkdirAll creates a directory and any missing parents.
	MkdirAll(ctx context.Context, path m.Path, perm os.FileMode) error

	// FileInfo returns metadata for a path.
	FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error)

	// Exists reports whether path exists.
	Exists(ctx context.Context, path m.Path) (bool, error)

	// CreateTempDir creates a new staging directory.
	CreateTempDir(ctx context.Context, pattern string) (m.Path, error)

	// RemoveAll removes a directory and all its contents.
	RemoveAll(ctx context.Context, path m.Path) error

	// RelPath returns the relative path from base to target.
	RelPath(ctx context.Context, base, target m.Path) (m.Path, error)

	// JoinPath joins path elements into a single path.
	JoinPath(ctx context.Context, elem ...string) m.Path
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type directly into the
// domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// AferoSourceFSAdapter implements SourceFSAdapter on top of an afero.Fs.
type AferoSourceFSAdapter struct {
	fs afero.Fs
}

// NewSourceFSAdapter wraps fs.
func NewSourceFSAdapter(fs afero.Fs) *AferoSourceFSAdapter {
	return &AferoSourceFSAdapter{fs: fs}
}

// NewLocalSourceFSAdapter returns an adapter backed by the operating system.
func NewLocalSourceFSAdapter() *AferoSourceFSAdapter {
	return NewSourceFSAdapter(afero.NewOsFs())
}

// NewReadOnlySourceFSAdapter exposes an io/fs filesystem, such as an
// embed.FS, through the adapter. Writes fail.
func NewReadOnlySourceFSAdapter(fsys fs.FS) *AferoSourceFSAdapter {
	return NewSourceFSAdapter(afero.NewReadOnlyFs(afero.FromIOFS{FS: fsys}))
}

// Walk iterates over every entry under root.
func (a *AferoSourceFSAdapter) Walk(ctx context.Context, root m.Path, fn FilepathWalkFunc) error {
	return afero.Walk(a.fs, string(root), func(path string, info os.FileInfo, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		return fn(path, info, err)
	})
}

// ReadFile loads file contents.
func (a *AferoSourceFSAdapter) ReadFile(ctx context.Context, path m.Path) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return afero.ReadFile(a.fs, string(path))
}

// WriteFile writes content to path with the given permissions.
func (a *AferoSourceFSAdapter) WriteFile(ctx context.Context, path m.Path, content []byte, perm os.FileMode) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return afero.WriteFile(a.fs, string(path), content, perm)
}

// Create opens path for writing.
func (a *AferoSourceFSAdapter) Create(ctx context.Context, path m.Path, perm os.FileMode) (io.WriteCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return a.fs.OpenFile(string(path), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm)
}

// MkdirAll creates path and its parents.
func (a *AferoSourceFSAdapter) MkdirAll(ctx context.Context, path m.Path, perm os.FileMode) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return a.fs.MkdirAll(string(path), perm)
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *AferoSourceFSAdapter) FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return a.fs.Stat(string(path))
}

// Exists reports whether path exists.
func (a *AferoSourceFSAdapter) Exists(ctx context.Context, path m.Path) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	return afero.Exists(a.fs, string(path))
}

// CreateTempDir creates a staging directory under the default temp dir.
func (a *AferoSourceFSAdapter) CreateTempDir(ctx context.Context, pattern string) (m.Path, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	tmpDir, err := afero.TempDir(a.fs, "", pattern)
	if err != nil {
		return "", err
	}

	return m.Path(tmpDir), nil
}

// RemoveAll removes a directory and all its contents.
func (a *AferoSourceFSAdapter) RemoveAll(_ context.Context, path m.Path) error {
	return a.fs.RemoveAll(string(path))
}

// RelPath returns the relative path from base to target.
func (a *AferoSourceFSAdapter) RelPath(_ context.Context, base, target m.Path) (m.Path, error) {
	rel, err := filepath.Rel(string(base), string(target))
	if err != nil {
		return "", err
	}

	return m.Path(rel), nil
}

// JoinPath joins path elements into a single path.
func (a *AferoSourceFSAdapter) JoinPath(_ context.Context, elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
