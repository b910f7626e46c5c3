package adapter

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"

	serrors "skeletor.dev/pkg/skeletor/internal/errors"
	m "skeletor.dev/pkg/skeletor/internal/model"
	"skeletor.dev/pkg/skeletor/internal/skeleton"
)

// SourceAcquirer makes a template tree available on a filesystem.
type SourceAcquirer interface {
	// Acquire blocks until the whole tree is readable. Callers must Release
	// the returned tree.
	Acquire(ctx context.Context) (*SourceTree, error)
}

// SourceTree is a readable template tree rooted at Root on FS.
type SourceTree struct {
	FS     SourceFSAdapter
	Root   m.Path
	Origin string

	release func() error
}

// NewSourceTree builds a tree handle. release may be nil.
func NewSourceTree(fsys SourceFSAdapter, root m.Path, origin string, release func() error) *SourceTree {
	return &SourceTree{FS: fsys, Root: root, Origin: origin, release: release}
}

// Release removes any staging owned by the tree. It is safe to call more
// than once.
func (t *SourceTree) Release() error {
	if t == nil || t.release == nil {
		return nil
	}

	release := t.release
	t.release = nil

	return release()
}

// LocalSourceAcquirer serves a tree that already exists on a filesystem.
type LocalSourceAcquirer struct {
	fs     SourceFSAdapter
	root   m.Path
	origin string
}

// NewBundledSourceAcquirer serves the skeleton embedded in the binary.
func NewBundledSourceAcquirer() *LocalSourceAcquirer {
	return NewFSSourceAcquirer(skeleton.FS, skeleton.Root, "bundled skeleton")
}

// NewFSSourceAcquirer serves root from an io/fs filesystem.
func NewFSSourceAcquirer(fsys fs.FS, root, origin string) *LocalSourceAcquirer {
	return &LocalSourceAcquirer{
		fs:     NewReadOnlySourceFSAdapter(fsys),
		root:   m.Path(root),
		origin: origin,
	}
}

// NewDirSourceAcquirer serves an on-disk template directory.
func NewDirSourceAcquirer(fsAdapter SourceFSAdapter, dir m.Path) *LocalSourceAcquirer {
	return &LocalSourceAcquirer{fs: fsAdapter, root: dir, origin: string(dir)}
}

// Acquire checks that the root is a directory and returns it. Nothing is
// staged, so Release is a no-op.
func (a *LocalSourceAcquirer) Acquire(ctx context.Context) (*SourceTree, error) {
	info, err := a.fs.FileInfo(ctx, a.root)
	if err != nil {
		return nil, &serrors.IOError{Op: "stat", Path: string(a.root), Cause: err}
	}

	if !info.IsDir() {
		return nil, &serrors.IOError{Op: "stat", Path: string(a.root), Cause: fmt.Errorf("not a directory")}
	}

	slog.Debug("acquired local source", "origin", a.origin, "root", a.root)

	return NewSourceTree(a.fs, a.root, a.origin, nil), nil
}
