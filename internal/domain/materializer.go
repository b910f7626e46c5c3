package domain

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"
	"skeletor.dev/pkg/skeletor/internal/adapter"
	serrors "skeletor.dev/pkg/skeletor/internal/errors"
	m "skeletor.dev/pkg/skeletor/internal/model"
)

const (
	defaultThreads = 4
	dirPerm        = 0o755
	filePerm       = 0o644
	execPerm       = 0o755
)

// AlwaysExcluded lists path segments that are never copied, whatever the
// configured denylist says.
var AlwaysExcluded = []string{".git"}

// ListFiles returns every regular file under the tree root, dotfiles
// included, relative to the root and sorted. Symlinks to regular files are
// listed under the link's path; symlinked directories are not followed. Any path with a segment in
// denylist (or AlwaysExcluded) is skipped along with everything below it.
func ListFiles(ctx context.Context, tree *adapter.SourceTree, denylist []string) ([]m.Path, error) {
	excluded := make(map[string]struct{}, len(denylist)+len(AlwaysExcluded))
	for _, name := range append(slices.Clone(AlwaysExcluded), denylist...) {
		excluded[name] = struct{}{}
	}

	var files []m.Path

	err := tree.FS.Walk(ctx, tree.Root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return &serrors.IOError{Op: "walk", Path: path, Cause: err}
		}

		rel, err := tree.FS.RelPath(ctx, tree.Root, m.Path(path))
		if err != nil {
			return &serrors.IOError{Op: "walk", Path: path, Cause: err}
		}

		if rel == "." {
			return nil
		}

		if hasExcludedSegment(string(rel), excluded) {
			if info.IsDir() {
				return filepath.SkipDir
			}

			return nil
		}

		if info.Mode()&os.ModeSymlink != 0 {
			target, err := tree.FS.FileInfo(ctx, m.Path(path))
			if err != nil {
				slog.Warn("skipping dangling symlink", "path", rel, "error", err)
				return nil
			}

			// Linked directories are not descended into.
			if !target.Mode().IsRegular() {
				slog.Debug("skipping symlink to non-regular file", "path", rel, "mode", target.Mode().String())
				return nil
			}

			info = target
		}

		if info.Mode().IsRegular() {
			files = append(files, rel)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.Sort(files)

	return files, nil
}

func hasExcludedSegment(rel string, excluded map[string]struct{}) bool {
	for _, segment := range strings.Split(filepath.ToSlash(rel), "/") {
		if _, ok := excluded[segment]; ok {
			return true
		}
	}

	return false
}

// MaterializeOptions tunes a Materialize call.
type MaterializeOptions struct {
	Threads  int
	Denylist []string

	// OnFile, when set, is called from worker goroutines after each write.
	OnFile func(m.FileResult)
}

// Materializer copies a template tree into a destination, rewriting text
// files on the way.
type Materializer struct {
	dst adapter.SourceFSAdapter
}

// NewMaterializer creates a Materializer writing to dst.
func NewMaterializer(dst adapter.SourceFSAdapter) *Materializer {
	return &Materializer{dst: dst}
}

// Materialize writes every listed file of tree under destination. Files are
// processed by a bounded pool; the first failure cancels the remaining work
// and is returned. Results are ordered like ListFiles.
func (mt *Materializer) Materialize(
	ctx context.Context,
	tree *adapter.SourceTree,
	destination m.Path,
	rules RuleSet,
	opts MaterializeOptions,
) ([]m.FileResult, error) {
	files, err := ListFiles(ctx, tree, opts.Denylist)
	if err != nil {
		return nil, err
	}

	threads := opts.Threads
	if threads <= 0 {
		threads = defaultThreads
	}

	results := make([]m.FileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)

	for i, rel := range files {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			res, err := mt.materializeFile(gctx, tree, destination, rel, rules)
			if err != nil {
				return err
			}

			results[i] = res

			if opts.OnFile != nil {
				opts.OnFile(res)
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

func (mt *Materializer) materializeFile(
	ctx context.Context,
	tree *adapter.SourceTree,
	destination m.Path,
	rel m.Path,
	rules RuleSet,
) (m.FileResult, error) {
	if err := ctx.Err(); err != nil {
		return m.FileResult{}, err
	}

	src := tree.FS.JoinPath(ctx, string(tree.Root), string(rel))

	content, err := tree.FS.ReadFile(ctx, src)
	if err != nil {
		return m.FileResult{}, &serrors.IOError{Op: "read", Path: string(rel), Cause: err}
	}

	perm := os.FileMode(filePerm)
	if info, err := tree.FS.FileInfo(ctx, src); err == nil && info.Mode().Perm()&0o111 != 0 {
		perm = execPerm
	}

	result := m.FileResult{Path: rel}

	out := content
	if IsText(content) {
		transformed := Transform(rules, string(content))
		result.Transformed = true
		result.Changed = transformed != string(content)
		out = []byte(transformed)
	}

	result.Bytes = len(out)

	target := mt.dst.JoinPath(ctx, string(destination), string(rel))

	if err := mt.dst.MkdirAll(ctx, m.Path(filepath.Dir(string(target))), dirPerm); err != nil {
		return m.FileResult{}, &serrors.IOError{Op: "mkdir", Path: string(rel), Cause: err}
	}

	if err := mt.dst.WriteFile(ctx, target, out, perm); err != nil {
		return m.FileResult{}, &serrors.IOError{Op: "write", Path: string(rel), Cause: err}
	}

	return result, nil
}

// FilePreview is the before/after view of one template file.
type FilePreview struct {
	Path        m.Path
	Text        bool
	Original    string
	Transformed string
}

// Preview transforms every listed file in memory without writing anything.
func Preview(ctx context.Context, tree *adapter.SourceTree, rules RuleSet, denylist []string) ([]FilePreview, error) {
	files, err := ListFiles(ctx, tree, denylist)
	if err != nil {
		return nil, err
	}

	previews := make([]FilePreview, 0, len(files))

	for _, rel := range files {
		content, err := tree.FS.ReadFile(ctx, tree.FS.JoinPath(ctx, string(tree.Root), string(rel)))
		if err != nil {
			return nil, &serrors.IOError{Op: "read", Path: string(rel), Cause: err}
		}

		p := FilePreview{Path: rel, Text: IsText(content)}
		if p.Text {
			p.Original = string(content)
			p.Transformed = Transform(rules, p.Original)
		}

		previews = append(previews, p)
	}

	return previews, nil
}
