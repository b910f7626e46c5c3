package adapter

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	serrors "skeletor.dev/pkg/skeletor/internal/errors"
	m "skeletor.dev/pkg/skeletor/internal/model"
)

// Remote source defaults.
const (
	DefaultAPIBaseURL   = "https://api.github.com"
	DefaultOrganization = "thephpleague"
	DefaultRepository   = "skeleton"
	DefaultRetries      = 2
	DefaultFetchTimeout = 60 * time.Second

	defaultBackoff = 500 * time.Millisecond
	userAgent      = "skeletor"
)

var revisionPattern = regexp.MustCompile(`^[0-9a-fA-F]{7,40}$`)

// RemoteConfig addresses a pinned repository snapshot.
type RemoteConfig struct {
	APIBaseURL  string
	Address     m.ArchiveAddress
	Retries     int
	Timeout     time.Duration
	KeepStaging bool
}

// RemoteOption customizes a RemoteSourceAcquirer.
type RemoteOption func(*RemoteSourceAcquirer)

// WithHTTPClient sets the HTTP client used for the download.
func WithHTTPClient(client *http.Client) RemoteOption {
	return func(a *RemoteSourceAcquirer) {
		a.client = client
	}
}

// WithBackoff sets the delay before the first retry. Later retries double it.
func WithBackoff(base time.Duration) RemoteOption {
	return func(a *RemoteSourceAcquirer) {
		a.backoff = base
	}
}

// RemoteSourceAcquirer downloads a gzip-compressed tarball of a repository
// revision and extracts it into a fresh staging directory.
type RemoteSourceAcquirer struct {
	fs      SourceFSAdapter
	cfg     RemoteConfig
	client  *http.Client
	backoff time.Duration
}

// NewRemoteSourceAcquirer creates an acquirer that stages archives on fsAdapter.
func NewRemoteSourceAcquirer(fsAdapter SourceFSAdapter, cfg RemoteConfig, opts ...RemoteOption) *RemoteSourceAcquirer {
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = DefaultAPIBaseURL
	}

	if cfg.Retries < 0 {
		cfg.Retries = 0
	}

	a := &RemoteSourceAcquirer{
		fs:      fsAdapter,
		cfg:     cfg,
		client:  http.DefaultClient,
		backoff: defaultBackoff,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// ValidateArchiveAddress checks that addr names an exact commit.
func ValidateArchiveAddress(addr m.ArchiveAddress) error {
	if addr.Organization == "" {
		return serrors.NewValidationError("source.remote.organization", "required")
	}

	if addr.Repository == "" {
		return serrors.NewValidationError("source.remote.repository", "required")
	}

	if !revisionPattern.MatchString(addr.Revision) {
		return serrors.NewValidationError("source.remote.revision",
			fmt.Sprintf("%q is not a commit id (7 to 40 hex characters)", addr.Revision))
	}

	return nil
}

// ArchiveURL returns the tarball URL for the configured revision.
func (a *RemoteSourceAcquirer) ArchiveURL() string {
	addr := a.cfg.Address

	return strings.TrimRight(a.cfg.APIBaseURL, "/") +
		"/repos/" + addr.Organization + "/" + addr.Repository + "/tarball/" + addr.Revision
}

// Acquire downloads and extracts the archive. It returns only once the
// expected top-level directory is fully written.
func (a *RemoteSourceAcquirer) Acquire(ctx context.Context) (*SourceTree, error) {
	if err := ValidateArchiveAddress(a.cfg.Address); err != nil {
		return nil, err
	}

	url := a.ArchiveURL()

	staging, err := a.fs.CreateTempDir(ctx, "skeletor-*")
	if err != nil {
		return nil, &serrors.IOError{Op: "create staging", Path: os.TempDir(), Cause: err}
	}

	if err := a.download(ctx, url, staging); err != nil {
		a.discard(ctx, staging)

		var ioErr *serrors.IOError
		if errors.As(err, &ioErr) {
			return nil, err
		}

		return nil, &serrors.FetchError{URL: url, Cause: err}
	}

	expected := a.cfg.Address.RootDirName()
	root := a.fs.JoinPath(ctx, string(staging), expected)

	info, err := a.fs.FileInfo(ctx, root)
	if err != nil || !info.IsDir() {
		found := a.topLevelNames(ctx, staging)
		a.discard(ctx, staging)

		return nil, &serrors.ExtractionError{
			Archive:  url,
			Expected: expected,
			Cause:    fmt.Errorf("archive contains %v", found),
		}
	}

	slog.Info("acquired remote source", "url", url, "staging", staging)

	release := func() error {
		if a.cfg.KeepStaging {
			slog.Info("keeping staging directory", "path", staging)
			return nil
		}

		return a.fs.RemoveAll(context.Background(), staging)
	}

	return NewSourceTree(a.fs, root, url, release), nil
}

// transientError marks failures worth retrying.
type transientError struct {
	err error
}

func (e *transientError) Error() string { return e.err.Error() }

func (e *transientError) Unwrap() error { return e.err }

func (a *RemoteSourceAcquirer) download(ctx context.Context, url string, staging m.Path) error {
	delay := a.backoff

	var err error

	for attempt := 0; attempt <= a.cfg.Retries; attempt++ {
		if attempt > 0 {
			slog.Warn("retrying template download", "url", url, "attempt", attempt, "error", err)

			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}

			delay *= 2

			if err := a.resetStaging(ctx, staging); err != nil {
				return err
			}
		}

		err = a.fetchOnce(ctx, url, staging)
		if err == nil {
			return nil
		}

		var transient *transientError
		if !errors.As(err, &transient) || ctx.Err() != nil {
			return err
		}
	}

	return err
}

func (a *RemoteSourceAcquirer) fetchOnce(ctx context.Context, url string, staging m.Path) error {
	if a.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.cfg.Timeout)

		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating download request: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)

	slog.Debug("downloading template archive", "url", url)

	resp, err := a.client.Do(req)
	if err != nil {
		return &transientError{err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return &transientError{err: fmt.Errorf("download returned status %d", resp.StatusCode)}
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download returned status %d", resp.StatusCode)
	}

	return a.extract(ctx, resp.Body, staging)
}

func (a *RemoteSourceAcquirer) extract(ctx context.Context, r io.Reader, staging m.Path) error {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return fmt.Errorf("creating gzip reader: %w", err)
	}
	defer gz.Close()

	tr := tar.NewReader(gz)

	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return nil
		}

		if err != nil {
			return fmt.Errorf("reading tar entry: %w", err)
		}

		name, err := safeEntryName(hdr.Name)
		if err != nil {
			return err
		}

		target := a.fs.JoinPath(ctx, string(staging), filepath.FromSlash(name))

		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := a.fs.MkdirAll(ctx, target, 0o755); err != nil {
				return &serrors.IOError{Op: "mkdir", Path: string(target), Cause: err}
			}
		case tar.TypeReg:
			if err := a.writeEntry(ctx, target, tr, entryPerm(hdr)); err != nil {
				return err
			}
		default:
			slog.Debug("skipping archive entry", "name", hdr.Name, "type", string(hdr.Typeflag))
		}
	}
}

func (a *RemoteSourceAcquirer) writeEntry(ctx context.Context, target m.Path, r io.Reader, perm os.FileMode) error {
	if err := a.fs.MkdirAll(ctx, m.Path(filepath.Dir(string(target))), 0o755); err != nil {
		return &serrors.IOError{Op: "mkdir", Path: string(target), Cause: err}
	}

	out, err := a.fs.Create(ctx, target, perm)
	if err != nil {
		return &serrors.IOError{Op: "create", Path: string(target), Cause: err}
	}

	if _, err := io.Copy(out, r); err != nil {
		out.Close()
		return fmt.Errorf("extracting %s: %w", target, err)
	}

	if err := out.Close(); err != nil {
		return &serrors.IOError{Op: "close", Path: string(target), Cause: err}
	}

	return nil
}

func (a *RemoteSourceAcquirer) resetStaging(ctx context.Context, staging m.Path) error {
	if err := a.fs.RemoveAll(ctx, staging); err != nil {
		return &serrors.IOError{Op: "reset staging", Path: string(staging), Cause: err}
	}

	if err := a.fs.MkdirAll(ctx, staging, 0o700); err != nil {
		return &serrors.IOError{Op: "reset staging", Path: string(staging), Cause: err}
	}

	return nil
}

func (a *RemoteSourceAcquirer) discard(ctx context.Context, staging m.Path) {
	if a.cfg.KeepStaging {
		slog.Info("keeping staging directory after failure", "path", staging)
		return
	}

	if err := a.fs.RemoveAll(ctx, staging); err != nil {
		slog.Error("failed to remove staging directory", "path", staging, "error", err)
	}
}

func (a *RemoteSourceAcquirer) topLevelNames(ctx context.Context, staging m.Path) []string {
	var names []string

	_ = a.fs.Walk(ctx, staging, func(p string, info os.FileInfo, err error) error {
		if err != nil || p == string(staging) {
			return err
		}

		names = append(names, filepath.Base(p))
		if info.IsDir() {
			return filepath.SkipDir
		}

		return nil
	})

	return names
}

// safeEntryName rejects archive entries that would land outside staging.
func safeEntryName(name string) (string, error) {
	cleaned := path.Clean(name)

	if path.IsAbs(cleaned) || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", fmt.Errorf("unsafe archive entry %q", name)
	}

	return cleaned, nil
}

func entryPerm(hdr *tar.Header) os.FileMode {
	if hdr.Mode&0o111 != 0 {
		return 0o755
	}

	return 0o644
}
