// Package model defines the data structures shared by the skeletor workflow.
package model

import "strings"

// Path represents a file system path.
type Path string

// SourceStrategy selects how the template tree is acquired.
type SourceStrategy string

const (
	// SourceLocal reads a template tree bundled with the tool or from a local directory.
	SourceLocal SourceStrategy = "local"

	// SourceRemote downloads a pinned archive and extracts it to a staging directory.
	SourceRemote SourceStrategy = "remote"
)

// ValidSourceStrategies returns all known strategies.
func ValidSourceStrategies() []SourceStrategy {
	return []SourceStrategy{SourceLocal, SourceRemote}
}

// IsValid reports whether s is a known strategy.
func (s SourceStrategy) IsValid() bool {
	switch s {
	case SourceLocal, SourceRemote:
		return true
	default:
		return false
	}
}

// ArchiveAddress identifies a repository snapshot by organization, repository
// and exact commit.
type ArchiveAddress struct {
	Organization string
	Repository   string
	Revision     string
}

// ShortRevision returns the first seven characters of the revision in lower
// case, the form GitHub uses for the tarball root.
func (a ArchiveAddress) ShortRevision() string {
	rev := strings.ToLower(a.Revision)
	if len(rev) <= 7 {
		return rev
	}

	return rev[:7]
}

// RootDirName is the name of the single top-level directory of the archive.
func (a ArchiveAddress) RootDirName() string {
	return a.Organization + "-" + a.Repository + "-" + a.ShortRevision()
}
