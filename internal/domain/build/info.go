// Package build describes the running lookout binary.
package build

import "fmt"

const (
	// Name is the program name used in man pages, agents and file paths.
	Name = "lookout"
	// RepoURL is the project home.
	RepoURL = "https://github.com/bnema/lookout"

	unknown      = "unknown"
	devVersion   = "dev"
	shortHashLen = 7
)

// Info is stamped at link time. Normalize fills whatever the build left empty.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// Normalize returns a copy with empty fields replaced by placeholders.
func (i Info) Normalize() Info {
	if i.Version == "" {
		i.Version = devVersion
	}
	if i.Commit == "" {
		i.Commit = unknown
	}
	if i.BuildDate == "" {
		i.BuildDate = unknown
	}
	if i.GoVersion == "" {
		i.GoVersion = unknown
	}
	return i
}

// ShortCommit returns the abbreviated commit hash.
func (i Info) ShortCommit() string {
	c := i.Normalize().Commit
	if len(c) > shortHashLen && c != unknown {
		return c[:shortHashLen]
	}
	return c
}

// Agent identifies this build to bridge clients, e.g. "lookout/1.4.0 (3f2a9c1)".
func (i Info) Agent() string {
	n := i.Normalize()
	if n.Commit == unknown {
		return fmt.Sprintf("%s/%s", Name, n.Version)
	}
	return fmt.Sprintf("%s/%s (%s)", Name, n.Version, i.ShortCommit())
}
