// Package vcs holds the version control backends repositories are cloned and queried with.
package vcs

import (
	"fmt"

	"repoclone/internal/gitrepo"
)

const DefaultRemoteName = "origin"

const (
	BackendGit   = "git"
	BackendGoGit = "go-git"
)

// UnexpectedOutputError reports tool output that could not be interpreted.
type UnexpectedOutputError struct {
	Operation string
	Path      string
	Output    string
}

func (e *UnexpectedOutputError) Error() string {
	return fmt.Sprintf("%s in %s: unexpected output %q", e.Operation, e.Path, e.Output)
}

// New returns the backend registered under name.
func New(name string, remoteName string) (gitrepo.VCS, error) {
	if remoteName == "" {
		remoteName = DefaultRemoteName
	}
	switch name {
	case "", BackendGit:
		return &GitCLI{Binary: "git", RemoteName: remoteName}, nil
	case BackendGoGit:
		return &GoGit{RemoteName: remoteName}, nil
	default:
		return nil, fmt.Errorf("unknown backend %q, expected %s or %s", name, BackendGit, BackendGoGit)
	}
}
