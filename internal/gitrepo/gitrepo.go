package gitrepo

import (
	"context"
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"
	"time"

	"repoclone/internal/manifest"
)

const (
	DefaultQueryTimeout = 30 * time.Second
	DefaultCloneTimeout = 10 * time.Minute
)

var ErrInvalidName = errors.New("invalid repository name")

// Locate returns the directory a repository named name is cloned to. Names are relative,
// slash separated and canonical, so distinct names never share a directory, and the result
// always lies strictly below outputFolder.
func Locate(outputFolder string, name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("%w: empty name", ErrInvalidName)
	}
	slashed := filepath.ToSlash(name)
	if path.IsAbs(slashed) || filepath.IsAbs(name) || filepath.VolumeName(name) != "" {
		return "", fmt.Errorf("%w: %q is absolute", ErrInvalidName, name)
	}
	if path.Clean(slashed) != slashed {
		return "", fmt.Errorf("%w: %q is not in canonical form", ErrInvalidName, name)
	}
	if slashed == "." || slashed == ".." || strings.HasPrefix(slashed, "../") {
		return "", fmt.Errorf("%w: %q escapes the output folder", ErrInvalidName, name)
	}

	base := filepath.Clean(outputFolder)
	repoPath := filepath.Join(base, filepath.FromSlash(slashed))
	rel, err := filepath.Rel(base, repoPath)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q escapes the output folder", ErrInvalidName, name)
	}
	return repoPath, nil
}

type OutcomeKind int

const (
	Cloned OutcomeKind = iota
	Skipped
	Failed
)

func (k OutcomeKind) String() string {
	switch k {
	case Cloned:
		return "cloned"
	case Skipped:
		return "skipped"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("OutcomeKind(%d)", int(k))
	}
}

// Outcome is what a synchronization pass did for one descriptor.
type Outcome struct {
	Descriptor     manifest.Descriptor
	Path           string
	Kind           OutcomeKind
	Classification ClassificationResult
	Reason         string
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
