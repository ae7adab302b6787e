package gitrepo

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"
)

type Classification int

const (
	// Absent: nothing exists at the local path.
	Absent Classification = iota
	// Matched: the local path is a repository whose remote equals the expected URL.
	Matched
	// Conflict: the local path exists but is not the expected repository.
	Conflict
)

func (c Classification) String() string {
	switch c {
	case Absent:
		return "absent"
	case Matched:
		return "matched"
	case Conflict:
		return "conflict"
	default:
		return fmt.Sprintf("Classification(%d)", int(c))
	}
}

type ClassificationResult struct {
	Kind      Classification
	Reason    string
	RemoteURL string
}

type Policy int

const (
	// PolicyStrict compares the remote URL of an existing path with the expected one.
	PolicyStrict Policy = iota
	// PolicyExistenceOnly treats any existing path as already cloned.
	PolicyExistenceOnly
)

type Classifier struct {
	VCS          VCS
	Policy       Policy
	QueryTimeout time.Duration
}

// Classify relates the local path of a descriptor to its expected remote URL. The remote
// is queried at most once; URLs are compared byte for byte.
func (c Classifier) Classify(ctx context.Context, path string, expectedURL string) ClassificationResult {
	if _, err := os.Lstat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ClassificationResult{Kind: Absent}
		}
		return ClassificationResult{Kind: Conflict, Reason: fmt.Sprintf("cannot inspect %s: %v", path, err)}
	}

	if c.Policy == PolicyExistenceOnly {
		return ClassificationResult{Kind: Matched, Reason: "directory exists"}
	}

	queryCtx, cancel := withTimeout(ctx, c.QueryTimeout)
	defer cancel()
	remoteURL, err := c.VCS.QueryRemoteURL(queryCtx, path)
	if err != nil {
		return ClassificationResult{Kind: Conflict, Reason: fmt.Sprintf("not a recognized repository: %v", err)}
	}
	if remoteURL != expectedURL {
		return ClassificationResult{
			Kind:      Conflict,
			Reason:    fmt.Sprintf("remote mismatch: expected %s, found %s", expectedURL, remoteURL),
			RemoteURL: remoteURL,
		}
	}
	return ClassificationResult{Kind: Matched, RemoteURL: remoteURL}
}
