package gitrepo

import "context"

// VCS is the version control tool the repositories are materialized with.
type VCS interface {
	// QueryRemoteURL returns the configured remote URL of the repository at path.
	QueryRemoteURL(ctx context.Context, path string) (string, error)
	// Clone materializes the repository at url in destination.
	Clone(ctx context.Context, url string, destination string) error
	// QueryStatus returns the working tree status of path in porcelain v1 format.
	QueryStatus(ctx context.Context, path string) (string, error)
}
