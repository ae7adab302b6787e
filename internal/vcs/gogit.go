package vcs

import (
	"context"
	"fmt"

	"github.com/go-git/go-git/v5"
)

// GoGit implements the backend in process with go-git; no git executable is needed.
type GoGit struct {
	RemoteName string
}

func (g *GoGit) QueryRemoteURL(ctx context.Context, path string) (string, error) {
	return withContext(ctx, func() (string, error) {
		return g.queryRemoteURL(path)
	})
}

func (g *GoGit) queryRemoteURL(path string) (string, error) {
	repository, err := git.PlainOpen(path)
	if err != nil {
		return "", fmt.Errorf("failed to open repository %s: %w", path, err)
	}
	remote, err := repository.Remote(g.RemoteName)
	if err != nil {
		return "", fmt.Errorf("failed to read remote %s of %s: %w", g.RemoteName, path, err)
	}
	urls := remote.Config().URLs
	if len(urls) == 0 || urls[0] == "" {
		return "", &UnexpectedOutputError{Operation: "remote " + g.RemoteName, Path: path}
	}
	return urls[0], nil
}

func (g *GoGit) Clone(ctx context.Context, url string, destination string) error {
	_, err := git.PlainCloneContext(ctx, destination, false, &git.CloneOptions{
		URL:        url,
		RemoteName: g.RemoteName,
	})
	if err != nil {
		return fmt.Errorf("failed to clone repository %s: %w", url, err)
	}
	return nil
}

// QueryStatus renders the worktree status in porcelain v1 form.
func (g *GoGit) QueryStatus(ctx context.Context, path string) (string, error) {
	return withContext(ctx, func() (string, error) {
		return g.queryStatus(path)
	})
}

func (g *GoGit) queryStatus(path string) (string, error) {
	repository, err := git.PlainOpen(path)
	if err != nil {
		return "", fmt.Errorf("failed to open repository %s: %w", path, err)
	}
	worktree, err := repository.Worktree()
	if err != nil {
		return "", fmt.Errorf("failed to get worktree of %s: %w", path, err)
	}
	status, err := worktree.Status()
	if err != nil {
		return "", fmt.Errorf("failed to get status of %s: %w", path, err)
	}
	return status.String(), nil
}

// withContext runs query in the background and gives up when ctx ends first. go-git offers
// no context for opening repositories or computing status.
func withContext(ctx context.Context, query func() (string, error)) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	type result struct {
		out string
		err error
	}
	done := make(chan result, 1)
	go func() {
		out, err := query()
		done <- result{out, err}
	}()
	select {
	case r := <-done:
		return r.out, r.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}
