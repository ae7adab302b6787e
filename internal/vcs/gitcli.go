package vcs

import (
	"context"
	"path/filepath"
	"strings"

	"repoclone/internal/sh"
)

// GitCLI runs the git executable.
type GitCLI struct {
	Binary     string
	RemoteName string
}

// QueryRemoteURL reads the remote URL of the repository rooted at path. Repository discovery
// is stopped at path's parent, so a plain directory inside some other repository is not
// mistaken for that repository.
func (g *GitCLI) QueryRemoteURL(ctx context.Context, path string) (string, error) {
	cmd, err := g.inRepository(path, "remote", "get-url", g.RemoteName)
	if err != nil {
		return "", err
	}
	out, err := sh.ExecuteCommand(ctx, sh.DirectoryPath(path), cmd)
	if err != nil {
		return "", err
	}
	url := strings.TrimSpace(out)
	if url == "" || strings.Contains(url, "\n") {
		return "", &UnexpectedOutputError{Operation: "git remote get-url", Path: path, Output: out}
	}
	return url, nil
}

func (g *GitCLI) Clone(ctx context.Context, url string, destination string) error {
	args := []string{"clone"}
	if g.RemoteName != DefaultRemoteName {
		args = append(args, "--origin", g.RemoteName)
	}
	args = append(args, "--", url, destination)
	cmd := sh.NewCommand(g.Binary, args...).WithEnv("GIT_TERMINAL_PROMPT=0")
	_, err := sh.ExecuteCommand(ctx, "", cmd)
	return err
}

func (g *GitCLI) QueryStatus(ctx context.Context, path string) (string, error) {
	cmd, err := g.inRepository(path, "status", "--porcelain=v1")
	if err != nil {
		return "", err
	}
	return sh.ExecuteCommand(ctx, sh.DirectoryPath(path), cmd)
}

func (g *GitCLI) inRepository(path string, args ...string) (sh.Command, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return sh.Command{}, err
	}
	return sh.NewCommand(g.Binary, args...).WithEnv("GIT_CEILING_DIRECTORIES=" + filepath.Dir(absPath)), nil
}
