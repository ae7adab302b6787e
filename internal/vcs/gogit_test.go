package vcs

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"repoclone/internal/gitrepo"
)

func initGoGitRepository(t *testing.T, remoteURL string) string {
	t.Helper()
	dir := t.TempDir()
	repository, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	if remoteURL != "" {
		_, err = repository.CreateRemote(&config.RemoteConfig{Name: DefaultRemoteName, URLs: []string{remoteURL}})
		require.NoError(t, err)
	}
	return dir
}

func TestGoGit_QueryRemoteURL(t *testing.T) {
	dir := initGoGitRepository(t, "https://example.com/a.git")

	url, err := (&GoGit{RemoteName: DefaultRemoteName}).QueryRemoteURL(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/a.git", url)
}

func TestGoGit_QueryRemoteURL_MissingRemote(t *testing.T) {
	dir := initGoGitRepository(t, "")

	_, err := (&GoGit{RemoteName: DefaultRemoteName}).QueryRemoteURL(context.Background(), dir)
	assert.ErrorIs(t, err, git.ErrRemoteNotFound)
}

func TestGoGit_QueryRemoteURL_NotARepository(t *testing.T) {
	_, err := (&GoGit{RemoteName: DefaultRemoteName}).QueryRemoteURL(context.Background(), t.TempDir())
	assert.ErrorIs(t, err, git.ErrRepositoryNotExists)
}

func TestGoGit_QueryStatus(t *testing.T) {
	dir := initGoGitRepository(t, "https://example.com/a.git")
	backend := &GoGit{RemoteName: DefaultRemoteName}

	porcelain, err := backend.QueryStatus(context.Background(), dir)
	require.NoError(t, err)
	category, _, err := gitrepo.ClassifyStatus(porcelain)
	require.NoError(t, err)
	assert.Equal(t, gitrepo.Clean, category)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "new.txt"), []byte("x"), 0644))
	porcelain, err = backend.QueryStatus(context.Background(), dir)
	require.NoError(t, err)
	category, summary, err := gitrepo.ClassifyStatus(porcelain)
	require.NoError(t, err)
	assert.Equal(t, gitrepo.Dirty, category)
	assert.Equal(t, "1 untracked", summary)
}

func TestGoGit_ClassifierIntegration(t *testing.T) {
	dir := initGoGitRepository(t, "https://example.com/a.git")
	classifier := gitrepo.Classifier{VCS: &GoGit{RemoteName: DefaultRemoteName}}

	assert.Equal(t, gitrepo.Matched, classifier.Classify(context.Background(), dir, "https://example.com/a.git").Kind)
	assert.Equal(t, gitrepo.Conflict, classifier.Classify(context.Background(), dir, "https://example.com/a").Kind)
}

func TestNew(t *testing.T) {
	backend, err := New("", "")
	require.NoError(t, err)
	assert.Equal(t, &GitCLI{Binary: "git", RemoteName: DefaultRemoteName}, backend)

	backend, err = New(BackendGoGit, "upstream")
	require.NoError(t, err)
	assert.Equal(t, &GoGit{RemoteName: "upstream"}, backend)

	_, err = New("svn", "")
	assert.Error(t, err)
}

func TestGoGit_QueryRemoteURL_Cancelled(t *testing.T) {
	dir := initGoGitRepository(t, "https://example.com/a.git")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := (&GoGit{RemoteName: DefaultRemoteName}).QueryRemoteURL(ctx, dir)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = (&GoGit{RemoteName: DefaultRemoteName}).QueryStatus(ctx, dir)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWithContext_Deadline(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := withContext(ctx, func() (string, error) {
		<-release
		return "late", nil
	})

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestWithContext_Result(t *testing.T) {
	out, err := withContext(context.Background(), func() (string, error) {
		return "origin", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "origin", out)
}
