package gitrepo

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	logger "repoclone/internal/log"
)

func TestMain(m *testing.M) {
	logger.Discard()
	os.Exit(m.Run())
}

// MockVCS keeps remotes in memory and materializes clones as bare directories with a
// metadata dir, so the filesystem side of the classifier is exercised for real.
type MockVCS struct {
	mu         sync.Mutex
	remotes    map[string]string
	queryErr   map[string]error
	cloneErr   map[string]error
	status     map[string]string
	statusErr  map[string]error
	blockClone bool

	clones  []string
	queries []string
}

func NewMockVCS() *MockVCS {
	return &MockVCS{
		remotes:   map[string]string{},
		queryErr:  map[string]error{},
		cloneErr:  map[string]error{},
		status:    map[string]string{},
		statusErr: map[string]error{},
	}
}

// addRepository creates a repository on disk whose remote is url.
func (m *MockVCS) addRepository(t *testing.T, path string, url string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Join(path, MetadataDir), os.ModePerm); err != nil {
		t.Fatal(err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.remotes[path] = url
}

func (m *MockVCS) QueryRemoteURL(_ context.Context, path string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queries = append(m.queries, path)
	if err, ok := m.queryErr[path]; ok {
		return "", err
	}
	url, ok := m.remotes[path]
	if !ok {
		return "", errors.New("fatal: not a git repository")
	}
	return url, nil
}

func (m *MockVCS) Clone(ctx context.Context, url string, destination string) error {
	m.mu.Lock()
	m.clones = append(m.clones, url)
	err, failing := m.cloneErr[url]
	block := m.blockClone
	m.mu.Unlock()

	if err := os.MkdirAll(filepath.Join(destination, MetadataDir), os.ModePerm); err != nil {
		return err
	}
	if block {
		<-ctx.Done()
		return ctx.Err()
	}
	if failing {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.remotes[destination] = url
	return nil
}

func (m *MockVCS) QueryStatus(_ context.Context, path string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err, ok := m.statusErr[path]; ok {
		return "", err
	}
	return m.status[path], nil
}

func (m *MockVCS) cloneCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.clones)
}
