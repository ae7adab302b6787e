package gitrepo

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestLocate(t *testing.T) {
	base := filepath.Join("srv", "repos")
	tests := []struct {
		name     string
		repoName string
		expected string
	}{
		{name: "Simple name", repoName: "a", expected: filepath.Join(base, "a")},
		{name: "Nested name", repoName: "group/a", expected: filepath.Join(base, "group", "a")},
		{name: "Dotted name", repoName: "a.git", expected: filepath.Join(base, "a.git")},
		{name: "Leading dots inside name", repoName: "..a", expected: filepath.Join(base, "..a")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Locate(base, tt.repoName)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestLocate_RejectsNamesOutsideOutputFolder(t *testing.T) {
	names := []string{"", ".", "..", "../a", "a/../../b", "/etc/passwd", "a/..", "./a", "a//b", "a/"}

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			_, err := Locate("out", name)
			if !errors.Is(err, ErrInvalidName) {
				t.Errorf("expected ErrInvalidName for %q, got %v", name, err)
			}
		})
	}
}

func TestLocate_DistinctNamesDistinctPaths(t *testing.T) {
	names := []string{"a", "b", "a/b", "b/a", "a.b", "ab", "a-b"}
	seen := map[string]string{}
	for _, name := range names {
		p, err := Locate("out", name)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", name, err)
		}
		if other, ok := seen[p]; ok {
			t.Errorf("%q and %q both map to %q", name, other, p)
		}
		seen[p] = name
	}
}

func TestLocate_StaysUnderOutputFolder(t *testing.T) {
	base := t.TempDir()
	p, err := Locate(base, "x/y")
	if err != nil {
		t.Fatal(err)
	}
	rel, err := filepath.Rel(base, p)
	if err != nil || rel != filepath.Join("x", "y") {
		t.Errorf("expected %s to be below %s, rel=%q err=%v", p, base, rel, err)
	}
}
