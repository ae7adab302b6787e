package ext

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultValue(t *testing.T) {
	if got := DefaultValue(0*time.Second, 5*time.Second); got != 5*time.Second {
		t.Errorf("expected fallback, got %s", got)
	}
	if got := DefaultValue(2*time.Second, 5*time.Second); got != 2*time.Second {
		t.Errorf("expected value, got %s", got)
	}
	if got := DefaultValue("", "origin"); got != "origin" {
		t.Errorf("expected fallback, got %q", got)
	}
}

func TestReplaceHomeDirWithTilde(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got := ReplaceHomeDirWithTilde(filepath.Join(homeDir, "repos")); got != "~"+string(filepath.Separator)+"repos" {
		t.Errorf("unexpected result %q", got)
	}
	if got := ReplaceHomeDirWithTilde("relative/path"); got != "relative/path" {
		t.Errorf("expected relative path to be unchanged, got %q", got)
	}
}
