package gitrepo

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"repoclone/internal/ext"
	logger "repoclone/internal/log"
	"repoclone/internal/manifest"
)

// MetadataDir marks a directory as a repository root.
const MetadataDir = ".git"

// WorkingCopyManager answers read-only questions about working copies on disk.
type WorkingCopyManager struct {
	vcs          VCS
	queryTimeout time.Duration
}

func NewWorkingCopyManager(vcs VCS, queryTimeout time.Duration) *WorkingCopyManager {
	return &WorkingCopyManager{vcs: vcs, queryTimeout: ext.DefaultValue(queryTimeout, DefaultQueryTimeout)}
}

type StatusReport struct {
	Descriptor manifest.Descriptor
	Path       string
	Category   StatusCategory
	Summary    string
	Err        error
}

// ReportStatus queries the working tree status of every descriptor's local path.
func (m *WorkingCopyManager) ReportStatus(ctx context.Context, descriptors []manifest.Descriptor, outputFolder string) ([]StatusReport, error) {
	reports := make([]StatusReport, 0, len(descriptors))
	for _, descriptor := range descriptors {
		if err := ctx.Err(); err != nil {
			return reports, err
		}
		reports = append(reports, m.reportStatus(ctx, descriptor, outputFolder))
	}
	return reports, nil
}

func (m *WorkingCopyManager) reportStatus(ctx context.Context, descriptor manifest.Descriptor, outputFolder string) StatusReport {
	report := StatusReport{Descriptor: descriptor, Category: Unknown}

	repoPath, err := Locate(outputFolder, descriptor.Name)
	if err != nil {
		report.Err = err
		return report
	}
	report.Path = repoPath

	if _, err := os.Stat(repoPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			report.Err = fmt.Errorf("not cloned: %s does not exist", repoPath)
		} else {
			report.Err = err
		}
		return report
	}

	queryCtx, cancel := withTimeout(ctx, m.queryTimeout)
	defer cancel()
	porcelain, err := m.vcs.QueryStatus(queryCtx, repoPath)
	if err != nil {
		logger.Log.Errorf("Failed to check status for repository %s: %v", descriptor.Name, err)
		report.Err = err
		return report
	}

	report.Category, report.Summary, report.Err = ClassifyStatus(porcelain)
	if report.Err != nil {
		logger.Log.Warnf("Unrecognized status output for %s: %v", descriptor.Name, report.Err)
	}
	return report
}

type ExtractFailure struct {
	Path string
	Err  error
}

type ExtractResult struct {
	Descriptors []manifest.Descriptor
	Skipped     []ExtractFailure
}

// ErrRootIsRepository marks an extraction root that is a repository itself. Repositories are
// leaves, so nothing below it is listed.
var ErrRootIsRepository = errors.New("root is itself a repository and is not descended into")

// ExtractManifest walks root and describes every repository found below it. A directory
// holding a MetadataDir is a repository and is not descended into. Names are slash
// separated paths relative to root. Repositories whose remote cannot be read are listed in
// Skipped.
func (m *WorkingCopyManager) ExtractManifest(ctx context.Context, root string) (ExtractResult, error) {
	result := ExtractResult{Descriptors: []manifest.Descriptor{}}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return result, fmt.Errorf("failed to resolve %s: %w", root, err)
	}
	info, err := os.Stat(absRoot)
	if err != nil {
		return result, fmt.Errorf("cannot read %s: %w", root, err)
	}
	if !info.IsDir() {
		return result, fmt.Errorf("%s is not a directory", root)
	}
	if isRepositoryRoot(absRoot) {
		logger.Log.Warnf("Not extracting from %s: %v", absRoot, ErrRootIsRepository)
		result.Skipped = append(result.Skipped, ExtractFailure{Path: absRoot, Err: ErrRootIsRepository})
		return result, nil
	}

	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == absRoot {
				return walkErr
			}
			logger.Log.Warnf("Cannot read %s: %v", path, walkErr)
			result.Skipped = append(result.Skipped, ExtractFailure{Path: path, Err: walkErr})
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if d.Name() == MetadataDir {
			return filepath.SkipDir
		}
		if path == absRoot || !isRepositoryRoot(path) {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		rel, err := filepath.Rel(absRoot, path)
		if err != nil {
			return err
		}
		queryCtx, cancel := withTimeout(ctx, m.queryTimeout)
		remoteURL, err := m.vcs.QueryRemoteURL(queryCtx, path)
		cancel()
		if err != nil {
			logger.Log.Warnf("Skipping %s: %v", path, err)
			result.Skipped = append(result.Skipped, ExtractFailure{Path: path, Err: err})
			return filepath.SkipDir
		}
		result.Descriptors = append(result.Descriptors, manifest.Descriptor{Name: filepath.ToSlash(rel), URL: remoteURL})
		return filepath.SkipDir
	})
	if err != nil {
		return result, err
	}
	return result, nil
}

func isRepositoryRoot(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, MetadataDir))
	return err == nil && info.IsDir()
}

type StatusCategory int

const (
	Clean StatusCategory = iota
	Dirty
	Unknown
)

func (c StatusCategory) String() string {
	switch c {
	case Clean:
		return "clean"
	case Dirty:
		return "dirty"
	default:
		return "unknown"
	}
}

const porcelainCodes = " MTADRCU?!"

// ClassifyStatus reads porcelain v1 status output. Output with no entries is Clean, output
// made only of well formed entries is Dirty, anything else is Unknown.
func ClassifyStatus(porcelain string) (StatusCategory, string, error) {
	var modified, added, deleted, renamed, conflicted, untracked int
	entries := 0
	for _, line := range strings.Split(porcelain, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		if len(line) < 4 || line[2] != ' ' || !strings.ContainsRune(porcelainCodes, rune(line[0])) || !strings.ContainsRune(porcelainCodes, rune(line[1])) {
			return Unknown, "", fmt.Errorf("unexpected status line %q", line)
		}
		code := line[:2]
		switch {
		case code == "!!":
			continue
		case code == "??":
			untracked++
		case strings.ContainsRune(code, 'U') || code == "AA" || code == "DD":
			conflicted++
		case strings.ContainsAny(code, "RC"):
			renamed++
		case strings.ContainsRune(code, 'A'):
			added++
		case strings.ContainsRune(code, 'D'):
			deleted++
		case strings.ContainsAny(code, "MT"):
			modified++
		default:
			return Unknown, "", fmt.Errorf("unexpected status line %q", line)
		}
		entries++
	}
	if entries == 0 {
		return Clean, "nothing to commit, working tree clean", nil
	}

	var parts []string
	for _, count := range []struct {
		n     int
		label string
	}{
		{modified, "modified"},
		{added, "added"},
		{deleted, "deleted"},
		{renamed, "renamed"},
		{conflicted, "conflicted"},
		{untracked, "untracked"},
	} {
		if count.n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", count.n, count.label))
		}
	}
	return Dirty, strings.Join(parts, ", "), nil
}
