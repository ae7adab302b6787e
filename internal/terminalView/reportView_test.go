package terminalView

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"testing"

	"repoclone/internal/color"
	"repoclone/internal/gitrepo"
	"repoclone/internal/manifest"
	"repoclone/internal/view"
)

type fakeView struct {
	output string
	stdout io.Writer
}

func newFakeView(stdout io.Writer, output string) view.View {
	return &fakeView{output: output, stdout: stdout}
}

func (f *fakeView) Render(int) int {
	_, _ = fmt.Fprint(f.stdout, f.output)
	return 1
}

func TestMain(m *testing.M) {
	color.SetEnabled(false)
	os.Exit(m.Run())
}

func TestReportView_SyncRun(t *testing.T) {
	var buf bytes.Buffer
	vm := NewReportViewModel("/tmp/repoclone.log", SyncLabels...)
	r := NewReportView(vm, &buf, 0, newFakeView(&buf, "5.00 seconds\n"))

	r.Header("Cloning into /out:")
	r.Entry(SyncEntry(gitrepo.Outcome{Descriptor: manifest.Descriptor{Name: "a"}, Kind: gitrepo.Cloned}))
	r.Entry(SyncEntry(gitrepo.Outcome{
		Descriptor:     manifest.Descriptor{Name: "b"},
		Kind:           gitrepo.Skipped,
		Classification: gitrepo.ClassificationResult{Kind: gitrepo.Matched},
		Reason:         "already present",
	}))
	r.Entry(SyncEntry(gitrepo.Outcome{Descriptor: manifest.Descriptor{Name: "c"}, Kind: gitrepo.Failed, Reason: "exit status 128"}))
	lines := r.Render(0)

	expected := "Cloning into /out:\n" +
		"Cloned a successfully.\n" +
		"Repository b is already cloned with matching remote URL. Skipping.\n" +
		"Failed to clone c: exit status 128\n" +
		"1 cloned, 1 already present, 0 conflicts, 1 failed\n" +
		"--- 1 errors ---\nSee log file:\n/tmp/repoclone.log\n" +
		"5.00 seconds\n"
	if buf.String() != expected {
		t.Errorf("output mismatch.\nExpected:\n%s\nGot:\n%s", expected, buf.String())
	}
	if lines != 5 {
		t.Errorf("expected 5 summary lines, got %d", lines)
	}
	if vm.ErrorViewModel.Count() != 1 {
		t.Errorf("expected 1 error, got %d", vm.ErrorViewModel.Count())
	}
}

func TestReportView_NoErrorsNoErrorFooter(t *testing.T) {
	var buf bytes.Buffer
	vm := NewReportViewModel("/tmp/repoclone.log", StatusLabels...)
	r := NewReportView(vm, &buf, 0)

	r.Entry(StatusEntry(gitrepo.StatusReport{
		Descriptor: manifest.Descriptor{Name: "a"},
		Category:   gitrepo.Clean,
		Summary:    "nothing to commit, working tree clean",
	}))
	r.Render(0)

	expected := "Repository a: nothing to commit, working tree clean\n1 clean, 0 dirty, 0 unknown\n"
	if buf.String() != expected {
		t.Errorf("output mismatch.\nExpected:\n%s\nGot:\n%s", expected, buf.String())
	}
}

func TestReportView_TruncatesToWidth(t *testing.T) {
	var buf bytes.Buffer
	vm := NewReportViewModel("")
	r := NewReportView(vm, &buf, 10)

	r.Header("a header that is much too long")

	if got := buf.String(); len(got) > 11 {
		t.Errorf("expected header fitted to 10 columns, got %q", got)
	}
}

func TestSyncEntry_Conflict(t *testing.T) {
	entry := SyncEntry(gitrepo.Outcome{
		Descriptor:     manifest.Descriptor{Name: "a"},
		Kind:           gitrepo.Skipped,
		Classification: gitrepo.ClassificationResult{Kind: gitrepo.Conflict},
		Reason:         "remote mismatch: expected x, found y",
	})
	if entry.Label != "conflicts" || entry.Level != LevelWarning {
		t.Errorf("unexpected entry %+v", entry)
	}
	if entry.Text != "Repository a left untouched: remote mismatch: expected x, found y" {
		t.Errorf("unexpected text %q", entry.Text)
	}
}

func TestInspectionEntry(t *testing.T) {
	tests := []struct {
		inspection gitrepo.Inspection
		label      string
		level      Level
	}{
		{gitrepo.Inspection{Result: gitrepo.ClassificationResult{Kind: gitrepo.Matched}}, "cloned", LevelSuccess},
		{gitrepo.Inspection{Result: gitrepo.ClassificationResult{Kind: gitrepo.Absent}}, "not cloned", LevelWarning},
		{gitrepo.Inspection{Result: gitrepo.ClassificationResult{Kind: gitrepo.Conflict}}, "conflicts", LevelWarning},
		{gitrepo.Inspection{Err: errors.New("bad name")}, "invalid", LevelError},
	}
	for _, tt := range tests {
		entry := InspectionEntry(tt.inspection)
		if entry.Label != tt.label || entry.Level != tt.level {
			t.Errorf("InspectionEntry(%+v) = %+v, want label %q level %d", tt.inspection, entry, tt.label, tt.level)
		}
	}
}

func TestStatusEntry_Unknown(t *testing.T) {
	entry := StatusEntry(gitrepo.StatusReport{
		Descriptor: manifest.Descriptor{Name: "a"},
		Category:   gitrepo.Unknown,
		Err:        errors.New("not cloned: /out/a does not exist"),
	})
	if entry.Level != LevelError {
		t.Errorf("expected error level, got %d", entry.Level)
	}
	if entry.Text != "Failed to check status for repository a: not cloned: /out/a does not exist" {
		t.Errorf("unexpected text %q", entry.Text)
	}
}

func TestExtractEntries(t *testing.T) {
	var buf bytes.Buffer
	vm := NewReportViewModel("/tmp/l.log", ExtractLabels...)
	r := NewReportView(vm, &buf, 0)

	r.Entry(ExtractedEntry(manifest.Descriptor{Name: "x/y", URL: "u"}))
	r.Entry(ExtractSkippedEntry(gitrepo.ExtractFailure{Path: "/r/z", Err: errors.New("no remote")}))

	if vm.Tally.Count("extracted") != 1 || vm.Tally.Count("skipped") != 1 {
		t.Errorf("unexpected tally: %d extracted, %d skipped", vm.Tally.Count("extracted"), vm.Tally.Count("skipped"))
	}
	if vm.ErrorViewModel.Count() != 1 {
		t.Errorf("expected skipped entry to count as error")
	}
}

func TestReportView_NothingRecorded(t *testing.T) {
	var buf bytes.Buffer
	vm := NewReportViewModel("/tmp/l.log", ExtractLabels...)
	r := NewReportView(vm, &buf, 0)

	lines := r.Render(0)

	if buf.String() != "No repositories found.\n" || lines != 1 {
		t.Errorf("unexpected output %q (%d lines)", buf.String(), lines)
	}
}
