package terminalView

import (
	"repoclone/internal/counter"
	"repoclone/internal/view"
)

type Level int

const (
	LevelSuccess Level = iota
	LevelWarning
	LevelError
)

// Entry is one console line about one repository.
type Entry struct {
	Label string // tally bucket, e.g. "cloned"
	Level Level
	Text  string
}

type ReportViewModel struct {
	Tally          *counter.Tally
	ErrorViewModel *view.ErrorViewModel
}

// NewReportViewModel registers labels up front so the summary lists them even at zero.
func NewReportViewModel(logFilePath string, labels ...string) *ReportViewModel {
	return &ReportViewModel{
		Tally:          counter.NewTally(labels...),
		ErrorViewModel: view.NewErrorViewModel(logFilePath),
	}
}

func (vm *ReportViewModel) Record(entry Entry) {
	vm.Tally.Add(entry.Label, 1)
	if entry.Level == LevelError {
		vm.ErrorViewModel.Add()
	}
}
