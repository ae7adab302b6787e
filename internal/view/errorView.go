package view

import (
	"fmt"
	"io"

	"repoclone/internal/color"
	"repoclone/internal/counter"
	"repoclone/internal/ext"
)

// ErrorViewModel counts the errors of a run; their details go to the log file.
type ErrorViewModel struct {
	errorCount  *counter.Counter
	logFilePath string
}

func NewErrorViewModel(logFilePath string) *ErrorViewModel {
	return &ErrorViewModel{
		errorCount:  counter.NewCounter(),
		logFilePath: logFilePath,
	}
}

func (vm *ErrorViewModel) Add() {
	vm.errorCount.Add(1)
}

func (vm *ErrorViewModel) Count() int {
	return vm.errorCount.Count()
}

type ErrorView struct {
	viewModel *ErrorViewModel
	stdout    io.Writer
}

func NewErrorView(vm *ErrorViewModel, stdout io.Writer) *ErrorView {
	return &ErrorView{
		viewModel: vm,
		stdout:    stdout,
	}
}

func (v ErrorView) Render(int) int {
	if v.viewModel.errorCount.Count() == 0 {
		return 0
	}
	out := fmt.Sprintf("--- %s errors ---\nSee log file:\n%s\n",
		color.FgRed("%d", v.viewModel.errorCount.Count()),
		color.FgMagenta("%s", ext.ReplaceHomeDirWithTilde(v.viewModel.logFilePath)))
	return writeLines(v.stdout, out)
}
