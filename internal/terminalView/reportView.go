package terminalView

import (
	"fmt"
	"io"
	"strings"

	"repoclone/internal/color"
	"repoclone/internal/view"
)

// ReportView prints a line per repository as results arrive, then a tally and its footers.
type ReportView struct {
	viewModel *ReportViewModel
	stdout    io.Writer
	width     int
	footer    *view.CompositeView
}

func NewReportView(vm *ReportViewModel, stdout io.Writer, width int, footers ...view.View) *ReportView {
	footer := view.NewCompositeView(nil)
	footer.AddFooter(view.NewErrorView(vm.ErrorViewModel, stdout))
	for _, f := range footers {
		footer.AddFooter(f)
	}
	return &ReportView{
		viewModel: vm,
		stdout:    stdout,
		width:     width,
		footer:    footer,
	}
}

// Header prints text on one line. On a terminal a long header loses its front, keeping the
// tail of the path it usually ends with.
func (r *ReportView) Header(text string) int {
	if r.width > 0 {
		text = view.TruncateTextToWidth(r.width, text)
	}
	return view.NewLine(r.stdout, text).Render(r.width)
}

// Entry records entry and prints its line.
func (r *ReportView) Entry(entry Entry) int {
	r.viewModel.Record(entry)
	return view.NewLine(r.stdout, colorize(entry.Level, entry.Text)).Render(r.width)
}

func (r *ReportView) Render(width int) (lines int) {
	tally := r.viewModel.Tally
	if len(tally.Labels()) > 0 && tally.Total() == 0 {
		return view.NewLine(r.stdout, "No repositories found.").Render(width) + r.footer.Render(width)
	}
	var parts []string
	for _, label := range tally.Labels() {
		parts = append(parts, fmt.Sprintf("%s %s", color.FgMagenta("%d", tally.Count(label)), label))
	}
	if len(parts) > 0 {
		lines += view.NewLine(r.stdout, strings.Join(parts, ", ")).Render(width)
	}
	return lines + r.footer.Render(width)
}

func colorize(level Level, text string) string {
	switch level {
	case LevelSuccess:
		return color.FgGreen("%s", text)
	case LevelWarning:
		return color.FgYellow("%s", text)
	default:
		return color.FgRed("%s", text)
	}
}
