package view

import "io"

// View writes itself to its output and reports how many lines it wrote.
type View interface {
	Render(width int) (lines int)
}

// Line is a single pre-formatted line, fitted to the terminal width when one is known.
type Line struct {
	Text   string
	stdout io.Writer
}

func NewLine(stdout io.Writer, text string) *Line {
	return &Line{Text: text, stdout: stdout}
}

func (l *Line) Render(width int) int {
	return writeLines(l.stdout, FitToWidth(width, l.Text)+"\n")
}
