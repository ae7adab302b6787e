// Package color wraps fatih/color with the sprintf helpers used for console output.
package color

import "github.com/fatih/color"

var (
	FgRed     = color.New(color.FgRed).SprintfFunc()
	FgGreen   = color.New(color.FgGreen).SprintfFunc()
	FgYellow  = color.New(color.FgYellow).SprintfFunc()
	FgCyan    = color.New(color.FgCyan).SprintfFunc()
	FgMagenta = color.New(color.FgMagenta).SprintfFunc()
)

// SetEnabled forces colored output on or off regardless of TTY detection.
func SetEnabled(enabled bool) {
	color.NoColor = !enabled
}
