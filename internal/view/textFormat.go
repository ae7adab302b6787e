package view

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// TruncateTextToWidth Cuts off front of text and adds ellipsis to indicate that text was shortened. Fills lines with spaces.
func TruncateTextToWidth(width int, out string) string {
	lines := strings.Split(out, "\n")
	for i, line := range lines {
		if runes := []rune(line); len(runes) > width {
			if width > 3 {
				lines[i] = "..." + string(runes[len(runes)-width+3:])
			} else {
				lines[i] = string(runes[len(runes)-width:])
			}
		} else {
			lines[i] = fmt.Sprintf("%-*s", width, line)
		}
	}
	out = strings.Join(lines, "\n")
	return out
}

// FitToWidth cuts lines longer than width without padding. A width of zero or less means the
// width is unknown and text is returned unchanged. Lines carrying ANSI escapes are left alone.
func FitToWidth(width int, out string) string {
	if width <= 0 {
		return out
	}
	lines := strings.Split(out, "\n")
	for i, line := range lines {
		if utf8.RuneCountInString(line) > width && !strings.Contains(line, "\033[") {
			lines[i] = string([]rune(line)[:width])
		}
	}
	return strings.Join(lines, "\n")
}

func writeLines(stdout io.Writer, out string) int {
	if _, err := fmt.Fprint(stdout, out); err != nil {
		return 0
	}
	return strings.Count(out, "\n")
}
