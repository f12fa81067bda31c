// Package title derives display strings from a note's raw text.
package title

import "strings"

// DefaultMaxChars is the preview length used when none is given.
const DefaultMaxChars = 25

// FirstLine returns the text up to the first newline, cut to maxChars
// characters. A non-positive maxChars means DefaultMaxChars.
func FirstLine(text string, maxChars int) string {
	if maxChars <= 0 {
		maxChars = DefaultMaxChars
	}
	line, _, _ := strings.Cut(text, "\n")

	runes := []rune(line)
	if len(runes) <= maxChars {
		return line
	}
	return string(runes[:maxChars])
}

// NoteTitle returns the first line of text with any leading heading markers
// ("#" runs and the whitespace after them) removed.
func NoteTitle(text string) string {
	line, _, _ := strings.Cut(text, "\n")
	line = strings.TrimLeft(line, "#")
	return strings.TrimLeft(line, " \t")
}
