package linesift

import (
	"strings"

	"golang.org/x/text/cases"
)

// foldCase folds a string to its canonical case-insensitive comparison key
// using Unicode case folding, so that e.g. "Straße" and "STRASSE" compare
// equal where a plain lowercase mapping would not.
func foldCase(s string) string {
	return cases.Fold().String(s)
}

// normalizeLineEndings normalizes line endings in a string.
func normalizeLineEndings(content string) string {
	// Replace Windows CRLF
	content = strings.ReplaceAll(content, "\r\n", "\n")

	// Replace legacy Mac CR
	content = strings.ReplaceAll(content, "\r", "\n")
	return content
}

// SplitLines splits contents into lines, normalizing line endings first.
// Following the usual "lines" convention, a trailing newline does not produce
// an extra empty final line. Empty contents yield no lines at all.
func SplitLines(contents string) []string {
	if contents == "" {
		return nil
	}

	contents = normalizeLineEndings(contents)
	lines := strings.Split(contents, "\n")

	// strings.Split leaves one empty segment after a trailing newline
	if strings.HasSuffix(contents, "\n") {
		lines = lines[:len(lines)-1]
	}

	return lines
}
