// Package linesift finds the lines of a text file that contain a query as a
// contiguous substring, optionally ignoring letter case.
package linesift

import "strings"

// Match represents a single line match in a document.
type Match struct {
	LineNum int    // The line number in the document (1-based)
	Line    string // The raw line text
}

// Search returns the lines of contents that contain query as a contiguous
// substring, in document order, each exactly as it appears in contents. There
// is no deduplication and no limit on the result count. An empty query matches
// every line; empty contents match nothing.
func Search(query, contents string, caseInsensitive bool) []string {
	matches := SearchMatches(query, contents, caseInsensitive)
	if matches == nil {
		return nil
	}

	lines := make([]string, 0, len(matches))
	for _, m := range matches {
		lines = append(lines, m.Line)
	}

	return lines
}

// SearchMatches is Search with each matching line paired with its 1-based
// line number. When caseInsensitive is true, both the query and each line are
// folded to a canonical case before the containment check; the raw line is
// always returned untouched.
func SearchMatches(query, contents string, caseInsensitive bool) []Match {
	if caseInsensitive {
		query = foldCase(query)
	}

	var matches []Match
	for i, line := range SplitLines(contents) {
		key := line
		if caseInsensitive {
			key = foldCase(line)
		}

		if strings.Contains(key, query) {
			matches = append(matches, Match{
				LineNum: i + 1,
				Line:    line,
			})
		}
	}

	return matches
}
