package linesift

import (
	"fmt"
	"io"
)

// Run executes one search invocation: it reads the file named by cfg, scans
// it, and writes each matching line to out, newline-terminated, in document
// order. Zero matches is success, not an error. The returned error is either
// an *IOError from the file read or a plain write failure; converting it into
// a process exit is left to the caller.
func Run(cfg Config, out io.Writer) error {
	return run(cfg, out, false)
}

// RunNumbered is Run with each match prefixed by its 1-based line number.
func RunNumbered(cfg Config, out io.Writer) error {
	return run(cfg, out, true)
}

func run(cfg Config, out io.Writer, numbered bool) error {
	contents, err := OpenDocument(cfg.FilePath).Contents()
	if err != nil {
		return err
	}

	for _, m := range SearchMatches(cfg.Query, contents, cfg.CaseInsensitive) {
		if numbered {
			_, err = fmt.Fprintf(out, "%d:%s\n", m.LineNum, m.Line)
		} else {
			_, err = fmt.Fprintln(out, m.Line)
		}

		if err != nil {
			return fmt.Errorf("failed to write match: %w", err)
		}
	}

	return nil
}
