package linesift

import (
	"errors"
	"os"
	"unicode/utf8"
)

// Document wraps a single text file on disk. The contents are read once, into
// one owned buffer, and never mutated afterwards.
type Document struct {
	Path    string
	content string
	loaded  bool
}

// OpenDocument creates a Document for the file at path. Nothing is read from
// disk until Load or Contents is called.
func OpenDocument(path string) *Document {
	return &Document{Path: path}
}

// Load reads the document from disk. The file must be valid UTF-8 text; a
// missing, unreadable, or non-text file is reported as an *IOError. Load is
// idempotent once it has succeeded.
func (d *Document) Load() error {
	if d.loaded {
		return nil
	}

	content, err := os.ReadFile(d.Path)
	if err != nil {
		return &IOError{Path: d.Path, Cause: err}
	}

	if !utf8.Valid(content) {
		return &IOError{Path: d.Path, Cause: errors.New("file is not valid UTF-8 text")}
	}

	d.content = string(content)
	d.loaded = true
	return nil
}

// Contents returns the document text, loading it on first use.
func (d *Document) Contents() (string, error) {
	if err := d.Load(); err != nil {
		return "", err
	}

	return d.content, nil
}
