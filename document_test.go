package linesift_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/patrickward/linesift"
	"github.com/patrickward/linesift/internal/assert"
)

func writeTestFile(t *testing.T, name string, content []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	err := os.WriteFile(path, content, 0644)
	assert.Nil(t, err)

	return path
}

func TestDocument_Contents(t *testing.T) {
	t.Parallel()
	path := writeTestFile(t, "poem.txt", []byte("first line\nsecond line\n"))

	doc := linesift.OpenDocument(path)
	contents, err := doc.Contents()
	assert.Nil(t, err)
	assert.Equal(t, contents, "first line\nsecond line\n")
}

func TestDocument_LoadIsIdempotent(t *testing.T) {
	t.Parallel()
	path := writeTestFile(t, "poem.txt", []byte("original"))

	doc := linesift.OpenDocument(path)
	assert.Nil(t, doc.Load())

	// A second load does not re-read the file
	err := os.WriteFile(path, []byte("changed"), 0644)
	assert.Nil(t, err)

	contents, err := doc.Contents()
	assert.Nil(t, err)
	assert.Equal(t, contents, "original")
}

func TestDocument_MissingFile(t *testing.T) {
	t.Parallel()
	doc := linesift.OpenDocument(filepath.Join(t.TempDir(), "missing.txt"))

	_, err := doc.Contents()
	assert.NotNil(t, err)

	var ioErr *linesift.IOError
	assert.True(t, errors.As(err, &ioErr))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestDocument_InvalidUTF8(t *testing.T) {
	t.Parallel()
	path := writeTestFile(t, "binary.dat", []byte{0xff, 0xfe, 0xfd, 'a', 'b'})

	_, err := linesift.OpenDocument(path).Contents()
	assert.NotNil(t, err)

	var ioErr *linesift.IOError
	assert.True(t, errors.As(err, &ioErr))
	assert.Equal(t, ioErr.Path, path)
}

func TestDocument_EmptyFile(t *testing.T) {
	t.Parallel()
	path := writeTestFile(t, "empty.txt", nil)

	contents, err := linesift.OpenDocument(path).Contents()
	assert.Nil(t, err)
	assert.Equal(t, contents, "")
}
