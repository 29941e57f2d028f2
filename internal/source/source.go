// Package source reads a file into memory for a single run.
package source

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"

	"github.com/standardbeagle/whereami/internal/core"
	"github.com/standardbeagle/whereami/internal/debug"
	werrors "github.com/standardbeagle/whereami/internal/errors"
)

// File is a source file's bytes, owned by the caller for one run
type File struct {
	Path    string
	Content []byte
}

// Fingerprint returns an xxhash of the content. It is only computed for
// --debug output, where it tells apart runs over changed and unchanged files.
func (f *File) Fingerprint() uint64 {
	return xxhash.Sum64(f.Content)
}

// Read opens, sizes, reads and closes the file at path. Every failure is a
// FileError naming the operation; files larger than the line records can
// address are a CapacityError.
func Read(path string) (f *File, err error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, werrors.NewFileError("open", path, err)
	}
	defer func() {
		if cerr := fh.Close(); cerr != nil && err == nil {
			f, err = nil, werrors.NewFileError("close", path, cerr)
		}
	}()

	info, err := fh.Stat()
	if err != nil {
		return nil, werrors.NewFileError("stat", path, err)
	}
	if info.IsDir() {
		return nil, werrors.NewFileError("read", path, errors.New("is a directory"))
	}
	size := info.Size()
	if size < 0 {
		return nil, werrors.NewFileError("stat", path, errors.New("negative file size"))
	}
	if uint64(size) > core.MaxTextSize {
		return nil, werrors.NewCapacityError("file size", uint64(size), core.MaxTextSize)
	}

	content := make([]byte, size)
	n, err := io.ReadFull(fh, content)
	if err != nil {
		return nil, werrors.NewFileError("read", path, shortRead(err, n, size))
	}

	f = &File{Path: path, Content: content}
	if debug.IsDebugEnabled() {
		debug.LogSource("read %s: %d bytes, fingerprint %016x\n", path, len(content), f.Fingerprint())
	}
	return f, nil
}

// ShortReadError reports a file that shrank between sizing and reading
type ShortReadError struct {
	Got  int
	Want int64
}

func (e *ShortReadError) Error() string {
	return fmt.Sprintf("read gave %d bytes instead of the expected %d", e.Got, e.Want)
}

// shortRead keeps the platform error when there is one and otherwise
// reports how much was read.
func shortRead(err error, n int, size int64) error {
	if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		return &ShortReadError{Got: n, Want: size}
	}
	return err
}
