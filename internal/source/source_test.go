package source

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	werrors "github.com/standardbeagle/whereami/internal/errors"
)

func TestRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.c")
	content := []byte("int main() {\n    return 0;\n}\n")
	require.NoError(t, os.WriteFile(path, content, 0644))

	f, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, path, f.Path)
	assert.Equal(t, content, f.Content)
}

func TestRead_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.c")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	f, err := Read(path)
	require.NoError(t, err)
	assert.Empty(t, f.Content)
}

func TestRead_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.c")

	_, err := Read(path)
	require.Error(t, err)

	var fileErr *werrors.FileError
	require.True(t, errors.As(err, &fileErr))
	assert.Equal(t, "open", fileErr.Operation)
	assert.Equal(t, werrors.ErrorTypeFileNotFound, fileErr.Type)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Contains(t, err.Error(), "could not open file '"+path+"'")
}

func TestRead_Directory(t *testing.T) {
	_, err := Read(t.TempDir())
	var fileErr *werrors.FileError
	require.True(t, errors.As(err, &fileErr), "reading a directory must fail with a FileError, got %v", err)
}

func TestFingerprint(t *testing.T) {
	a := &File{Content: []byte("x\n")}
	b := &File{Content: []byte("x\n")}
	c := &File{Content: []byte("y\n")}

	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())
}

func TestShortReadError(t *testing.T) {
	err := &ShortReadError{Got: 3, Want: 10}
	assert.Equal(t, "read gave 3 bytes instead of the expected 10", err.Error())
}
