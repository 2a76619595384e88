package output

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("writes contents", func(t *testing.T) {
		path := filepath.Join(dir, "out.txt")
		require.NoError(t, WriteBytes(path, []byte("hello\n")))
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "hello\n", string(data))
	})

	t.Run("missing directory", func(t *testing.T) {
		path := filepath.Join(dir, "missing", "out.txt")
		err := WriteBytes(path, nil)
		var outErr *Error
		require.True(t, errors.As(err, &outErr))
		assert.Equal(t, path, outErr.Path)
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("write failure", func(t *testing.T) {
		failure := errors.New("disk full")
		err := WriteFile(filepath.Join(dir, "fail.txt"), func(io.Writer) error {
			return failure
		})
		var outErr *Error
		require.True(t, errors.As(err, &outErr))
		assert.True(t, errors.Is(err, failure))
	})
}

func TestCreateDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, CreateDir(filepath.Join(dir, "a", "b")))

	file := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(file, nil, 0644))
	var outErr *Error
	require.True(t, errors.As(CreateDir(filepath.Join(file, "sub")), &outErr))
}
