// Package output creates the files written by the silhouette
// tools, reporting every failure as an *Error.
package output

import (
	"fmt"
	"io"
	"os"
)

// Error is returned when an output path cannot be created
// or written.
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("write output %s: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// CreateDir makes sure dir exists.
func CreateDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &Error{Path: dir, Err: err}
	}
	return nil
}

// WriteFile creates path and fills it with write. Failures
// from creating, writing or closing the file are returned
// as an *Error.
func WriteFile(path string, write func(w io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return &Error{Path: path, Err: err}
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = &Error{Path: path, Err: closeErr}
		}
	}()
	if err := write(f); err != nil {
		return &Error{Path: path, Err: err}
	}
	return nil
}

// WriteBytes writes data to path.
func WriteBytes(path string, data []byte) error {
	return WriteFile(path, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
}
