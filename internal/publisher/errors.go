package publisher

import (
	"errors"
	"fmt"
	"os"
)

// FileError is a failure to read the markdown source
type FileError struct {
	Path     string
	NotFound bool
	Err      error
}

func (e *FileError) Error() string {
	if e.NotFound {
		return fmt.Sprintf("File not found: %s", e.Path)
	}
	return fmt.Sprintf("Error reading file: %v", e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

func readFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &FileError{Path: path, NotFound: errors.Is(err, os.ErrNotExist), Err: err}
	}
	return string(data), nil
}
