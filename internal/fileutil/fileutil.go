// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists returns true if the path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// ReadOptional reads a whole file that may legitimately be absent.
// A missing file yields (nil, false, nil). A directory at path is
// treated as absent.
func ReadOptional(path string) ([]byte, bool, error) {
	if DirExists(path) {
		return nil, false, nil
	}
	data, err := os.ReadFile(path) // #nosec G304 -- path is built from the bundle directory
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, true, nil
}

// ReadOptionalString is ReadOptional for text fragments.
// Returns nil when the file is absent.
func ReadOptionalString(path string) (*string, error) {
	data, ok, err := ReadOptional(path)
	if err != nil || !ok {
		return nil, err
	}
	s := string(data)
	return &s, nil
}
