// Package check provides the pre-flight validation of the target directory.
// It runs before anything else touches the filesystem, so an invalid target
// aborts the run with no side effects.
package check

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Sentinel errors wrapped by InvalidRootError.
var (
	ErrRootNotFound  = errors.New("target directory does not exist")
	ErrNotADirectory = errors.New("target path is not a directory")
	ErrRootEmptyPath = errors.New("target directory path is empty")
)

// InvalidRootError reports a target path that cannot be walked. It is fatal:
// the run is aborted before any rename.
type InvalidRootError struct {
	Path string
	Err  error
}

func (e *InvalidRootError) Error() string {
	return fmt.Sprintf("invalid target %q: %v", e.Path, e.Err)
}

func (e *InvalidRootError) Unwrap() error { return e.Err }

// Root verifies that path exists and is a directory (following a symlinked
// root) and returns its absolute, symlink-resolved form.
func Root(path string) (string, error) {
	if path == "" {
		return "", &InvalidRootError{Path: path, Err: ErrRootEmptyPath}
	}
	fi, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", &InvalidRootError{Path: path, Err: ErrRootNotFound}
		}
		return "", &InvalidRootError{Path: path, Err: err}
	}
	if !fi.IsDir() {
		return "", &InvalidRootError{Path: path, Err: ErrNotADirectory}
	}
	return absPath(path)
}

// absPath returns the absolute path with symlinks resolved.
func absPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", &InvalidRootError{Path: path, Err: err}
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", &InvalidRootError{Path: path, Err: err}
	}
	return resolved, nil
}

// ResolveFile returns the absolute, symlink-resolved path of a file that may
// not exist yet: its parent directory is resolved and the base name kept.
func ResolveFile(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	dir, err := filepath.EvalSymlinks(filepath.Dir(abs))
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, filepath.Base(abs)), nil
}
