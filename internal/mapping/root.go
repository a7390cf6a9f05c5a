package mapping

import (
	"fmt"
	"os"
	"path/filepath"
)

// Locate returns the store for markdownFile along with the key the file is
// recorded under. The key is relative to the nearest ancestor directory
// containing MarkerDir; without one the store lives under the working
// directory and the key is the file's absolute path.
func Locate(markdownFile string) (*Store, string, error) {
	abs, err := resolve(markdownFile)
	if err != nil {
		return nil, "", err
	}

	root, ok := FindProjectRoot(filepath.Dir(abs))
	if !ok {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, "", fmt.Errorf("failed to get working directory: %w", err)
		}
		return New(filepath.Join(cwd, MarkerDir, FileName)), abs, nil
	}

	store := New(filepath.Join(root, MarkerDir, FileName))
	rel, err := filepath.Rel(root, abs)
	if err != nil {
		return store, abs, nil
	}
	return store, filepath.ToSlash(rel), nil
}

// FindProjectRoot walks upward from dir looking for a directory that
// contains MarkerDir. The filesystem root itself is never a project root.
func FindProjectRoot(dir string) (string, bool) {
	current := filepath.Clean(dir)
	for {
		parent := filepath.Dir(current)
		if parent == current {
			return "", false
		}
		if info, err := os.Stat(filepath.Join(current, MarkerDir)); err == nil && info.IsDir() {
			return current, true
		}
		current = parent
	}
}

// resolve returns the absolute path of file with symlinks evaluated when possible
func resolve(file string) (string, error) {
	abs, err := filepath.Abs(file)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path: %w", err)
	}
	if real, err := filepath.EvalSymlinks(abs); err == nil {
		return real, nil
	}
	return abs, nil
}
