// Package fs provides filesystem adapters that implement validator interfaces.
package fs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotFound is returned by FindUpward when no directory holds the marker.
var ErrNotFound = errors.New("not found in any parent directory")

// OSStatter implements validator.FileStatter using os.Stat.
type OSStatter struct{}

// StatImpl returns the size of the regular file at path. Missing files yield
// an error wrapping os.ErrNotExist; directories are rejected.
func (OSStatter) StatImpl(ctx context.Context, path string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	if info.IsDir() {
		return 0, fmt.Errorf("%s is a directory", path)
	}
	return info.Size(), nil
}

// Stat delegates to StatImpl.
func (s OSStatter) Stat(ctx context.Context, path string) (int64, error) {
	return s.StatImpl(ctx, path)
}

// FindUpward walks up from dir looking for a file named name and returns the
// directory that contains it.
func FindUpward(dir, name string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", dir, err)
	}

	for {
		info, err := os.Stat(filepath.Join(dir, name))
		if err == nil && !info.IsDir() {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%s: %w", name, ErrNotFound)
		}
		dir = parent
	}
}
