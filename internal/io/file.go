package ioutils

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
)

// WriteFile writes data to path, creating it or truncating an existing
// file, and returns once the data has been flushed and synced to storage.
//
// The file is created with mode 0644. A failed write leaves whatever was
// written so far in place; callers do not get partial-file cleanup.
//
// Example:
//
//	err := WriteFile(ctx, "iris.csv", body)
func WriteFile(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(file)
	if _, err := w.Write(data); err != nil {
		file.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		file.Close()
		return err
	}
	if err := file.Sync(); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// Resolve returns name joined onto dir. An empty dir or an absolute name
// leaves name untouched, so the current working directory is the default
// destination.
//
// Example:
//
//	Resolve("", "iris.csv")       // "iris.csv"
//	Resolve("/data", "iris.csv")  // "/data/iris.csv"
//	Resolve("/data", "/tmp/x")    // "/tmp/x"
func Resolve(dir, name string) string {
	if dir == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}

// EnsureDir creates a directory and all parent directories if they don't exist.
//
// Directories are created with mode 0755 (rwxr-xr-x).
// If the directory already exists, no error is returned.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}
