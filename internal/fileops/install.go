package fileops

import (
	"os"
)

const dirPerm = 0o755

// EnsureDir creates dir and any missing parents. Idempotent.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, dirPerm)
}

// TempDir creates a uniquely named scratch directory inside parent. Keeping
// scratch space on the same filesystem as the destination makes the final
// rename atomic rather than a cross-device copy.
func TempDir(parent string) (string, error) {
	if err := EnsureDir(parent); err != nil {
		return "", err
	}
	return os.MkdirTemp(parent, "download-*")
}

// Publish moves a fully written scratch file to its canonical path with a
// single rename. Losing a rename race to a concurrent writer counts as
// success: every writer verified identical content before publishing.
func Publish(tmpPath, destPath string) error {
	if err := os.Rename(tmpPath, destPath); err != nil {
		if _, statErr := os.Stat(destPath); statErr == nil {
			_ = os.Remove(tmpPath)
			return nil
		}
		return err
	}
	return nil
}
