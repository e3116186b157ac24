package testfiles

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// cacheDirName is the directory created under the located cache root.
const cacheDirName = "dicom_test_files"

// DefaultCacheDir returns the cache root used when none is configured.
//
// For compatibility with the original dicom-test-files layout it first walks
// up from the running executable's directory to the nearest directory named
// "target" and uses target/dicom_test_files. When no target directory
// encloses the executable, which is the usual case for Go test binaries, it
// falls back to dicom_test_files under the user cache directory.
func DefaultCacheDir() (string, error) {
	if dir, err := targetCacheDir(); err == nil {
		return dir, nil
	}
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("testfiles: locate cache dir: %w", err)
	}
	return filepath.Join(base, cacheDirName), nil
}

// targetCacheDir walks the executable's ancestors for a directory literally
// named "target".
func targetCacheDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	dir := filepath.Dir(exe)
	for {
		if filepath.Base(dir) == "target" {
			return filepath.Join(dir, cacheDirName), nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("no target directory found")
		}
		dir = parent
	}
}
