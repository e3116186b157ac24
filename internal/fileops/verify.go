// Package fileops provides the file plumbing behind asset installation:
// streaming digest verification, optional decompression, and atomic
// publication into the cache.
package fileops

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/opencontainers/go-digest"
)

// ErrHashMismatch is returned when content does not match its registered
// digest. Truncation, corruption, and a stale registry entry all surface
// identically.
var ErrHashMismatch = errors.New("testfiles: hash verification failed")

// Verify streams r through a digest verifier and checks it against expected.
// The content is never buffered in full.
func Verify(r io.Reader, expected digest.Digest) error {
	if err := expected.Validate(); err != nil {
		return fmt.Errorf("testfiles: expected digest %q: %w", expected, err)
	}
	verifier := expected.Verifier()
	if _, err := io.Copy(verifier, r); err != nil {
		return fmt.Errorf("testfiles: read for verification: %w", err)
	}
	if !verifier.Verified() {
		return ErrHashMismatch
	}
	return nil
}

// VerifyFile verifies the content of the file at path against expected.
func VerifyFile(path string, expected digest.Digest) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return Verify(f, expected)
}
