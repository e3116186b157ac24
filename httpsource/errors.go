package httpsource

import (
	"errors"
	"fmt"
)

// ErrResolveURL is returned when CI environment context needed to derive the
// base URL is missing.
var ErrResolveURL = errors.New("testfiles: resolve base url")

// DownloadError reports a failed retrieval and carries the attempted URL.
type DownloadError struct {
	// URL is the full URL the download was attempted against.
	URL string

	// Status is the HTTP status line for non-OK responses.
	Status string

	// Err is the underlying transport error, if any.
	Err error
}

func (e *DownloadError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("testfiles: download %s: %s", e.URL, e.Status)
	}
	return fmt.Sprintf("testfiles: download %s: %v", e.URL, e.Err)
}

func (e *DownloadError) Unwrap() error {
	return e.Err
}
