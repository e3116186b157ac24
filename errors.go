package testfiles

import (
	"errors"

	"github.com/dicomtk/testfiles/httpsource"
	"github.com/dicomtk/testfiles/internal/fileops"
)

// ErrNotFound is returned when a name is not in the registry. Unknown names
// never trigger a download.
//
// If you are sure the name exists, you may need a newer registry table.
var ErrNotFound = errors.New("testfiles: not found")

// ErrHashMismatch is returned when downloaded bytes do not match the
// registry's digest. The offending scratch file is removed before the error
// is returned, so no corrupt artifact persists.
var ErrHashMismatch = fileops.ErrHashMismatch

// ErrZstdRequired is returned when an asset is hosted zstd-compressed but the
// client was built without a decompressor.
var ErrZstdRequired = errors.New("testfiles: zstd support required")

// ErrResolveURL is returned when CI environment context needed to derive the
// base URL is missing. Re-exported from httpsource.
var ErrResolveURL = httpsource.ErrResolveURL

// DownloadError reports a failed retrieval and carries the attempted URL.
// Re-exported from httpsource.
type DownloadError = httpsource.DownloadError
