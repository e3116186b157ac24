package testfiles

import (
	"log/slog"
	"net/http"

	"github.com/dicomtk/testfiles/internal/fileops"
	"github.com/dicomtk/testfiles/registry"
)

// Option configures a Client.
type Option func(*Client)

// WithRegistry substitutes the asset registry. Useful for tests and for
// private data sets.
func WithRegistry(reg *registry.Registry) Option {
	return func(c *Client) {
		c.reg = reg
	}
}

// WithCacheDir sets the cache root explicitly instead of discovering it from
// the process environment.
func WithCacheDir(dir string) Option {
	return func(c *Client) {
		c.cacheDir = dir
	}
}

// WithBaseURL sets the download base URL, bypassing environment resolution.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithHTTPClient sets the HTTP client used for downloads.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithLogger sets the logger. Logging is off by default.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDecompressor sets the decompression strategy for compressed assets.
// Pass nil to mimic a build without zstd support; fetching a compressed
// asset then fails with ErrZstdRequired.
func WithDecompressor(dec Decompressor) Option {
	return func(c *Client) {
		c.decompressor = dec
	}
}

// Decompressor turns a hosted (wire-format) stream into canonical asset
// bytes. Re-exported for WithDecompressor implementations.
type Decompressor = fileops.Decompressor
