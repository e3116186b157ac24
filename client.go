package testfiles

import (
	"log/slog"
	"net/http"

	"github.com/dicomtk/testfiles/httpsource"
	"github.com/dicomtk/testfiles/internal/fileops"
	"github.com/dicomtk/testfiles/registry"
)

// Client fetches registered test assets into a local cache.
//
// A Client is safe for concurrent use without any shared coordination:
// callers racing on the same uncached name each download into their own
// scratch directory, verify independently, and publish with an atomic
// rename, so whichever copy lands is complete and verified.
type Client struct {
	reg          *registry.Registry
	cacheDir     string
	source       *httpsource.Source
	decompressor fileops.Decompressor
	logger       *slog.Logger

	// Collected by options, consumed when building the default source.
	baseURL    string
	httpClient *http.Client
}

// log returns the logger, falling back to a discard logger if nil.
func (c *Client) log() *slog.Logger {
	if c.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.logger
}

// New creates a Client.
//
// Defaults: the built-in registry, a cache directory from [DefaultCacheDir],
// a base URL resolved from the environment (see httpsource.ResolveBaseURL),
// and zstd decompression.
func New(opts ...Option) (*Client, error) {
	c := &Client{
		reg:          registry.Default(),
		decompressor: fileops.ZstdDecompressor{},
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.cacheDir == "" {
		dir, err := DefaultCacheDir()
		if err != nil {
			return nil, err
		}
		c.cacheDir = dir
	}

	if c.source == nil {
		baseURL := c.baseURL
		if baseURL == "" {
			resolved, err := httpsource.ResolveBaseURL()
			if err != nil {
				return nil, err
			}
			baseURL = resolved
		}
		var srcOpts []httpsource.Option
		if c.httpClient != nil {
			srcOpts = append(srcOpts, httpsource.WithClient(c.httpClient))
		}
		c.source = httpsource.New(baseURL, srcOpts...)
	}

	return c, nil
}

// CacheDir returns the cache root this client installs assets under.
func (c *Client) CacheDir() string {
	return c.cacheDir
}

// Registry returns the registry this client resolves names against.
func (c *Client) Registry() *registry.Registry {
	return c.reg
}
