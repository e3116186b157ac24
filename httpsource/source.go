// Package httpsource retrieves hosted test assets over HTTP(S).
//
// A Source appends a hosted file name to a base URL and streams the response
// body. Base URL resolution (environment override, CI branch derivation,
// canonical default) lives in ResolveBaseURL.
package httpsource

import (
	"context"
	"io"
	"net/http"
	"strings"
)

// Source fetches hosted files relative to a base URL.
type Source struct {
	baseURL string
	client  *http.Client
	headers http.Header
}

// Option configures a Source.
type Option func(*Source)

// WithClient sets the HTTP client used for requests.
func WithClient(client *http.Client) Option {
	return func(s *Source) {
		s.client = client
	}
}

// WithHeader sets a single header on each request.
func WithHeader(key, value string) Option {
	return func(s *Source) {
		if s.headers == nil {
			s.headers = make(http.Header)
		}
		s.headers.Set(key, value)
	}
}

// New creates a Source rooted at baseURL. The base URL is normalized to end
// with a slash so hosted names append cleanly.
func New(baseURL string, opts ...Option) *Source {
	s := &Source{
		baseURL: EnsureTrailingSlash(baseURL),
		client:  http.DefaultClient,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.client == nil {
		s.client = http.DefaultClient
	}
	return s
}

// BaseURL returns the normalized base URL.
func (s *Source) BaseURL() string {
	return s.baseURL
}

// Fetch issues a GET for remoteName against the base URL and returns the
// response body. The caller owns the returned reader. Transport failures and
// non-OK statuses are reported as a *DownloadError carrying the attempted URL.
func (s *Source) Fetch(ctx context.Context, remoteName string) (io.ReadCloser, error) {
	url := s.baseURL + strings.TrimPrefix(remoteName, "/")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &DownloadError{URL: url, Err: err}
	}
	for key, values := range s.headers {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &DownloadError{URL: url, Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
		return nil, &DownloadError{URL: url, Status: resp.Status}
	}
	return resp.Body, nil
}
