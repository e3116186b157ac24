package testfiles

import (
	"context"
	"sync"
)

// defaultClient is built once, on first use of the package-level helpers.
var defaultClient = sync.OnceValues(func() (*Client, error) {
	return New()
})

// Path fetches the named asset with a default client and returns its local
// path. See [Client.Path].
func Path(name string) (string, error) {
	c, err := defaultClient()
	if err != nil {
		return "", err
	}
	return c.Path(context.Background(), name)
}

// All fetches every registered asset with a default client and returns the
// local paths. See [Client.All]; prefer [Path] for the assets you need.
func All() ([]string, error) {
	c, err := defaultClient()
	if err != nil {
		return nil, err
	}
	return c.All(context.Background())
}
