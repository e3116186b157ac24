package testfiles

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/dicomtk/testfiles/internal/fileops"
	"github.com/dicomtk/testfiles/registry"
)

// allFetchWorkers bounds the download fan-out in All.
const allFetchWorkers = 8

// Path returns the local path of the named asset, downloading and caching it
// on first use.
//
// The name is resolved against the registry before any network activity;
// unknown names fail with ErrNotFound. A file already present at the cache
// path is returned as-is: integrity is checked on writes, not on hits. On a
// cache miss the hosted file is streamed into a scratch directory next to the
// destination, verified against the registered digest, decompressed if the
// asset is hosted compressed, and published with a single atomic rename.
func (c *Client) Path(ctx context.Context, name string) (string, error) {
	entry, ok := c.reg.Lookup(name)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	dest := filepath.Join(c.cacheDir, filepath.FromSlash(entry.Name))
	if _, err := os.Stat(dest); err == nil {
		c.log().Debug("cache hit", "name", name, "path", dest)
		return dest, nil
	}

	c.log().Debug("cache miss", "name", name)
	if err := c.fetch(ctx, entry, dest); err != nil {
		return "", err
	}
	return dest, nil
}

// All returns local paths for every registered asset, in name order,
// downloading any that are not yet cached.
//
// This retrieves the entire data set and may be unnecessarily expensive.
// Prefer Path for the assets a test actually needs.
func (c *Client) All(ctx context.Context) ([]string, error) {
	names := c.reg.Names()
	paths := make([]string, len(names))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(allFetchWorkers)
	for i, name := range names {
		g.Go(func() error {
			p, err := c.Path(ctx, name)
			if err != nil {
				return err
			}
			paths[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}

// fetch downloads, verifies, and installs entry at dest.
func (c *Client) fetch(ctx context.Context, entry registry.Entry, dest string) (err error) {
	parent := filepath.Dir(dest)

	// Scratch space next to the destination keeps the publish rename on one
	// filesystem. Each call gets its own directory, so concurrent fetches of
	// the same name never share state.
	tmpDir, err := fileops.TempDir(parent)
	if err != nil {
		return fmt.Errorf("testfiles: create scratch dir: %w", err)
	}
	defer func() {
		if rmErr := os.RemoveAll(tmpDir); rmErr != nil && err == nil {
			err = fmt.Errorf("testfiles: clean scratch dir: %w", rmErr)
		}
	}()

	remoteName := entry.RemoteName()
	c.log().Debug("downloading", "name", entry.Name, "remote", remoteName, "base", c.source.BaseURL())

	body, err := c.source.Fetch(ctx, remoteName)
	if err != nil {
		return err
	}
	defer body.Close()

	tmpPath := filepath.Join(tmpDir, "download")
	if err := writeFile(tmpPath, body); err != nil {
		return fmt.Errorf("testfiles: write download: %w", err)
	}

	// Integrity covers the wire bytes, before any decompression.
	if err := fileops.VerifyFile(tmpPath, entry.Digest); err != nil {
		return err
	}

	installPath := tmpPath
	if entry.Compression == registry.CompressionZstd {
		if c.decompressor == nil {
			return fmt.Errorf("%w: %s", ErrZstdRequired, entry.Name)
		}
		installPath = filepath.Join(tmpDir, "decompressed")
		if err := decompressFile(c.decompressor, tmpPath, installPath); err != nil {
			return err
		}
	}

	if err := fileops.Publish(installPath, dest); err != nil {
		return fmt.Errorf("testfiles: install %s: %w", entry.Name, err)
	}
	c.log().Debug("installed", "name", entry.Name, "path", dest)
	return nil
}

func writeFile(path string, r io.Reader) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func decompressFile(dec fileops.Decompressor, src, dst string) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	return dec.Decompress(out, in)
}
