// Package registry defines the static table of retrievable test assets.
//
// A Registry maps a logical, slash-separated asset name to the compression
// applied to its hosted form and the SHA-256 digest of the hosted bytes.
// The table is produced ahead of time by hashing a source data directory
// (see the dicomfiles gen command) and is read-only at runtime: once a name
// is registered, its expected content never changes.
package registry

import (
	"sort"

	"github.com/opencontainers/go-digest"
)

// Compression identifies the compression applied to a hosted asset.
type Compression uint8

const (
	CompressionNone Compression = iota
	CompressionZstd
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionZstd:
		return "zstd"
	default:
		return "unknown"
	}
}

// Entry describes a single retrievable asset.
type Entry struct {
	// Name is the logical, slash-separated identifier, e.g. "pydicom/liver.dcm".
	Name string

	// Compression is the compression applied to the hosted file.
	Compression Compression

	// Digest is the SHA-256 digest of the hosted (post-compression) bytes.
	Digest digest.Digest
}

// RemoteName returns the file name under which the asset is hosted.
// Compressed assets carry a compression suffix on the remote side.
func (e Entry) RemoteName() string {
	if e.Compression == CompressionZstd {
		return e.Name + ".zst"
	}
	return e.Name
}

// Registry is an immutable name → Entry lookup table.
type Registry struct {
	entries map[string]Entry
}

// New builds a Registry from entries. A later entry for the same name
// overwrites an earlier one.
func New(entries ...Entry) *Registry {
	m := make(map[string]Entry, len(entries))
	for _, e := range entries {
		m[e.Name] = e
	}
	return &Registry{entries: m}
}

// Default returns the built-in table of hosted assets. The table itself
// lives in files.go, generated by dicomfiles gen.
func Default() *Registry {
	return defaultRegistry
}

var defaultRegistry = New(defaultEntries...)

// Lookup returns the entry for name, if registered.
func (r *Registry) Lookup(name string) (Entry, bool) {
	e, ok := r.entries[name]
	return e, ok
}

// Names returns all registered names in lexical order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered assets.
func (r *Registry) Len() int {
	return len(r.entries)
}

// none returns an uncompressed entry. Used by the generated table.
func none(name, hexDigest string) Entry {
	return Entry{Name: name, Digest: digest.NewDigestFromEncoded(digest.SHA256, hexDigest)}
}

// zstd returns a zstd-compressed entry. Used by the generated table.
func zstd(name, hexDigest string) Entry {
	return Entry{Name: name, Compression: CompressionZstd, Digest: digest.NewDigestFromEncoded(digest.SHA256, hexDigest)}
}
