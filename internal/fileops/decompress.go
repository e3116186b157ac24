package fileops

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

// Decompressor turns a hosted (wire-format) stream into canonical asset
// bytes. A nil Decompressor represents a build without compression support.
type Decompressor interface {
	Decompress(dst io.Writer, src io.Reader) error
}

// ZstdDecompressor streams zstd frames.
type ZstdDecompressor struct{}

func (ZstdDecompressor) Decompress(dst io.Writer, src io.Reader) error {
	dec, err := zstd.NewReader(src)
	if err != nil {
		return fmt.Errorf("testfiles: create zstd decoder: %w", err)
	}
	defer dec.Close()
	if _, err := dec.WriteTo(dst); err != nil {
		return fmt.Errorf("testfiles: decompress: %w", err)
	}
	return nil
}
