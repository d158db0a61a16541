// Package ncd: the codec capability and the two shipped adapters.
package ncd

import (
	"bytes"
	"fmt"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/flate"
)

// Compressor reports the compressed size of a byte slice. NCD only ever
// needs the size, never the compressed bytes, so adapters are free to
// discard their output.
type Compressor interface {
	CompressedSize(p []byte) (int, error)
}

// Flate returns a Compressor backed by DEFLATE at the given level
// (flate.BestSpeed .. flate.BestCompression; flate.DefaultCompression
// picks the library default). Invalid levels surface on first use.
func Flate(level int) Compressor {
	return &flateCompressor{level: level}
}

type flateCompressor struct {
	level int
}

func (f *flateCompressor) CompressedSize(p []byte) (int, error) {
	var buf bytes.Buffer

	w, err := flate.NewWriter(&buf, f.level)
	if err != nil {
		return 0, fmt.Errorf("ncd: flate level %d: %w", f.level, err)
	}
	if _, err = w.Write(p); err != nil {
		return 0, fmt.Errorf("ncd: flate write: %w", err)
	}
	if err = w.Close(); err != nil {
		return 0, fmt.Errorf("ncd: flate close: %w", err)
	}

	return buf.Len(), nil
}

// Snappy returns a Compressor backed by the snappy block format. Fast
// and deterministic, but with weaker matching than Flate; prefer it when
// throughput matters more than discrimination.
func Snappy() Compressor {
	return snappyCompressor{}
}

type snappyCompressor struct{}

func (snappyCompressor) CompressedSize(p []byte) (int, error) {
	return len(snappy.Encode(nil, p)), nil
}
