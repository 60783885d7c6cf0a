package compress

import (
	"errors"
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4CompressorPool pools lz4.Compressor instances, whose hash tables are reused.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Compressor compresses frequency tables as raw LZ4 blocks.
//
// Raw blocks do not record their decoded length. Runs of zero counts, the
// common case for sparse alphabets, expand by far more than the usual 4x, so
// DecompressLimit grows its buffer geometrically up to the caller's limit.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates a new LZ4 compressor.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress encodes a serialized table as one LZ4 block using a pooled compressor.
//
// Returns:
//   - []byte: Compressed block (nil if input is empty)
//   - error: Compression error if any
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, fmt.Errorf("lz4 compression failed: %w", err)
	}

	return dst[:n], nil
}

// Decompress decodes an LZ4 block of at most MaxDecompressedSize bytes.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	return c.DecompressLimit(data, MaxDecompressedSize)
}

// DecompressLimit decodes an LZ4 block into at most limit bytes.
//
// The buffer starts at 4x the block size, clamped to limit, and doubles on
// ErrInvalidSourceShortBuffer until it reaches limit.
//
// Returns:
//   - []byte: Decompressed table (nil if input is empty)
//   - error: ErrDecompressedSize if the block does not fit in limit, or a decoding error
func (c LZ4Compressor) DecompressLimit(data []byte, limit int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	limit = clampLimit(limit)
	bufSize := min(len(data)*4, limit)

	for {
		buf := make([]byte, bufSize)
		n, err := lz4.UncompressBlock(data, buf)
		if err == nil {
			return buf[:n], nil
		}
		if !errors.Is(err, lz4.ErrInvalidSourceShortBuffer) {
			return nil, fmt.Errorf("lz4 decompression failed: %w", err)
		}
		if bufSize >= limit {
			return nil, sizeError("lz4", limit)
		}
		bufSize = min(bufSize*2, limit)
	}
}
