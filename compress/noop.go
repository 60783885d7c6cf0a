package compress

// NoOpCompressor passes data through unchanged. Frames use it when table
// compression is disabled.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a new no-operation compressor.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns data as-is. The result shares memory with the input.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data as-is. The result shares memory with the input.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return c.DecompressLimit(data, MaxDecompressedSize)
}

// DecompressLimit returns data as-is when it fits in limit.
func (c NoOpCompressor) DecompressLimit(data []byte, limit int) ([]byte, error) {
	limit = clampLimit(limit)
	if len(data) > limit {
		return nil, sizeError("raw", limit)
	}

	return data, nil
}
