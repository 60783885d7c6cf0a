package compress

import (
	"fmt"

	"github.com/arloliu/arith/errs"
	"github.com/arloliu/arith/format"
)

// Compressor compresses a serialized frame section, typically the uvarint
// frequency table.
type Compressor interface {
	// Compress compresses data and returns the compressed result.
	//
	// The input slice is not modified. Implementations other than NoOp return
	// a newly allocated slice owned by the caller.
	Compress(data []byte) ([]byte, error)
}

// MaxDecompressedSize caps the output of every decompression, whatever limit
// the caller asks for.
const MaxDecompressedSize = 64 * 1024 * 1024

// Decompressor reverses a Compressor of the same algorithm.
//
// Implementations are safe for concurrent use.
type Decompressor interface {
	// Decompress decompresses data previously produced by the matching Compressor.
	// The output is capped at MaxDecompressedSize.
	//
	// Returns an error if data is corrupted or was produced by another algorithm.
	Decompress(data []byte) ([]byte, error)

	// DecompressLimit is Decompress with the output capped at limit bytes.
	// A non-positive limit, or one above MaxDecompressedSize, means
	// MaxDecompressedSize. Implementations reject oversized output before
	// allocating it whenever the format records the decompressed size.
	//
	// Returns an error wrapping errs.ErrDecompressedSize when the output
	// would exceed limit.
	DecompressLimit(data []byte, limit int) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec creates a Codec for the specified compression type.
//
// Parameters:
//   - compressionType: Type of compression (None, Zstd, S2, or LZ4)
//   - target: Description of the compressed section (for error messages)
//
// Returns:
//   - Codec: Codec instance for the specified type
//   - error: ErrInvalidCompression for unknown types
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("%w: %s compression %s", errs.ErrInvalidCompression, target, compressionType)
	}
}

func clampLimit(limit int) int {
	if limit <= 0 || limit > MaxDecompressedSize {
		return MaxDecompressedSize
	}

	return limit
}

func sizeError(algo string, limit int) error {
	return fmt.Errorf("%w: %s output exceeds %d bytes", errs.ErrDecompressedSize, algo, limit)
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the shared built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrInvalidCompression, compressionType)
}
