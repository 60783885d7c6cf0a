// Package compress provides the codecs applied to the frequency-table section
// of a frame.
//
// The arithmetic-coded bitstring is already minimal, so only the frequency
// table is worth compressing. Large alphabets with many absent or repeated
// counts shrink well.
//
// Supported algorithms:
//   - None (format.CompressionNone): data passes through unchanged
//   - Zstd (format.CompressionZstd): best ratio, pooled klauspost encoder and decoder
//   - S2 (format.CompressionS2): fast, Snappy-compatible
//   - LZ4 (format.CompressionLZ4): fastest decompression, pooled block compressor
//
// Usage:
//
//	codec, err := compress.CreateCodec(format.CompressionZstd, "frequency table")
//	if err != nil {
//		return err
//	}
//	compressed, err := codec.Compress(table)
//	table, err = codec.Decompress(compressed)
//
// All codecs are stateless values and safe for concurrent use.
package compress
