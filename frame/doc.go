// Package frame stores an arithmetic-coded message as a self-describing
// binary frame.
//
// A bitstring alone is not decodable: the decoder also needs the frequency
// table and the target length. A frame bundles all three behind a fixed
// 32-byte header:
//
//	offset  size  field
//	0       2     Options: magic number (bits 4-15), endianness (bit 1)
//	2       1     TableCompression
//	3       1     reserved, must be zero
//	4       4     AlphabetSize
//	8       8     TargetLength
//	16      4     BitLength
//	20      4     TableSize
//	24      8     Checksum
//
// The Options word is always little-endian; the remaining fields use the byte
// order selected by the endianness bit. The payload follows the header: the
// frequency table as uvarints, optionally compressed, then the bitstring packed
// most significant bit first and zero padded to a byte boundary.
//
// The checksum is the xxHash64 of header bytes 0-23 followed by the payload.
//
// Usage:
//
//	data, err := frame.Marshal(&frame.Frame{
//		Frequencies:  []uint64{4, 2, 1},
//		TargetLength: 7,
//		Bits:         "0110100101",
//	}, frame.WithTableCompression(format.CompressionZstd))
//
//	f, err := frame.Unmarshal(data)
package frame
