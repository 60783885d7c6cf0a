package frame

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/arloliu/arith/compress"
	"github.com/arloliu/arith/errs"
	"github.com/arloliu/arith/internal/hash"
	"github.com/arloliu/arith/internal/pool"
	"github.com/icza/bitio"
)

// Frame is a decodable arithmetic-coded message.
type Frame struct {
	// Frequencies holds one count per alphabet symbol.
	Frequencies []uint64
	// TargetLength is the number of symbols encoded in Bits.
	TargetLength uint64
	// Bits is the encoded bitstring of '0' and '1' characters.
	Bits string
}

// Marshal serializes f into a new frame.
//
// Parameters:
//   - f: Frame to serialize; Frequencies and Bits must be non-empty
//   - opts: Optional configuration (WithTableCompression, WithBigEndian, ...)
//
// Returns:
//   - []byte: Header followed by the payload
//   - error: ErrEmptyFrequencyTable, ErrInvalidAlphabetSize, ErrInvalidBitstring,
//     or an invalid option
func Marshal(f *Frame, opts ...Option) ([]byte, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	if f == nil || len(f.Frequencies) == 0 {
		return nil, errs.ErrEmptyFrequencyTable
	}
	if uint64(len(f.Frequencies)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d symbols", errs.ErrInvalidAlphabetSize, len(f.Frequencies))
	}
	if len(f.Bits) == 0 || uint64(len(f.Bits)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: length %d", errs.ErrInvalidBitstring, len(f.Bits))
	}

	codec, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return nil, err
	}

	table := make([]byte, 0, len(f.Frequencies)*2)
	for _, freq := range f.Frequencies {
		table = binary.AppendUvarint(table, freq)
	}
	table, err = codec.Compress(table)
	if err != nil {
		return nil, fmt.Errorf("failed to compress frequency table: %w", err)
	}
	if uint64(len(table)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: table size %d", errs.ErrInvalidAlphabetSize, len(table))
	}

	bb := pool.GetFrameBuffer()
	defer pool.PutFrameBuffer(bb)

	if err := packBits(bb, f.Bits); err != nil {
		return nil, err
	}

	header := NewHeader()
	header.Flag.SetCompression(cfg.compression)
	if cfg.bigEndian {
		header.Flag.WithBigEndian()
	}
	header.AlphabetSize = uint32(len(f.Frequencies)) //nolint:gosec
	header.TargetLength = f.TargetLength
	header.BitLength = uint32(len(f.Bits)) //nolint:gosec
	header.TableSize = uint32(len(table))  //nolint:gosec

	out := make([]byte, 0, HeaderSize+len(table)+bb.Len())
	out = header.AppendTo(out)
	out = append(out, table...)
	out = append(out, bb.Bytes()...)

	header.Checksum = hash.ChecksumParts(out[:checksumOffset], out[HeaderSize:])
	header.Flag.GetEndianEngine().PutUint64(out[checksumOffset:HeaderSize], header.Checksum)

	return out, nil
}

// Unmarshal parses and verifies a frame.
//
// Returns:
//   - *Frame: The decoded frame
//   - error: A header error, ErrTruncatedFrame, ErrTrailingData,
//     ErrChecksumMismatch, or a frequency table or bitstring error
func Unmarshal(data []byte) (*Frame, error) {
	header, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}

	payload := data[HeaderSize:]
	want := header.PayloadSize()
	if uint64(len(payload)) < want {
		return nil, fmt.Errorf("%w: payload has %d bytes, header describes %d", errs.ErrTruncatedFrame, len(payload), want)
	}
	if uint64(len(payload)) > want {
		return nil, fmt.Errorf("%w: %d bytes", errs.ErrTrailingData, uint64(len(payload))-want)
	}

	if sum := hash.ChecksumParts(data[:checksumOffset], payload); sum != header.Checksum {
		return nil, fmt.Errorf("%w: got 0x%016X, want 0x%016X", errs.ErrChecksumMismatch, sum, header.Checksum)
	}

	if header.AlphabetSize == 0 {
		return nil, errs.ErrEmptyFrequencyTable
	}
	if header.BitLength == 0 {
		return nil, fmt.Errorf("%w: length 0", errs.ErrInvalidBitstring)
	}

	codec, err := compress.GetCodec(header.Flag.Compression())
	if err != nil {
		return nil, err
	}

	table, err := codec.DecompressLimit(payload[:header.TableSize], maxTableSize(header.AlphabetSize))
	if err != nil {
		return nil, fmt.Errorf("failed to decompress frequency table: %w", err)
	}

	freqs, err := parseTable(table, header.AlphabetSize)
	if err != nil {
		return nil, err
	}

	bits, err := unpackBits(payload[header.TableSize:], header.BitLength)
	if err != nil {
		return nil, err
	}

	return &Frame{
		Frequencies:  freqs,
		TargetLength: header.TargetLength,
		Bits:         bits,
	}, nil
}

// packBits writes bits MSB-first into w and pads the last byte with zeros.
func packBits(w io.Writer, bits string) error {
	bw := bitio.NewWriter(w)
	for i := 0; i < len(bits); i++ {
		if bits[i] != '0' && bits[i] != '1' {
			return fmt.Errorf("%w: invalid character %q at position %d", errs.ErrInvalidBitstring, bits[i], i)
		}
		if err := bw.WriteBool(bits[i] == '1'); err != nil {
			return fmt.Errorf("failed to pack bit %d: %w", i, err)
		}
	}

	if err := bw.Close(); err != nil {
		return fmt.Errorf("failed to flush packed bits: %w", err)
	}

	return nil
}

func unpackBits(data []byte, n uint32) (string, error) {
	br := bitio.NewReader(bytes.NewReader(data))

	var sb strings.Builder
	sb.Grow(int(n)) //nolint:gosec
	for i := uint32(0); i < n; i++ {
		bit, err := br.ReadBool()
		if err != nil {
			return "", fmt.Errorf("%w: bitstring: %w", errs.ErrTruncatedFrame, err)
		}
		if bit {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}

	return sb.String(), nil
}

// maxTableSize bounds the serialized table: every frequency is a uvarint of at
// most binary.MaxVarintLen64 bytes.
func maxTableSize(alphabetSize uint32) int {
	size := uint64(alphabetSize) * binary.MaxVarintLen64
	if size > compress.MaxDecompressedSize {
		return compress.MaxDecompressedSize
	}

	return int(size)
}

func parseTable(table []byte, size uint32) ([]uint64, error) {
	// Every uvarint takes at least one byte.
	if uint64(size) > uint64(len(table)) {
		return nil, fmt.Errorf("%w: %d table bytes for %d symbols", errs.ErrTruncatedFrame, len(table), size)
	}

	freqs := make([]uint64, size)
	r := bytes.NewReader(table)
	for i := range freqs {
		v, err := binary.ReadUvarint(r)
		if err != nil {
			return nil, fmt.Errorf("%w: frequency %d: %w", errs.ErrTruncatedFrame, i, err)
		}
		freqs[i] = v
	}

	if r.Len() != 0 {
		return nil, fmt.Errorf("%w: %d bytes after frequency table", errs.ErrTrailingData, r.Len())
	}

	return freqs, nil
}
