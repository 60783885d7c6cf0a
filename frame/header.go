package frame

import (
	"fmt"

	"github.com/arloliu/arith/errs"
)

// HeaderSize is the fixed frame header size in bytes.
const HeaderSize = 32

// checksumOffset is where the checksum field starts; the bytes before it are
// covered by the checksum.
const checksumOffset = 24

// Header represents the fixed-size header at the start of a frame.
type Header struct {
	// Flag is a packed field for options, magic number and table compression.
	Flag Flag // byte offset 0-3
	// AlphabetSize is the number of entries in the frequency table.
	AlphabetSize uint32 // byte offset 4-7
	// TargetLength is the number of symbols to decode.
	TargetLength uint64 // byte offset 8-15
	// BitLength is the number of meaningful bits in the packed bitstring.
	BitLength uint32 // byte offset 16-19
	// TableSize is the size in bytes of the stored, possibly compressed, frequency table.
	TableSize uint32 // byte offset 20-23
	// Checksum is the xxHash64 of bytes 0-23 and the payload.
	Checksum uint64 // byte offset 24-31
}

// NewHeader creates a header with the default flag.
func NewHeader() *Header {
	return &Header{Flag: NewFlag()}
}

// Parse parses the header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing header (must be exactly 32 bytes)
//
// Returns:
//   - error: ErrInvalidHeaderSize if data is not 32 bytes, or flag validation errors
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return fmt.Errorf("%w: got %d bytes, want %d", errs.ErrInvalidHeaderSize, len(data), HeaderSize)
	}

	// The Options field is always little-endian.
	h.Flag.Options = uint16(data[0]) | (uint16(data[1]) << 8)
	h.Flag.TableCompression = data[2]

	if err := h.Flag.Validate(); err != nil {
		return err
	}

	if data[3] != 0 {
		return fmt.Errorf("%w: reserved byte 0x%02X", errs.ErrInvalidHeaderFlags, data[3])
	}

	engine := h.Flag.GetEndianEngine()
	h.AlphabetSize = engine.Uint32(data[4:8])
	h.TargetLength = engine.Uint64(data[8:16])
	h.BitLength = engine.Uint32(data[16:20])
	h.TableSize = engine.Uint32(data[20:24])
	h.Checksum = engine.Uint64(data[24:32])

	return nil
}

// Bytes serializes the header into a new 32-byte slice.
func (h *Header) Bytes() []byte {
	return h.AppendTo(make([]byte, 0, HeaderSize))
}

// AppendTo appends the serialized header to dst and returns the extended slice.
func (h *Header) AppendTo(dst []byte) []byte {
	engine := h.Flag.GetEndianEngine()

	dst = append(dst, byte(h.Flag.Options), byte(h.Flag.Options>>8), h.Flag.TableCompression, 0)
	dst = engine.AppendUint32(dst, h.AlphabetSize)
	dst = engine.AppendUint64(dst, h.TargetLength)
	dst = engine.AppendUint32(dst, h.BitLength)
	dst = engine.AppendUint32(dst, h.TableSize)
	dst = engine.AppendUint64(dst, h.Checksum)

	return dst
}

// PayloadSize returns the number of payload bytes the header describes.
func (h *Header) PayloadSize() uint64 {
	return uint64(h.TableSize) + (uint64(h.BitLength)+7)/8
}

// ParseHeader parses a Header from the start of a byte slice.
//
// Parameters:
//   - data: Byte slice containing header (must be at least 32 bytes)
//
// Returns:
//   - Header: Parsed header struct
//   - error: ErrInvalidHeaderSize or flag validation errors
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: got %d bytes, want %d", errs.ErrInvalidHeaderSize, len(data), HeaderSize)
	}

	h := Header{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return Header{}, err
	}

	return h, nil
}
