package frame

import (
	"fmt"

	"github.com/arloliu/arith/endian"
	"github.com/arloliu/arith/errs"
	"github.com/arloliu/arith/format"
)

const (
	EndiannessMask   = 0x0002 // Mask for endianness bit (bit 1)
	ReservedBitsMask = 0x000D // Mask for reserved bits (bits 0, 2 and 3)
	MagicNumberMask  = 0xFFF0 // Mask for magic number (bits 4-15)

	MagicFrameV1Opt = 0xAC10 // MagicFrameV1Opt is the version 1 magic number for frames.
)

var validTableCompressions = map[uint8]struct{}{
	uint8(format.CompressionNone): {},
	uint8(format.CompressionZstd): {},
	uint8(format.CompressionS2):   {},
	uint8(format.CompressionLZ4):  {},
}

// Flag represents the packed flag fields at the start of a frame header.
type Flag struct {
	// Options is a packed field for various options.
	// Bit 1 is endianness flag, 0 means little-endian, 1 means big-endian.
	// Bits 0, 2 and 3 are reserved for future use, must be set to 0.
	// Bits 4-15 are the magic number identifying the frame format.
	Options uint16

	// TableCompression is the compression applied to the frequency table section.
	TableCompression uint8
}

// NewFlag creates a little-endian flag with an uncompressed frequency table.
func NewFlag() Flag {
	flag := Flag{
		Options:          MagicFrameV1Opt,
		TableCompression: uint8(format.CompressionNone),
	}
	flag.WithLittleEndian()

	return flag
}

// IsLittleEndian returns whether the header fields are little-endian.
func (f Flag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// IsBigEndian returns whether the header fields are big-endian.
func (f Flag) IsBigEndian() bool {
	return (f.Options & EndiannessMask) != 0
}

// WithLittleEndian sets little-endian byte order.
func (f *Flag) WithLittleEndian() {
	f.Options &= ^uint16(EndiannessMask)
}

// WithBigEndian sets big-endian byte order.
func (f *Flag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// GetMagicNumber returns the magic number from the Options field.
func (f Flag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// GetEndianEngine returns the engine for the byte order in the Options field.
func (f Flag) GetEndianEngine() endian.EndianEngine {
	if f.IsBigEndian() {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}

// Compression returns the frequency table compression type.
func (f Flag) Compression() format.CompressionType {
	return format.CompressionType(f.TableCompression)
}

// SetCompression sets the frequency table compression type.
func (f *Flag) SetCompression(compression format.CompressionType) {
	f.TableCompression = uint8(compression)
}

// Validate checks the magic number, the reserved bits and the compression type.
func (f Flag) Validate() error {
	if magic := f.GetMagicNumber(); magic != MagicFrameV1Opt {
		return fmt.Errorf("%w: magic number 0x%04X", errs.ErrInvalidHeaderFlags, magic)
	}

	if f.Options&ReservedBitsMask != 0 {
		return fmt.Errorf("%w: reserved bits set in options 0x%04X", errs.ErrInvalidHeaderFlags, f.Options)
	}

	if _, ok := validTableCompressions[f.TableCompression]; !ok {
		return fmt.Errorf("%w: table compression %d", errs.ErrInvalidCompression, f.TableCompression)
	}

	return nil
}
