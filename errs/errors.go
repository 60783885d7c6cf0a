// Package errs defines the sentinel errors shared by all arith packages.
//
// Every error in this module is a contract violation: the codec is a pure
// computation over exact values, so there is nothing transient to retry.
// Call sites wrap these sentinels with context via fmt.Errorf("%w: ...") and
// callers should match them with errors.Is.
package errs

import "errors"

// Frequency table errors.
var (
	ErrEmptyFrequencyTable = errors.New("frequency table is empty")
	ErrNegativeFrequency   = errors.New("frequency must not be negative")
	ErrZeroTotalFrequency  = errors.New("frequency table total must be positive")
	ErrFrequencyOverflow   = errors.New("frequency table total overflows 64 bits")
)

// Symbol sequence errors.
var (
	ErrSymbolOutOfRange    = errors.New("symbol index out of range")
	ErrZeroFrequencySymbol = errors.New("symbol has zero frequency")
	ErrLengthMismatch      = errors.New("symbol count does not match frequency total")
	ErrTooManySymbols      = errors.New("symbol count exceeds limit")
)

// Interval and search errors.
var (
	ErrEmptyInterval       = errors.New("interval low bound must be less than high bound")
	ErrOutsideUnitInterval = errors.New("interval must lie within [0, 1)")
	ErrInvalidBracket      = errors.New("predicate must be false at low bound and true at high bound")
	ErrNoDyadicFraction    = errors.New("no dyadic fraction found in interval")
)

// Decoder errors.
var (
	ErrInvalidBitstring     = errors.New("invalid bitstring")
	ErrInvalidTargetLength  = errors.New("invalid target length")
	ErrNoContainingInterval = errors.New("no sub-interval contains the target fraction")
)

// Alphabet errors.
var (
	ErrInvalidAlphabetSize = errors.New("invalid alphabet size")
	ErrDuplicateSymbol     = errors.New("duplicate alphabet symbol")
	ErrUnknownSymbol       = errors.New("symbol not in alphabet")
)

// Frame errors.
var (
	ErrInvalidHeaderSize  = errors.New("invalid frame header size")
	ErrInvalidHeaderFlags = errors.New("invalid frame header flags")
	ErrTruncatedFrame     = errors.New("frame payload is truncated")
	ErrTrailingData       = errors.New("unexpected trailing data in frame")
	ErrChecksumMismatch   = errors.New("frame checksum mismatch")
	ErrInvalidCompression = errors.New("invalid compression type")
	ErrDecompressedSize   = errors.New("decompressed data exceeds size limit")
)
