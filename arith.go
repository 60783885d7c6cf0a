// Package arith provides exact arithmetic coding of symbol sequences.
//
// A message is a sequence of symbols drawn from an alphabet with a known
// frequency table. Encoding maps the message to the shortest binary fraction
// inside its sub-interval of [0, 1); decoding replays the interval narrowing
// to recover the message. All arithmetic is exact, so the round trip is
// lossless and the encoded bitstring is minimal.
//
// # Basic Usage
//
// Encoding text over the first n latin letters:
//
//	res, _ := arith.EncodeText(3, "abacaba")
//	// res.Frequencies == []int{4, 2, 1}
//	// res.Bits == "0110100101"
//
//	text, _ := arith.DecodeText(3, res.Frequencies, res.Bits)
//	// text == "abacaba"
//
// Storing a message as a self-describing frame:
//
//	data, _ := arith.Pack(3, "abacaba", frame.WithTableCompression(format.CompressionZstd))
//	text, _ := arith.UnpackText(3, data)
//
// # Package Structure
//
// This package provides convenient top-level wrappers. The codec package holds
// the encoder and decoder, dyadic the shortest-fraction search, interval the
// exact partitioning and frame the binary container.
package arith

import (
	"fmt"
	"math"

	"github.com/arloliu/arith/alphabet"
	"github.com/arloliu/arith/codec"
	"github.com/arloliu/arith/errs"
	"github.com/arloliu/arith/frame"
)

// Result is an encoded text message.
type Result struct {
	// Frequencies holds the symbol counts of the text, one per alphabet symbol.
	Frequencies []int
	// Bits is the encoded bitstring.
	Bits string
}

// Encode encodes symbols under the frequency table freqs.
//
// Parameters:
//   - freqs: One non-negative count per alphabet symbol, positive total
//   - symbols: Symbol indices, each with a positive frequency
//   - opts: Optional codec configuration
//
// Returns:
//   - string: The shortest bitstring identifying the sequence
//   - error: A frequency table, symbol or search error from errs
func Encode(freqs, symbols []int, opts ...codec.Option) (string, error) {
	return codec.Encode(freqs, symbols, opts...)
}

// Decode decodes targetLen symbols from bits under the frequency table freqs.
func Decode(freqs []int, bits string, targetLen int, opts ...codec.Option) ([]int, error) {
	return codec.Decode(freqs, bits, targetLen, opts...)
}

// EncodeText counts the symbols of text over the first alphabetSize latin
// letters and encodes text under those counts.
//
// Returns:
//   - *Result: The frequency table and the bitstring
//   - error: ErrInvalidAlphabetSize, ErrUnknownSymbol, or an encoding error
func EncodeText(alphabetSize int, text string, opts ...codec.Option) (*Result, error) {
	a, err := alphabet.Latin(alphabetSize)
	if err != nil {
		return nil, err
	}

	symbols, err := a.Indices(text)
	if err != nil {
		return nil, err
	}

	freqs, err := a.Frequencies(text)
	if err != nil {
		return nil, err
	}

	bits, err := codec.Encode(freqs, symbols, opts...)
	if err != nil {
		return nil, err
	}

	return &Result{Frequencies: freqs, Bits: bits}, nil
}

// DecodeText decodes bits into text over the first alphabetSize latin letters.
// The text length is the frequency total.
func DecodeText(alphabetSize int, freqs []int, bits string, opts ...codec.Option) (string, error) {
	a, err := alphabet.Latin(alphabetSize)
	if err != nil {
		return "", err
	}
	if len(freqs) != a.Size() {
		return "", fmt.Errorf("%w: %d frequencies for %d symbols", errs.ErrInvalidAlphabetSize, len(freqs), a.Size())
	}

	dec, err := codec.NewDecoder(freqs, opts...)
	if err != nil {
		return "", err
	}

	symbols, err := dec.Decode(bits)
	if err != nil {
		return "", err
	}

	return a.Text(symbols)
}

// Pack encodes text like EncodeText and stores the result in a frame.
func Pack(alphabetSize int, text string, opts ...frame.Option) ([]byte, error) {
	res, err := EncodeText(alphabetSize, text)
	if err != nil {
		return nil, err
	}

	freqs := make([]uint64, len(res.Frequencies))
	for i, f := range res.Frequencies {
		freqs[i] = uint64(f) //nolint:gosec
	}

	return frame.Marshal(&frame.Frame{
		Frequencies:  freqs,
		TargetLength: total(freqs),
		Bits:         res.Bits,
	}, opts...)
}

// Unpack parses a frame and decodes its symbols.
//
// Returns:
//   - []int: The decoded symbol indices
//   - *frame.Frame: The parsed frame
//   - error: A frame error or a decoding error
func Unpack(data []byte, opts ...codec.Option) ([]int, *frame.Frame, error) {
	f, err := frame.Unmarshal(data)
	if err != nil {
		return nil, nil, err
	}

	freqs := make([]int, len(f.Frequencies))
	for i, v := range f.Frequencies {
		if v > math.MaxInt {
			return nil, nil, fmt.Errorf("%w: frequency %d of symbol %d exceeds int range", errs.ErrFrequencyOverflow, v, i)
		}
		freqs[i] = int(v)
	}

	if f.TargetLength > math.MaxInt {
		return nil, nil, fmt.Errorf("%w: %d", errs.ErrInvalidTargetLength, f.TargetLength)
	}

	symbols, err := codec.Decode(freqs, f.Bits, int(f.TargetLength), opts...)
	if err != nil {
		return nil, nil, err
	}

	return symbols, f, nil
}

// UnpackText parses a frame and decodes its text over the first alphabetSize
// latin letters.
func UnpackText(alphabetSize int, data []byte, opts ...codec.Option) (string, error) {
	a, err := alphabet.Latin(alphabetSize)
	if err != nil {
		return "", err
	}

	symbols, f, err := Unpack(data, opts...)
	if err != nil {
		return "", err
	}
	if len(f.Frequencies) != a.Size() {
		return "", fmt.Errorf("%w: frame has %d symbols, alphabet %d", errs.ErrInvalidAlphabetSize, len(f.Frequencies), a.Size())
	}

	return a.Text(symbols)
}

func total(freqs []uint64) uint64 {
	var sum uint64
	for _, f := range freqs {
		sum += f
	}

	return sum
}
