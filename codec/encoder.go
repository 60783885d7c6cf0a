package codec

import (
	"fmt"

	"github.com/arloliu/arith/dyadic"
	"github.com/arloliu/arith/errs"
	"github.com/arloliu/arith/interval"
)

// Encoder compresses symbol sequences under a fixed frequency table.
//
// An Encoder holds only immutable state, so it is safe for concurrent use.
type Encoder struct {
	model *Model
	cfg   *Config
}

// NewEncoder creates an encoder for the given frequency table.
//
// Parameters:
//   - freqs: One non-negative count per alphabet symbol, positive total
//   - opts: Optional configuration (WithMaxSymbols, WithMaxBits, WithStrictLength)
//
// Returns:
//   - *Encoder: The encoder
//   - error: A frequency table error or an invalid option
func NewEncoder(freqs []int, opts ...Option) (*Encoder, error) {
	model, err := NewModel(freqs)
	if err != nil {
		return nil, err
	}

	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	return &Encoder{model: model, cfg: cfg}, nil
}

// Model returns the encoder's frequency table.
func (e *Encoder) Model() *Model {
	return e.model
}

// Narrow starts from [0, 1) and, for each symbol in order, replaces the current
// interval with the symbol's sub-interval of its partition.
//
// Returns:
//   - interval.Interval: The final narrowed interval
//   - error: ErrSymbolOutOfRange, ErrZeroFrequencySymbol, ErrTooManySymbols or ErrLengthMismatch
func (e *Encoder) Narrow(symbols []int) (interval.Interval, error) {
	if err := e.cfg.checkCount(len(symbols)); err != nil {
		return interval.Interval{}, err
	}
	if e.cfg.strictLength && uint64(len(symbols)) != e.model.total {
		return interval.Interval{}, fmt.Errorf("%w: %d symbols, total %d", errs.ErrLengthMismatch, len(symbols), e.model.total)
	}

	// Validate up front so no partial narrowing is done for a bad sequence.
	for pos, symbol := range symbols {
		if err := e.model.checkSymbol(pos, symbol); err != nil {
			return interval.Interval{}, err
		}
	}

	current := interval.Unit()
	for _, symbol := range symbols {
		parts, err := interval.Partition(current, e.model.freqs)
		if err != nil {
			return interval.Interval{}, err
		}
		current = parts[symbol]
	}

	return current, nil
}

// EncodeFraction returns the shortest dyadic fraction inside the narrowed interval.
func (e *Encoder) EncodeFraction(symbols []int) (dyadic.Fraction, error) {
	final, err := e.Narrow(symbols)
	if err != nil {
		return dyadic.Fraction{}, err
	}

	return dyadic.Locate(final, e.cfg.maxBits)
}

// Encode returns the bitstring of the shortest dyadic fraction identifying symbols.
//
// Decoding the result with the same frequency table and len(symbols) as the
// target length reproduces symbols exactly.
func (e *Encoder) Encode(symbols []int) (string, error) {
	f, err := e.EncodeFraction(symbols)
	if err != nil {
		return "", err
	}

	return f.Bits(), nil
}

// Encode is a convenience wrapper for NewEncoder followed by Encoder.Encode.
func Encode(freqs []int, symbols []int, opts ...Option) (string, error) {
	enc, err := NewEncoder(freqs, opts...)
	if err != nil {
		return "", err
	}

	return enc.Encode(symbols)
}
