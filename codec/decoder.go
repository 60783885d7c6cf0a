package codec

import (
	"fmt"
	"math"
	"math/big"

	"github.com/arloliu/arith/dyadic"
	"github.com/arloliu/arith/errs"
	"github.com/arloliu/arith/format"
	"github.com/arloliu/arith/interval"
)

// Decoder reconstructs symbol sequences from bitstrings under a fixed
// frequency table. It is safe for concurrent use.
type Decoder struct {
	model  *Model
	cfg    *Config
	choose func([]interval.Interval, *big.Rat) (int, bool)
}

// NewDecoder creates a decoder for the given frequency table.
//
// Parameters:
//   - freqs: One non-negative count per alphabet symbol, positive total
//   - opts: Optional configuration (WithMaxSymbols, WithSelectStrategy)
//
// Returns:
//   - *Decoder: The decoder
//   - error: A frequency table error or an invalid option
func NewDecoder(freqs []int, opts ...Option) (*Decoder, error) {
	model, err := NewModel(freqs)
	if err != nil {
		return nil, err
	}

	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	d := &Decoder{model: model, cfg: cfg, choose: interval.Select}
	if cfg.strategy == format.SelectBisect {
		d.choose = interval.SelectBisect
	}

	return d, nil
}

// Model returns the decoder's frequency table.
func (d *Decoder) Model() *Model {
	return d.model
}

// Decode decodes bits into a sequence whose length is the frequency total.
func (d *Decoder) Decode(bits string) ([]int, error) {
	if d.model.total > math.MaxInt {
		return nil, fmt.Errorf("%w: frequency total %d", errs.ErrInvalidTargetLength, d.model.total)
	}

	return d.DecodeN(bits, int(d.model.total))
}

// DecodeN decodes bits into a sequence of exactly n symbols.
//
// Returns:
//   - []int: The decoded symbol indices
//   - error: ErrInvalidBitstring, ErrInvalidTargetLength, ErrTooManySymbols or
//     ErrNoContainingInterval when bits, table and n are inconsistent
func (d *Decoder) DecodeN(bits string, n int) ([]int, error) {
	f, err := dyadic.Parse(bits)
	if err != nil {
		return nil, err
	}

	return d.DecodeRat(f.Rat(), n)
}

// DecodeRat decodes the n symbols identified by the target fraction x.
//
// Each step partitions the current interval, selects the sub-interval that
// contains x, emits its index and continues inside it. Empty sub-intervals of
// zero-frequency symbols can never be selected.
func (d *Decoder) DecodeRat(x *big.Rat, n int) ([]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidTargetLength, n)
	}
	if err := d.cfg.checkCount(n); err != nil {
		return nil, err
	}

	symbols := make([]int, 0, n)
	current := interval.Unit()
	for step := 0; step < n; step++ {
		parts, err := interval.Partition(current, d.model.freqs)
		if err != nil {
			return nil, err
		}

		idx, ok := d.choose(parts, x)
		if !ok {
			return nil, fmt.Errorf("%w: step %d, target %s, interval %s",
				errs.ErrNoContainingInterval, step, x.RatString(), current)
		}

		symbols = append(symbols, idx)
		current = parts[idx]
	}

	return symbols, nil
}

// Decode is a convenience wrapper for NewDecoder followed by Decoder.DecodeN.
func Decode(freqs []int, bits string, targetLen int, opts ...Option) ([]int, error) {
	dec, err := NewDecoder(freqs, opts...)
	if err != nil {
		return nil, err
	}

	return dec.DecodeN(bits, targetLen)
}
