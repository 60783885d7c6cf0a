package codec

import (
	"fmt"
	"math/bits"

	"github.com/arloliu/arith/errs"
)

// Model is a validated, immutable frequency table.
//
// Entry i is the weight of symbol i; the table order is the symbol order. The
// total is the length of the sequence a decoder reconstructs by default.
type Model struct {
	freqs []uint64
	total uint64
}

// NewModel validates freqs and builds a Model.
//
// Parameters:
//   - freqs: One non-negative count per alphabet symbol
//
// Returns:
//   - *Model: The validated model (freqs is copied)
//   - error: ErrEmptyFrequencyTable, ErrNegativeFrequency, ErrFrequencyOverflow or ErrZeroTotalFrequency
func NewModel(freqs []int) (*Model, error) {
	if len(freqs) == 0 {
		return nil, errs.ErrEmptyFrequencyTable
	}

	m := &Model{freqs: make([]uint64, len(freqs))}
	for i, f := range freqs {
		if f < 0 {
			return nil, fmt.Errorf("%w: symbol %d has frequency %d", errs.ErrNegativeFrequency, i, f)
		}
		m.freqs[i] = uint64(f)

		var carry uint64
		m.total, carry = bits.Add64(m.total, m.freqs[i], 0)
		if carry != 0 {
			return nil, fmt.Errorf("%w: at symbol %d", errs.ErrFrequencyOverflow, i)
		}
	}

	if m.total == 0 {
		return nil, errs.ErrZeroTotalFrequency
	}

	return m, nil
}

// Size returns the alphabet size.
func (m *Model) Size() int {
	return len(m.freqs)
}

// Total returns the sum of all frequencies.
func (m *Model) Total() uint64 {
	return m.total
}

// Frequency returns the frequency of symbol i, or 0 when i is out of range.
func (m *Model) Frequency(i int) uint64 {
	if i < 0 || i >= len(m.freqs) {
		return 0
	}

	return m.freqs[i]
}

// Frequencies returns a copy of the table.
func (m *Model) Frequencies() []uint64 {
	out := make([]uint64, len(m.freqs))
	copy(out, m.freqs)

	return out
}

// checkSymbol verifies that symbol can be selected by an interval narrowing step.
func (m *Model) checkSymbol(pos, symbol int) error {
	if symbol < 0 || symbol >= len(m.freqs) {
		return fmt.Errorf("%w: symbol %d at position %d, alphabet size %d", errs.ErrSymbolOutOfRange, symbol, pos, len(m.freqs))
	}
	if m.freqs[symbol] == 0 {
		return fmt.Errorf("%w: symbol %d at position %d", errs.ErrZeroFrequencySymbol, symbol, pos)
	}

	return nil
}
