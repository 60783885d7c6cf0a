package interval

import (
	"math/big"

	"github.com/arloliu/arith/errs"
	"github.com/arloliu/arith/search"
)

// Partition splits parent into len(freqs) contiguous sub-intervals whose widths
// are proportional to freqs, in table order.
//
// The step width/total is kept as an exact rational and each border is
// accumulated as border += step*freq. Sub-interval i+1 starts exactly where
// sub-interval i ends, the first starts at parent.low and the last ends at
// parent.high. A zero frequency yields an empty [x, x) that no point can select.
//
// Parameters:
//   - parent: Interval to split
//   - freqs: Frequency table, one entry per symbol
//
// Returns:
//   - []Interval: Exactly len(freqs) sub-intervals
//   - error: ErrEmptyFrequencyTable or ErrZeroTotalFrequency
func Partition(parent Interval, freqs []uint64) ([]Interval, error) {
	if len(freqs) == 0 {
		return nil, errs.ErrEmptyFrequencyTable
	}

	total := new(big.Int)
	f := new(big.Int)
	for _, freq := range freqs {
		total.Add(total, f.SetUint64(freq))
	}
	if total.Sign() == 0 {
		return nil, errs.ErrZeroTotalFrequency
	}

	step := parent.Width()
	step.Quo(step, new(big.Rat).SetInt(total))

	parts := make([]Interval, len(freqs))
	border := parent.Low()
	weight := new(big.Rat)
	for i, freq := range freqs {
		next := new(big.Rat).Set(border)
		if freq != 0 {
			weight.SetInt(f.SetUint64(freq))
			next.Add(next, weight.Mul(weight, step))
		}
		parts[i] = newUnchecked(border, next)
		border = next
	}

	return parts, nil
}

// Select returns the index of the sub-interval that contains x by scanning
// parts in order. Empty sub-intervals never match.
//
// Returns:
//   - int: Index into parts, or -1
//   - bool: Whether a containing sub-interval was found
func Select(parts []Interval, x *big.Rat) (int, bool) {
	for i, part := range parts {
		if part.Contains(x) {
			return i, true
		}
	}

	return -1, false
}

// SelectBisect is equivalent to Select but binary-searches the ordered high
// bounds of a contiguous partition.
//
// It finds the first sub-interval whose high bound exceeds x. An empty
// sub-interval can only be that first one when x lies below the whole
// partition, which the final Contains check rejects.
func SelectBisect(parts []Interval, x *big.Rat) (int, bool) {
	n := len(parts)
	_, idx, err := search.Int(-1, n, func(i int) bool {
		if i < 0 {
			return false
		}

		return i == n || parts[i].high.Cmp(x) > 0
	})
	if err != nil || idx == n {
		return -1, false
	}

	if !parts[idx].Contains(x) {
		return -1, false
	}

	return idx, true
}
