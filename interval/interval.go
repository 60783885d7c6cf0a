// Package interval provides half-open intervals of exact rational numbers and
// the proportional partitioning used to narrow them during arithmetic coding.
//
// An Interval is [low, high): the low bound is included and the high bound is
// excluded. This asymmetry lets a partition tile its parent without overlap, so
// every point of the parent belongs to exactly one sub-interval.
//
// All arithmetic is done on math/big rationals. After n coding steps an
// interval can be exponentially narrow, which floating point cannot represent.
package interval

import (
	"fmt"
	"math/big"

	"github.com/arloliu/arith/errs"
)

// Interval is an immutable half-open interval [low, high) of exact rationals.
//
// The zero value is not a valid interval; use New or Unit.
type Interval struct {
	low  *big.Rat
	high *big.Rat
}

// New creates the interval [low, high).
//
// The bounds are copied, so the caller may keep mutating its own values.
//
// Returns:
//   - Interval: The new interval
//   - error: ErrEmptyInterval if low >= high
func New(low, high *big.Rat) (Interval, error) {
	if low.Cmp(high) >= 0 {
		return Interval{}, fmt.Errorf("%w: [%s, %s)", errs.ErrEmptyInterval, low.RatString(), high.RatString())
	}

	return newUnchecked(new(big.Rat).Set(low), new(big.Rat).Set(high)), nil
}

// Unit returns the interval [0, 1).
func Unit() Interval {
	return newUnchecked(new(big.Rat), big.NewRat(1, 1))
}

// newUnchecked takes ownership of low and high without validation.
// Partition uses it for zero-width sub-intervals.
func newUnchecked(low, high *big.Rat) Interval {
	return Interval{low: low, high: high}
}

// Low returns a copy of the low (inclusive) bound.
func (iv Interval) Low() *big.Rat {
	return new(big.Rat).Set(iv.low)
}

// High returns a copy of the high (exclusive) bound.
func (iv Interval) High() *big.Rat {
	return new(big.Rat).Set(iv.high)
}

// Width returns high - low.
func (iv Interval) Width() *big.Rat {
	return new(big.Rat).Sub(iv.high, iv.low)
}

// IsEmpty reports whether the interval contains no point (low == high).
func (iv Interval) IsEmpty() bool {
	return iv.low.Cmp(iv.high) >= 0
}

// Contains reports whether low <= x < high.
func (iv Interval) Contains(x *big.Rat) bool {
	return iv.low.Cmp(x) <= 0 && x.Cmp(iv.high) < 0
}

// Equal reports whether both bounds are equal.
func (iv Interval) Equal(other Interval) bool {
	return iv.low.Cmp(other.low) == 0 && iv.high.Cmp(other.high) == 0
}

// String formats the interval as "[low, high)".
func (iv Interval) String() string {
	return "[" + iv.low.RatString() + ", " + iv.high.RatString() + ")"
}
