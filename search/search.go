// Package search implements a discrete binary search over monotonic predicates.
//
// A predicate is monotonic over an ordered domain when, once it becomes true,
// it stays true for every larger index. Given a bracket (lo, hi) where the
// predicate is false at lo and true at hi, Bisect narrows the bracket until the
// two ends are adjacent, locating the exact point where the predicate flips.
//
// The index domain is abstracted by Space so the same search drives both
// machine integers (bit counts, slice positions) and arbitrary-precision
// integers (numerators of dyadic fractions with thousands of bits).
//
// Callers are responsible for establishing a valid bracket, typically by
// exponential doubling. Bisect verifies the bracket before searching and
// returns errs.ErrInvalidBracket when it does not hold.
package search

import (
	"fmt"
	"math/big"

	"github.com/arloliu/arith/errs"
	"golang.org/x/exp/constraints"
)

// Space describes a linearly ordered index domain.
type Space[T any] interface {
	// Less reports whether a < b.
	Less(a, b T) bool
	// Adjacent reports whether hi is the immediate successor of lo.
	Adjacent(lo, hi T) bool
	// Mid returns an index strictly between lo and hi.
	// It is only called when lo < hi and the two are not adjacent.
	Mid(lo, hi T) T
}

// Bisect finds the adjacent pair (lo', hi') inside [lo, hi] with pred(lo') false
// and pred(hi') true.
//
// Parameters:
//   - space: Index domain operations
//   - lo: Lower bound, pred(lo) must be false
//   - hi: Upper bound, pred(hi) must be true
//   - pred: Monotonic predicate
//
// Returns:
//   - T: Largest index with a false predicate
//   - T: Smallest index with a true predicate (lo' + 1)
//   - error: ErrInvalidBracket if lo >= hi or the predicate does not hold at the bounds
func Bisect[T any](space Space[T], lo, hi T, pred func(T) bool) (T, T, error) {
	var zero T

	if !space.Less(lo, hi) {
		return zero, zero, fmt.Errorf("%w: low bound is not below high bound", errs.ErrInvalidBracket)
	}
	if pred(lo) {
		return zero, zero, fmt.Errorf("%w: predicate is true at low bound", errs.ErrInvalidBracket)
	}
	if !pred(hi) {
		return zero, zero, fmt.Errorf("%w: predicate is false at high bound", errs.ErrInvalidBracket)
	}

	for !space.Adjacent(lo, hi) {
		mid := space.Mid(lo, hi)
		if pred(mid) {
			hi = mid
		} else {
			lo = mid
		}
	}

	return lo, hi, nil
}

// Int is shorthand for Bisect over plain ints.
func Int(lo, hi int, pred func(int) bool) (int, int, error) {
	return Bisect[int](Integers[int]{}, lo, hi, pred)
}

// Integers is the Space of a built-in integer type.
type Integers[T constraints.Integer] struct{}

var _ Space[int] = Integers[int]{}

// Less implements Space.
func (Integers[T]) Less(a, b T) bool {
	return a < b
}

// Adjacent implements Space.
func (Integers[T]) Adjacent(lo, hi T) bool {
	return lo+1 == hi
}

// Mid implements Space. It computes floor((lo+hi)/2) from the shared and the
// differing bits, so neither the sum nor hi-lo is formed and nothing overflows
// for any lo <= hi of T.
func (Integers[T]) Mid(lo, hi T) T {
	return (lo & hi) + (lo^hi)>>1
}

// BigInts is the Space of arbitrary-precision integers.
//
// Mid allocates a fresh value, so indices returned by Bisect never alias the
// caller's bounds once the search has moved.
type BigInts struct{}

var _ Space[*big.Int] = BigInts{}

var bigOne = big.NewInt(1)

// Less implements Space.
func (BigInts) Less(a, b *big.Int) bool {
	return a.Cmp(b) < 0
}

// Adjacent implements Space.
func (BigInts) Adjacent(lo, hi *big.Int) bool {
	next := new(big.Int).Add(lo, bigOne)
	return next.Cmp(hi) == 0
}

// Mid implements Space using floor division, so negative bounds are handled.
func (BigInts) Mid(lo, hi *big.Int) *big.Int {
	mid := new(big.Int).Sub(hi, lo)
	mid.Rsh(mid, 1)

	return mid.Add(mid, lo)
}
