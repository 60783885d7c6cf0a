// Package dyadic finds the shortest binary fraction inside a rational interval.
//
// A dyadic fraction is p / 2^q. Its q-bit binary expansion, most significant
// bit first, is the compressed form of an arithmetic-coded sequence: the
// shorter the bitstring, the better the compression.
//
// # Search Strategy
//
// Locate runs two nested monotonic searches from the search package:
//
//   - Outer, over q: "some p puts p/2^q inside the interval" stays true once it
//     becomes true, because finer resolution only adds candidate points. The
//     upper bound is found by doubling a seed, then Bisect finds the minimal q.
//   - Inner, over p for a fixed q: "p/2^q >= low" is monotonic in p. Bisect over
//     (-1, 2^q) yields the smallest such p, accepted only if p/2^q < high.
//
// The outer search costs O(log q) evaluations and each inner search O(q)
// big-integer comparisons of O(q)-bit numbers, so Locate is quadratic in the
// output length. This is the accepted cost of the exact formulation.
package dyadic

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/arloliu/arith/errs"
	"github.com/arloliu/arith/interval"
	"github.com/arloliu/arith/search"
)

// DefaultMaxBits is the default upper limit for the bit length searched by Locate.
const DefaultMaxBits = 1 << 24

// MaxBitsLimit is the largest bit length Locate will ever search. Larger
// limits are clamped to it, which keeps the doubling of the outer bound far
// from int overflow.
const MaxBitsLimit = 1 << 30

// seedBits is the first bit length tried while establishing the outer bound.
const seedBits = 3

// Fraction is the dyadic fraction P / 2^Q.
type Fraction struct {
	// P is the numerator, 0 <= P < 2^Q.
	P *big.Int
	// Q is the bit length.
	Q int
}

// Rat returns the fraction as an exact rational.
func (f Fraction) Rat() *big.Rat {
	return new(big.Rat).SetFrac(f.P, pow2(f.Q))
}

// BitLen returns the length of the string produced by Bits.
func (f Fraction) BitLen() int {
	if f.Q == 0 {
		return 1
	}

	return f.Q
}

// Bits renders P as a binary string zero-padded to exactly Q digits.
//
// A zero-bit fraction (Q == 0, so P == 0) renders as "0": a bitstring is never
// empty, and "0" parses back to the same value.
func (f Fraction) Bits() string {
	digits := f.P.Text(2)
	if len(digits) >= f.Q {
		return digits
	}

	var sb strings.Builder
	sb.Grow(f.Q)
	for i := 0; i < f.Q-len(digits); i++ {
		sb.WriteByte('0')
	}
	sb.WriteString(digits)

	return sb.String()
}

// String implements fmt.Stringer.
func (f Fraction) String() string {
	return fmt.Sprintf("%s/2^%d", f.P.String(), f.Q)
}

// Parse converts a bitstring into the fraction p / 2^len(bits).
//
// Returns:
//   - Fraction: Parsed fraction
//   - error: ErrInvalidBitstring if bits is empty or contains anything but '0' and '1'
func Parse(bits string) (Fraction, error) {
	if bits == "" {
		return Fraction{}, fmt.Errorf("%w: empty", errs.ErrInvalidBitstring)
	}

	p := new(big.Int)
	for i := 0; i < len(bits); i++ {
		switch bits[i] {
		case '0':
		case '1':
			p.SetBit(p, len(bits)-1-i, 1)
		default:
			return Fraction{}, fmt.Errorf("%w: unexpected %q at offset %d", errs.ErrInvalidBitstring, bits[i], i)
		}
	}

	return Fraction{P: p, Q: len(bits)}, nil
}

// Shortest returns the bitstring of the shortest dyadic fraction inside iv.
func Shortest(iv interval.Interval, maxBits int) (string, error) {
	f, err := Locate(iv, maxBits)
	if err != nil {
		return "", err
	}

	return f.Bits(), nil
}

// Locate finds the dyadic fraction p / 2^q inside iv with minimal q. Among the
// candidates for that q the smallest p is returned.
//
// Parameters:
//   - iv: Target interval, contained in [0, 1)
//   - maxBits: Upper limit for q; non-positive means DefaultMaxBits, values above
//     MaxBitsLimit are clamped to it
//
// Returns:
//   - Fraction: The located fraction
//   - error: ErrOutsideUnitInterval, or ErrNoDyadicFraction when q would exceed maxBits
func Locate(iv interval.Interval, maxBits int) (Fraction, error) {
	if maxBits <= 0 {
		maxBits = DefaultMaxBits
	}
	maxBits = min(maxBits, MaxBitsLimit)

	low, high := iv.Low(), iv.High()
	if low.Sign() < 0 || high.Cmp(big.NewRat(1, 1)) > 0 {
		return Fraction{}, fmt.Errorf("%w: %s", errs.ErrOutsideUnitInterval, iv)
	}

	l := &locator{
		lowNum:  low.Num(),
		lowDen:  low.Denom(),
		highNum: high.Num(),
		highDen: high.Denom(),
		found:   make(map[int]*big.Int),
	}

	bound := min(seedBits, maxBits)
	for !l.ok(bound) {
		if bound >= maxBits {
			return Fraction{}, fmt.Errorf("%w: more than %d bits needed for %s", errs.ErrNoDyadicFraction, maxBits, iv)
		}
		bound = min(bound*2, maxBits)
	}

	_, q, err := search.Int(-1, bound, l.ok)
	if err != nil {
		return Fraction{}, fmt.Errorf("%w: %w", errs.ErrNoDyadicFraction, err)
	}

	p := l.candidate(q)
	if p == nil {
		return Fraction{}, fmt.Errorf("%w: %d bits accepted without numerator", errs.ErrNoDyadicFraction, q)
	}

	return Fraction{P: p, Q: q}, nil
}

// locator holds the interval bounds as integer pairs so membership of p/2^q is
// tested by cross-multiplication instead of building rationals.
type locator struct {
	lowNum, lowDen   *big.Int
	highNum, highDen *big.Int
	// found memoizes candidate per q; a nil entry means no p exists.
	found map[int]*big.Int
}

// ok reports whether some p puts p/2^q inside the interval.
func (l *locator) ok(q int) bool {
	if q < 0 {
		return false
	}

	return l.candidate(q) != nil
}

// candidate returns the smallest p with p/2^q >= low when it also satisfies
// p/2^q < high, or nil.
func (l *locator) candidate(q int) *big.Int {
	if p, seen := l.found[q]; seen {
		return p
	}

	scale := pow2(q)
	lowScaled := new(big.Int).Mul(l.lowNum, scale)
	prod := new(big.Int)

	// p/2^q >= lowNum/lowDen  <=>  p*lowDen >= lowNum*2^q
	bigEnough := func(p *big.Int) bool {
		return prod.Mul(p, l.lowDen).Cmp(lowScaled) >= 0
	}

	var p *big.Int
	if _, hi, err := search.Bisect[*big.Int](search.BigInts{}, big.NewInt(-1), scale, bigEnough); err == nil {
		// p/2^q < highNum/highDen  <=>  p*highDen < highNum*2^q
		highScaled := new(big.Int).Mul(l.highNum, scale)
		if prod.Mul(hi, l.highDen).Cmp(highScaled) < 0 {
			p = hi
		}
	}
	l.found[q] = p

	return p
}

func pow2(q int) *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), uint(q)) //nolint:gosec
}
