// Package alphabet maps text symbols to the dense indices used by the codec and
// counts their frequencies.
package alphabet

import (
	"fmt"
	"strings"

	"github.com/arloliu/arith/errs"
)

// MaxLatinSize is the number of lower-case latin letters.
const MaxLatinSize = 26

// Alphabet is an ordered set of symbols. Symbol i has index i.
type Alphabet struct {
	symbols []rune
	index   map[rune]int
}

// New creates an alphabet from symbols in index order.
//
// Returns:
//   - *Alphabet: The alphabet
//   - error: ErrInvalidAlphabetSize if symbols is empty, ErrDuplicateSymbol on repeats
func New(symbols []rune) (*Alphabet, error) {
	if len(symbols) == 0 {
		return nil, fmt.Errorf("%w: empty", errs.ErrInvalidAlphabetSize)
	}

	a := &Alphabet{
		symbols: make([]rune, len(symbols)),
		index:   make(map[rune]int, len(symbols)),
	}
	copy(a.symbols, symbols)

	for i, r := range symbols {
		if _, dup := a.index[r]; dup {
			return nil, fmt.Errorf("%w: %q", errs.ErrDuplicateSymbol, r)
		}
		a.index[r] = i
	}

	return a, nil
}

// Latin returns the alphabet of the first n lower-case letters: 'a' is 0,
// 'b' is 1 and so on.
func Latin(n int) (*Alphabet, error) {
	if n < 1 || n > MaxLatinSize {
		return nil, fmt.Errorf("%w: %d, want 1..%d", errs.ErrInvalidAlphabetSize, n, MaxLatinSize)
	}

	symbols := make([]rune, n)
	for i := range symbols {
		symbols[i] = 'a' + rune(i)
	}

	return New(symbols)
}

// Size returns the number of symbols.
func (a *Alphabet) Size() int {
	return len(a.symbols)
}

// Symbol returns the symbol at index i.
func (a *Alphabet) Symbol(i int) (rune, error) {
	if i < 0 || i >= len(a.symbols) {
		return 0, fmt.Errorf("%w: index %d, size %d", errs.ErrSymbolOutOfRange, i, len(a.symbols))
	}

	return a.symbols[i], nil
}

// Index returns the index of symbol r.
func (a *Alphabet) Index(r rune) (int, error) {
	i, ok := a.index[r]
	if !ok {
		return 0, fmt.Errorf("%w: %q", errs.ErrUnknownSymbol, r)
	}

	return i, nil
}

// Indices converts text into symbol indices.
func (a *Alphabet) Indices(text string) ([]int, error) {
	out := make([]int, 0, len(text))
	for _, r := range text {
		i, err := a.Index(r)
		if err != nil {
			return nil, err
		}
		out = append(out, i)
	}

	return out, nil
}

// Text converts symbol indices back into text.
func (a *Alphabet) Text(indices []int) (string, error) {
	var sb strings.Builder
	sb.Grow(len(indices))
	for _, i := range indices {
		r, err := a.Symbol(i)
		if err != nil {
			return "", err
		}
		sb.WriteRune(r)
	}

	return sb.String(), nil
}

// Frequencies counts how often each symbol occurs in text. The result has one
// entry per alphabet symbol, in index order, including zero counts.
func (a *Alphabet) Frequencies(text string) ([]int, error) {
	freqs := make([]int, len(a.symbols))
	for _, r := range text {
		i, err := a.Index(r)
		if err != nil {
			return nil, err
		}
		freqs[i]++
	}

	return freqs, nil
}
