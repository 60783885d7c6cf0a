// Package codec implements exact arithmetic coding over a static frequency table.
//
// The encoder narrows [0, 1) once per symbol, keeping the sub-interval of the
// symbol in a partition proportional to the frequency table, and emits the
// shortest binary fraction inside the final interval. The decoder parses that
// fraction and replays the narrowing, at each step picking the sub-interval that
// contains it.
//
// All arithmetic is exact (math/big), so encoder and decoder agree bit for bit
// and the output is the minimal-length bitstring for the sequence. There is no
// renormalisation and no streaming: each call owns its state from start to end.
//
// # Basic Usage
//
//	freqs := []int{4, 2, 1}                  // a, b, c
//	bits, err := codec.Encode(freqs, []int{0, 1, 0, 2, 0, 1, 0})
//	// bits == "0110100101"
//
//	symbols, err := codec.Decode(freqs, bits, 7)
//	// symbols == []int{0, 1, 0, 2, 0, 1, 0}
//
// # Cost Model
//
// Interval bounds grow to O(n log total) bits for n symbols, and locating the
// shortest fraction is quadratic in the output length. WithMaxSymbols and
// WithMaxBits bound the work per call.
//
// # Errors
//
// Every error is a contract violation from the errs package: malformed tables,
// symbols outside the table or with zero frequency, and bitstrings that are
// inconsistent with the table and target length. No partial results are
// returned.
package codec
