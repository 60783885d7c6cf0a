package codec

import (
	"testing"
)

// FuzzRoundTrip checks that decode(encode(s)) == s for arbitrary byte sequences,
// using the byte counts of the input as the frequency table.
func FuzzRoundTrip(f *testing.F) {
	f.Add([]byte("abacaba"), uint8(3))
	f.Add([]byte("bbb"), uint8(2))
	f.Add([]byte("a"), uint8(1))
	f.Add([]byte("mississippi"), uint8(26))
	f.Add([]byte{0, 0, 0, 1, 255}, uint8(255))

	f.Fuzz(func(t *testing.T, data []byte, alphabet uint8) {
		if len(data) == 0 || len(data) > 64 || alphabet == 0 {
			return
		}

		freqs := make([]int, alphabet)
		symbols := make([]int, len(data))
		for i, b := range data {
			symbols[i] = int(b) % int(alphabet)
			freqs[symbols[i]]++
		}

		bits, err := Encode(freqs, symbols, WithStrictLength(true))
		if err != nil {
			t.Fatalf("encode %v: %v", symbols, err)
		}

		got, err := Decode(freqs, bits, len(symbols))
		if err != nil {
			t.Fatalf("decode %q: %v", bits, err)
		}

		for i := range symbols {
			if got[i] != symbols[i] {
				t.Fatalf("symbol %d: expected %d, got %d (bits %q)", i, symbols[i], got[i], bits)
			}
		}
	})
}
