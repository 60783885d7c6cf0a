package frame

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/arloliu/arith/errs"
	"github.com/arloliu/arith/format"
	"github.com/arloliu/arith/internal/hash"
	"github.com/stretchr/testify/require"
)

func abacaba() *Frame {
	return &Frame{
		Frequencies:  []uint64{4, 2, 1},
		TargetLength: 7,
		Bits:         "0110100101",
	}
}

func TestMarshal_Layout(t *testing.T) {
	data, err := Marshal(abacaba())
	require.NoError(t, err)
	require.Len(t, data, HeaderSize+3+2)

	header, err := ParseHeader(data)
	require.NoError(t, err)
	require.Equal(t, uint32(3), header.AlphabetSize)
	require.Equal(t, uint64(7), header.TargetLength)
	require.Equal(t, uint32(10), header.BitLength)
	require.Equal(t, uint32(3), header.TableSize)
	require.Equal(t, format.CompressionNone, header.Flag.Compression())

	payload := data[HeaderSize:]
	require.Equal(t, []byte{0x04, 0x02, 0x01}, payload[:3])
	// 0110100101 packed MSB-first and zero padded.
	require.Equal(t, []byte{0x69, 0x40}, payload[3:])

	require.Equal(t, hash.ChecksumParts(data[:checksumOffset], payload), header.Checksum)
}

func TestRoundTrip(t *testing.T) {
	compressions := []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}

	wide := make([]uint64, 1000)
	wide[0] = 1
	wide[999] = 1 << 50

	frames := map[string]*Frame{
		"abacaba":        abacaba(),
		"single bit":     {Frequencies: []uint64{0, 3}, TargetLength: 3, Bits: "0"},
		"byte aligned":   {Frequencies: []uint64{1, 1}, TargetLength: 8, Bits: "10110011"},
		"wide alphabet":  {Frequencies: wide, TargetLength: 12, Bits: strings.Repeat("1", 333)},
		"length unequal": {Frequencies: []uint64{3, 1, 2}, TargetLength: 11, Bits: "1101"},
	}

	for _, c := range compressions {
		for _, opt := range []Option{WithLittleEndian(), WithBigEndian(), WithNativeEndian()} {
			for name, f := range frames {
				t.Run(c.String()+"/"+name, func(t *testing.T) {
					data, err := Marshal(f, WithTableCompression(c), opt)
					require.NoError(t, err)

					header, err := ParseHeader(data)
					require.NoError(t, err)
					require.Equal(t, c, header.Flag.Compression())

					got, err := Unmarshal(data)
					require.NoError(t, err)
					require.Equal(t, f, got)
				})
			}
		}
	}
}

func TestRoundTrip_RandomBits(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 50; i++ {
		var sb strings.Builder
		for j, n := 0, 1+rng.Intn(200); j < n; j++ {
			sb.WriteByte('0' + byte(rng.Intn(2)))
		}

		f := &Frame{Frequencies: []uint64{uint64(rng.Intn(9)), 1}, TargetLength: uint64(rng.Intn(100)), Bits: sb.String()} //nolint:gosec
		data, err := Marshal(f)
		require.NoError(t, err)

		got, err := Unmarshal(data)
		require.NoError(t, err)
		require.Equal(t, f, got)
	}
}

func TestMarshal_BigEndian(t *testing.T) {
	data, err := Marshal(abacaba(), WithBigEndian())
	require.NoError(t, err)
	require.Equal(t, []byte{0x00, 0x00, 0x00, 0x03}, data[4:8])

	header, err := ParseHeader(data)
	require.NoError(t, err)
	require.True(t, header.Flag.IsBigEndian())
}

func TestMarshal_Errors(t *testing.T) {
	t.Run("Nil frame", func(t *testing.T) {
		_, err := Marshal(nil)
		require.ErrorIs(t, err, errs.ErrEmptyFrequencyTable)
	})

	t.Run("Empty table", func(t *testing.T) {
		_, err := Marshal(&Frame{Bits: "0"})
		require.ErrorIs(t, err, errs.ErrEmptyFrequencyTable)
	})

	t.Run("Empty bits", func(t *testing.T) {
		_, err := Marshal(&Frame{Frequencies: []uint64{1}})
		require.ErrorIs(t, err, errs.ErrInvalidBitstring)
	})

	t.Run("Invalid bit character", func(t *testing.T) {
		_, err := Marshal(&Frame{Frequencies: []uint64{1}, Bits: "0120"})
		require.ErrorIs(t, err, errs.ErrInvalidBitstring)
	})

	t.Run("Invalid compression option", func(t *testing.T) {
		_, err := Marshal(abacaba(), WithTableCompression(format.CompressionType(42)))
		require.ErrorIs(t, err, errs.ErrInvalidCompression)
	})
}

func TestUnmarshal_Errors(t *testing.T) {
	valid, err := Marshal(abacaba())
	require.NoError(t, err)

	clone := func() []byte {
		return append([]byte(nil), valid...)
	}

	t.Run("Short header", func(t *testing.T) {
		_, err := Unmarshal(valid[:10])
		require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
	})

	t.Run("Truncated payload", func(t *testing.T) {
		_, err := Unmarshal(valid[:len(valid)-1])
		require.ErrorIs(t, err, errs.ErrTruncatedFrame)
	})

	t.Run("Trailing data", func(t *testing.T) {
		_, err := Unmarshal(append(clone(), 0))
		require.ErrorIs(t, err, errs.ErrTrailingData)
	})

	t.Run("Corrupted payload", func(t *testing.T) {
		data := clone()
		data[HeaderSize+1] ^= 0x01
		_, err := Unmarshal(data)
		require.ErrorIs(t, err, errs.ErrChecksumMismatch)
	})

	t.Run("Corrupted target length", func(t *testing.T) {
		data := clone()
		data[8] = 8
		_, err := Unmarshal(data)
		require.ErrorIs(t, err, errs.ErrChecksumMismatch)
	})

	t.Run("Unknown compression", func(t *testing.T) {
		data := clone()
		data[2] = 0x7F
		_, err := Unmarshal(data)
		require.ErrorIs(t, err, errs.ErrInvalidCompression)
	})

	t.Run("Wrong magic", func(t *testing.T) {
		data := clone()
		data[0], data[1] = 0x10, 0xEA
		_, err := Unmarshal(data)
		require.ErrorIs(t, err, errs.ErrInvalidHeaderFlags)
	})
}

func TestUnmarshal_InconsistentTable(t *testing.T) {
	data, err := Marshal(abacaba())
	require.NoError(t, err)

	// The table claims more symbols than it holds.
	resealHeader(t, data, func(h *Header) { h.AlphabetSize = 4 })
	_, err = Unmarshal(data)
	require.ErrorIs(t, err, errs.ErrTruncatedFrame)

	// And fewer symbols than it holds.
	resealHeader(t, data, func(h *Header) { h.AlphabetSize = 2 })
	_, err = Unmarshal(data)
	require.ErrorIs(t, err, errs.ErrTrailingData)
}

// resealHeader applies edit to the header of data and recomputes the checksum,
// so only the edited fields can make Unmarshal fail.
func resealHeader(t *testing.T, data []byte, edit func(*Header)) {
	t.Helper()

	header, err := ParseHeader(data)
	require.NoError(t, err)
	edit(&header)
	copy(data, header.Bytes())

	header.Checksum = hash.ChecksumParts(data[:checksumOffset], data[HeaderSize:])
	copy(data, header.Bytes())
}

func TestUnmarshal_TableSizeLimit(t *testing.T) {
	// 100000 mostly absent symbols serialize to a table that compresses to a
	// few bytes; claiming a single symbol caps the table at 10 bytes.
	freqs := make([]uint64, 100000)
	freqs[len(freqs)-1] = 1

	compressions := []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}

	for _, c := range compressions {
		t.Run(c.String(), func(t *testing.T) {
			data, err := Marshal(&Frame{Frequencies: freqs, TargetLength: 1, Bits: "1"}, WithTableCompression(c))
			require.NoError(t, err)

			got, err := Unmarshal(data)
			require.NoError(t, err)
			require.Len(t, got.Frequencies, len(freqs))

			resealHeader(t, data, func(h *Header) { h.AlphabetSize = 1 })

			_, err = Unmarshal(data)
			require.ErrorIs(t, err, errs.ErrDecompressedSize)
		})
	}
}

var errWriteFailed = errors.New("write failed")

// failingWriter rejects every write, as both io.Writer and io.ByteWriter.
type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errWriteFailed }

func (failingWriter) WriteByte(byte) error { return errWriteFailed }

func TestPackBits_WriteError(t *testing.T) {
	t.Run("Full byte", func(t *testing.T) {
		err := packBits(failingWriter{}, "0110100101")
		require.ErrorIs(t, err, errWriteFailed)
	})

	t.Run("Padded flush", func(t *testing.T) {
		err := packBits(failingWriter{}, "011")
		require.ErrorIs(t, err, errWriteFailed)
	})

	t.Run("Invalid character wins over writer", func(t *testing.T) {
		err := packBits(failingWriter{}, "2")
		require.ErrorIs(t, err, errs.ErrInvalidBitstring)
	})
}

func BenchmarkMarshal(b *testing.B) {
	f := &Frame{Frequencies: make([]uint64, 26), TargetLength: 1000, Bits: strings.Repeat("01101", 800)}
	f.Frequencies[0] = 1000

	for _, c := range []format.CompressionType{format.CompressionNone, format.CompressionZstd} {
		b.Run(c.String(), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = Marshal(f, WithTableCompression(c))
			}
		})
	}
}

func BenchmarkUnmarshal(b *testing.B) {
	f := &Frame{Frequencies: make([]uint64, 26), TargetLength: 1000, Bits: strings.Repeat("01101", 800)}
	f.Frequencies[0] = 1000

	data, err := Marshal(f)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Unmarshal(data)
	}
}
