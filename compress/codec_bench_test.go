package compress

import (
	"fmt"
	"testing"
)

func benchmarkTable(size int) []byte {
	counts := make([]uint64, size)
	for i := range counts {
		if i%5 == 0 {
			counts[i] = uint64(i % 300) //nolint:gosec
		}
	}

	return frequencyTable(counts)
}

func BenchmarkAllCodecs_Compress(b *testing.B) {
	for _, size := range []int{26, 1024, 65536} {
		data := benchmarkTable(size)
		for name, codec := range getAllCodecs() {
			b.Run(fmt.Sprintf("%s/%d_symbols", name, size), func(b *testing.B) {
				b.SetBytes(int64(len(data)))
				b.ReportAllocs()
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					_, _ = codec.Compress(data)
				}
			})
		}
	}
}

func BenchmarkAllCodecs_Decompress(b *testing.B) {
	for _, size := range []int{26, 1024, 65536} {
		data := benchmarkTable(size)
		for name, codec := range getAllCodecs() {
			compressed, err := codec.Compress(data)
			if err != nil {
				b.Fatal(err)
			}

			b.Run(fmt.Sprintf("%s/%d_symbols", name, size), func(b *testing.B) {
				b.SetBytes(int64(len(data)))
				b.ReportAllocs()
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					_, _ = codec.Decompress(compressed)
				}
			})
		}
	}
}
