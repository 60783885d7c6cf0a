package format

type (
	CompressionType uint8
	SelectStrategy  uint8
)

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.

	SelectLinear SelectStrategy = 0x1 // SelectLinear scans every sub-interval in order.
	SelectBisect SelectStrategy = 0x2 // SelectBisect binary-searches the ordered sub-interval bounds.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

func (s SelectStrategy) String() string {
	switch s {
	case SelectLinear:
		return "Linear"
	case SelectBisect:
		return "Bisect"
	default:
		return "Unknown"
	}
}

// ParseCompression maps a lower-case name ("none", "zstd", "s2", "lz4") to its
// CompressionType. The second result is false for unknown names.
func ParseCompression(name string) (CompressionType, bool) {
	switch name {
	case "none":
		return CompressionNone, true
	case "zstd":
		return CompressionZstd, true
	case "s2":
		return CompressionS2, true
	case "lz4":
		return CompressionLZ4, true
	default:
		return 0, false
	}
}
