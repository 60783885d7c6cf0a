package frame

import (
	"fmt"

	"github.com/arloliu/arith/endian"
	"github.com/arloliu/arith/errs"
	"github.com/arloliu/arith/format"
	"github.com/arloliu/arith/internal/options"
)

// Config holds the frame encoding settings.
type Config struct {
	compression format.CompressionType
	bigEndian   bool
}

// Option configures frame encoding.
type Option = options.Option[*Config]

func newConfig(opts ...Option) (*Config, error) {
	cfg := &Config{compression: format.CompressionNone}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithTableCompression sets the compression applied to the frequency table.
//
// Default: format.CompressionNone.
func WithTableCompression(compression format.CompressionType) Option {
	return options.New(func(cfg *Config) error {
		if _, ok := validTableCompressions[uint8(compression)]; !ok {
			return fmt.Errorf("%w: %s", errs.ErrInvalidCompression, compression)
		}
		cfg.compression = compression

		return nil
	})
}

// WithLittleEndian writes header fields in little-endian byte order. This is the default.
func WithLittleEndian() Option {
	return options.NoError(func(cfg *Config) {
		cfg.bigEndian = false
	})
}

// WithBigEndian writes header fields in big-endian byte order.
func WithBigEndian() Option {
	return options.NoError(func(cfg *Config) {
		cfg.bigEndian = true
	})
}

// WithNativeEndian writes header fields in the byte order of the host.
func WithNativeEndian() Option {
	return options.NoError(func(cfg *Config) {
		cfg.bigEndian = endian.IsNativeBigEndian()
	})
}
