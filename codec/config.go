package codec

import (
	"fmt"

	"github.com/arloliu/arith/dyadic"
	"github.com/arloliu/arith/errs"
	"github.com/arloliu/arith/format"
	"github.com/arloliu/arith/internal/options"
)

// DefaultMaxSymbols is the default limit on the number of symbols per encode or
// decode call. Interval bounds grow by O(log total) bits per symbol, so this is
// the practical guard against unbounded precision growth.
const DefaultMaxSymbols = 1 << 20

// Config holds the settings shared by Encoder and Decoder.
type Config struct {
	maxSymbols   int
	maxBits      int
	strictLength bool
	strategy     format.SelectStrategy
}

func newConfig(opts ...Option) (*Config, error) {
	cfg := &Config{
		maxSymbols: DefaultMaxSymbols,
		maxBits:    dyadic.DefaultMaxBits,
		strategy:   format.SelectLinear,
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// MaxSymbols returns the symbol count limit, 0 when unlimited.
func (c *Config) MaxSymbols() int {
	return c.maxSymbols
}

// MaxBits returns the bit length limit used by the dyadic locator.
func (c *Config) MaxBits() int {
	return c.maxBits
}

// StrictLength reports whether encoded sequences must match the frequency total.
func (c *Config) StrictLength() bool {
	return c.strictLength
}

// Strategy returns the decoder's sub-interval selection strategy.
func (c *Config) Strategy() format.SelectStrategy {
	return c.strategy
}

// checkCount validates a symbol count against the configured limit.
func (c *Config) checkCount(n int) error {
	if c.maxSymbols > 0 && n > c.maxSymbols {
		return fmt.Errorf("%w: %d symbols, max %d", errs.ErrTooManySymbols, n, c.maxSymbols)
	}

	return nil
}

// Option is a functional option for configuring Encoder and Decoder.
type Option = options.Option[*Config]

// WithMaxSymbols limits the number of symbols per call. Zero disables the limit.
// Default is DefaultMaxSymbols.
func WithMaxSymbols(n int) Option {
	return options.New(func(cfg *Config) error {
		if n < 0 {
			return fmt.Errorf("invalid max symbols: %d", n)
		}
		cfg.maxSymbols = n

		return nil
	})
}

// WithMaxBits limits the bit length of the encoded output to 1..dyadic.MaxBitsLimit.
// Default is dyadic.DefaultMaxBits.
func WithMaxBits(n int) Option {
	return options.New(func(cfg *Config) error {
		if n <= 0 || n > dyadic.MaxBitsLimit {
			return fmt.Errorf("invalid max bits: %d, want 1..%d", n, dyadic.MaxBitsLimit)
		}
		cfg.maxBits = n

		return nil
	})
}

// WithStrictLength makes the encoder reject sequences whose length differs
// from the frequency table total. Default is false.
func WithStrictLength(strict bool) Option {
	return options.NoError(func(cfg *Config) {
		cfg.strictLength = strict
	})
}

// WithSelectStrategy sets how the decoder picks the sub-interval containing the
// target fraction. Both strategies select the same symbol.
// Default is format.SelectLinear.
func WithSelectStrategy(strategy format.SelectStrategy) Option {
	return options.New(func(cfg *Config) error {
		switch strategy {
		case format.SelectLinear, format.SelectBisect:
			cfg.strategy = strategy
			return nil
		default:
			return fmt.Errorf("invalid select strategy: %v", strategy)
		}
	})
}
