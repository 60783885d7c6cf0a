package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	limit int
	name  string
	calls []string
}

var errNegative = errors.New("limit cannot be negative")

func withLimit(n int) Option[*testConfig] {
	return New(func(c *testConfig) error {
		if n < 0 {
			return errNegative
		}
		c.limit = n
		c.calls = append(c.calls, "limit")

		return nil
	})
}

func withName(name string) Option[*testConfig] {
	return NoError(func(c *testConfig) {
		c.name = name
		c.calls = append(c.calls, "name")
	})
}

func TestApply(t *testing.T) {
	t.Run("Applies options in order", func(t *testing.T) {
		cfg := &testConfig{}
		err := Apply(cfg, withName("first"), withLimit(3), withName("second"))
		require.NoError(t, err)
		require.Equal(t, 3, cfg.limit)
		require.Equal(t, "second", cfg.name)
		require.Equal(t, []string{"name", "limit", "name"}, cfg.calls)
	})

	t.Run("Stops at first error", func(t *testing.T) {
		cfg := &testConfig{}
		err := Apply(cfg, withLimit(1), withLimit(-1), withName("never"))
		require.ErrorIs(t, err, errNegative)
		require.Equal(t, 1, cfg.limit)
		require.Empty(t, cfg.name)
	})

	t.Run("No options", func(t *testing.T) {
		cfg := &testConfig{limit: 7}
		require.NoError(t, Apply[*testConfig](cfg))
		require.Equal(t, 7, cfg.limit)
	})

	t.Run("Nil option is skipped", func(t *testing.T) {
		cfg := &testConfig{}
		require.NoError(t, Apply(cfg, nil, withLimit(2)))
		require.Equal(t, 2, cfg.limit)
	})
}
