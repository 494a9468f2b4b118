package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

var errTooSmall = errors.New("window too small")

type windowConfig struct {
	window  int
	overlap bool
	calls   []string
}

func withWindow(n int) Option[*windowConfig] {
	return New(func(c *windowConfig) error {
		if n < 1 {
			return errTooSmall
		}
		c.window = n
		c.calls = append(c.calls, "window")

		return nil
	})
}

func withOverlap(enabled bool) Option[*windowConfig] {
	return NoError(func(c *windowConfig) {
		c.overlap = enabled
		c.calls = append(c.calls, "overlap")
	})
}

func TestApply(t *testing.T) {
	t.Run("applies options in order", func(t *testing.T) {
		cfg := &windowConfig{}
		err := Apply(cfg, withWindow(64), withOverlap(true), withWindow(128))
		require.NoError(t, err)
		require.Equal(t, 128, cfg.window)
		require.True(t, cfg.overlap)
		require.Equal(t, []string{"window", "overlap", "window"}, cfg.calls)
	})

	t.Run("stops at first failing option", func(t *testing.T) {
		cfg := &windowConfig{}
		err := Apply(cfg, withOverlap(true), withWindow(0), withWindow(32))
		require.ErrorIs(t, err, errTooSmall)
		require.Contains(t, err.Error(), "option 1")
		require.Equal(t, 0, cfg.window)
		require.Equal(t, []string{"overlap"}, cfg.calls)
	})

	t.Run("skips nil options", func(t *testing.T) {
		cfg := &windowConfig{}
		require.NoError(t, Apply(cfg, nil, withWindow(8)))
		require.Equal(t, 8, cfg.window)
	})

	t.Run("no options", func(t *testing.T) {
		cfg := &windowConfig{window: 3}
		require.NoError(t, Apply(cfg))
		require.Equal(t, 3, cfg.window)
	})
}
