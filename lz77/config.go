package lz77

import (
	"fmt"

	"github.com/arloliu/owo/errs"
)

const (
	// DefaultWindowSize is the default history horizon, in symbols.
	DefaultWindowSize = 8192
	// DefaultMaxMatchLength is the default lookahead length.
	DefaultMaxMatchLength = 258
	// DefaultMinMatchLength is the shortest match emitted as a back-reference.
	// A back-reference carries three integers, a literal carries one symbol.
	DefaultMinMatchLength = 3

	// MaxWindowSize bounds WindowSize and every decoded offset.
	MaxWindowSize = 1 << 24
	// MaxMatchLength bounds MaxMatchLength and every decoded length.
	MaxMatchLength = 1 << 16
)

// Config holds the tunables of the matcher.
type Config struct {
	WindowSize     int
	MaxMatchLength int
	MinMatchLength int
	// AllowOverlap lets a match read symbols it is itself producing, as in
	// classic LZ77. When false a match must come entirely from input that
	// precedes the current position.
	AllowOverlap bool
}

// DefaultConfig returns the default matcher configuration.
func DefaultConfig() Config {
	return Config{
		WindowSize:     DefaultWindowSize,
		MaxMatchLength: DefaultMaxMatchLength,
		MinMatchLength: DefaultMinMatchLength,
	}
}

// Validate returns ErrInvalidConfig if a field is out of range.
func (c Config) Validate() error {
	if c.WindowSize < 1 || c.WindowSize > MaxWindowSize {
		return fmt.Errorf("%w: window size %d not in [1, %d]", errs.ErrInvalidConfig, c.WindowSize, MaxWindowSize)
	}
	if c.MinMatchLength < 1 {
		return fmt.Errorf("%w: min match length %d must be positive", errs.ErrInvalidConfig, c.MinMatchLength)
	}
	if c.MaxMatchLength < c.MinMatchLength || c.MaxMatchLength > MaxMatchLength {
		return fmt.Errorf("%w: max match length %d not in [%d, %d]",
			errs.ErrInvalidConfig, c.MaxMatchLength, c.MinMatchLength, MaxMatchLength)
	}

	return nil
}
