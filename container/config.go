package container

import (
	"fmt"
	"slices"

	"github.com/arloliu/owo/errs"
	"github.com/arloliu/owo/format"
	"github.com/arloliu/owo/internal/options"
	"github.com/arloliu/owo/lz77"
)

const (
	// DefaultMinInputSize is the input length below which the encoder always stores RAW.
	DefaultMinInputSize = 256
	// DefaultMaxRatio is the largest compressed/raw ratio worth keeping over RAW.
	DefaultMaxRatio = 0.95
)

// Config holds the encoder configuration.
type Config struct {
	// WindowSize is the matcher's history horizon in symbols.
	WindowSize int
	// MaxMatchLength is the longest back-reference.
	MaxMatchLength int
	// MinMatchLength is the shortest match emitted as a back-reference.
	MinMatchLength int
	// AllowOverlap lets back-references run into the symbols they produce.
	AllowOverlap bool
	// MinInputSize is the input length below which RAW is always chosen. "OWO2" only.
	MinInputSize int
	// MaxRatio is the largest candidate/input size ratio accepted before
	// falling back to RAW. "OWO2" only.
	MaxRatio float64
	// Version is the container format written.
	Version format.Version
	// MatchFinder selects the match search strategy.
	MatchFinder format.MatchFinderType
	// Transforms, when set, adds a TRANSFORM_ENTROPY candidate built from
	// the input run through these stages in order. "OWO2" only.
	Transforms []format.TransformType
}

// DefaultConfig returns the default encoder configuration.
func DefaultConfig() Config {
	m := lz77.DefaultConfig()

	return Config{
		WindowSize:     m.WindowSize,
		MaxMatchLength: m.MaxMatchLength,
		MinMatchLength: m.MinMatchLength,
		MinInputSize:   DefaultMinInputSize,
		MaxRatio:       DefaultMaxRatio,
		Version:        format.VersionV2,
		MatchFinder:    format.MatchFinderHashChain,
	}
}

// MatcherConfig returns the lz77 part of the configuration.
func (c Config) MatcherConfig() lz77.Config {
	return lz77.Config{
		WindowSize:     c.WindowSize,
		MaxMatchLength: c.MaxMatchLength,
		MinMatchLength: c.MinMatchLength,
		AllowOverlap:   c.AllowOverlap,
	}
}

// Validate returns ErrInvalidConfig if the configuration cannot be used.
func (c Config) Validate() error {
	if err := c.MatcherConfig().Validate(); err != nil {
		return err
	}
	if c.MinInputSize < 0 {
		return fmt.Errorf("%w: negative min input size %d", errs.ErrInvalidConfig, c.MinInputSize)
	}
	if !(c.MaxRatio > 0 && c.MaxRatio <= 1) {
		return fmt.Errorf("%w: max ratio %v not in (0, 1]", errs.ErrInvalidConfig, c.MaxRatio)
	}

	switch c.Version {
	case format.VersionV2:
	case format.VersionV1:
		if len(c.Transforms) > 0 {
			return fmt.Errorf("%w: %s containers cannot carry transforms", errs.ErrInvalidConfig, c.Version)
		}
	default:
		return fmt.Errorf("%w: unknown format version %d", errs.ErrInvalidConfig, c.Version)
	}

	switch c.MatchFinder {
	case format.MatchFinderHashChain, format.MatchFinderExhaustive:
	default:
		return fmt.Errorf("%w: unknown match finder %d", errs.ErrInvalidConfig, c.MatchFinder)
	}

	for _, t := range c.Transforms {
		if t != format.TransformMoveToFront && t != format.TransformRunLength {
			return fmt.Errorf("%w: transform %d", errs.ErrInvalidConfig, t)
		}
	}

	return nil
}

// EncoderOption is a functional option for configuring an Encoder.
type EncoderOption = options.Option[*Config]

// WithWindowSize sets the matcher window in symbols. Default is 8192.
func WithWindowSize(size int) EncoderOption {
	return options.NoError(func(c *Config) {
		c.WindowSize = size
	})
}

// WithMaxMatchLength sets the longest back-reference. Default is 258.
func WithMaxMatchLength(n int) EncoderOption {
	return options.NoError(func(c *Config) {
		c.MaxMatchLength = n
	})
}

// WithMinMatchLength sets the shortest back-reference. Default is 3.
func WithMinMatchLength(n int) EncoderOption {
	return options.NoError(func(c *Config) {
		c.MinMatchLength = n
	})
}

// WithOverlappingMatches lets back-references overlap the symbols they
// produce, so a run is encoded as one literal and one back-reference.
// Default is false.
func WithOverlappingMatches(enabled bool) EncoderOption {
	return options.NoError(func(c *Config) {
		c.AllowOverlap = enabled
	})
}

// WithMinInputSize sets the input length below which RAW is always chosen.
// Default is 256.
func WithMinInputSize(n int) EncoderOption {
	return options.NoError(func(c *Config) {
		c.MinInputSize = n
	})
}

// WithMaxRatio sets the candidate/input size ratio above which RAW is
// chosen. It must be in (0, 1]. Default is 0.95.
func WithMaxRatio(ratio float64) EncoderOption {
	return options.NoError(func(c *Config) {
		c.MaxRatio = ratio
	})
}

// WithFormatVersion selects the container format written. Decoding accepts
// both versions regardless. Default is format.VersionV2.
func WithFormatVersion(v format.Version) EncoderOption {
	return options.NoError(func(c *Config) {
		c.Version = v
	})
}

// WithMatchFinder selects the match search strategy. Both strategies
// produce identical output. Default is format.MatchFinderHashChain.
func WithMatchFinder(t format.MatchFinderType) EncoderOption {
	return options.NoError(func(c *Config) {
		c.MatchFinder = t
	})
}

// WithTransforms adds a TRANSFORM_ENTROPY candidate using the given stages.
// Calling it with no stages removes the candidate.
func WithTransforms(types ...format.TransformType) EncoderOption {
	return options.New(func(c *Config) error {
		if len(types) > 255 {
			return fmt.Errorf("%w: %d transform stages", errs.ErrInvalidConfig, len(types))
		}
		c.Transforms = slices.Clone(types)

		return nil
	})
}
