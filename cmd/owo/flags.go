package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/arloliu/owo/container"
	"github.com/arloliu/owo/format"
)

// encoderFlags binds the encoder options to a flag set.
type encoderFlags struct {
	window     int
	maxMatch   int
	minMatch   int
	minInput   int
	maxRatio   float64
	version    int
	finder     string
	transforms string
	overlap    bool
}

func addEncoderFlags(fs *flag.FlagSet) *encoderFlags {
	def := container.DefaultConfig()
	f := &encoderFlags{}
	fs.IntVar(&f.window, "window", def.WindowSize, "match window in bytes")
	fs.IntVar(&f.maxMatch, "max-match", def.MaxMatchLength, "longest back-reference")
	fs.IntVar(&f.minMatch, "min-match", def.MinMatchLength, "shortest back-reference")
	fs.IntVar(&f.minInput, "min-input", def.MinInputSize, "inputs shorter than this are stored raw")
	fs.Float64Var(&f.maxRatio, "max-ratio", def.MaxRatio, "store raw unless the best candidate is at most this fraction of the input")
	fs.IntVar(&f.version, "format", int(def.Version), "container format version (1 or 2)")
	fs.StringVar(&f.finder, "finder", "hashchain", "match finder: hashchain or exhaustive")
	fs.StringVar(&f.transforms, "transforms", "", "comma separated transform stages to try: mtf, rle")
	fs.BoolVar(&f.overlap, "overlap", def.AllowOverlap, "allow matches to overlap their own output")

	return f
}

func (f *encoderFlags) options() ([]container.EncoderOption, error) {
	finder, err := parseMatchFinder(f.finder)
	if err != nil {
		return nil, err
	}
	stages, err := parseTransforms(f.transforms)
	if err != nil {
		return nil, err
	}

	opts := []container.EncoderOption{
		container.WithWindowSize(f.window),
		container.WithMaxMatchLength(f.maxMatch),
		container.WithMinMatchLength(f.minMatch),
		container.WithMinInputSize(f.minInput),
		container.WithMaxRatio(f.maxRatio),
		container.WithFormatVersion(format.Version(f.version)), //nolint:gosec
		container.WithMatchFinder(finder),
		container.WithOverlappingMatches(f.overlap),
	}
	if len(stages) > 0 {
		opts = append(opts, container.WithTransforms(stages...))
	}

	return opts, nil
}

func parseMatchFinder(s string) (format.MatchFinderType, error) {
	switch strings.ToLower(s) {
	case "hashchain", "hash-chain":
		return format.MatchFinderHashChain, nil
	case "exhaustive":
		return format.MatchFinderExhaustive, nil
	default:
		return 0, fmt.Errorf("unknown match finder %q", s)
	}
}

func parseTransforms(s string) ([]format.TransformType, error) {
	if s == "" {
		return nil, nil
	}

	var stages []format.TransformType
	for _, name := range strings.Split(s, ",") {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "mtf", "movetofront":
			stages = append(stages, format.TransformMoveToFront)
		case "rle", "runlength":
			stages = append(stages, format.TransformRunLength)
		default:
			return nil, fmt.Errorf("unknown transform %q", name)
		}
	}

	return stages, nil
}
