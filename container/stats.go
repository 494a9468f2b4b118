package container

import "github.com/arloliu/owo/format"

// Stats describes one Encode call.
type Stats struct {
	Version format.Version
	// Mode is the mode of the container produced.
	Mode format.Mode
	// InputSize is the input length in bytes.
	InputSize int
	// OutputSize is the container length in bytes.
	OutputSize int
	// RawSize is the length a RAW container of the input would have.
	RawSize int

	// Candidate container sizes. Zero when the candidate was not built.
	EntropyOnlySize int
	DictionarySize  int
	TransformSize   int

	// Tokens is the number of LZ77 tokens of the dictionary candidate.
	Tokens int
}

// Ratio returns OutputSize/InputSize, or 0 for an empty input.
func (s Stats) Ratio() float64 {
	if s.InputSize == 0 {
		return 0
	}

	return float64(s.OutputSize) / float64(s.InputSize)
}

func (s *Stats) setCandidateSize(mode format.Mode, size int) {
	switch mode { //nolint:exhaustive
	case format.ModeEntropyOnly:
		s.EntropyOnlySize = size
	case format.ModeDictionaryEntropy:
		s.DictionarySize = size
	case format.ModeTransformEntropy:
		s.TransformSize = size
	}
}
