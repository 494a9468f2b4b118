package format

type (
	Mode            uint8
	Version         uint8
	CompressionType uint8
	MatchFinderType uint8
	TransformType   uint8
)

const (
	ModeRaw               Mode = 0x0 // ModeRaw stores the input bytes verbatim.
	ModeDictionaryEntropy Mode = 0x1 // ModeDictionaryEntropy stores Huffman-coded LZ77 token fields.
	ModeEntropyOnly       Mode = 0x2 // ModeEntropyOnly stores Huffman-coded input symbols.
	ModeTransformEntropy  Mode = 0x3 // ModeTransformEntropy stores Huffman-coded symbols after a transform chain.

	VersionV1 Version = 0x1 // VersionV1 is the fixed-width "OWO1" layout.
	VersionV2 Version = 0x2 // VersionV2 is the varint "OWO2" layout.

	CompressionNone   CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd   CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2     CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4    CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
	CompressionOWO    CompressionType = 0x5 // CompressionOWO represents the owo adaptive container.
	CompressionBrotli CompressionType = 0x6 // CompressionBrotli represents Brotli compression.
	CompressionSnappy CompressionType = 0x7 // CompressionSnappy represents Snappy compression.

	MatchFinderHashChain  MatchFinderType = 0x1 // MatchFinderHashChain walks hashed prefix chains.
	MatchFinderExhaustive MatchFinderType = 0x2 // MatchFinderExhaustive scans every window position.

	TransformMoveToFront TransformType = 0x1 // TransformMoveToFront is the move-to-front transform.
	TransformRunLength   TransformType = 0x2 // TransformRunLength is run-length encoding.
	TransformChain       TransformType = 0xF // TransformChain is a composition of stages; it is never stored.
)

// Magic returns the 4-byte container tag of the version, or nil for unknown versions.
func (v Version) Magic() []byte {
	switch v {
	case VersionV1:
		return []byte("OWO1")
	case VersionV2:
		return []byte("OWO2")
	default:
		return nil
	}
}

func (v Version) String() string {
	switch v {
	case VersionV1:
		return "OWO1"
	case VersionV2:
		return "OWO2"
	default:
		return "Unknown"
	}
}

// IsValid reports whether the mode is one of the known mode markers.
func (m Mode) IsValid() bool {
	return m <= ModeTransformEntropy
}

func (m Mode) String() string {
	switch m {
	case ModeRaw:
		return "Raw"
	case ModeDictionaryEntropy:
		return "DictionaryEntropy"
	case ModeEntropyOnly:
		return "EntropyOnly"
	case ModeTransformEntropy:
		return "TransformEntropy"
	default:
		return "Unknown"
	}
}

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
	case CompressionOWO:
		return "OWO"
	case CompressionBrotli:
		return "Brotli"
	case CompressionSnappy:
		return "Snappy"
	default:
		return "Unknown"
	}
}

func (f MatchFinderType) String() string {
	switch f {
	case MatchFinderHashChain:
		return "HashChain"
	case MatchFinderExhaustive:
		return "Exhaustive"
	default:
		return "Unknown"
	}
}

func (t TransformType) String() string {
	switch t {
	case TransformMoveToFront:
		return "MoveToFront"
	case TransformRunLength:
		return "RunLength"
	case TransformChain:
		return "Chain"
	default:
		return "Unknown"
	}
}
