package section

// offsets and section sizes in the container
const (
	MagicSize     = 4                          // container magic tag size in bytes
	ModeSize      = 1                          // mode marker size in bytes
	HeaderSize    = MagicSize + ModeSize       // fixed header size in bytes
	RawLengthSize = 4                          // RAW payload length prefix size in bytes
	RawOverhead   = HeaderSize + RawLengthSize // bytes a RAW container adds to its input
)
