package protocol

// Frame structure constants.
const (
	// Preamble marks the start of every frame (0xAA)
	Preamble = 0xAA

	// HeaderSize is PREAMBLE(1) + PAGE(1) + LEN(1)
	HeaderSize = 3

	// ChecksumSize is the size of the CRC trailer
	ChecksumSize = 2

	// MinFrameSize is the size of a frame without payload
	MinFrameSize = HeaderSize + ChecksumSize

	// MaxPayloadSize is the largest payload the length byte can describe
	MaxPayloadSize = 0xFF
)

// Byte offsets within a frame.
const (
	offsetPreamble = 0
	offsetPage     = 1
	offsetLength   = 2
	offsetPayload  = 3
)

// Serial line settings expected by the bootloader.
const (
	// DefaultBaudRate is the DMX line rate
	DefaultBaudRate = 250000

	// DataBits per character
	DataBits = 8

	// StopBits per character
	StopBits = 2
)
