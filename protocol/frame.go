package protocol

import (
	"encoding/binary"
	"fmt"
)

// Frame is one page transfer: a page number and its payload.
type Frame struct {
	// PageNumber is the destination flash page
	PageNumber byte

	// Payload is the page content; empty for the terminator
	Payload []byte
}

// NewFrame builds a page frame. The payload is copied.
//
// Frame structure:
//
//	[0xAA][PAGE][LEN][PAYLOAD...][CRC_L][CRC_H]
func NewFrame(pageNumber byte, payload []byte) (*Frame, error) {
	if len(payload) > MaxPayloadSize {
		return nil, fmt.Errorf("payload length %d exceeds maximum %d bytes", len(payload), MaxPayloadSize)
	}

	f := &Frame{
		PageNumber: pageNumber,
		Payload:    make([]byte, len(payload)),
	}
	copy(f.Payload, payload)

	return f, nil
}

// NewTerminator builds the zero-length frame that ends a transfer.
// pageNumber must be one past the last page sent.
func NewTerminator(pageNumber byte) *Frame {
	return &Frame{PageNumber: pageNumber}
}

// IsTerminator reports whether the frame carries no payload.
func (f *Frame) IsTerminator() bool {
	return len(f.Payload) == 0
}

// Checksum returns the CRC-16/XMODEM of the frame fields.
func (f *Frame) Checksum() uint16 {
	return Checksum(f.PageNumber, byte(len(f.Payload)), f.Payload)
}

// Size returns the encoded size of the frame in bytes.
func (f *Frame) Size() int {
	return MinFrameSize + len(f.Payload)
}

// MarshalBinary encodes the frame into its wire form.
func (f *Frame) MarshalBinary() ([]byte, error) {
	if len(f.Payload) > MaxPayloadSize {
		return nil, fmt.Errorf("payload length %d exceeds maximum %d bytes", len(f.Payload), MaxPayloadSize)
	}

	frame := make([]byte, 0, f.Size())
	frame = append(frame, Preamble, f.PageNumber, byte(len(f.Payload)))
	frame = append(frame, f.Payload...)
	frame = binary.LittleEndian.AppendUint16(frame, f.Checksum())

	return frame, nil
}

// UnmarshalFrame decodes one complete frame. Trailing bytes are rejected.
func UnmarshalFrame(data []byte) (*Frame, error) {
	if len(data) < MinFrameSize {
		return nil, &FrameError{Reason: fmt.Sprintf("too short: got %d bytes, minimum is %d", len(data), MinFrameSize)}
	}
	if data[offsetPreamble] != Preamble {
		return nil, &FrameError{Reason: fmt.Sprintf("bad preamble 0x%02X, expected 0x%02X", data[offsetPreamble], Preamble)}
	}

	length := int(data[offsetLength])
	if len(data) != MinFrameSize+length {
		return nil, &FrameError{Reason: fmt.Sprintf("length mismatch: declared %d payload bytes, frame is %d bytes", length, len(data))}
	}

	f := &Frame{
		PageNumber: data[offsetPage],
		Payload:    make([]byte, length),
	}
	copy(f.Payload, data[offsetPayload:offsetPayload+length])

	actual := binary.LittleEndian.Uint16(data[offsetPayload+length:])
	if expected := f.Checksum(); actual != expected {
		return nil, &ChecksumError{
			PageNumber: f.PageNumber,
			Expected:   expected,
			Actual:     actual,
		}
	}

	return f, nil
}
