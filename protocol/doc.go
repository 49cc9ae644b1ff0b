// Package protocol implements the frame format of the DMX light bootloader.
//
// # Protocol Overview
//
// The host sends one frame per flash page and never reads anything back:
//
//	Frame: [PREAMBLE][PAGE][LEN][PAYLOAD...][CRC_L][CRC_H]
//
// Where:
//   - PREAMBLE = 0xAA
//   - PAGE = flash page number (1 byte)
//   - LEN = payload length (1 byte); the payload is omitted when LEN is 0
//   - CRC = CRC-16/XMODEM over PAGE, LEN and PAYLOAD (little-endian)
//
// The preamble is not covered by the CRC. A frame with LEN 0 whose page
// number is one past the last transmitted page ends the transfer.
//
// # Building Frames
//
//	f, err := protocol.NewFrame(17, page.Data)
//	wire, err := f.MarshalBinary()
//
//	end := protocol.NewTerminator(18)
//
// # Decoding
//
// UnmarshalFrame validates and decodes a frame. The uploader never needs it;
// it exists for device simulators and tests.
package protocol
