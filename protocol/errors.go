package protocol

import (
	"errors"
	"fmt"
)

// ErrInvalidFrame is matched by every frame decoding failure.
var ErrInvalidFrame = errors.New("invalid frame")

// FrameError describes a frame that failed to decode.
type FrameError struct {
	// Reason describes what was wrong with the frame
	Reason string
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("invalid frame: %s", e.Reason)
}

// Is lets errors.Is match ErrInvalidFrame.
func (e *FrameError) Is(target error) bool {
	return target == ErrInvalidFrame
}

// ChecksumError indicates a frame whose CRC trailer does not match its content.
type ChecksumError struct {
	PageNumber byte
	Expected   uint16
	Actual     uint16
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("checksum mismatch for page %d: expected 0x%04X, got 0x%04X",
		e.PageNumber, e.Expected, e.Actual)
}

// Is lets errors.Is match ErrInvalidFrame.
func (e *ChecksumError) Is(target error) bool {
	return target == ErrInvalidFrame
}

// IsChecksumError returns true if the error is a ChecksumError.
func IsChecksumError(err error) bool {
	var ce *ChecksumError
	return errors.As(err, &ce)
}
