package bootloader

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport is matched by *TransportError.
	ErrTransport = errors.New("transport error")

	// ErrEmptyImage is returned when an image has no used pages.
	ErrEmptyImage = errors.New("image contains no data")
)

// TransportError indicates that writing to the transport failed mid-upload.
// The device is left with a partial image and may not boot.
type TransportError struct {
	// Page is the page number of the frame being sent
	Page int

	// Offset is the byte position within the frame
	Offset int

	// Terminator is true when the failing frame was the terminator
	Terminator bool

	// Err is the underlying write error
	Err error
}

func (e *TransportError) Error() string {
	kind := "page"
	if e.Terminator {
		kind = "terminator"
	}
	return fmt.Sprintf("write %s frame %d at byte %d: %v", kind, e.Page, e.Offset, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match ErrTransport.
func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}
