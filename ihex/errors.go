package ihex

import (
	"errors"
	"fmt"
)

// ErrMalformedRecord is matched by every record parse failure.
var ErrMalformedRecord = errors.New("malformed record")

// MalformedRecordError describes why a line could not be decoded.
type MalformedRecordError struct {
	// Line is the 1-based line number, or 0 when parsing a single record
	Line int

	// Reason describes the failure
	Reason string
}

func (e *MalformedRecordError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: malformed record: %s", e.Line, e.Reason)
	}
	return fmt.Sprintf("malformed record: %s", e.Reason)
}

// Is lets errors.Is match ErrMalformedRecord.
func (e *MalformedRecordError) Is(target error) bool {
	return target == ErrMalformedRecord
}

func malformed(format string, args ...interface{}) error {
	return &MalformedRecordError{Reason: fmt.Sprintf(format, args...)}
}
