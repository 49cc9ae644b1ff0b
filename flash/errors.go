package flash

import (
	"errors"
	"fmt"
)

var (
	// ErrPageOverflow is matched by *PageOverflowError.
	ErrPageOverflow = errors.New("page overflow")

	// ErrProtectedRegion is matched by *ProtectedRegionError.
	ErrProtectedRegion = errors.New("protected region violation")
)

// PageOverflowError indicates that a record addresses memory past the last flash page.
type PageOverflowError struct {
	// Record is the index of the offending record in the input
	Record int

	Address int
	Page    int
	MaxPage int
}

func (e *PageOverflowError) Error() string {
	return fmt.Sprintf("record %d: address 0x%04X maps to page %d, last page is %d",
		e.Record, e.Address, e.Page, e.MaxPage)
}

// Is lets errors.Is match ErrPageOverflow.
func (e *PageOverflowError) Is(target error) bool {
	return target == ErrPageOverflow
}

// ProtectedRegionError indicates that a record writes into the bootloader pages.
type ProtectedRegionError struct {
	// Record is the index of the offending record in the input
	Record int

	Address          int
	Page             int
	ProgramStartPage int
}

func (e *ProtectedRegionError) Error() string {
	return fmt.Sprintf("record %d: address 0x%04X is in protected page %d (program starts at page %d)",
		e.Record, e.Address, e.Page, e.ProgramStartPage)
}

// Is lets errors.Is match ErrProtectedRegion.
func (e *ProtectedRegionError) Is(target error) bool {
	return target == ErrProtectedRegion
}
