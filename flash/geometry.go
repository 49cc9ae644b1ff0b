package flash

import (
	"fmt"
	"math/bits"
)

// Default geometry of the ATtiny4313: 4 KiB of flash in 64-byte pages,
// the first 1 KiB reserved for the bootloader.
const (
	DefaultPageCount        = 64
	DefaultPageBytes        = 64
	DefaultProgramStartPage = 16

	// MaxPageBytes is the largest page size whose length fits the single
	// length byte of a frame.
	MaxPageBytes = 128

	// MaxPageCount keeps MAX_PAGE+1 (the terminator page number) within a byte.
	MaxPageCount = 128
)

// Geometry describes the page layout of the target flash.
type Geometry struct {
	// PageCount is the number of pages in flash (power of two)
	PageCount int

	// PageBytes is the size of one page in bytes (power of two)
	PageBytes int

	// ProgramStartPage is the first writable page. Pages below it hold the
	// bootloader and are never written.
	ProgramStartPage int
}

// DefaultGeometry returns the geometry of the reference device.
func DefaultGeometry() Geometry {
	return Geometry{
		PageCount:        DefaultPageCount,
		PageBytes:        DefaultPageBytes,
		ProgramStartPage: DefaultProgramStartPage,
	}
}

// Validate checks that the geometry can be addressed by the wire protocol.
func (g Geometry) Validate() error {
	if !isPowerOfTwo(g.PageBytes) || g.PageBytes > MaxPageBytes {
		return fmt.Errorf("page size %d must be a power of two no larger than %d", g.PageBytes, MaxPageBytes)
	}
	if !isPowerOfTwo(g.PageCount) || g.PageCount > MaxPageCount {
		return fmt.Errorf("page count %d must be a power of two no larger than %d", g.PageCount, MaxPageCount)
	}
	if g.ProgramStartPage < 0 || g.ProgramStartPage >= g.PageCount {
		return fmt.Errorf("program start page %d outside 0-%d", g.ProgramStartPage, g.PageCount-1)
	}
	return nil
}

// Size returns the total flash size in bytes.
func (g Geometry) Size() int {
	return g.PageCount * g.PageBytes
}

// ProgramBytes returns the number of bytes available to the application.
func (g Geometry) ProgramBytes() int {
	return (g.PageCount - g.ProgramStartPage) * g.PageBytes
}

// PageNumber returns the page holding addr. The result is not bounded by
// PageCount; callers check it against the geometry.
func (g Geometry) PageNumber(addr int) int {
	return addr >> g.pageShift()
}

// PageOffset returns the position of addr within its page.
func (g Geometry) PageOffset(addr int) int {
	return addr & (g.PageBytes - 1)
}

// PageAddress returns the address of the first byte of page n.
func (g Geometry) PageAddress(n int) int {
	return n << g.pageShift()
}

func (g Geometry) pageShift() int {
	return bits.TrailingZeros(uint(g.PageBytes))
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
