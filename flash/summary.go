package flash

// Summary holds statistics about an image for display.
type Summary struct {
	// MinAddress and MaxAddress bound the written bytes (inclusive)
	MinAddress int
	MaxAddress int

	// Span is MaxAddress - MinAddress + 1
	Span int

	// BytesWritten counts distinct bytes written by records
	BytesWritten int

	// Available is the size of the writable program region
	Available int

	// PercentUsed is Span relative to Available, 0 to 100
	PercentUsed float64

	MinPage   int
	MaxPage   int
	UsedPages int

	// Empty is true when no record wrote any byte
	Empty bool
}

// Summary computes image statistics.
func (img *Image) Summary() Summary {
	s := Summary{
		Available:  img.geometry.ProgramBytes(),
		MinAddress: -1,
		MaxAddress: -1,
	}

	for addr, w := range img.written {
		if !w {
			continue
		}
		if s.MinAddress < 0 {
			s.MinAddress = addr
		}
		s.MaxAddress = addr
		s.BytesWritten++
	}

	for _, p := range img.pages {
		if p.Used {
			s.UsedPages++
		}
	}

	minPage, maxPage, ok := img.UsedRange()
	if !ok {
		return Summary{Available: s.Available, Empty: true}
	}

	s.MinPage = minPage
	s.MaxPage = maxPage
	s.Span = s.MaxAddress - s.MinAddress + 1
	if s.Available > 0 {
		s.PercentUsed = float64(s.Span) / float64(s.Available) * 100
	}

	return s
}
