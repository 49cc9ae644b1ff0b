package flash

import (
	"fmt"

	"github.com/stagelight/go-dmxboot/ihex"
)

// Image is the assembled flash content: PageCount pages indexed by page
// number. An Image is read-only once Assemble returns it.
type Image struct {
	geometry Geometry
	pages    []Page

	// written marks every flash byte a record wrote, for statistics
	written []bool
}

// Assemble folds records into a page image.
//
// Only data records are folded; other record types are ignored since flat
// 16-bit addressing is assumed. A record may cross page boundaries, in which
// case its bytes are split over consecutive pages.
//
// Returns a *PageOverflowError when a byte lands past the last page and a
// *ProtectedRegionError when a byte lands below g.ProgramStartPage.
func Assemble(records []*ihex.Record, g Geometry) (*Image, error) {
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("invalid geometry: %w", err)
	}

	img := &Image{
		geometry: g,
		pages:    make([]Page, g.PageCount),
		written:  make([]bool, g.Size()),
	}
	for n := range img.pages {
		img.pages[n] = NewPage(n, g)
	}

	for i, rec := range records {
		if !rec.IsData() {
			continue
		}
		if err := img.fold(i, rec); err != nil {
			return nil, err
		}
	}

	return img, nil
}

// fold copies one record into its pages, one page-sized chunk at a time.
func (img *Image) fold(index int, rec *ihex.Record) error {
	g := img.geometry
	addr := int(rec.Address)
	data := rec.Data

	for len(data) > 0 {
		page := g.PageNumber(addr)
		offset := g.PageOffset(addr)

		if page > g.PageCount-1 {
			return &PageOverflowError{
				Record:  index,
				Address: addr,
				Page:    page,
				MaxPage: g.PageCount - 1,
			}
		}
		if page < g.ProgramStartPage {
			return &ProtectedRegionError{
				Record:           index,
				Address:          addr,
				Page:             page,
				ProgramStartPage: g.ProgramStartPage,
			}
		}

		n := copy(img.pages[page].Data[offset:], data)
		img.pages[page].Used = true
		for j := 0; j < n; j++ {
			img.written[addr+j] = true
		}

		data = data[n:]
		addr += n
	}

	return nil
}

// Geometry returns the geometry the image was assembled with.
func (img *Image) Geometry() Geometry {
	return img.geometry
}

// Page returns a copy of page n.
func (img *Image) Page(n int) Page {
	return img.pages[n].clone()
}

// Pages returns a copy of every page in ascending page order.
func (img *Image) Pages() []Page {
	pages := make([]Page, len(img.pages))
	for i, p := range img.pages {
		pages[i] = p.clone()
	}
	return pages
}

// UsedRange returns the lowest and highest used page numbers.
// ok is false when no page is used.
func (img *Image) UsedRange() (minPage, maxPage int, ok bool) {
	minPage, maxPage = -1, -1
	for _, p := range img.pages {
		if !p.Used {
			continue
		}
		if minPage < 0 {
			minPage = int(p.Number)
		}
		maxPage = int(p.Number)
	}
	return minPage, maxPage, minPage >= 0
}
