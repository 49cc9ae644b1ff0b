package flash

// Page is one flash page. Data always holds exactly Geometry.PageBytes bytes.
type Page struct {
	// Number is the page index; every byte in Data lives at
	// Number*PageBytes + offset
	Number uint16

	// Data is the page content, zero where no record wrote a byte
	Data []byte

	// Used is true when at least one byte was written by a record
	Used bool
}

// NewPage returns a zeroed, unused page sized for g.
func NewPage(number int, g Geometry) Page {
	return Page{
		Number: uint16(number),
		Data:   make([]byte, g.PageBytes),
	}
}

func (p Page) clone() Page {
	data := make([]byte, len(p.Data))
	copy(data, p.Data)
	p.Data = data
	return p
}
