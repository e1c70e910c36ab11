package model

// Document represents a loaded roster PDF with positioned text per page.
type Document struct {
	// Title is the document title from the PDF metadata, if any. The roster
	// year is inferred from it.
	Title string

	Pages []*Page
}

// NewDocument creates a new empty document.
func NewDocument() *Document {
	return &Document{
		Pages: make([]*Page, 0),
	}
}

// AddPage adds a page to the document and assigns its 1-indexed number.
func (d *Document) AddPage(page *Page) {
	page.Number = len(d.Pages) + 1
	d.Pages = append(d.Pages, page)
}

// GetPage returns a page by number (1-indexed), or nil if out of range.
func (d *Document) GetPage(number int) *Page {
	if number < 1 || number > len(d.Pages) {
		return nil
	}
	return d.Pages[number-1]
}

// PageCount returns the total number of pages.
func (d *Document) PageCount() int {
	return len(d.Pages)
}

// Page represents a single page of a roster document.
type Page struct {
	Number    int     // 1-indexed page number
	Width     float64 // Page width in points
	Height    float64 // Page height in points
	Fragments []TextFragment
}

// NewPage creates a new page with given dimensions.
func NewPage(width, height float64) *Page {
	return &Page{
		Width:     width,
		Height:    height,
		Fragments: make([]TextFragment, 0),
	}
}

// AddFragment appends a text fragment to the page.
func (p *Page) AddFragment(frag TextFragment) {
	p.Fragments = append(p.Fragments, frag)
}

// FragmentsInRegion returns the fragments whose center lies inside the given
// bounding box. Fragments straddling the region border belong to the region
// that holds their center.
func (p *Page) FragmentsInRegion(bbox BBox) []TextFragment {
	var result []TextFragment
	for _, frag := range p.Fragments {
		if bbox.Contains(frag.BBox.Center()) {
			result = append(result, frag)
		}
	}
	return result
}

// TextFragment is a run of text with its position on the page.
type TextFragment struct {
	Text     string
	BBox     BBox
	FontSize float64
}
