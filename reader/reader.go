package reader

import (
	"bytes"
	"fmt"
	"os"

	"github.com/ledongthuc/pdf"

	"github.com/AdriaVH/makeCalendar/model"
)

// Read parses a roster PDF from raw bytes into a model.Document with one
// model.Page per PDF page, each holding positioned text fragments.
func Read(data []byte) (*model.Document, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("opening pdf: %w", err)
	}

	doc := model.NewDocument()
	doc.Title = docTitle(r)

	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)

		width, height := pageSize(p)
		page := model.NewPage(width, height)

		for _, t := range pageTexts(p) {
			if t.S == "" {
				continue
			}
			height := t.FontSize
			if height <= 0 {
				height = 1
			}
			page.AddFragment(model.TextFragment{
				Text:     t.S,
				BBox:     model.NewBBox(t.X, t.Y, t.W, height),
				FontSize: t.FontSize,
			})
		}

		doc.AddPage(page)
	}

	return doc, nil
}

// ReadFile parses the roster PDF at the given path.
func ReadFile(name string) (*model.Document, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return Read(data)
}

// docTitle returns the document title from the Info dictionary, or "".
func docTitle(r *pdf.Reader) (title string) {
	defer func() {
		if recover() != nil {
			title = ""
		}
	}()

	info := r.Trailer().Key("Info")
	if info.Kind() != pdf.Dict {
		return ""
	}
	return info.Key("Title").Text()
}

// pageTexts returns the text runs of a page. Malformed content streams make
// the underlying library panic; those pages read as empty.
func pageTexts(p pdf.Page) (texts []pdf.Text) {
	defer func() {
		if recover() != nil {
			texts = nil
		}
	}()

	if p.V.Kind() != pdf.Dict {
		return nil
	}
	return p.Content().Text
}

// pageSize resolves the page MediaBox, walking up the page tree for
// inherited values. Falls back to A4 portrait when absent.
func pageSize(p pdf.Page) (width, height float64) {
	defer func() {
		if recover() != nil {
			width, height = 595, 842
		}
	}()

	v := p.V
	for depth := 0; v.Kind() == pdf.Dict && depth < 16; depth++ {
		box := v.Key("MediaBox")
		if box.Kind() == pdf.Array && box.Len() == 4 {
			x0 := box.Index(0).Float64()
			y0 := box.Index(1).Float64()
			x1 := box.Index(2).Float64()
			y1 := box.Index(3).Float64()
			if x1 > x0 && y1 > y0 {
				return x1 - x0, y1 - y0
			}
		}
		v = v.Key("Parent")
	}
	return 595, 842
}
