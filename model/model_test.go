package model

import (
	"testing"
)

// ============================================================================
// BBox Tests
// ============================================================================

func TestNewBBoxFromCorners(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 float64
		want           BBox
	}{
		{"normal", 10, 20, 50, 70, BBox{10, 20, 40, 50}},
		{"reversed", 50, 70, 10, 20, BBox{10, 20, 40, 50}},
		{"degenerate", 10, 10, 10, 10, BBox{10, 10, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewBBoxFromCorners(tt.x0, tt.y0, tt.x1, tt.y1)
			if got != tt.want {
				t.Errorf("NewBBoxFromCorners() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBBoxEdges(t *testing.T) {
	b := NewBBox(10, 20, 100, 50)
	if b.Left() != 10 {
		t.Errorf("Left() = %v, want 10", b.Left())
	}
	if b.Right() != 110 {
		t.Errorf("Right() = %v, want 110", b.Right())
	}
	if b.Bottom() != 20 {
		t.Errorf("Bottom() = %v, want 20", b.Bottom())
	}
	if b.Top() != 70 {
		t.Errorf("Top() = %v, want 70", b.Top())
	}

	c := b.Center()
	if c.X != 60 || c.Y != 45 {
		t.Errorf("Center() = %+v, want {60, 45}", c)
	}
}

func TestBBoxContains(t *testing.T) {
	b := NewBBox(0, 0, 100, 100)

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"center", Point{50, 50}, true},
		{"on edge", Point{0, 50}, true},
		{"corner", Point{100, 100}, true},
		{"outside left", Point{-1, 50}, false},
		{"outside top", Point{50, 101}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%+v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestBBoxIntersects(t *testing.T) {
	b := NewBBox(0, 0, 100, 100)

	tests := []struct {
		name  string
		other BBox
		want  bool
	}{
		{"overlapping", NewBBox(50, 50, 100, 100), true},
		{"contained", NewBBox(25, 25, 50, 50), true},
		{"touching edge", NewBBox(100, 0, 50, 100), true},
		{"disjoint", NewBBox(200, 200, 10, 10), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects(%+v) = %v, want %v", tt.other, got, tt.want)
			}
		})
	}
}

func TestBBoxUnion(t *testing.T) {
	a := NewBBox(0, 0, 10, 10)
	b := NewBBox(20, 20, 10, 10)

	u := a.Union(b)
	want := BBox{0, 0, 30, 30}
	if u != want {
		t.Errorf("Union() = %+v, want %+v", u, want)
	}
}

// ============================================================================
// Document Tests
// ============================================================================

func TestDocumentPages(t *testing.T) {
	doc := NewDocument()
	doc.AddPage(NewPage(595, 842))
	doc.AddPage(NewPage(595, 842))

	if doc.PageCount() != 2 {
		t.Fatalf("PageCount() = %d, want 2", doc.PageCount())
	}
	if doc.GetPage(1).Number != 1 {
		t.Errorf("GetPage(1).Number = %d, want 1", doc.GetPage(1).Number)
	}
	if doc.GetPage(0) != nil {
		t.Error("GetPage(0) should be nil")
	}
	if doc.GetPage(3) != nil {
		t.Error("GetPage(3) should be nil")
	}
}

func TestFragmentsInRegion(t *testing.T) {
	page := NewPage(595, 842)
	page.AddFragment(TextFragment{Text: "in", BBox: NewBBox(10, 10, 20, 10)})
	page.AddFragment(TextFragment{Text: "out", BBox: NewBBox(400, 400, 20, 10)})
	// Straddles the region border but its center is inside.
	page.AddFragment(TextFragment{Text: "straddle", BBox: NewBBox(90, 10, 30, 10)})

	region := NewBBox(0, 0, 110, 100)
	frags := page.FragmentsInRegion(region)

	if len(frags) != 2 {
		t.Fatalf("FragmentsInRegion() returned %d fragments, want 2", len(frags))
	}
	if frags[0].Text != "in" || frags[1].Text != "straddle" {
		t.Errorf("unexpected fragments: %+v", frags)
	}
}

// ============================================================================
// Table Tests
// ============================================================================

func TestTableCellAccess(t *testing.T) {
	table := NewTable(2, 3)
	table.Rows[0][1].Text = " 08:00 "

	if table.RowCount() != 2 {
		t.Errorf("RowCount() = %d, want 2", table.RowCount())
	}
	if table.ColCount() != 3 {
		t.Errorf("ColCount() = %d, want 3", table.ColCount())
	}
	if got := table.CellText(0, 1); got != "08:00" {
		t.Errorf("CellText(0,1) = %q, want \"08:00\"", got)
	}
	if got := table.CellText(5, 5); got != "" {
		t.Errorf("CellText out of bounds = %q, want \"\"", got)
	}
	if table.GetCell(-1, 0) != nil {
		t.Error("GetCell(-1,0) should be nil")
	}
}

func TestTableRaggedRows(t *testing.T) {
	table := &Table{Rows: [][]Cell{
		{{Text: "a"}, {Text: "b"}, {Text: "c"}},
		{{Text: "d"}},
	}}

	if table.ColCount() != 3 {
		t.Errorf("ColCount() = %d, want 3", table.ColCount())
	}
	// Short rows read as empty cells.
	if got := table.CellText(1, 2); got != "" {
		t.Errorf("CellText(1,2) = %q, want \"\"", got)
	}
}

func TestTableIsEmpty(t *testing.T) {
	table := NewTable(2, 2)
	if !table.IsEmpty() {
		t.Error("new table should be empty")
	}
	table.Rows[1][1].Text = "x"
	if table.IsEmpty() {
		t.Error("table with text should not be empty")
	}
}
