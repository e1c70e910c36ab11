package model

import "strings"

// Table represents a cell grid recovered from one region of a page.
// Row and column counts are not guaranteed uniform across rows.
type Table struct {
	Rows [][]Cell
	BBox BBox
}

// Cell represents a single table cell. An empty Text means the cell was
// empty or not covered by any text.
type Cell struct {
	Text string
	BBox BBox
}

// NewTable creates a table with the given dimensions, all cells empty.
func NewTable(rows, cols int) *Table {
	table := &Table{
		Rows: make([][]Cell, rows),
	}
	for i := 0; i < rows; i++ {
		table.Rows[i] = make([]Cell, cols)
	}
	return table
}

// RowCount returns the number of rows.
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// ColCount returns the number of columns in the widest row.
func (t *Table) ColCount() int {
	max := 0
	for _, row := range t.Rows {
		if len(row) > max {
			max = len(row)
		}
	}
	return max
}

// GetCell returns the cell at the given row and column (0-indexed), or nil
// if out of bounds.
func (t *Table) GetCell(row, col int) *Cell {
	if row < 0 || row >= len(t.Rows) {
		return nil
	}
	if col < 0 || col >= len(t.Rows[row]) {
		return nil
	}
	return &t.Rows[row][col]
}

// CellText returns the trimmed text of the cell at (row, col), or "" when the
// cell is out of bounds or empty. Short rows read as empty cells, which keeps
// callers free of per-row bounds checks.
func (t *Table) CellText(row, col int) string {
	cell := t.GetCell(row, col)
	if cell == nil {
		return ""
	}
	return strings.TrimSpace(cell.Text)
}

// IsEmpty reports whether the table contains no non-empty cell.
func (t *Table) IsEmpty() bool {
	for _, row := range t.Rows {
		for _, cell := range row {
			if strings.TrimSpace(cell.Text) != "" {
				return false
			}
		}
	}
	return true
}

// GetText returns the table as tab-separated rows, one line per row.
// Intended for diagnostics.
func (t *Table) GetText() string {
	var sb strings.Builder
	for _, row := range t.Rows {
		for j, cell := range row {
			sb.WriteString(cell.Text)
			if j < len(row)-1 {
				sb.WriteString("\t")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
