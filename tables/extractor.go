package tables

import (
	"log/slog"
	"math"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/AdriaVH/makeCalendar/model"
)

// Tuning holds the geometric tolerances used to assemble text fragments
// into a cell grid. All values are in PDF points.
type Tuning struct {
	// JoinTolerance is the maximum horizontal gap between consecutive glyph
	// runs merged into the same word.
	JoinTolerance float64

	// SnapTolerance is the maximum vertical distance between baselines for
	// text to be snapped into the same row.
	SnapTolerance float64

	// ColumnTolerance is the maximum horizontal distance between left edges
	// for text to be treated as belonging to the same column.
	ColumnTolerance float64
}

// DefaultTuning returns the tuning used for the standard roster layout.
func DefaultTuning() Tuning {
	return Tuning{
		JoinTolerance:   3.0,
		SnapTolerance:   3.0,
		ColumnTolerance: 6.0,
	}
}

// Extract crops the given page to region and assembles the text found there
// into a cell grid. It returns nil when the region holds no table-like text.
// It is a pure function of (page content, region, tuning) and never panics:
// internal failures degrade to a nil result so the caller can proceed to the
// next region.
func Extract(doc *model.Document, pageNumber int, region model.BBox, tuning Tuning, logger *slog.Logger) (table *model.Table) {
	defer func() {
		if r := recover(); r != nil {
			logger.Warn("table extraction failed", "page", pageNumber, "panic", r)
			table = nil
		}
	}()

	page := doc.GetPage(pageNumber)
	if page == nil {
		logger.Warn("region refers to missing page", "page", pageNumber)
		return nil
	}

	frags := page.FragmentsInRegion(region)
	if len(frags) == 0 {
		logger.Debug("no text in region", "page", pageNumber)
		return nil
	}

	rows := snapRows(frags, tuning.SnapTolerance)
	words := joinWords(rows, tuning.JoinTolerance)
	cols := columnCenters(words, tuning.ColumnTolerance)
	if len(words) == 0 || len(cols) == 0 {
		return nil
	}

	table = model.NewTable(len(words), len(cols))
	for r, rowWords := range words {
		for _, w := range rowWords {
			c := nearestIndex(cols, w.BBox.Left())
			cell := table.GetCell(r, c)
			if cell.Text != "" {
				cell.Text += " "
			}
			cell.Text += w.Text
			if cell.BBox.IsEmpty() {
				cell.BBox = w.BBox
			} else {
				cell.BBox = cell.BBox.Union(w.BBox)
			}
			table.BBox = table.BBox.Union(w.BBox)
		}
	}

	for i := range table.Rows {
		for j := range table.Rows[i] {
			table.Rows[i][j].Text = normalizeText(table.Rows[i][j].Text)
		}
	}

	if table.IsEmpty() {
		return nil
	}
	return table
}

// snapRows clusters fragments into rows by baseline Y, top row first.
func snapRows(frags []model.TextFragment, tolerance float64) [][]model.TextFragment {
	sorted := make([]model.TextFragment, len(frags))
	copy(sorted, frags)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].BBox.Bottom() > sorted[j].BBox.Bottom()
	})

	var rows [][]model.TextFragment
	rowY := math.Inf(1)
	for _, frag := range sorted {
		y := frag.BBox.Bottom()
		if rowY-y > tolerance {
			rows = append(rows, nil)
			rowY = y
		}
		rows[len(rows)-1] = append(rows[len(rows)-1], frag)
	}

	for _, row := range rows {
		sort.Slice(row, func(i, j int) bool {
			return row[i].BBox.Left() < row[j].BBox.Left()
		})
	}
	return rows
}

// joinWords merges consecutive fragments on each row whose horizontal gap is
// within the join tolerance, producing one fragment per visual word or cell
// value.
func joinWords(rows [][]model.TextFragment, tolerance float64) [][]model.TextFragment {
	result := make([][]model.TextFragment, len(rows))
	for r, row := range rows {
		var words []model.TextFragment
		for _, frag := range row {
			if len(words) > 0 {
				last := &words[len(words)-1]
				if frag.BBox.Left()-last.BBox.Right() <= tolerance {
					last.Text += frag.Text
					last.BBox = last.BBox.Union(frag.BBox)
					continue
				}
			}
			words = append(words, frag)
		}
		result[r] = words
	}
	return result
}

// columnCenters clusters the left edges of all words into column positions,
// averaging values that fall within the tolerance of the cluster center.
func columnCenters(rows [][]model.TextFragment, tolerance float64) []float64 {
	var xs []float64
	for _, row := range rows {
		for _, w := range row {
			xs = append(xs, w.BBox.Left())
		}
	}
	if len(xs) == 0 {
		return nil
	}
	sort.Float64s(xs)

	clustered := []float64{xs[0]}
	count := 1.0
	for _, x := range xs[1:] {
		last := len(clustered) - 1
		if x-clustered[last] > tolerance {
			clustered = append(clustered, x)
			count = 1
		} else {
			clustered[last] = (clustered[last]*count + x) / (count + 1)
			count++
		}
	}
	return clustered
}

// nearestIndex returns the index of the cluster center closest to v.
func nearestIndex(centers []float64, v float64) int {
	best := 0
	bestDist := math.Abs(centers[0] - v)
	for i, c := range centers[1:] {
		if d := math.Abs(c - v); d < bestDist {
			best = i + 1
			bestDist = d
		}
	}
	return best
}

var reSpace = regexp.MustCompile(`\s+`)

// normalizeText NFKC-normalizes extracted text and collapses runs of
// whitespace to a single space.
func normalizeText(text string) string {
	text = norm.NFKC.String(text)
	text = reSpace.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
