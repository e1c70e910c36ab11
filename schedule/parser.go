package schedule

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/AdriaVH/makeCalendar/model"
)

// RawShift is one (day, slot, start, end) record pulled out of a month's
// cell grid, before time validation and date construction.
type RawShift struct {
	Month time.Month
	Day   int
	Slot  int // 1 or 2
	Start string
	End   string
}

// Fixed row offsets of the column-per-day layout. Row 0 is the day axis,
// row 3 is a separator.
const (
	slot1StartRow = 1
	slot1EndRow   = 2
	slot2StartRow = 4
	slot2EndRow   = 5
)

var timeRe = regexp.MustCompile(`\d{1,2}:\d{2}`)

// ParseMonth interprets the cell grid of one month region and returns the
// raw shifts found in it. A grid with no resolvable day axis contributes
// zero shifts and a warning, never an error.
func ParseMonth(table *model.Table, month time.Month, year int, logger *slog.Logger) []RawShift {
	if table == nil || table.RowCount() == 0 {
		return nil
	}
	logger = logger.With("month", month.String())

	days := daysInMonth(month, year)

	if layout, ok := findHeaderLayout(table); ok {
		return parseRowPerDay(table, layout, month, days, logger)
	}
	return parseColumnPerDay(table, month, days, logger)
}

// daysInMonth returns the number of days in the given month, honoring the
// Gregorian leap-year rule via date normalization.
func daysInMonth(month time.Month, year int) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// headerLayout locates the explicit header row of the row-per-day
// convention and the columns labelled Entrada and Sortida.
type headerLayout struct {
	headerRow int
	dayCol    int
	startCol  int
	endCol    int
}

// headerLabels are the recognized header cell texts, compared
// case-insensitively by substring.
var headerLabels = []string{"dia", "entrada", "sortida"}

// findHeaderLayout scans the grid for a row holding the recognized header
// labels. Both the Entrada and Sortida columns must be present for the
// layout to qualify; the Dia column defaults to the leading cell.
func findHeaderLayout(table *model.Table) (headerLayout, bool) {
	for r := 0; r < table.RowCount(); r++ {
		layout := headerLayout{headerRow: r, dayCol: 0, startCol: -1, endCol: -1}
		labelled := false

		for c := 0; c < table.ColCount(); c++ {
			text := strings.ToLower(table.CellText(r, c))
			if text == "" {
				continue
			}
			for _, label := range headerLabels {
				if strings.Contains(text, label) {
					labelled = true
				}
			}
			switch {
			case strings.Contains(text, "entrada"):
				layout.startCol = c
			case strings.Contains(text, "sortida"):
				layout.endCol = c
			case strings.Contains(text, "dia"):
				layout.dayCol = c
			}
		}

		if labelled && layout.startCol >= 0 && layout.endCol >= 0 {
			return layout, true
		}
	}
	return headerLayout{}, false
}

// parseRowPerDay reads one-day-per-row records below the header row.
func parseRowPerDay(table *model.Table, layout headerLayout, month time.Month, days int, logger *slog.Logger) []RawShift {
	var shifts []RawShift

	for r := layout.headerRow + 1; r < table.RowCount(); r++ {
		dayText := table.CellText(r, layout.dayCol)
		day, err := strconv.Atoi(dayText)
		if err != nil {
			continue // month label, totals row, or noise
		}
		if day < 1 || day > days {
			logger.Warn("day number out of range", "day", day, "days_in_month", days)
			continue
		}

		shifts = append(shifts, pairShifts(
			table.CellText(r, layout.startCol),
			table.CellText(r, layout.endCol),
			month, day, 1, logger)...)
	}

	if len(shifts) == 0 {
		logger.Debug("header layout matched but no day rows parsed")
	}
	return shifts
}

// parseColumnPerDay reads the fixed-row layout where each column past the
// first data column is one calendar day.
func parseColumnPerDay(table *model.Table, month time.Month, days int, logger *slog.Logger) []RawShift {
	firstData := firstDataColumn(table)
	if firstData < 0 {
		logger.Warn("no resolvable day axis in grid")
		return nil
	}

	var shifts []RawShift
	for day := 1; day <= days; day++ {
		col := firstData + day - 1
		if col >= table.ColCount() {
			break
		}

		shifts = append(shifts, pairShifts(
			table.CellText(slot1StartRow, col),
			table.CellText(slot1EndRow, col),
			month, day, 1, logger)...)
		shifts = append(shifts, pairShifts(
			table.CellText(slot2StartRow, col),
			table.CellText(slot2EndRow, col),
			month, day, 2, logger)...)
	}
	return shifts
}

// firstDataColumn returns the leftmost column whose slot-start cell matches
// a time pattern. The day-label row and the data rows may be offset against
// each other when header cells were merged, so alignment is recovered from
// the data rows, not the labels.
func firstDataColumn(table *model.Table) int {
	for c := 0; c < table.ColCount(); c++ {
		if timeRe.MatchString(table.CellText(slot1StartRow, c)) ||
			timeRe.MatchString(table.CellText(slot2StartRow, c)) {
			return c
		}
	}
	return -1
}

// pairShifts extracts the time pairs embedded in a start/end cell pair. The
// i-th start pairs with the i-th end; unmatched leftovers are dropped with a
// diagnostic.
func pairShifts(startText, endText string, month time.Month, day, slot int, logger *slog.Logger) []RawShift {
	starts := timeRe.FindAllString(startText, -1)
	ends := timeRe.FindAllString(endText, -1)
	if len(starts) == 0 && len(ends) == 0 {
		return nil
	}

	n := len(starts)
	if len(ends) < n {
		n = len(ends)
	}
	if len(starts) != len(ends) {
		logger.Warn("unbalanced time pair dropped",
			"day", day, "slot", slot, "starts", startText, "ends", endText)
	}

	shifts := make([]RawShift, 0, n)
	for i := 0; i < n; i++ {
		shifts = append(shifts, RawShift{
			Month: month,
			Day:   day,
			Slot:  slot,
			Start: starts[i],
			End:   ends[i],
		})
	}
	return shifts
}
