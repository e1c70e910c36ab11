package schedule

import (
	"errors"
	"log/slog"
	"regexp"
	"strconv"
	"time"

	"github.com/AdriaVH/makeCalendar/model"
	"github.com/AdriaVH/makeCalendar/tables"
)

// ErrNoShifts reports a document from which nothing could be extracted.
var ErrNoShifts = errors.New("no shifts found in document")

var yearRe = regexp.MustCompile(`\d{4}`)

// InferYear returns the roster year: the first 4-digit number in the
// document title, or fallback when the title has none.
func InferYear(title string, fallback int) int {
	if m := yearRe.FindString(title); m != "" {
		year, _ := strconv.Atoi(m)
		return year
	}
	return fallback
}

// ParseDocument runs the full extraction pipeline over one roster document:
// every configured month region is extracted, parsed and normalized, in
// ascending page order and region declaration order within a page.
// Per-region and per-shift failures degrade to diagnostics; the error is
// non-nil only when the whole document yields nothing.
func ParseDocument(doc *model.Document, regions []Region, tuning tables.Tuning, loc *time.Location, logger *slog.Logger) ([]Shift, error) {
	year := InferYear(doc.Title, time.Now().Year())
	logger.Info("parsing roster", "title", doc.Title, "year", year, "pages", doc.PageCount())

	var shifts []Shift
	for page := 1; page <= doc.PageCount(); page++ {
		for _, region := range regions {
			if region.Page != page {
				continue
			}
			month, _ := MonthByName(region.Month) // region table is pre-validated

			table := tables.Extract(doc, region.Page, region.BBox, tuning, logger)
			if table == nil {
				logger.Debug("no table detected", "month", region.Month, "page", region.Page)
				continue
			}

			for _, raw := range ParseMonth(table, month, year, logger) {
				shift, err := Normalize(raw, year, loc)
				if err != nil {
					logger.Warn("shift dropped", "month", region.Month, "day", raw.Day, "err", err)
					continue
				}
				shifts = append(shifts, shift)
			}
		}
	}

	if len(shifts) == 0 {
		return nil, ErrNoShifts
	}
	logger.Info("roster parsed", "shifts", len(shifts))
	return shifts, nil
}
