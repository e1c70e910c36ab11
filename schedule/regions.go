package schedule

import (
	"fmt"
	"strings"
	"time"

	"github.com/AdriaVH/makeCalendar/model"
)

// Region associates one month's sub-table with a rectangle on a page.
type Region struct {
	Month string // month label as printed in the roster (Catalan, upper case)
	Page  int    // 1-indexed page number
	BBox  model.BBox
}

// monthsByName maps the roster's Catalan month labels to calendar months.
var monthsByName = map[string]time.Month{
	"GENER":    time.January,
	"FEBRER":   time.February,
	"MARÇ":     time.March,
	"ABRIL":    time.April,
	"MAIG":     time.May,
	"JUNY":     time.June,
	"JULIOL":   time.July,
	"AGOST":    time.August,
	"SETEMBRE": time.September,
	"OCTUBRE":  time.October,
	"NOVEMBRE": time.November,
	"DESEMBRE": time.December,
}

// MonthByName resolves a roster month label, case-insensitively.
func MonthByName(name string) (time.Month, bool) {
	m, ok := monthsByName[strings.ToUpper(strings.TrimSpace(name))]
	return m, ok
}

// defaultRegions is the compiled-in region table for the standard roster:
// six A4 landscape pages, two month sub-tables per page stacked vertically.
// Regions on the same page never overlap by construction.
var defaultRegions = mustRegions([]Region{
	{Month: "GENER", Page: 1, BBox: model.NewBBoxFromCorners(15, 300, 827, 580)},
	{Month: "FEBRER", Page: 1, BBox: model.NewBBoxFromCorners(15, 10, 827, 290)},
	{Month: "MARÇ", Page: 2, BBox: model.NewBBoxFromCorners(15, 300, 827, 580)},
	{Month: "ABRIL", Page: 2, BBox: model.NewBBoxFromCorners(15, 10, 827, 290)},
	{Month: "MAIG", Page: 3, BBox: model.NewBBoxFromCorners(15, 300, 827, 580)},
	{Month: "JUNY", Page: 3, BBox: model.NewBBoxFromCorners(15, 10, 827, 290)},
	{Month: "JULIOL", Page: 4, BBox: model.NewBBoxFromCorners(15, 300, 827, 580)},
	{Month: "AGOST", Page: 4, BBox: model.NewBBoxFromCorners(15, 10, 827, 290)},
	{Month: "SETEMBRE", Page: 5, BBox: model.NewBBoxFromCorners(15, 300, 827, 580)},
	{Month: "OCTUBRE", Page: 5, BBox: model.NewBBoxFromCorners(15, 10, 827, 290)},
	{Month: "NOVEMBRE", Page: 6, BBox: model.NewBBoxFromCorners(15, 300, 827, 580)},
	{Month: "DESEMBRE", Page: 6, BBox: model.NewBBoxFromCorners(15, 10, 827, 290)},
})

// DefaultRegions returns a copy of the compiled-in region table. Slice order
// is processing order: ascending page, then top-to-bottom declaration order
// within a page.
func DefaultRegions() []Region {
	regions := make([]Region, len(defaultRegions))
	copy(regions, defaultRegions)
	return regions
}

// ValidateRegions checks the region table invariants: every month label is
// known, appears exactly once, and refers to a positive page number.
func ValidateRegions(regions []Region) error {
	seen := make(map[time.Month]string, len(regions))
	for _, r := range regions {
		m, ok := MonthByName(r.Month)
		if !ok {
			return fmt.Errorf("region table: unknown month label %q", r.Month)
		}
		if prev, dup := seen[m]; dup {
			return fmt.Errorf("region table: month %q declared twice (%q and %q)", m, prev, r.Month)
		}
		seen[m] = r.Month
		if r.Page < 1 {
			return fmt.Errorf("region table: month %q on invalid page %d", r.Month, r.Page)
		}
		if r.BBox.IsEmpty() {
			return fmt.Errorf("region table: month %q has an empty region", r.Month)
		}
	}
	return nil
}

func mustRegions(regions []Region) []Region {
	if err := ValidateRegions(regions); err != nil {
		panic(err)
	}
	return regions
}
