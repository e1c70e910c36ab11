// Package tables recovers cell grids from roster page regions.
//
// Extraction is purely geometric: positioned text fragments inside a region
// are joined into words, snapped into rows, and clustered into columns,
// producing a [model.Table] whose cells hold normalized text.
//
// # Tuning
//
// Behavior is controlled by [Tuning]:
//
//   - JoinTolerance - maximum horizontal gap between glyph runs merged into
//     the same word (points)
//   - SnapTolerance - maximum vertical distance for text to share a row
//   - ColumnTolerance - maximum horizontal distance for text to share a column
//
// Roster tables are drawn with tight glyph runs and generous column gaps, so
// the defaults work for every layout seen so far; documents rendered with
// unusual font metrics may need a wider JoinTolerance.
//
// # Failure policy
//
// Extraction never returns an error. A region with no text, or one whose
// fragments cannot be arranged into a grid, yields nil, which callers treat
// as "no data for this region".
package tables
