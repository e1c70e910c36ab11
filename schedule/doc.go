// Package schedule turns extracted cell grids into canonical shifts.
//
// It owns the compiled-in table of month regions (which rectangle of which
// page holds which month's sub-table), the grid parser that recovers
// (day, slot, start, end) records from a cell grid, and the normalizer that
// validates times, applies the overnight rollover rule and derives the
// identity key used for calendar reconciliation.
//
// # Layout conventions
//
// Two roster layouts are understood, tried in this order:
//
//  1. Explicit header row: a row labels the "Dia", "Entrada" and "Sortida"
//     columns and every following row is one day. This is the authoritative
//     convention.
//  2. Column per day: row 0 enumerates day numbers, rows 1-2 hold the first
//     shift's start/end and rows 4-5 the second shift's. The first data
//     column is recovered by scanning for the leftmost time-shaped cell,
//     which re-aligns grids whose header labels were merged.
//
// A grid matching neither convention contributes zero shifts and a warning;
// it never aborts processing of other regions.
package schedule
