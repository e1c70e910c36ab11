// Package model provides the intermediate representation for extracted
// roster content.
//
// All extraction operations ultimately produce these types: a [Document]
// holding positioned text fragments per [Page], geometric primitives used to
// crop pages to month regions, and the [Table] cell grid produced by table
// extraction.
//
// # Document Structure
//
// The [Document] type represents a loaded roster PDF:
//
//	doc := model.NewDocument()
//	doc.Title = "Horari 2024"
//	doc.AddPage(page)
//
// Each [Page] contains dimensions and the raw [TextFragment] values found on
// it, with positions in PDF points (origin bottom-left).
//
// # Geometry
//
//   - [BBox] - bounding box with containment, intersection and union
//   - [Point] - 2D point
//
// # Tables
//
// The [Table] type is the cell grid recovered from one month region. Cells
// hold plain text; an empty string means the cell was empty or absent.
package model
