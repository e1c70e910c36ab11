// Package reader loads roster PDFs into the model representation.
//
// Decoding of the PDF object structure is delegated to
// github.com/ledongthuc/pdf; this package turns its per-run text output into
// [model.TextFragment] values with page-relative positions, and pulls the
// document title out of the Info dictionary so the roster year can be
// inferred downstream.
//
// Only text-bearing PDFs are supported. Pages whose content streams cannot
// be decoded yield an empty page rather than an error, so one broken page
// never aborts extraction of the others.
package reader
