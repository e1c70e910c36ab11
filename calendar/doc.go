// Package calendar reconciles canonical shifts against Google Calendar.
//
// Events owned by this system are tagged with the private extended property
// shiftUploader=1 and carry the shift identity key in the key property.
// Reconciliation diffs the current shift set against the tagged events of
// the primary calendar and issues the minimal insert/patch/delete set;
// untagged events are never touched.
//
// The remote service is reached through the [Gateway] interface so the
// [Reconciler] can be exercised against an in-memory fake. [GoogleGateway]
// is the production implementation.
//
// # Failure semantics
//
// A failing per-event operation is logged and skipped; the run continues.
// A failure while paging the initial event listing aborts the whole run
// with zero counts, since an incomplete event map would make the delete
// phase unsafe.
package calendar
