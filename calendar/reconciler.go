package calendar

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	gcal "google.golang.org/api/calendar/v3"

	"github.com/AdriaVH/makeCalendar/schedule"
)

// Result holds the operation counts of one reconciliation run.
type Result struct {
	Inserted int
	Updated  int
	Deleted  int
}

// Reconciler makes the tagged events of the remote calendar match a
// canonical shift set exactly.
type Reconciler struct {
	gw     Gateway
	logger *slog.Logger

	// now is replaceable in tests; the fetch window starts here.
	now func() time.Time
}

// NewReconciler constructs a Reconciler.
func NewReconciler(gw Gateway, logger *slog.Logger) *Reconciler {
	return &Reconciler{
		gw:     gw,
		logger: logger,
		now:    time.Now,
	}
}

// Reconcile diffs shifts against the upcoming tagged events and issues
// inserts, patches and deletes so the calendar mirrors the shift set. The
// returned error is non-nil only for the fatal cases (failed listing);
// per-item failures are logged, skipped and reflected in the counts.
func (r *Reconciler) Reconcile(ctx context.Context, shifts []schedule.Shift, tz *time.Location) (Result, error) {
	byKey, err := r.fetchTagged(ctx, r.now())
	if err != nil {
		// Without a complete event map the delete phase could remove the
		// wrong events, so nothing is attempted.
		return Result{}, fmt.Errorf("listing existing events: %w", err)
	}

	var res Result
	for _, shift := range shifts {
		body := eventBody(shift, tz)

		if existing, ok := byKey[shift.Key]; ok {
			if err := r.gw.Patch(ctx, existing.Id, body); err != nil {
				r.logger.Warn("event update failed", "key", shift.Key, "err", err)
			} else {
				res.Updated++
			}
			// Reconciled either way; a failed patch must not cascade into
			// a delete of the event it targeted.
			delete(byKey, shift.Key)
			continue
		}

		if err := r.gw.Insert(ctx, body); err != nil {
			r.logger.Warn("event insert failed", "key", shift.Key, "err", err)
			continue
		}
		res.Inserted++
	}

	for key, event := range byKey {
		if err := r.gw.Delete(ctx, event.Id); err != nil {
			r.logger.Warn("event delete failed", "key", key, "err", err)
			continue
		}
		res.Deleted++
	}

	r.logger.Info("reconciliation complete",
		"inserted", res.Inserted, "updated", res.Updated, "deleted", res.Deleted)
	return res, nil
}

// Purge deletes every tagged event regardless of time window or shift set,
// for a full reset. Returns the number of events deleted.
func (r *Reconciler) Purge(ctx context.Context) (int, error) {
	byKey, err := r.fetchTagged(ctx, time.Time{})
	if err != nil {
		return 0, fmt.Errorf("listing existing events: %w", err)
	}

	deleted := 0
	for key, event := range byKey {
		if err := r.gw.Delete(ctx, event.Id); err != nil {
			r.logger.Warn("event delete failed", "key", key, "err", err)
			continue
		}
		deleted++
	}

	r.logger.Info("purge complete", "deleted", deleted)
	return deleted, nil
}

// fetchTagged pages through the tagged events and maps them by identity
// key. Events lacking the key property are ignored entirely, so they can
// never be patched or deleted.
func (r *Reconciler) fetchTagged(ctx context.Context, timeMin time.Time) (map[string]*gcal.Event, error) {
	byKey := make(map[string]*gcal.Event)

	pageToken := ""
	for {
		items, next, err := r.gw.List(ctx, timeMin, pageToken)
		if err != nil {
			return nil, err
		}
		for _, event := range items {
			if key, ok := eventKey(event); ok {
				byKey[key] = event
			}
		}
		if next == "" {
			return byKey, nil
		}
		pageToken = next
	}
}

// eventKey extracts the shift identity key from an event's private
// extended properties.
func eventKey(event *gcal.Event) (string, bool) {
	if event.ExtendedProperties == nil || event.ExtendedProperties.Private == nil {
		return "", false
	}
	key, ok := event.ExtendedProperties.Private[KeyProperty]
	return key, ok && key != ""
}

// eventBody builds the wire representation of a shift.
func eventBody(shift schedule.Shift, tz *time.Location) *gcal.Event {
	return &gcal.Event{
		Summary: fmt.Sprintf("P %s-%s", shift.Start, shift.End),
		Start: &gcal.EventDateTime{
			DateTime: shift.StartAt.Format(time.RFC3339),
			TimeZone: tz.String(),
		},
		End: &gcal.EventDateTime{
			DateTime: shift.EndAt.Format(time.RFC3339),
			TimeZone: tz.String(),
		},
		ExtendedProperties: &gcal.EventExtendedProperties{
			Private: map[string]string{
				TagProperty: TagValue,
				KeyProperty: shift.Key,
			},
		},
	}
}
