package schedule

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Shift is a canonical, validated shift ready for reconciliation.
type Shift struct {
	// Key identifies the shift for reconciliation. It is a deterministic
	// function of (date, slot, start, end); two shifts with identical
	// values collide to the same key by design.
	Key string

	Date  time.Time // midnight of the shift date, in the target timezone
	Start string    // "HH:MM", zero-padded
	End   string    // "HH:MM", zero-padded

	StartAt time.Time
	// EndAt is the end instant. It falls on the next day when the end time
	// of day precedes the start time of day (overnight shift).
	EndAt time.Time
}

// ErrBadTime reports a start or end text that is not a valid time of day.
var ErrBadTime = errors.New("invalid time of day")

// ErrBadDate reports a day number that does not exist in the target month.
var ErrBadDate = errors.New("invalid date")

var clockRe = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)

// Normalize validates a raw shift and builds the canonical form: times are
// zero-padded and range-checked, instants are constructed in loc, the
// overnight rollover is applied, and the identity key is derived.
func Normalize(raw RawShift, year int, loc *time.Location) (Shift, error) {
	start, err := normalizeClock(raw.Start)
	if err != nil {
		return Shift{}, fmt.Errorf("start %q: %w", raw.Start, err)
	}
	end, err := normalizeClock(raw.End)
	if err != nil {
		return Shift{}, fmt.Errorf("end %q: %w", raw.End, err)
	}

	date := time.Date(year, raw.Month, raw.Day, 0, 0, 0, 0, loc)
	if date.Month() != raw.Month || date.Day() != raw.Day {
		return Shift{}, fmt.Errorf("day %d of %s %d: %w", raw.Day, raw.Month, year, ErrBadDate)
	}

	startAt := atClock(date, start)
	endAt := atClock(date, end)
	if endAt.Before(startAt) {
		// Overnight shift: the end belongs to the next day. This is the
		// only date adjustment performed.
		endAt = endAt.AddDate(0, 0, 1)
	}

	return Shift{
		Key:     shiftKey(date, raw.Slot, start, end),
		Date:    date,
		Start:   start,
		End:     end,
		StartAt: startAt,
		EndAt:   endAt,
	}, nil
}

// normalizeClock zero-pads the hour of an H:MM or HH:MM string and
// validates the result.
func normalizeClock(s string) (string, error) {
	s = strings.TrimSpace(s)
	if len(s) == 4 && s[1] == ':' {
		s = "0" + s
	}
	if !clockRe.MatchString(s) {
		return "", ErrBadTime
	}
	return s, nil
}

// atClock combines a midnight date with an "HH:MM" time of day. Built with
// time.Date rather than Add so DST transition days keep wall-clock times.
func atClock(date time.Time, clock string) time.Time {
	t, _ := time.Parse("15:04", clock)
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location())
}

// shiftKey derives the reconciliation key: date, slot discriminator and the
// two times, joined with a fixed separator.
func shiftKey(date time.Time, slot int, start, end string) string {
	return fmt.Sprintf("%s-%d-%s-%s",
		date.Format("20060102"),
		slot,
		strings.ReplaceAll(start, ":", ""),
		strings.ReplaceAll(end, ":", ""))
}
