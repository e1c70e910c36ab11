package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func raw(month time.Month, day, slot int, start, end string) RawShift {
	return RawShift{Month: month, Day: day, Slot: slot, Start: start, End: end}
}

func TestNormalizeBasic(t *testing.T) {
	s, err := Normalize(raw(time.March, 10, 1, "8:00", "14:30"), 2024, time.UTC)
	require.NoError(t, err)

	assert.Equal(t, "08:00", s.Start, "hour must be zero-padded")
	assert.Equal(t, "14:30", s.End)
	assert.Equal(t, "20240310-1-0800-1430", s.Key)
	assert.Equal(t, time.Date(2024, time.March, 10, 8, 0, 0, 0, time.UTC), s.StartAt)
	assert.Equal(t, time.Date(2024, time.March, 10, 14, 30, 0, 0, time.UTC), s.EndAt)
}

func TestNormalizeOvernight(t *testing.T) {
	s, err := Normalize(raw(time.March, 10, 1, "22:00", "06:00"), 2024, time.UTC)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, time.March, 10, 22, 0, 0, 0, time.UTC), s.StartAt)
	assert.Equal(t, time.Date(2024, time.March, 11, 6, 0, 0, 0, time.UTC), s.EndAt,
		"end before start means the shift ends the next day")
}

func TestNormalizeEqualTimesStaySameDay(t *testing.T) {
	s, err := Normalize(raw(time.March, 10, 1, "08:00", "08:00"), 2024, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, s.StartAt, s.EndAt, "end == start is not an overnight shift")
}

func TestNormalizeKeyDeterminism(t *testing.T) {
	base := raw(time.March, 10, 1, "22:00", "06:00")

	a, err := Normalize(base, 2024, time.UTC)
	require.NoError(t, err)
	b, err := Normalize(base, 2024, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, a.Key, b.Key, "same input must yield the same key")

	variants := []RawShift{
		raw(time.March, 11, 1, "22:00", "06:00"), // date changed
		raw(time.March, 10, 2, "22:00", "06:00"), // slot changed
		raw(time.March, 10, 1, "21:00", "06:00"), // start changed
		raw(time.March, 10, 1, "22:00", "07:00"), // end changed
	}
	for _, v := range variants {
		s, err := Normalize(v, 2024, time.UTC)
		require.NoError(t, err)
		assert.NotEqual(t, a.Key, s.Key, "variant %+v must change the key", v)
	}
}

func TestNormalizeRejectsBadTimes(t *testing.T) {
	bad := []struct {
		start, end string
	}{
		{"25:00", "14:00"},
		{"08:61", "14:00"},
		{"08:00", "banana"},
		{"", "14:00"},
		{"8h00", "14:00"},
	}
	for _, tt := range bad {
		_, err := Normalize(raw(time.March, 10, 1, tt.start, tt.end), 2024, time.UTC)
		assert.ErrorIs(t, err, ErrBadTime, "start=%q end=%q", tt.start, tt.end)
	}
}

func TestNormalizeRejectsImpossibleDates(t *testing.T) {
	_, err := Normalize(raw(time.February, 30, 1, "08:00", "14:00"), 2024, time.UTC)
	assert.ErrorIs(t, err, ErrBadDate)

	_, err = Normalize(raw(time.February, 29, 1, "08:00", "14:00"), 2023, time.UTC)
	assert.ErrorIs(t, err, ErrBadDate, "2023 is not a leap year")

	_, err = Normalize(raw(time.February, 29, 1, "08:00", "14:00"), 2024, time.UTC)
	assert.NoError(t, err, "2024 is a leap year")
}

func TestInferYear(t *testing.T) {
	assert.Equal(t, 2024, InferYear("Horari 2024 - Planta 3", 2000))
	assert.Equal(t, 1999, InferYear("graella 1999", 2000))
	assert.Equal(t, 2000, InferYear("no year here", 2000))
	assert.Equal(t, 2000, InferYear("", 2000))
}
