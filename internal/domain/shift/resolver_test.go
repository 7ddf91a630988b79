package shift

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ist = time.FixedZone("IST", 5*3600+30*60)

func dayShift() Shift {
	return Shift{
		ID:        1,
		Name:      "Shift 1",
		StartTime: TimeOfDay{Hour: 9},
		EndTime:   TimeOfDay{Hour: 17},
	}
}

func nightShift() Shift {
	return Shift{
		ID:        2,
		Name:      "Shift 2",
		StartTime: TimeOfDay{Hour: 22},
		EndTime:   TimeOfDay{Hour: 6},
	}
}

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		input   string
		want    TimeOfDay
		wantErr bool
	}{
		{input: "09:00:00", want: TimeOfDay{Hour: 9}},
		{input: "22:30:15", want: TimeOfDay{Hour: 22, Minute: 30, Second: 15}},
		{input: "06:00", want: TimeOfDay{Hour: 6}},
		{input: "24:00:00", wantErr: true},
		{input: "09:60:00", wantErr: true},
		{input: "nine", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidShiftTime)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestShift_IsOvernight(t *testing.T) {
	assert.False(t, dayShift().IsOvernight())
	assert.True(t, nightShift().IsOvernight())

	// Equal start and end is ambiguous and defaults to wrapping
	fullDay := Shift{StartTime: TimeOfDay{Hour: 8}, EndTime: TimeOfDay{Hour: 8}}
	assert.True(t, fullDay.IsOvernight())

	// Same hour, end minute past start minute stays a day shift
	short := Shift{StartTime: TimeOfDay{Hour: 8}, EndTime: TimeOfDay{Hour: 8, Minute: 30}}
	assert.False(t, short.IsOvernight())
}

func TestResolveWindow_DayShift(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 10, 0, 0, ist)
	w := ResolveWindow(dayShift(), now)

	assert.False(t, w.Overnight)
	assert.Equal(t, time.Date(2025, 3, 10, 9, 0, 0, 0, ist), w.Start)
	assert.Equal(t, time.Date(2025, 3, 10, 17, 0, 0, 0, ist), w.End)
	assert.Equal(t, "2025-03-10", w.WorkDate.Format("2006-01-02"))
}

func TestResolveWindow_NightShiftBeforeMidnight(t *testing.T) {
	// 23:50 is past the 22:00 start, so the instance began today
	now := time.Date(2025, 3, 10, 23, 50, 0, 0, ist)
	w := ResolveWindow(nightShift(), now)

	assert.True(t, w.Overnight)
	assert.Equal(t, time.Date(2025, 3, 10, 22, 0, 0, 0, ist), w.Start)
	assert.Equal(t, time.Date(2025, 3, 11, 6, 0, 0, 0, ist), w.End)
	assert.Equal(t, "2025-03-10", w.WorkDate.Format("2006-01-02"))
}

func TestResolveWindow_NightShiftAfterMidnight(t *testing.T) {
	// 05:30 is before the 22:00 start hour, so this belongs to the shift
	// that began yesterday
	now := time.Date(2025, 3, 11, 5, 30, 0, 0, ist)
	w := ResolveWindow(nightShift(), now)

	assert.True(t, w.Overnight)
	assert.Equal(t, time.Date(2025, 3, 10, 22, 0, 0, 0, ist), w.Start)
	assert.Equal(t, time.Date(2025, 3, 11, 6, 0, 0, 0, ist), w.End)
	assert.Equal(t, "2025-03-10", w.WorkDate.Format("2006-01-02"))
}

func TestResolveWindow_KeepsLocation(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 10, 0, 0, ist)
	w := ResolveWindow(dayShift(), now)

	assert.Equal(t, ist, w.Start.Location())
	assert.Equal(t, ist, w.WorkDate.Location())
}

func TestResolveEnd_DayShift(t *testing.T) {
	checkin := time.Date(2025, 3, 10, 9, 0, 0, 0, ist)
	end := ResolveEnd(dayShift(), checkin)

	assert.Equal(t, time.Date(2025, 3, 10, 17, 0, 0, 0, ist), end)
}

func TestResolveEnd_NightShift(t *testing.T) {
	// End anchors to the check-in date and wraps to the next day
	checkin := time.Date(2025, 3, 10, 23, 50, 0, 0, ist)
	end := ResolveEnd(nightShift(), checkin)

	assert.Equal(t, time.Date(2025, 3, 11, 6, 0, 0, 0, ist), end)
}
