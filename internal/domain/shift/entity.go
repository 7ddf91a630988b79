package shift

import (
	"fmt"
	"strconv"
	"strings"
)

// TimeOfDay is a wall-clock-of-day value with no date component, parsed from
// the HH:MM:SS strings the shifts table stores.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

// ParseTimeOfDay parses "HH:MM:SS" (seconds optional) into a TimeOfDay.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidShiftTime, s)
	}

	fields := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidShiftTime, s)
		}
		fields[i] = n
	}

	t := TimeOfDay{Hour: fields[0], Minute: fields[1], Second: fields[2]}
	if t.Hour < 0 || t.Hour > 23 || t.Minute < 0 || t.Minute > 59 || t.Second < 0 || t.Second > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidShiftTime, s)
	}

	return t, nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

type Shift struct {
	ID        int64
	Name      string
	StartTime TimeOfDay
	EndTime   TimeOfDay
}

// IsOvernight reports whether the shift spans midnight. The comparison is
// lexicographic on (hour, minute); an end equal to the start also counts as
// overnight, so a full-day or ambiguous shift defaults to wrapping.
func (s Shift) IsOvernight() bool {
	if s.EndTime.Hour != s.StartTime.Hour {
		return s.EndTime.Hour < s.StartTime.Hour
	}
	return s.EndTime.Minute <= s.StartTime.Minute
}
