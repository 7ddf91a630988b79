package shift

import "time"

// Window is a shift instance pinned to concrete instants. WorkDate is the
// calendar date the instance is attributed to, which for overnight shifts
// begun after midnight is the previous day.
type Window struct {
	Start     time.Time
	End       time.Time
	WorkDate  time.Time
	Overnight bool
}

// ResolveWindow determines the shift window the instant now belongs to.
// It is a pure function: now carries the configured location and all
// returned instants stay in it.
//
// For an overnight shift, a clock hour before the shift's start hour means
// now falls in the continuation of a shift that began the previous day, so
// the start is pulled back one calendar day and the work date follows it.
func ResolveWindow(sh Shift, now time.Time) Window {
	loc := now.Location()

	start := time.Date(now.Year(), now.Month(), now.Day(),
		sh.StartTime.Hour, sh.StartTime.Minute, sh.StartTime.Second, 0, loc)

	overnight := sh.IsOvernight()

	var end time.Time
	if overnight {
		if now.Hour() < sh.StartTime.Hour {
			start = start.AddDate(0, 0, -1)
		}
		next := start.AddDate(0, 0, 1)
		end = time.Date(next.Year(), next.Month(), next.Day(),
			sh.EndTime.Hour, sh.EndTime.Minute, sh.EndTime.Second, 0, loc)
	} else {
		end = time.Date(now.Year(), now.Month(), now.Day(),
			sh.EndTime.Hour, sh.EndTime.Minute, sh.EndTime.Second, 0, loc)
	}

	workDate := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, loc)

	return Window{Start: start, End: end, WorkDate: workDate, Overnight: overnight}
}

// ResolveEnd computes the shift end anchored to the stored check-in instant
// rather than the current clock, so a checkout after midnight still closes
// against the original shift instance.
func ResolveEnd(sh Shift, checkin time.Time) time.Time {
	loc := checkin.Location()

	end := time.Date(checkin.Year(), checkin.Month(), checkin.Day(),
		sh.EndTime.Hour, sh.EndTime.Minute, sh.EndTime.Second, 0, loc)

	if sh.IsOvernight() {
		end = end.AddDate(0, 0, 1)
	}

	return end
}
