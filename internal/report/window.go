package report

import (
	"math"
	"time"
)

// ResolveRange turns a named period into a concrete inclusive window anchored
// to the current time. Unrecognized periods fall back to the week behavior.
// The resolver has no error cases; it always returns a non-empty window.
func ResolveRange(period Period, custom *DateRange) DateRange {
	return resolveRangeAt(time.Now(), period, custom)
}

func resolveRangeAt(now time.Time, period Period, custom *DateRange) DateRange {
	switch period {
	case PeriodDay:
		return DateRange{Start: startOfDay(now), End: endOfDay(now)}
	case PeriodMonth:
		return DateRange{Start: startOfDay(now.AddDate(0, -1, 0)), End: endOfDay(now)}
	case PeriodYear:
		return DateRange{Start: startOfDay(now.AddDate(-1, 0, 0)), End: endOfDay(now)}
	case PeriodCustom:
		if custom != nil {
			// Caller-supplied range; only the end is coerced to end-of-day.
			// A range with start after end is a caller contract violation
			// that transport validates before reaching the engine.
			return DateRange{Start: custom.Start, End: endOfDay(custom.End)}
		}
		return DateRange{Start: startOfDay(now.AddDate(0, 0, -30)), End: endOfDay(now)}
	case PeriodWeek:
	}
	return DateRange{Start: startOfDay(now.AddDate(0, 0, -7)), End: endOfDay(now)}
}

// PreviousRange derives the equal-length window immediately preceding r,
// shifting by the window's day count. Used for period-over-period growth.
func PreviousRange(r DateRange) DateRange {
	days := int(math.Ceil(r.End.Sub(r.Start).Hours() / 24))
	return DateRange{
		Start: r.Start.AddDate(0, 0, -days),
		End:   r.End.AddDate(0, 0, -days),
	}
}

// Contains reports whether t falls inside the window, bounds inclusive.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// endOfDay returns the 23:59:59.999 boundary of t's calendar day.
func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), t.Location())
}

// sameDay reports whether two instants fall on the same calendar day.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
