package report

import (
	"testing"
	"time"
)

// Mid-month anchor so day/week/month windows never cross a year boundary.
var testNow = time.Date(2024, time.June, 15, 14, 30, 0, 0, time.UTC)

func TestResolveRangeDay(t *testing.T) {
	r := resolveRangeAt(testNow, PeriodDay, nil)

	wantStart := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	if !r.Start.Equal(wantStart) {
		t.Errorf("expected start %v, got %v", wantStart, r.Start)
	}

	wantEnd := time.Date(2024, time.June, 15, 23, 59, 59, int(999*time.Millisecond), time.UTC)
	if !r.End.Equal(wantEnd) {
		t.Errorf("expected end %v, got %v", wantEnd, r.End)
	}
}

func TestResolveRangeWeek(t *testing.T) {
	r := resolveRangeAt(testNow, PeriodWeek, nil)

	wantStart := time.Date(2024, time.June, 8, 0, 0, 0, 0, time.UTC)
	if !r.Start.Equal(wantStart) {
		t.Errorf("expected start %v, got %v", wantStart, r.Start)
	}
	if r.End.Hour() != 23 || r.End.Minute() != 59 || r.End.Second() != 59 {
		t.Errorf("expected end of day, got %v", r.End)
	}
}

func TestResolveRangeMonth(t *testing.T) {
	r := resolveRangeAt(testNow, PeriodMonth, nil)

	wantStart := time.Date(2024, time.May, 15, 0, 0, 0, 0, time.UTC)
	if !r.Start.Equal(wantStart) {
		t.Errorf("expected start %v, got %v", wantStart, r.Start)
	}
}

func TestResolveRangeYear(t *testing.T) {
	r := resolveRangeAt(testNow, PeriodYear, nil)

	wantStart := time.Date(2023, time.June, 15, 0, 0, 0, 0, time.UTC)
	if !r.Start.Equal(wantStart) {
		t.Errorf("expected start %v, got %v", wantStart, r.Start)
	}
}

func TestResolveRangeUnknownPeriodFallsBackToWeek(t *testing.T) {
	got := resolveRangeAt(testNow, Period("fortnight"), nil)
	want := resolveRangeAt(testNow, PeriodWeek, nil)

	if !got.Start.Equal(want.Start) || !got.End.Equal(want.End) {
		t.Errorf("expected unknown period to resolve like week, got %v", got)
	}
}

func TestResolveRangeCustomCoercesOnlyEnd(t *testing.T) {
	custom := &DateRange{
		Start: time.Date(2024, time.March, 3, 9, 15, 0, 0, time.UTC),
		End:   time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC),
	}

	r := resolveRangeAt(testNow, PeriodCustom, custom)

	// The caller's start is taken as-is
	if !r.Start.Equal(custom.Start) {
		t.Errorf("expected start %v unchanged, got %v", custom.Start, r.Start)
	}

	wantEnd := time.Date(2024, time.March, 10, 23, 59, 59, int(999*time.Millisecond), time.UTC)
	if !r.End.Equal(wantEnd) {
		t.Errorf("expected end coerced to %v, got %v", wantEnd, r.End)
	}
}

func TestResolveRangeCustomWithoutRangeFallsBackTo30Days(t *testing.T) {
	r := resolveRangeAt(testNow, PeriodCustom, nil)

	wantStart := time.Date(2024, time.May, 16, 0, 0, 0, 0, time.UTC)
	if !r.Start.Equal(wantStart) {
		t.Errorf("expected 30-day fallback start %v, got %v", wantStart, r.Start)
	}
}

func TestPreviousRangeShiftsByWindowLength(t *testing.T) {
	r := resolveRangeAt(testNow, PeriodWeek, nil)
	prev := PreviousRange(r)

	wantStart := r.Start.AddDate(0, 0, -8)
	if !prev.Start.Equal(wantStart) {
		t.Errorf("expected previous start %v, got %v", wantStart, prev.Start)
	}

	// Previous window ends right before the current one begins
	if !prev.End.Before(r.Start) {
		t.Errorf("previous window end %v overlaps current start %v", prev.End, r.Start)
	}

	if prev.End.Sub(prev.Start) != r.End.Sub(r.Start) {
		t.Errorf("previous window length %v differs from current %v",
			prev.End.Sub(prev.Start), r.End.Sub(r.Start))
	}
}

func TestDateRangeContainsIsInclusive(t *testing.T) {
	r := DateRange{
		Start: time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, time.June, 7, 23, 59, 59, 0, time.UTC),
	}

	cases := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"exact start", r.Start, true},
		{"exact end", r.End, true},
		{"inside", time.Date(2024, time.June, 4, 12, 0, 0, 0, time.UTC), true},
		{"just before start", r.Start.Add(-time.Millisecond), false},
		{"just after end", r.End.Add(time.Millisecond), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.at); got != tc.want {
				t.Errorf("Contains(%v) = %v, want %v", tc.at, got, tc.want)
			}
		})
	}
}
