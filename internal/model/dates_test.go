package model

import (
	"testing"
	"time"
)

func TestCalendarDaysBetween(t *testing.T) {
	base := time.Date(2026, 8, 20, 23, 30, 0, 0, time.UTC)
	cases := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{name: "same day", from: base, to: base.Add(-20 * time.Hour), want: 0},
		{name: "midnight crossing counts as one", from: base, to: base.Add(time.Hour), want: 1},
		{name: "full yesterday", from: base.AddDate(0, 0, -1), to: base, want: 1},
		{name: "two days", from: base.AddDate(0, 0, -2), to: base, want: 2},
		{name: "reversed is negative", from: base, to: base.AddDate(0, 0, -3), want: -3},
	}
	for _, tc := range cases {
		if got := CalendarDaysBetween(tc.from, tc.to); got != tc.want {
			t.Fatalf("%s: CalendarDaysBetween = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestStartOfWeekIsSunday(t *testing.T) {
	// 2026-08-20 is a Thursday.
	thursday := time.Date(2026, 8, 20, 15, 4, 5, 0, time.UTC)
	got := StartOfWeek(thursday)
	want := time.Date(2026, 8, 16, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("StartOfWeek = %v, want %v", got, want)
	}
	if got.Weekday() != time.Sunday {
		t.Fatalf("expected Sunday, got %v", got.Weekday())
	}
}

func TestStartOfMonth(t *testing.T) {
	at := time.Date(2026, 8, 20, 15, 4, 5, 0, time.UTC)
	want := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	if got := StartOfMonth(at); !got.Equal(want) {
		t.Fatalf("StartOfMonth = %v, want %v", got, want)
	}
}

func TestDayKey(t *testing.T) {
	at := time.Date(2026, 8, 2, 23, 59, 0, 0, time.UTC)
	if got := DayKey(at); got != "2026-08-02" {
		t.Fatalf("DayKey = %q", got)
	}
}
