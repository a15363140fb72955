package model

import "time"

// DayLayout is the wire format for persisted calendar dates.
const DayLayout = "2006-01-02"

// DayKey formats a timestamp as its calendar date.
func DayKey(t time.Time) string {
	return t.Format(DayLayout)
}

// StartOfDay truncates a timestamp to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SameCalendarDay reports whether two timestamps fall on the same
// calendar date.
func SameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// CalendarDaysBetween returns the number of calendar-day boundaries
// crossed between from and to. Same day yields 0, yesterday-to-today
// yields 1, regardless of clock times. Dates are compared in UTC so a
// DST-shortened day still counts as one day.
func CalendarDaysBetween(from, to time.Time) int {
	fy, fm, fd := from.Date()
	ty, tm, td := to.Date()
	a := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	b := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

// StartOfWeek returns midnight on the Sunday of the week containing t.
func StartOfWeek(t time.Time) time.Time {
	day := StartOfDay(t)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// StartOfMonth returns midnight on the first of the month containing t.
func StartOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}
