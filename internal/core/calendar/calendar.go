package calendar

import (
	"time"

	"github.com/jinzhu/now"
)

// StartOf returns the first instant of the r-period containing t
func StartOf(t time.Time, r Resolution) time.Time {
	switch r {
	case Year:
		return now.With(t).BeginningOfYear()
	case Month:
		return now.With(t).BeginningOfMonth()
	case Day:
		return now.With(t).BeginningOfDay()
	case Hour:
		return now.With(t).BeginningOfHour()
	case Minute:
		y, m, d := t.Date()
		return time.Date(y, m, d, t.Hour(), t.Minute(), 0, 0, t.Location())
	default:
		y, m, d := t.Date()
		return time.Date(y, m, d, t.Hour(), t.Minute(), t.Second(), 0, t.Location())
	}
}

// EndOf returns the last representable millisecond of the r-period containing t
func EndOf(t time.Time, r Resolution) time.Time {
	n := now.With(t)
	var end time.Time
	switch r {
	case Year:
		end = n.EndOfYear()
	case Month:
		end = n.EndOfMonth()
	case Day:
		end = n.EndOfDay()
	case Hour:
		end = n.EndOfHour()
	case Minute:
		end = StartOf(t, Minute).Add(time.Minute - time.Nanosecond)
	default:
		end = StartOf(t, Second).Add(time.Second - time.Nanosecond)
	}
	// now ends periods one nanosecond early; the engine works in milliseconds
	return end.Truncate(time.Millisecond)
}

// Add moves t by n units of r. Month and year steps clamp the day of month so
// Jan 31 + 1 month lands on the last day of February
func Add(t time.Time, r Resolution, n int) time.Time {
	switch r {
	case Year:
		return addMonths(t, 12*n)
	case Month:
		return addMonths(t, n)
	case Day:
		return t.AddDate(0, 0, n)
	case Hour:
		return t.Add(time.Duration(n) * time.Hour)
	case Minute:
		return t.Add(time.Duration(n) * time.Minute)
	default:
		return t.Add(time.Duration(n) * time.Second)
	}
}

func addMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(n), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	if last := DaysIn(first.Year(), first.Month()); d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// DaysIn returns the number of days in the given month, leap years included
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Same reports whether a and b agree on every field from year down to r.
// Finer fields are ignored, so Same(a, b, Hour) ignores minutes and below
func Same(a, b time.Time, r Resolution) bool {
	return StartOf(a, r).Equal(StartOf(b, r))
}

// IsStartOf reports whether t sits on the start of its period, compared at r
func IsStartOf(t time.Time, period, r Resolution) bool {
	return Same(StartOf(t, period), t, r)
}

// IsEndOf reports whether t sits on the end of its period, compared at r
func IsEndOf(t time.Time, period, r Resolution) bool {
	return Same(EndOf(t, period), t, r)
}
