package calendar

import (
	"time"

	"github.com/jinzhu/now"
)

const monthsPerQuarter = 3

// Quarter returns the zero based quarter of t (0 for Jan-Mar)
func Quarter(t time.Time) int { return (int(t.Month()) - 1) / monthsPerQuarter }

// StartOfQuarter returns the first instant of the quarter containing t
func StartOfQuarter(t time.Time) time.Time { return now.With(t).BeginningOfQuarter() }

// EndOfQuarter returns the last millisecond of the quarter containing t
func EndOfQuarter(t time.Time) time.Time {
	return now.With(t).EndOfQuarter().Truncate(time.Millisecond)
}

// SameQuarter reports whether a and b fall in the same quarter of the same year
func SameQuarter(a, b time.Time) bool {
	return a.Year() == b.Year() && Quarter(a) == Quarter(b)
}

// IsStartOfQuarter reports whether t sits on its quarter start, compared at r
func IsStartOfQuarter(t time.Time, r Resolution) bool {
	return Same(StartOfQuarter(t), t, r)
}

// IsEndOfQuarter reports whether t sits on its quarter end, compared at r
func IsEndOfQuarter(t time.Time, r Resolution) bool {
	return Same(EndOfQuarter(t), t, r)
}
