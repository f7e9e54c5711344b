package span

import (
	"time"

	"github.com/simonljus/tidy-date/internal/core/calendar"
	"github.com/simonljus/tidy-date/internal/core/zone"
)

// Fields is the set of calendar fields a rendering must show
type Fields struct {
	Year   bool
	Month  bool
	Day    bool
	Hour   bool
	Minute bool
	Second bool
}

// ShowTime reports whether any time of day field is present
func (f Fields) ShowTime() bool { return f.Hour || f.Minute || f.Second }

// Empty reports whether no field is shown at all
func (f Fields) Empty() bool { return !f.Year && !f.Month && !f.Day && !f.ShowTime() }

// covers reports whether from..to spans whole periods of p, compared at res
func covers(from, to time.Time, p, res calendar.Resolution) bool {
	return calendar.IsStartOf(from, p, res) && calendar.IsEndOf(to, p, res)
}

// RangeFields drops every field whose unit the range covers completely.
// The year is always shown
func RangeFields(from, to Bounded, display calendar.Resolution) Fields {
	a, b := from.Time(), to.Time()
	return Fields{
		Year:   true,
		Month:  calendar.Fulfills(display, calendar.Month) && !covers(a, b, calendar.Year, display),
		Day:    calendar.Fulfills(display, calendar.Day) && !covers(a, b, calendar.Month, display),
		Hour:   calendar.Fulfills(display, calendar.Hour) && !covers(a, b, calendar.Day, display),
		Minute: calendar.Fulfills(display, calendar.Minute) && !covers(a, b, calendar.Hour, display),
		Second: calendar.Fulfills(display, calendar.Second) && !covers(a, b, calendar.Minute, display),
	}
}

// DateFields selects fields for a single instant. Month and day follow the
// resolution; a time field is dropped when the instant sits on the start of
// the enclosing period (midnight hides the hour, a full hour hides minutes)
func DateFields(t Bounded, display calendar.Resolution) Fields {
	v := t.Time()
	return Fields{
		Year:   true,
		Month:  calendar.Fulfills(display, calendar.Month),
		Day:    calendar.Fulfills(display, calendar.Day),
		Hour:   calendar.Fulfills(display, calendar.Hour) && !calendar.IsStartOf(v, calendar.Day, display),
		Minute: calendar.Fulfills(display, calendar.Minute) && !calendar.IsStartOf(v, calendar.Hour, display),
		Second: calendar.Fulfills(display, calendar.Second) && !calendar.IsStartOf(v, calendar.Minute, display),
	}
}

// TodayFields is RangeFields relative to today. A range held entirely within
// today that shows a time drops its month and day; a range held within the
// current year drops its year. If that would leave nothing but the year
// dropped, the year comes back so the result is never empty
func TodayFields(from, to Bounded, today zone.Zoned, display calendar.Resolution) Fields {
	f := RangeFields(from, to, display)
	a, b, now := from.Time(), to.Time(), today.Time()

	if f.Hour && calendar.Same(a, now, calendar.Day) && calendar.Same(b, now, calendar.Day) {
		f.Month, f.Day = false, false
	}
	f.Year = !(calendar.Same(a, now, calendar.Year) && calendar.Same(b, now, calendar.Year))
	if !f.Month && !f.Day && !f.Hour {
		f.Year = true
	}
	return f
}
