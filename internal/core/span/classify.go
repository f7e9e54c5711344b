package span

import (
	"github.com/simonljus/tidy-date/internal/core/calendar"
	perr "github.com/simonljus/tidy-date/internal/platform/errors"
)

// RangeType is the coarse shape of a range. RangeNone means no category fits
type RangeType int

const (
	RangeNone RangeType = iota
	FullYears
	FullQuarters
	FullMonths
	SameDay
	SameMonth
	SameYear
)

var rangeTypeNames = [...]string{"", "fullYears", "fullQuarters", "fullMonths", "sameDay", "sameMonth", "sameYear"}

// String returns the camel case name, "" for RangeNone
func (t RangeType) String() string {
	if t < RangeNone || t > SameYear {
		return ""
	}
	return rangeTypeNames[t]
}

// MarshalText implements encoding.TextMarshaler
func (t RangeType) MarshalText() ([]byte, error) {
	if t < RangeNone || t > SameYear {
		return nil, perr.InvalidArgf("invalid range type %d", int(t))
	}
	return []byte(rangeTypeNames[t]), nil
}

// Classify returns the first matching category, in precedence order
// fullYears, fullQuarters, fullMonths, sameDay, sameMonth, sameYear.
// Period edges are compared at the display resolution
func Classify(from, to Bounded, display calendar.Resolution) RangeType {
	a, b := from.Time(), to.Time()
	switch {
	case calendar.IsStartOf(a, calendar.Year, display) && calendar.IsEndOf(b, calendar.Year, display):
		return FullYears
	case calendar.IsStartOfQuarter(a, display) && calendar.IsEndOfQuarter(b, display):
		return FullQuarters
	case calendar.IsStartOf(a, calendar.Month, display) && calendar.IsEndOf(b, calendar.Month, display):
		return FullMonths
	case calendar.Same(a, b, calendar.Day) && calendar.Fulfills(display, calendar.Day):
		return SameDay
	case calendar.Same(a, b, calendar.Month) && calendar.Fulfills(display, calendar.Month):
		return SameMonth
	case calendar.Same(a, b, calendar.Year):
		return SameYear
	}
	return RangeNone
}
