// Package calendar holds the resolution ladder and the Gregorian calendar
// primitives used by the range engine. All helpers are pure and operate on the
// wall clock of the time.Time they receive
package calendar

import (
	"strconv"
	"strings"

	perr "github.com/simonljus/tidy-date/internal/platform/errors"
)

// Resolution is a calendar granularity, ordered coarse to fine
type Resolution int

// The ladder, coarse to fine. Order is load bearing for Fulfills and Lower
const (
	Year Resolution = iota
	Month
	Day
	Hour
	Minute
	Second
)

var resolutionNames = [...]string{"year", "month", "day", "hour", "minute", "second"}

// Resolutions returns the full ladder from coarse to fine
func Resolutions() []Resolution {
	return []Resolution{Year, Month, Day, Hour, Minute, Second}
}

// Valid reports whether r is one of the six ladder values
func (r Resolution) Valid() bool { return r >= Year && r <= Second }

// String implements fmt.Stringer
func (r Resolution) String() string {
	if !r.Valid() {
		return "resolution(" + strconv.Itoa(int(r)) + ")"
	}
	return resolutionNames[r]
}

// MarshalText implements encoding.TextMarshaler
func (r Resolution) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, perr.InvalidArgf("invalid resolution %d", int(r))
	}
	return []byte(resolutionNames[r]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (r *Resolution) UnmarshalText(b []byte) error {
	v, err := ParseResolution(string(b))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// ParseResolution maps a resolution name (case insensitive) to its ladder value
func ParseResolution(s string) (Resolution, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, name := range resolutionNames {
		if name == key {
			return Resolution(i), nil
		}
	}
	return 0, perr.WithField(perr.InvalidArgf("unknown resolution %q", s), "resolution")
}

// Fulfills reports whether r is at least as fine as target
func Fulfills(r, target Resolution) bool { return r >= target }

// Lower returns the next coarser resolution; Year maps to itself
func Lower(r Resolution) Resolution {
	if r <= Year {
		return Year
	}
	return r - 1
}
