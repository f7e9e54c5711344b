// Package zone shifts instants into the wall clock of a target time zone so
// calendar math sees local day and month boundaries, and shifts them back
package zone

import (
	"time"
)

// Zone is a resolved time zone. The zero value keeps every instant in its own location
type Zone struct {
	loc *time.Location
}

// Load resolves an IANA name. An empty name yields the zero Zone.
// Lookup failures are returned exactly as time.LoadLocation reports them
func Load(name string) (Zone, error) {
	if name == "" {
		return Zone{}, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return Zone{}, err
	}
	return Zone{loc: loc}, nil
}

// Of wraps an already loaded location
func Of(loc *time.Location) Zone { return Zone{loc: loc} }

// IsZero reports whether no zone was configured
func (z Zone) IsZero() bool { return z.loc == nil }

// Name returns the IANA name, or "" for the zero Zone
func (z Zone) Name() string {
	if z.loc == nil {
		return ""
	}
	return z.loc.String()
}

// Location returns the location used to read t
func (z Zone) Location(t time.Time) *time.Location {
	if z.loc == nil {
		return t.Location()
	}
	return z.loc
}

// Zoned is a wall clock reading with the offset already applied. Its fields
// read as they would locally; it is stored in UTC so arithmetic never sees DST
type Zoned struct {
	wall time.Time
}

// Wall wraps a value that already reads as local wall clock
func Wall(t time.Time) Zoned {
	return Zoned{wall: floating(t)}
}

// Time exposes the wall clock reading for calendar math
func (z Zoned) Time() time.Time { return z.wall }

// ToZoned reads t in the zone and freezes that wall clock
func (z Zone) ToZoned(t time.Time) Zoned {
	return Zoned{wall: floating(t.In(z.Location(t)))}
}

// Unzone maps a wall clock back to an instant in the zone. The offset of
// original is tried first, so a wall clock read from original (including one
// in a repeated fall-back hour) comes back as the same instant. When zd sits
// on the other side of a DST switch that offset no longer reads back as zd,
// and the wall clock is resolved in the zone instead
func (z Zone) Unzone(original time.Time, zd Zoned) time.Time {
	loc := z.Location(original)
	_, offset := original.In(loc).Zone()
	t := zd.wall.Add(-time.Duration(offset) * time.Second).In(loc)
	if floating(t).Equal(zd.wall) {
		return t
	}
	w := zd.wall
	return time.Date(w.Year(), w.Month(), w.Day(), w.Hour(), w.Minute(), w.Second(), w.Nanosecond(), loc)
}

func floating(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}
