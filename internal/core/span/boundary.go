// Package span snaps zoned range endpoints to display periods, classifies the
// resulting range and decides which calendar fields a rendering must carry
package span

import (
	"strings"
	"time"

	"github.com/simonljus/tidy-date/internal/core/calendar"
	"github.com/simonljus/tidy-date/internal/core/zone"
	perr "github.com/simonljus/tidy-date/internal/platform/errors"
)

// Boundary says whether a range end counts its own last unit
type Boundary int

const (
	// Inclusive ends extend to the end of their display period
	Inclusive Boundary = iota
	// Exclusive ends sitting on a round boundary back off one date unit
	Exclusive
)

var boundaryNames = [...]string{"inclusive", "exclusive"}

// String implements fmt.Stringer
func (b Boundary) String() string {
	if b != Inclusive && b != Exclusive {
		return "boundary(?)"
	}
	return boundaryNames[b]
}

// MarshalText implements encoding.TextMarshaler
func (b Boundary) MarshalText() ([]byte, error) {
	if b != Inclusive && b != Exclusive {
		return nil, perr.InvalidArgf("invalid boundary %d", int(b))
	}
	return []byte(boundaryNames[b]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (b *Boundary) UnmarshalText(p []byte) error {
	v, err := ParseBoundary(string(p))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// ParseBoundary maps "inclusive" or "exclusive" (case insensitive) to a Boundary
func ParseBoundary(s string) (Boundary, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "inclusive":
		return Inclusive, nil
	case "exclusive":
		return Exclusive, nil
	}
	return 0, perr.WithField(perr.InvalidArgf("unknown boundary %q", s), "boundary")
}

// Bounded is a zoned instant snapped to a display period edge.
// Only Start, End and DisplayEnd produce one
type Bounded struct {
	z zone.Zoned
}

// Zoned returns the wall clock value, ready for Zone.Unzone
func (b Bounded) Zoned() zone.Zoned { return b.z }

// Time returns the wall clock reading
func (b Bounded) Time() time.Time { return b.z.Time() }

func bounded(t time.Time) Bounded { return Bounded{z: zone.Wall(t)} }

// Start snaps a range start to the beginning of its display period
func Start(z zone.Zoned, display calendar.Resolution) Bounded {
	return bounded(calendar.StartOf(z.Time(), display))
}

// End resolves the range end used for classification and field elision.
// An exclusive end that sits exactly on the start of the next coarser period
// (compared at the data resolution) is moved back one data unit first
func End(z zone.Zoned, dateRes, display calendar.Resolution, b Boundary) Bounded {
	t := z.Time()
	if b == Exclusive {
		coarser := calendar.StartOf(t, calendar.Lower(display))
		if calendar.Same(t, coarser, dateRes) {
			t = calendar.Add(t, dateRes, -1)
		}
	}
	return bounded(calendar.EndOf(t, display))
}

// DisplayEnd resolves the range end handed to the renderer. When a time of day
// is shown an inclusive end with hour or finer data counts its own last unit,
// so it is pushed forward one data unit; an exclusive end is shown as given.
// Without a time of day the classification end is used
func DisplayEnd(z zone.Zoned, dateRes, display calendar.Resolution, b Boundary, showTime bool) Bounded {
	if !showTime {
		return End(z, dateRes, display, b)
	}
	t := z.Time()
	if b == Inclusive && calendar.Fulfills(dateRes, calendar.Hour) {
		t = calendar.Add(t, dateRes, 1)
	}
	return bounded(calendar.EndOf(t, display))
}
