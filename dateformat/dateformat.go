// Package dateformat writes instants and ranges of instants as short, human
// readable strings. Fields implied by the range itself (or by today) are left
// out, so a whole month reads "January" and an afternoon reads "2 – 4 PM".
//
// A Formatter is immutable and safe for concurrent use.
package dateformat

import (
	"time"

	"github.com/simonljus/tidy-date/internal/core/calendar"
	"github.com/simonljus/tidy-date/internal/core/intl"
	"github.com/simonljus/tidy-date/internal/core/quarter"
	"github.com/simonljus/tidy-date/internal/core/span"
	"github.com/simonljus/tidy-date/internal/core/zone"
	perr "github.com/simonljus/tidy-date/internal/platform/errors"
	"github.com/simonljus/tidy-date/internal/platform/logger"
)

// RangeType is the coarse shape of a range
type RangeType = span.RangeType

const (
	RangeNone    = span.RangeNone
	FullYears    = span.FullYears
	FullQuarters = span.FullQuarters
	FullMonths   = span.FullMonths
	SameDay      = span.SameDay
	SameMonth    = span.SameMonth
	SameYear     = span.SameYear
)

// TimeZoneOptions names the zone the instants are read in
type TimeZoneOptions struct {
	// Name is an IANA zone such as "Europe/Stockholm"
	Name string
	// Show appends the zone abbreviation to the output
	Show bool
}

// CallOptions are the per call settings
type CallOptions struct {
	// Locale is a BCP 47 identifier; unknown locales render as en
	Locale   string
	TimeZone *TimeZoneOptions
	// Today anchors FormatRangeToday; zero means now
	Today time.Time
}

func (o CallOptions) zoneName() string {
	if o.TimeZone == nil {
		return ""
	}
	return o.TimeZone.Name
}

func (o CallOptions) showZone() bool { return o.TimeZone != nil && o.TimeZone.Show }

// clock is swapped in tests
var clock = time.Now

// Formatter renders dates and ranges under one Config
type Formatter struct {
	cfg     Config
	locales *intl.Registry
}

// New builds a Formatter. Without options it uses DefaultConfig
func New(opts ...Option) (*Formatter, error) {
	s := settings{cfg: DefaultConfig()}
	for _, o := range opts {
		o(&s)
	}
	log := s.log
	if log == nil {
		log = logger.Named("dateformat")
	}

	c := s.cfg
	if !c.DateResolution.Valid() {
		return nil, perr.WithField(perr.InvalidArgf("invalid date resolution %d", int(c.DateResolution)), "date_resolution")
	}
	if !c.DisplayResolution.Valid() {
		return nil, perr.WithField(perr.InvalidArgf("invalid display resolution %d", int(c.DisplayResolution)), "display_resolution")
	}
	if c.Boundary != Inclusive && c.Boundary != Exclusive {
		return nil, perr.WithField(perr.InvalidArgf("invalid boundary %d", int(c.Boundary)), "boundary")
	}
	if !calendar.Fulfills(c.DateResolution, c.DisplayResolution) {
		if s.displaySet {
			log.Info().
				Stringer("requested", c.DisplayResolution).
				Stringer("date_resolution", c.DateResolution).
				Msg("display resolution finer than data; clamped")
		}
		c.DisplayResolution = c.DateResolution
	}

	log.Debug().
		Stringer("date_resolution", c.DateResolution).
		Stringer("display_resolution", c.DisplayResolution).
		Stringer("boundary", c.Boundary).
		Bool("only_intl", c.OnlyIntl).
		Msg("formatter ready")
	return &Formatter{cfg: c, locales: intl.Default()}, nil
}

// Config returns the resolved configuration
func (f *Formatter) Config() Config { return f.cfg }

// FormatDate writes a single instant at the display resolution. Time fields
// that sit on a round boundary are dropped: midnight shows no hour
func (f *Formatter) FormatDate(t time.Time, o CallOptions) (string, error) {
	z, err := zone.Load(o.zoneName())
	if err != nil {
		return "", err
	}
	display := f.cfg.DisplayResolution
	at := span.Start(z.ToZoned(t), display)

	fields := toIntl(span.DateFields(at, display), intl.MonthShort, o.showZone())
	return f.locales.Resolve(o.Locale).Format(z.Unzone(t, at.Zoned()), fields)
}

// FormatRange writes from..to, leaving out fields the range covers whole
func (f *Formatter) FormatRange(from, to time.Time, o CallOptions) (string, error) {
	return f.formatRange(from, to, o, nil)
}

// FormatRangeToday is FormatRange relative to o.Today: a range within today
// drops its date and a range within this year drops its year
func (f *Formatter) FormatRangeToday(from, to time.Time, o CallOptions) (string, error) {
	today := o.Today
	if today.IsZero() {
		today = clock()
	}
	return f.formatRange(from, to, o, &today)
}

// RangeType classifies from..to at the display resolution
func (f *Formatter) RangeType(from, to time.Time, o CallOptions) (RangeType, error) {
	r, err := f.resolve(from, to, o.zoneName())
	if err != nil {
		return RangeNone, err
	}
	return r.kind, nil
}

// resolved is one range taken through the zone and boundary stages
type resolved struct {
	z        zone.Zone
	from, to span.Bounded
	kind     RangeType
}

func (f *Formatter) resolve(from, to time.Time, tz string) (resolved, error) {
	if from.After(to) {
		return resolved{}, perr.Rangef("range start %s is after its end %s",
			from.Format(time.RFC3339), to.Format(time.RFC3339))
	}
	z, err := zone.Load(tz)
	if err != nil {
		return resolved{}, err
	}
	c := f.cfg
	r := resolved{
		z:    z,
		from: span.Start(z.ToZoned(from), c.DisplayResolution),
		to:   span.End(z.ToZoned(to), c.DateResolution, c.DisplayResolution, c.Boundary),
	}
	// an exclusive end on a period start steps back a unit, which can pass from
	if r.to.Time().Before(r.from.Time()) {
		return resolved{}, perr.WithField(perr.Rangef("exclusive range end %s leaves nothing after its start %s",
			to.Format(time.RFC3339), from.Format(time.RFC3339)), "to")
	}
	r.kind = span.Classify(r.from, r.to, c.DisplayResolution)
	return r, nil
}

func (f *Formatter) formatRange(from, to time.Time, o CallOptions, today *time.Time) (string, error) {
	r, err := f.resolve(from, to, o.zoneName())
	if err != nil {
		return "", err
	}
	c := f.cfg
	loc := f.locales.Resolve(o.Locale)

	var fields span.Fields
	thisYear := false
	if today != nil {
		tz := r.z.ToZoned(*today)
		fields = span.TodayFields(r.from, r.to, tz, c.DisplayResolution)
		thisYear = calendar.Same(r.from.Time(), tz.Time(), calendar.Year) &&
			calendar.Same(r.to.Time(), tz.Time(), calendar.Year)
	} else {
		fields = span.RangeFields(r.from, r.to, c.DisplayResolution)
	}

	end := span.DisplayEnd(r.z.ToZoned(to), c.DateResolution, c.DisplayResolution, c.Boundary, fields.Hour)
	displayFrom := r.z.Unzone(from, r.from.Zoned())
	displayTo := r.z.Unzone(to, end.Zoned())

	if !c.OnlyIntl && r.kind == FullQuarters {
		return quarter.Label(displayFrom, displayTo, thisYear, loc.Year, loc.RangeSeparator()), nil
	}

	month := intl.MonthShort
	if r.kind == FullMonths && calendar.Same(r.from.Time(), end.Time(), calendar.Month) {
		month = intl.MonthLong
	}
	return loc.FormatRange(displayFrom, displayTo, toIntl(fields, month, o.showZone()))
}

func toIntl(f span.Fields, month intl.MonthStyle, showZone bool) intl.Fields {
	out := intl.Fields{
		Year:         f.Year,
		Day:          f.Day,
		Hour:         f.Hour,
		Minute:       f.Minute,
		Second:       f.Second,
		TimeZoneName: showZone,
	}
	if f.Month {
		out.Month = month
	}
	return out
}
