package intl

import (
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/locales"
	"golang.org/x/text/language"

	perr "github.com/simonljus/tidy-date/internal/platform/errors"
)

// MonthStyle selects how a month is written, if at all
type MonthStyle int

const (
	MonthHidden MonthStyle = iota
	MonthShort
	MonthLong
)

// Fields is the set of calendar fields to render. A day is always written
// with its month, and minutes or seconds always with the hour
type Fields struct {
	Year         bool
	Month        MonthStyle
	Day          bool
	Hour         bool
	Minute       bool
	Second       bool
	TimeZoneName bool
}

func (f Fields) dateSkeleton() string {
	month := f.Month != MonthHidden || f.Day
	switch {
	case f.Year && f.Day:
		return "yMMMd"
	case f.Day:
		return "MMMd"
	case f.Year && month:
		return "yMMM"
	case month:
		return "MMM"
	case f.Year:
		return "y"
	}
	return ""
}

func (f Fields) timeSkeleton() string {
	switch {
	case f.Second:
		return "jms"
	case f.Minute:
		return "jm"
	case f.Hour:
		return "j"
	}
	return ""
}

// Locale renders field sets for one language
type Locale struct {
	tag              language.Tag
	trans            locales.Translator
	h12              bool
	periods          [2]string
	fallback         string
	separator        string
	dateTime         string
	intervalDateTime string
	skeletons        map[string]pattern
	intervals        map[string]map[byte]interval
}

// Tag returns the BCP 47 tag of the locale
func (l *Locale) Tag() string { return l.tag.String() }

// RangeSeparator is the text the locale puts between two unrelated dates
func (l *Locale) RangeSeparator() string { return l.separator }

// Year writes the year of t the way the locale writes a year alone
func (l *Locale) Year(t time.Time) string {
	s, err := l.Format(t, Fields{Year: true})
	if err != nil {
		return strconv.Itoa(t.Year())
	}
	return s
}

// Format renders a single instant on its own wall clock
func (l *Locale) Format(t time.Time, f Fields) (string, error) {
	ds, ts := f.dateSkeleton(), f.timeSkeleton()
	if ds == "" && ts == "" {
		return "", perr.InvalidArgf("no calendar fields to render")
	}
	var date, clock string
	if ds != "" {
		p, err := l.skeleton(ds)
		if err != nil {
			return "", err
		}
		date = l.render(p, t, f.Month)
	}
	if ts != "" {
		p, err := l.skeleton(ts)
		if err != nil {
			return "", err
		}
		clock = l.render(p, t, f.Month)
	}

	var out string
	switch {
	case date == "":
		out = clock
	case clock == "":
		out = date
	default:
		out = glue(l.dateTime, date, clock)
	}
	return l.withZone(out, t, f), nil
}

// FormatRange renders a as the start and b as the end of one range, using the
// interval pattern for the greatest differing field. Identical renderings
// collapse to Format(a). A date level difference while a time is shown uses
// the fallback pattern around two full renderings
func (l *Locale) FormatRange(a, b time.Time, f Fields) (string, error) {
	ds, ts := f.dateSkeleton(), f.timeSkeleton()
	if ds == "" && ts == "" {
		return "", perr.InvalidArgf("no calendar fields to render")
	}

	diff := l.greatestDifference(a, b, f)
	switch {
	case diff == 0:
		return l.Format(a, f)
	case isDateField(diff) && ts != "":
		return l.fallbackRange(a, b, f)
	case isDateField(diff):
		iv, ok := l.interval(ds, diff)
		if !ok {
			return l.fallbackRange(a, b, f)
		}
		return l.withZone(l.renderInterval(iv, a, b, f.Month), b, f), nil
	}

	iv, ok := l.interval(ts, diff)
	if !ok {
		return l.fallbackRange(a, b, f)
	}
	out := l.renderInterval(iv, a, b, f.Month)
	if ds != "" {
		p, err := l.skeleton(ds)
		if err != nil {
			return "", err
		}
		out = glue(l.intervalDateTime, l.render(p, a, f.Month), out)
	}
	return l.withZone(out, b, f), nil
}

func (l *Locale) fallbackRange(a, b time.Time, f Fields) (string, error) {
	sa, err := l.Format(a, f)
	if err != nil {
		return "", err
	}
	sb, err := l.Format(b, f)
	if err != nil {
		return "", err
	}
	return strings.NewReplacer("{0}", sa, "{1}", sb).Replace(l.fallback), nil
}

func isDateField(c byte) bool { return c == 'y' || c == 'M' || c == 'd' }

// greatestDifference returns the coarsest shown field on which a and b
// differ, in the order y M d a h m s, or 0 if they render the same
func (l *Locale) greatestDifference(a, b time.Time, f Fields) byte {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	sameDate := ay == by && am == bm && ad == bd
	showTime := f.Hour || f.Minute || f.Second
	switch {
	case f.Year && ay != by:
		return 'y'
	case (f.Month != MonthHidden || f.Day) && (ay != by || am != bm):
		return 'M'
	case f.Day && !sameDate:
		return 'd'
	case showTime && !sameDate:
		return 'd'
	case !showTime:
		return 0
	case l.h12 && (a.Hour() < 12) != (b.Hour() < 12):
		return 'a'
	case a.Hour() != b.Hour():
		return 'h'
	case (f.Minute || f.Second) && a.Minute() != b.Minute():
		return 'm'
	case f.Second && a.Second() != b.Second():
		return 's'
	}
	return 0
}

func (l *Locale) skeleton(key string) (pattern, error) {
	p, ok := l.skeletons[key]
	if !ok {
		return nil, perr.Localef("locale %s has no %s pattern", l.Tag(), key)
	}
	return p, nil
}

func (l *Locale) interval(skeleton string, diff byte) (interval, bool) {
	byField := l.intervals[skeleton]
	if iv, ok := byField[diff]; ok {
		return iv, true
	}
	// 24 hour locales carry no day period entry
	if diff == 'a' {
		iv, ok := byField['h']
		return iv, ok
	}
	return interval{}, false
}

func (l *Locale) renderInterval(iv interval, a, b time.Time, month MonthStyle) string {
	return l.render(iv.first, a, month) + l.render(iv.second, b, month)
}

func (l *Locale) withZone(s string, t time.Time, f Fields) string {
	if !f.TimeZoneName {
		return s
	}
	name, _ := t.Zone()
	return s + " " + name
}

func (l *Locale) render(p pattern, t time.Time, month MonthStyle) string {
	var b strings.Builder
	for _, tok := range p {
		if tok.field == 0 {
			b.WriteString(tok.text)
			continue
		}
		l.writeField(&b, tok, t, month)
	}
	return b.String()
}

func (l *Locale) writeField(b *strings.Builder, tok token, t time.Time, month MonthStyle) {
	switch tok.field {
	case 'y':
		if tok.width == 2 {
			b.WriteString(pad2(t.Year() % 100))
			return
		}
		b.WriteString(strconv.Itoa(t.Year()))
	case 'M', 'L':
		switch {
		case tok.width == 1:
			b.WriteString(strconv.Itoa(int(t.Month())))
		case tok.width == 2:
			b.WriteString(pad2(int(t.Month())))
		case tok.width >= 4 || month == MonthLong:
			b.WriteString(l.trans.MonthWide(t.Month()))
		default:
			b.WriteString(l.trans.MonthAbbreviated(t.Month()))
		}
	case 'd':
		writeNumber(b, t.Day(), tok.width)
	case 'h':
		h := t.Hour() % 12
		if h == 0 {
			h = 12
		}
		writeNumber(b, h, tok.width)
	case 'H':
		writeNumber(b, t.Hour(), tok.width)
	case 'm':
		writeNumber(b, t.Minute(), tok.width)
	case 's':
		writeNumber(b, t.Second(), tok.width)
	case 'a':
		if t.Hour() < 12 {
			b.WriteString(l.periods[0])
		} else {
			b.WriteString(l.periods[1])
		}
	default:
		b.WriteString(strings.Repeat(string(tok.field), tok.width))
	}
}

func writeNumber(b *strings.Builder, n, width int) {
	if width >= 2 {
		b.WriteString(pad2(n))
		return
	}
	b.WriteString(strconv.Itoa(n))
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

// glue fills a date time combination pattern: {1} is the date, {0} the time
func glue(p, date, clock string) string {
	return strings.NewReplacer("{1}", date, "{0}", clock).Replace(p)
}
