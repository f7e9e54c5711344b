// Package quarter writes labels such as "Q1", "Q1–Q2 2022" or
// "Q4 2022 – Q1 2023" for ranges made of whole quarters
package quarter

import (
	"strconv"
	"strings"
	"time"

	"github.com/simonljus/tidy-date/internal/core/calendar"
)

const dash = "–"

// Name returns the one based quarter name of t, e.g. "Q3"
func Name(t time.Time) string { return "Q" + strconv.Itoa(calendar.Quarter(t)+1) }

// Label renders from..to, which must already span whole quarters.
// thisYear drops the year when both ends share it; yearFormat writes a year the
// way the locale does and separator joins ends that fall in different years
func Label(from, to time.Time, thisYear bool, yearFormat func(time.Time) string, separator string) string {
	var b strings.Builder
	switch {
	case calendar.SameQuarter(from, to):
		b.WriteString(Name(from))
	case from.Year() == to.Year():
		b.WriteString(Name(from))
		b.WriteString(dash)
		b.WriteString(Name(to))
	default:
		return Name(from) + " " + yearFormat(from) + separator + Name(to) + " " + yearFormat(to)
	}
	if !thisYear {
		b.WriteString(" ")
		b.WriteString(yearFormat(from))
	}
	return b.String()
}
