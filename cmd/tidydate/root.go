package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/simonljus/tidy-date/dateformat"
	ptime "github.com/simonljus/tidy-date/internal/platform/time"
)

// flags shared by every formatting command
type flags struct {
	from, to, today string

	locale string
	tz     string
	showTZ bool

	dateResolution    string
	displayResolution string
	boundary          string
	onlyIntl          bool
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	root := &cobra.Command{
		Use:           "tidydate",
		Short:         "Format dates and date ranges as short readable text",
		SilenceUsage:  true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&f.locale, "locale", "", "BCP 47 locale, e.g. en-GB (default en)")
	pf.StringVar(&f.tz, "tz", "", "IANA time zone the instants are read in")
	pf.BoolVar(&f.showTZ, "show-tz", false, "append the zone abbreviation")
	pf.StringVar(&f.dateResolution, "date-resolution", "second", "accuracy of the input: year|month|day|hour|minute|second")
	pf.StringVar(&f.displayResolution, "display-resolution", "minute", "finest field to show: year|month|day|hour|minute|second")
	pf.StringVar(&f.boundary, "boundary", "inclusive", "whether --to counts itself: inclusive|exclusive")
	pf.BoolVar(&f.onlyIntl, "only-intl", true, "never render quarter labels such as Q1 2023")

	root.AddCommand(
		newDateCmd(f),
		newRangeCmd(f),
		newTodayCmd(f),
		newTypeCmd(f),
		newVersionCmd(),
	)
	return root
}

// formatter builds a Formatter from the flags. --display-resolution is only
// passed when given; left out, the minute default is clamped without a log line
func (f *flags) formatter(cmd *cobra.Command) (*dateformat.Formatter, error) {
	date, err := dateformat.ParseResolution(f.dateResolution)
	if err != nil {
		return nil, err
	}
	boundary, err := dateformat.ParseBoundary(f.boundary)
	if err != nil {
		return nil, err
	}
	opts := []dateformat.Option{
		dateformat.WithDateResolution(date),
		dateformat.WithBoundary(boundary),
		dateformat.WithOnlyIntl(f.onlyIntl),
	}
	if cmd.Flags().Changed("display-resolution") {
		display, err := dateformat.ParseResolution(f.displayResolution)
		if err != nil {
			return nil, err
		}
		opts = append(opts, dateformat.WithDisplayResolution(display))
	}
	return dateformat.New(opts...)
}

func (f *flags) call() (dateformat.CallOptions, error) {
	o := dateformat.CallOptions{Locale: f.locale}
	if f.tz != "" {
		o.TimeZone = &dateformat.TimeZoneOptions{Name: f.tz, Show: f.showTZ}
	}
	if f.today != "" {
		t, err := ptime.ParseInstant("today", f.today)
		if err != nil {
			return o, err
		}
		o.Today = t
	}
	return o, nil
}

// span reads --from and --to
func (f *flags) span() (time.Time, time.Time, error) {
	from, err := ptime.ParseInstant("from", f.from)
	if err != nil {
		return from, from, err
	}
	to, err := ptime.ParseInstant("to", f.to)
	return from, to, err
}
