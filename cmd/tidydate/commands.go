package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simonljus/tidy-date/internal/core/version"
	ptime "github.com/simonljus/tidy-date/internal/platform/time"
)

func newDateCmd(f *flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "date",
		Short: "Format a single instant",
		Example: `  tidydate date --from 2022-02-03T01:02:03Z
  tidydate date --from 2023-07-01T10:30:00Z --tz Europe/Stockholm --show-tz --locale en-GB`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			at, err := ptime.ParseInstant("from", f.from)
			if err != nil {
				return err
			}
			fm, err := f.formatter(cmd)
			if err != nil {
				return err
			}
			o, err := f.call()
			if err != nil {
				return err
			}
			out, err := fm.FormatDate(at, o)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&f.from, "from", "", "instant to format (RFC 3339)")
	return cmd
}

func newRangeCmd(f *flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "range",
		Short:   "Format --from..--to, keeping the year",
		Example: `  tidydate range --from 2023-08-01T00:00:00Z --to 2023-08-12T23:59:59Z`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRange(cmd, f, false)
		},
	}
	spanFlags(cmd, f)
	return cmd
}

func newTodayCmd(f *flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "today",
		Short:   "Format --from..--to relative to today",
		Long:    "Like range, but a range within today drops its date and a range within this year drops its year.",
		Example: `  tidydate today --from 2023-08-01T00:00:00Z --to 2023-08-12T23:59:59Z --today 2023-09-16T12:00:00Z`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRange(cmd, f, true)
		},
	}
	spanFlags(cmd, f)
	cmd.Flags().StringVar(&f.today, "today", "", "anchor instant (RFC 3339); defaults to now")
	return cmd
}

func newTypeCmd(f *flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "type",
		Short: "Classify --from..--to (fullYears, sameMonth, ...)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			from, to, err := f.span()
			if err != nil {
				return err
			}
			fm, err := f.formatter(cmd)
			if err != nil {
				return err
			}
			o, err := f.call()
			if err != nil {
				return err
			}
			kind, err := fm.RangeType(from, to, o)
			if err != nil {
				return err
			}
			name := kind.String()
			if name == "" {
				name = "none"
			}
			fmt.Fprintln(cmd.OutOrStdout(), name)
			return nil
		},
	}
	spanFlags(cmd, f)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			v := version.Info()
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (commit %s, built %s)\n", v.Service, v.Version, v.Commit, v.Date)
		},
	}
}

func spanFlags(cmd *cobra.Command, f *flags) {
	cmd.Flags().StringVar(&f.from, "from", "", "range start (RFC 3339)")
	cmd.Flags().StringVar(&f.to, "to", "", "range end (RFC 3339)")
}

func runRange(cmd *cobra.Command, f *flags, today bool) error {
	from, to, err := f.span()
	if err != nil {
		return err
	}
	fm, err := f.formatter(cmd)
	if err != nil {
		return err
	}
	o, err := f.call()
	if err != nil {
		return err
	}

	var out string
	if today {
		out, err = fm.FormatRangeToday(from, to, o)
	} else {
		out, err = fm.FormatRange(from, to, o)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
