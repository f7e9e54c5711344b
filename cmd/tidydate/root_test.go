package main

import (
	"bytes"
	"strings"
	"testing"

	perr "github.com/simonljus/tidy-date/internal/platform/errors"
	kit "github.com/simonljus/tidy-date/internal/platform/testkit"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return strings.TrimSuffix(out.String(), "\n"), err
}

const sep = "\u2009\u2013\u2009"

func TestCommands(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"date", []string{"date", "--from", "2022-02-03T01:02:03Z"}, "Feb 3, 2022, 1:02\u202FAM"},
		{"range", []string{"range", "--from", "2023-08-01T00:00:00Z", "--to", "2023-08-12T23:59:59.999Z"}, "Aug 1" + sep + "12, 2023"},
		{"range en-GB", []string{"range", "--locale", "en-GB", "--from", "2023-08-01T00:00:00Z", "--to", "2023-08-12T23:59:59.999Z"}, "1\u201312 Aug 2023"},
		{"today", []string{"today", "--today", "2023-09-16T12:00:00Z", "--from", "2023-08-01T00:00:00Z", "--to", "2023-08-12T23:59:59.999Z"}, "Aug 1" + sep + "12"},
		{"full year", []string{"range", "--from", "2023-01-01T00:00:00Z", "--to", "2023-12-31T23:59:59.999Z"}, "2023"},
		{"type", []string{"type", "--from", "2023-08-01T00:00:00Z", "--to", "2023-08-12T23:59:59.999Z"}, "sameMonth"},
		{"type none", []string{"type", "--from", "2022-05-01T00:00:00Z", "--to", "2023-05-29T23:59:59.999Z"}, "none"},
		{"quarters", []string{"range", "--only-intl=false", "--display-resolution", "day", "--from", "2023-01-01T00:00:00Z", "--to", "2023-03-31T23:59:59.999Z"}, "Q1 2023"},
	}
	for _, tc := range cases {
		got, err := run(t, tc.args...)
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if got != tc.want {
			t.Fatalf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestTimeZoneFlags(t *testing.T) {
	kit.MustZone(t, "Europe/Stockholm")
	got, err := run(t, "date", "--locale", "en-GB", "--tz", "Europe/Stockholm", "--show-tz", "--from", "2023-07-01T10:30:00Z")
	if err != nil || got != "1 Jul 2023, 12:30 CEST" {
		t.Fatalf("date with zone = %q %v", got, err)
	}
}

func TestVersion(t *testing.T) {
	got, err := run(t, "version")
	if err != nil || !strings.HasPrefix(got, "tidydate ") {
		t.Fatalf("version = %q %v", got, err)
	}
}

func TestFlagErrors(t *testing.T) {
	if _, err := run(t, "range", "--from", "2023-08-01T00:00:00Z"); !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("missing --to err = %v", err)
	}
	if _, err := run(t, "date", "--from", "yesterday"); !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("bad --from err = %v", err)
	}
	if _, err := run(t, "range", "--boundary", "open", "--from", "2023-08-01T00:00:00Z", "--to", "2023-08-02T00:00:00Z"); !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("bad --boundary err = %v", err)
	}
	if _, err := run(t, "range", "--from", "2023-09-01T00:00:00Z", "--to", "2023-08-01T00:00:00Z"); !perr.IsCode(err, perr.ErrorCodeRange) {
		t.Fatalf("reversed range err = %v", err)
	}
}
