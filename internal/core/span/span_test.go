package span

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/simonljus/tidy-date/internal/core/calendar"
	"github.com/simonljus/tidy-date/internal/core/zone"
)

func wall(s string) zone.Zoned {
	t, err := time.Parse("2006-01-02T15:04:05.000", s)
	if err != nil {
		panic(err)
	}
	return zone.Wall(t)
}

func mustEqual(t *testing.T, label string, got Bounded, want string) {
	t.Helper()
	if w := wall(want).Time(); !got.Time().Equal(w) {
		t.Fatalf("%s = %s, want %s", label, got.Time().Format(time.RFC3339Nano), want)
	}
}

func TestStartSnapsToDisplayPeriod(t *testing.T) {
	in := wall("2022-02-03T01:23:45.000")
	mustEqual(t, "year", Start(in, calendar.Year), "2022-01-01T00:00:00.000")
	mustEqual(t, "month", Start(in, calendar.Month), "2022-02-01T00:00:00.000")
	mustEqual(t, "hour", Start(in, calendar.Hour), "2022-02-03T01:00:00.000")
}

func TestEndBoundaryModes(t *testing.T) {
	cases := []struct {
		name    string
		to      string
		dateRes calendar.Resolution
		display calendar.Resolution
		b       Boundary
		want    string
	}{
		{"inclusive snaps to display end", "2023-10-15T15:16:17.000", calendar.Second, calendar.Minute, Inclusive, "2023-10-15T15:16:59.999"},
		{"exclusive mid period behaves inclusive", "2024-01-01T01:34:00.000", calendar.Second, calendar.Year, Exclusive, "2024-12-31T23:59:59.999"},
		{"exclusive on a year edge backs off a year", "2024-12-31T23:59:59.000", calendar.Year, calendar.Year, Exclusive, "2023-12-31T23:59:59.999"},
		{"exclusive on a month edge backs off a day", "2023-09-01T00:00:00.000", calendar.Day, calendar.Day, Exclusive, "2023-08-31T23:59:59.999"},
		{"exclusive inside the month keeps the day", "2023-08-13T00:00:00.000", calendar.Day, calendar.Day, Exclusive, "2023-08-13T23:59:59.999"},
		{"exclusive month display", "2024-01-01T01:34:00.000", calendar.Second, calendar.Month, Exclusive, "2024-01-31T23:59:59.999"},
		{"exclusive on a minute edge", "2023-08-13T10:00:00.000", calendar.Second, calendar.Minute, Exclusive, "2023-08-13T09:59:59.999"},
	}
	for _, c := range cases {
		mustEqual(t, c.name, End(wall(c.to), c.dateRes, c.display, c.b), c.want)
	}
}

func TestEndBoundarySymmetry(t *testing.T) {
	// on a data unit edge the two modes differ by exactly one unit
	onEdge := wall("2023-09-01T00:00:00.000")
	inc := End(onEdge, calendar.Day, calendar.Day, Inclusive).Time()
	exc := End(onEdge, calendar.Day, calendar.Day, Exclusive).Time()
	if d := inc.Sub(exc); d != 24*time.Hour {
		t.Fatalf("edge difference = %s, want 24h", d)
	}
	mid := wall("2023-09-15T12:00:00.000")
	if !End(mid, calendar.Day, calendar.Day, Inclusive).Time().Equal(End(mid, calendar.Day, calendar.Day, Exclusive).Time()) {
		t.Fatalf("mid period ends should agree")
	}
}

func TestDisplayEnd(t *testing.T) {
	to := wall("2023-10-01T14:30:59.999")
	mustEqual(t, "inclusive with time", DisplayEnd(to, calendar.Second, calendar.Minute, Inclusive, true), "2023-10-01T14:31:59.999")
	mustEqual(t, "without time", DisplayEnd(to, calendar.Second, calendar.Minute, Inclusive, false), "2023-10-01T14:30:59.999")

	raw := wall("2024-01-01T01:34:00.000")
	mustEqual(t, "exclusive with time", DisplayEnd(raw, calendar.Second, calendar.Minute, Exclusive, true), "2024-01-01T01:34:59.999")

	hourly := wall("2023-10-15T15:16:17.000")
	mustEqual(t, "hour data", DisplayEnd(hourly, calendar.Hour, calendar.Hour, Inclusive, true), "2023-10-15T16:59:59.999")

	// day data never advances
	daily := wall("2023-10-15T00:00:00.000")
	mustEqual(t, "day data", DisplayEnd(daily, calendar.Day, calendar.Day, Inclusive, true), "2023-10-15T23:59:59.999")
}

func classify(from, to string, dateRes, display calendar.Resolution, b Boundary) RangeType {
	return Classify(Start(wall(from), display), End(wall(to), dateRes, display, b), display)
}

func TestClassify(t *testing.T) {
	cases := []struct {
		from, to string
		dateRes  calendar.Resolution
		display  calendar.Resolution
		b        Boundary
		want     RangeType
	}{
		{"2023-08-01T00:00:00.000", "2023-08-12T23:59:59.999", calendar.Second, calendar.Minute, Inclusive, SameMonth},
		{"2023-01-01T00:00:00.000", "2023-12-31T23:59:59.999", calendar.Second, calendar.Minute, Inclusive, FullYears},
		{"2023-01-01T00:00:00.000", "2023-03-31T23:59:59.999", calendar.Second, calendar.Day, Inclusive, FullQuarters},
		{"2023-01-01T00:00:00.000", "2023-06-30T23:59:59.999", calendar.Second, calendar.Minute, Inclusive, FullQuarters},
		{"2022-02-01T00:00:00.000", "2024-01-01T01:34:00.000", calendar.Second, calendar.Year, Exclusive, FullYears},
		{"2022-02-01T00:00:00.000", "2024-01-01T01:34:00.000", calendar.Second, calendar.Month, Exclusive, FullMonths},
		{"2022-02-01T00:00:00.000", "2024-01-01T01:34:00.000", calendar.Second, calendar.Minute, Exclusive, RangeNone},
		{"2023-01-01T00:00:00.000", "2023-01-31T23:59:59.999", calendar.Second, calendar.Minute, Inclusive, FullMonths},
		{"2023-01-01T00:00:00.000", "2023-01-01T23:59:59.999", calendar.Second, calendar.Minute, Inclusive, SameDay},
		{"2023-01-03T00:00:00.000", "2023-05-29T23:59:59.999", calendar.Second, calendar.Minute, Inclusive, SameYear},
		{"2022-05-01T00:00:00.000", "2023-05-29T23:59:59.999", calendar.Second, calendar.Minute, Inclusive, RangeNone},
		{"2022-02-01T00:00:00.000", "2022-02-01T23:59:59.000", calendar.Month, calendar.Month, Inclusive, FullMonths},
		{"2022-02-01T00:00:00.000", "2022-10-15T23:59:59.000", calendar.Day, calendar.Day, Inclusive, SameYear},
		{"2022-02-03T01:23:45.000", "2023-10-15T15:16:17.000", calendar.Year, calendar.Year, Inclusive, FullYears},
	}
	for _, c := range cases {
		if got := classify(c.from, c.to, c.dateRes, c.display, c.b); got != c.want {
			t.Fatalf("Classify(%s, %s, display %s) = %q, want %q", c.from, c.to, c.display, got, c.want)
		}
	}
}

func TestClassifyYearsBeatQuarters(t *testing.T) {
	for _, display := range calendar.Resolutions() {
		if got := classify("2022-01-01T00:00:00.000", "2023-12-31T23:59:59.999", calendar.Second, display, Inclusive); got != FullYears {
			t.Fatalf("display %s: got %q", display, got)
		}
	}
}

func TestSameDayNeedsDayResolution(t *testing.T) {
	from, to := wall("2023-05-02T00:00:00.000"), wall("2023-05-02T10:00:00.000")
	// at month display the day is snapped away and the range fills its month
	if got := Classify(Start(from, calendar.Month), End(to, calendar.Second, calendar.Month, Inclusive), calendar.Month); got != FullMonths {
		t.Fatalf("month display got %q", got)
	}
	if got := Classify(Start(from, calendar.Day), End(to, calendar.Second, calendar.Day, Inclusive), calendar.Day); got != SameDay {
		t.Fatalf("day display got %q", got)
	}
}

func TestRangeTypeText(t *testing.T) {
	if RangeNone.String() != "" || FullQuarters.String() != "fullQuarters" || SameYear.String() != "sameYear" {
		t.Fatalf("names off")
	}
	if b, err := SameDay.MarshalText(); err != nil || string(b) != "sameDay" {
		t.Fatalf("MarshalText = %q %v", b, err)
	}
	if _, err := RangeType(42).MarshalText(); err == nil {
		t.Fatalf("unknown type should not marshal")
	}
}

func TestParseBoundary(t *testing.T) {
	if b, err := ParseBoundary("Exclusive"); err != nil || b != Exclusive {
		t.Fatalf("ParseBoundary = %v %v", b, err)
	}
	var b Boundary
	if err := b.UnmarshalText([]byte("inclusive")); err != nil || b != Inclusive {
		t.Fatalf("UnmarshalText = %v %v", b, err)
	}
	if _, err := ParseBoundary("half-open"); err == nil {
		t.Fatalf("unknown boundary accepted")
	}
}

func rangeFields(from, to string, display calendar.Resolution) Fields {
	return RangeFields(Start(wall(from), display), End(wall(to), calendar.Second, display, Inclusive), display)
}

func TestRangeFields(t *testing.T) {
	cases := []struct {
		name     string
		from, to string
		display  calendar.Resolution
		want     Fields
	}{
		{"same month days", "2023-08-01T00:00:00.000", "2023-08-12T23:59:59.999", calendar.Minute,
			Fields{Year: true, Month: true, Day: true}},
		{"full year", "2023-01-01T00:00:00.000", "2023-12-31T23:59:59.999", calendar.Minute,
			Fields{Year: true}},
		{"full months", "2022-01-01T00:00:00.000", "2022-02-28T23:59:59.999", calendar.Minute,
			Fields{Year: true, Month: true}},
		{"same day with time", "2023-10-01T00:11:00.000", "2023-10-01T14:30:59.999", calendar.Minute,
			Fields{Year: true, Month: true, Day: true, Hour: true, Minute: true}},
		{"whole hour", "2023-01-01T12:00:00.000", "2023-01-01T12:59:59.999", calendar.Minute,
			Fields{Year: true, Month: true, Day: true, Hour: true}},
		{"seconds", "2023-01-01T00:11:00.000", "2023-01-02T14:30:01.000", calendar.Second,
			Fields{Year: true, Month: true, Day: true, Hour: true, Minute: true, Second: true}},
		{"year display", "2022-02-03T01:23:45.000", "2023-10-15T15:16:17.000", calendar.Year,
			Fields{Year: true}},
	}
	for _, c := range cases {
		if diff := cmp.Diff(c.want, rangeFields(c.from, c.to, c.display)); diff != "" {
			t.Fatalf("%s: fields mismatch (-want +got):\n%s", c.name, diff)
		}
	}
}

func TestRangeFieldsMonotonic(t *testing.T) {
	// raising the display resolution only adds fields unless a whole period is covered
	from, to := "2022-02-03T01:23:45.000", "2023-10-15T15:16:17.000"
	prev := rangeFields(from, to, calendar.Year)
	for _, r := range calendar.Resolutions()[1:] {
		cur := rangeFields(from, to, r)
		if (prev.Month && !cur.Month) || (prev.Day && !cur.Day) || (prev.Hour && !cur.Hour) || (prev.Minute && !cur.Minute) {
			t.Fatalf("display %s hid a field shown at a coarser display: %+v -> %+v", r, prev, cur)
		}
		prev = cur
	}
}

func TestDateFields(t *testing.T) {
	got := DateFields(Start(wall("2022-02-03T01:02:03.000"), calendar.Minute), calendar.Minute)
	want := Fields{Year: true, Month: true, Day: true, Hour: true, Minute: true}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}

	midnight := DateFields(Start(wall("2022-02-03T00:00:00.000"), calendar.Second), calendar.Second)
	if diff := cmp.Diff(Fields{Year: true, Month: true, Day: true}, midnight); diff != "" {
		t.Fatalf("midnight mismatch (-want +got):\n%s", diff)
	}

	onHour := DateFields(Start(wall("2022-02-03T14:00:00.000"), calendar.Minute), calendar.Minute)
	if !onHour.Hour || onHour.Minute {
		t.Fatalf("full hour should hide minutes: %+v", onHour)
	}
}

func TestTodayFields(t *testing.T) {
	today := wall("2023-09-16T12:00:00.000")
	fields := func(from, to string) Fields {
		return TodayFields(Start(wall(from), calendar.Minute), End(wall(to), calendar.Second, calendar.Minute, Inclusive), today, calendar.Minute)
	}

	if diff := cmp.Diff(Fields{Hour: true, Minute: true}, fields("2023-09-16T12:00:00.000", "2023-09-16T13:00:00.000")); diff != "" {
		t.Fatalf("today hours (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(Fields{Month: true, Day: true}, fields("2023-08-01T00:00:00.000", "2023-08-12T23:59:59.999")); diff != "" {
		t.Fatalf("this year (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(Fields{Year: true}, fields("2023-01-01T00:00:00.000", "2023-12-31T23:59:59.999")); diff != "" {
		t.Fatalf("full current year must keep the year (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(Fields{Year: true, Month: true, Day: true}, fields("2022-05-01T00:00:00.000", "2023-05-29T23:59:59.999")); diff != "" {
		t.Fatalf("across years (-want +got):\n%s", diff)
	}
	// whole day today shows no time, so month and day stay
	if diff := cmp.Diff(Fields{Month: true, Day: true}, fields("2023-09-16T00:00:00.000", "2023-09-16T23:59:59.999")); diff != "" {
		t.Fatalf("whole day today (-want +got):\n%s", diff)
	}
}
