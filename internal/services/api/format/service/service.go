// Package service holds format use cases: request settings are merged over
// the service defaults and handed to a cached dateformat.Formatter
package service

import (
	"context"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/simonljus/tidy-date/dateformat"
	"github.com/simonljus/tidy-date/internal/core/intl"
	perr "github.com/simonljus/tidy-date/internal/platform/errors"
	"github.com/simonljus/tidy-date/internal/platform/logger"
	pnet "github.com/simonljus/tidy-date/internal/platform/net"
	str "github.com/simonljus/tidy-date/internal/platform/strings"
	"github.com/simonljus/tidy-date/internal/services/api/format/domain"
)

// Service is the format use case surface
type Service interface {
	FormatDate(ctx context.Context, in domain.DateInput) (domain.Formatted, error)
	FormatRange(ctx context.Context, in domain.RangeInput) (domain.Formatted, error)
	FormatRangeToday(ctx context.Context, in domain.RangeInput) (domain.Formatted, error)
	RangeType(ctx context.Context, in domain.RangeInput) (domain.Classified, error)
}

// Options are the service defaults
type Options struct {
	Defaults      dateformat.Config
	DefaultLocale string
	Metrics       prometheus.Registerer
}

type svc struct {
	defaults dateformat.Config
	locale   string

	// one Formatter per distinct config; formatters are immutable
	cache sync.Map // dateformat.Config -> *dateformat.Formatter

	calls *prometheus.CounterVec
}

// New constructs the service. The defaults are validated up front
func New(o Options) (Service, error) {
	s := &svc{
		defaults: o.Defaults,
		locale:   o.DefaultLocale,
	}
	if _, err := s.formatter(o.Defaults); err != nil {
		return nil, perr.WithOp(err, "format.New")
	}
	reg := o.Metrics
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	s.calls = promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
		Name: "tidydate_format_total",
		Help: "Format calls by operation and outcome",
	}, []string{"op", "outcome"})
	return s, nil
}

func (s *svc) formatter(c dateformat.Config) (*dateformat.Formatter, error) {
	if f, ok := s.cache.Load(c); ok {
		return f.(*dateformat.Formatter), nil
	}
	f, err := dateformat.New(dateformat.WithConfig(c))
	if err != nil {
		return nil, err
	}
	actual, _ := s.cache.LoadOrStore(c, f)
	return actual.(*dateformat.Formatter), nil
}

// merge lays request settings over the defaults
func (s *svc) merge(in domain.Settings) (dateformat.Config, error) {
	c := s.defaults
	if in.DateResolution != "" {
		r, err := dateformat.ParseResolution(in.DateResolution)
		if err != nil {
			return c, perr.WithField(err, "date_resolution")
		}
		c.DateResolution = r
	}
	if in.DisplayResolution != "" {
		r, err := dateformat.ParseResolution(in.DisplayResolution)
		if err != nil {
			return c, perr.WithField(err, "display_resolution")
		}
		c.DisplayResolution = r
	}
	if in.Boundary != "" {
		b, err := dateformat.ParseBoundary(in.Boundary)
		if err != nil {
			return c, err
		}
		c.Boundary = b
	}
	if in.OnlyIntl != nil {
		c.OnlyIntl = *in.OnlyIntl
	}
	return c, nil
}

func (s *svc) call(ctx context.Context, in domain.Render) dateformat.CallOptions {
	o := dateformat.CallOptions{Locale: str.FirstNonEmpty(in.Locale, pnet.Locale(ctx), s.locale)}
	if in.TimeZone != "" {
		o.TimeZone = &dateformat.TimeZoneOptions{Name: in.TimeZone, Show: in.ShowTimeZone}
	}
	return o
}

// prepare resolves the formatter and call options shared by every operation
func (s *svc) prepare(ctx context.Context, set domain.Settings, r domain.Render) (*dateformat.Formatter, dateformat.CallOptions, error) {
	c, err := s.merge(set)
	if err != nil {
		return nil, dateformat.CallOptions{}, err
	}
	f, err := s.formatter(c)
	if err != nil {
		return nil, dateformat.CallOptions{}, err
	}
	return f, s.call(ctx, r), nil
}

// FormatDate implements Service
func (s *svc) FormatDate(ctx context.Context, in domain.DateInput) (domain.Formatted, error) {
	f, o, err := s.prepare(ctx, in.Settings, in.Render)
	if err != nil {
		return domain.Formatted{}, s.fail(ctx, "date", err, o)
	}
	text, err := f.FormatDate(*in.Date, o)
	if err != nil {
		return domain.Formatted{}, s.fail(ctx, "date", err, o)
	}
	return s.ok("date", f, o, text), nil
}

// FormatRange implements Service
func (s *svc) FormatRange(ctx context.Context, in domain.RangeInput) (domain.Formatted, error) {
	f, o, err := s.prepare(ctx, in.Settings, in.Render)
	if err != nil {
		return domain.Formatted{}, s.fail(ctx, "range", err, o)
	}
	text, err := f.FormatRange(*in.From, *in.To, o)
	if err != nil {
		return domain.Formatted{}, s.fail(ctx, "range", err, o)
	}
	return s.ok("range", f, o, text), nil
}

// FormatRangeToday implements Service
func (s *svc) FormatRangeToday(ctx context.Context, in domain.RangeInput) (domain.Formatted, error) {
	f, o, err := s.prepare(ctx, in.Settings, in.Render)
	if err != nil {
		return domain.Formatted{}, s.fail(ctx, "range_today", err, o)
	}
	if in.Today != nil {
		o.Today = *in.Today
	}
	text, err := f.FormatRangeToday(*in.From, *in.To, o)
	if err != nil {
		return domain.Formatted{}, s.fail(ctx, "range_today", err, o)
	}
	return s.ok("range_today", f, o, text), nil
}

// RangeType implements Service
func (s *svc) RangeType(ctx context.Context, in domain.RangeInput) (domain.Classified, error) {
	f, o, err := s.prepare(ctx, in.Settings, in.Render)
	if err != nil {
		return domain.Classified{}, s.fail(ctx, "type", err, o)
	}
	kind, err := f.RangeType(*in.From, *in.To, o)
	if err != nil {
		return domain.Classified{}, s.fail(ctx, "type", err, o)
	}
	s.calls.WithLabelValues("type", "ok").Inc()
	return domain.Classified{RangeType: kind.String(), Config: configOf(f.Config())}, nil
}

func (s *svc) ok(op string, f *dateformat.Formatter, o dateformat.CallOptions, text string) domain.Formatted {
	s.calls.WithLabelValues(op, "ok").Inc()
	return domain.Formatted{
		Text:   text,
		Locale: intl.Default().Resolve(o.Locale).Tag(),
		Config: configOf(f.Config()),
	}
}

// fail maps formatter errors onto the wire taxonomy. Zone lookups come back
// from the time package unwrapped, so anything foreign here is a bad zone
func (s *svc) fail(ctx context.Context, op string, err error, o dateformat.CallOptions) error {
	s.calls.WithLabelValues(op, "error").Inc()
	if _, ours := perr.As(err); !ours {
		name := ""
		if o.TimeZone != nil {
			name = o.TimeZone.Name
		}
		err = perr.WithField(perr.Wrapf(err, perr.ErrorCodeTimeZone, "unknown time zone %q", name), "time_zone")
	}
	if e, ok := perr.As(err); ok && e.Code() == perr.ErrorCodeRange && e.Field() == "" {
		err = perr.WithField(err, "from")
	}
	logger.C(ctx).Debug().Err(err).Str("op", op).Msg("format rejected")
	return err
}

func configOf(c dateformat.Config) domain.Config {
	return domain.Config{
		DateResolution:    c.DateResolution.String(),
		DisplayResolution: c.DisplayResolution.String(),
		Boundary:          c.Boundary.String(),
		OnlyIntl:          c.OnlyIntl,
	}
}
