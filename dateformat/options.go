package dateformat

import (
	"github.com/simonljus/tidy-date/internal/core/calendar"
	"github.com/simonljus/tidy-date/internal/core/span"
	"github.com/simonljus/tidy-date/internal/platform/logger"
)

// Resolution is a calendar granularity, Year through Second
type Resolution = calendar.Resolution

// The resolution ladder, coarse to fine
const (
	Year   = calendar.Year
	Month  = calendar.Month
	Day    = calendar.Day
	Hour   = calendar.Hour
	Minute = calendar.Minute
	Second = calendar.Second
)

// Boundary says whether a range end counts its own last unit
type Boundary = span.Boundary

const (
	Inclusive = span.Inclusive
	Exclusive = span.Exclusive
)

// ParseResolution maps "year".."second" to a Resolution
func ParseResolution(s string) (Resolution, error) { return calendar.ParseResolution(s) }

// ParseBoundary maps "inclusive" or "exclusive" to a Boundary
func ParseBoundary(s string) (Boundary, error) { return span.ParseBoundary(s) }

// Config is the resolved, immutable formatter configuration
type Config struct {
	DateResolution    Resolution `json:"date_resolution"`
	DisplayResolution Resolution `json:"display_resolution"`
	Boundary          Boundary   `json:"boundary"`
	// OnlyIntl false lets full quarter ranges render as "Q1–Q2 2023"
	OnlyIntl bool `json:"only_intl"`
}

// DefaultConfig is second data shown to the minute, inclusive ends
func DefaultConfig() Config {
	return Config{
		DateResolution:    Second,
		DisplayResolution: Minute,
		Boundary:          Inclusive,
		OnlyIntl:          true,
	}
}

// Option mutates construction settings
type Option func(*settings)

type settings struct {
	cfg        Config
	displaySet bool
	log        *logger.Logger
}

// WithDateResolution sets how accurate the input instants are
func WithDateResolution(r Resolution) Option {
	return func(s *settings) { s.cfg.DateResolution = r }
}

// WithDisplayResolution sets the finest field to show. It is clamped to the
// date resolution when finer
func WithDisplayResolution(r Resolution) Option {
	return func(s *settings) {
		s.cfg.DisplayResolution = r
		s.displaySet = true
	}
}

// WithBoundary sets whether range ends are inclusive or exclusive
func WithBoundary(b Boundary) Option {
	return func(s *settings) { s.cfg.Boundary = b }
}

// WithOnlyIntl toggles the quarter label path off (true) or on (false)
func WithOnlyIntl(only bool) Option {
	return func(s *settings) { s.cfg.OnlyIntl = only }
}

// WithConfig replaces every setting at once, e.g. a Config decoded from a request
func WithConfig(c Config) Option {
	return func(s *settings) {
		s.cfg = c
		s.displaySet = true
	}
}

// WithLogger sets the logger used for construction diagnostics
func WithLogger(l *logger.Logger) Option {
	return func(s *settings) { s.log = l }
}
