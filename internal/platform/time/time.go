// Package time contains time related helpers
package time

import (
	"time"

	perr "github.com/simonljus/tidy-date/internal/platform/errors"
)

// Ptr returns a pointer to t or nil if t is zero
func Ptr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

// ParseInstant reads an RFC 3339 instant, fractional seconds allowed. field
// names the input in the returned invalid-argument error
func ParseInstant(field, s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, perr.WithField(perr.InvalidArgf("%s is required", field), field)
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, perr.WithField(perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "%s must be an RFC 3339 instant", field), field)
	}
	return t, nil
}
