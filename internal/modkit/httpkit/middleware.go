package httpkit

import (
	"net/http"

	"github.com/simonljus/tidy-date/internal/platform/net/middleware"
)

// StackOptions tunes the versioned API stack
type StackOptions struct {
	// CORSOrigins enables CORS when non-empty
	CORSOrigins []string
	// MaxInFlight caps concurrent requests; 0 disables throttling
	MaxInFlight int
	// Metrics records per route counters when set
	Metrics *middleware.HTTPMetrics
}

// CommonStack returns the middleware for versioned API routes. The process
// wide chain (request id, recoverer, access log) is middleware.Defaults
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	var stack []func(http.Handler) http.Handler

	// observability first so throttled and rejected requests are counted
	if o.Metrics != nil {
		stack = append(stack, o.Metrics.Handler)
	}
	if len(o.CORSOrigins) > 0 {
		stack = append(stack, middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.CORSOrigins, MaxAge: 300}))
	}
	if o.MaxInFlight > 0 {
		stack = append(stack, middleware.Throttle(o.MaxInFlight))
	}
	return stack
}
