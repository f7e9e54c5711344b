package middleware

import (
	"net/http"

	"github.com/simonljus/tidy-date/internal/platform/logger"
	pnet "github.com/simonljus/tidy-date/internal/platform/net"

	"github.com/google/uuid"
	"golang.org/x/text/language"
)

const (
	headerRequestID = "X-Request-ID"
	maxRequestIDLen = 128
)

// RequestID propagates an incoming X-Request-ID or mints a uuid, mirrors it on
// the response and stores it on the context together with the first
// Accept-Language tag
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := r.Header.Get(headerRequestID)
			if reqID == "" || len(reqID) > maxRequestIDLen {
				reqID = uuid.NewString()
			}
			w.Header().Set(headerRequestID, reqID)

			ctx := pnet.WithRequest(r.Context(), reqID, AcceptLocale(r))
			ctx = logger.WithRequest(ctx, reqID, r.URL.Path)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AcceptLocale returns the highest weighted tag of Accept-Language, or "" when
// the header is absent, unparsable or a wildcard
func AcceptLocale(r *http.Request) string {
	h := r.Header.Get("Accept-Language")
	if h == "" {
		return ""
	}
	tags, _, err := language.ParseAcceptLanguage(h)
	if err != nil || len(tags) == 0 || tags[0] == language.Und {
		return ""
	}
	return tags[0].String()
}
