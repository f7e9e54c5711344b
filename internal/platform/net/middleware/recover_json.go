package middleware

import (
	stdhttp "net/http"
	"runtime/debug"

	perr "github.com/simonljus/tidy-date/internal/platform/errors"
	"github.com/simonljus/tidy-date/internal/platform/logger"
	pnet "github.com/simonljus/tidy-date/internal/platform/net"
	phttp "github.com/simonljus/tidy-date/internal/platform/net/http"
)

// RecoverJSON converts panics into a JSON 500 envelope and logs the stack with
// the request id
func RecoverJSON(next stdhttp.Handler) stdhttp.Handler {
	return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == stdhttp.ErrAbortHandler {
				panic(v)
			}
			reqID := pnet.RequestID(r.Context())
			logger.C(r.Context()).Error().
				Interface("panic", v).
				Bytes("stack", debug.Stack()).
				Msg("panic recovered")

			status, body := pnet.Error(perr.PanicErrf("internal error"), reqID)
			phttp.JSON(w, status, body)
		}()
		next.ServeHTTP(w, r)
	})
}
