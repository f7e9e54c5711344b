package httpkit

import (
	"net/http"

	phttp "github.com/simonljus/tidy-date/internal/platform/net/http"
)

// PostJSON mounts a JSON handler under POST; the body is decoded and validated first
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	phttp.PostJSON(r, path, h)
}

// Get registers a no-body handler and uses the envelope adapter
func Get(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, Call(h))
}
