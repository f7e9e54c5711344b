package modkit

import (
	"net/http"
	"strings"

	"github.com/simonljus/tidy-date/internal/modkit/httpkit"
)

// Built is a plain struct with the fields modules care about
type Built struct {
	Name   string
	Prefix string
	Mw     []func(http.Handler) http.Handler

	// extra endpoints, never nil
	Register func(httpkit.Router)
}

// Build applies Option funcs to an internal buildCfg and returns a plain struct
func Build(opts ...Option) Built {
	var c buildCfg
	for _, o := range opts {
		o(&c)
	}
	if c.register == nil {
		c.register = func(httpkit.Router) {}
	}
	return Built{
		Name:     c.name,
		Prefix:   normalizePrefix(c.prefix),
		Mw:       append([]func(http.Handler) http.Handler(nil), c.mw...),
		Register: c.register,
	}
}

// normalizePrefix yields "" or "/x" without a trailing slash
func normalizePrefix(p string) string {
	p = strings.Trim(strings.TrimSpace(p), "/")
	if p == "" {
		return ""
	}
	return "/" + p
}

// Mount mounts a module's routes under its prefix with its middleware.
// An empty prefix mounts straight on r inside a group
func (b Built) Mount(r httpkit.Router, routes func(httpkit.Router)) {
	mount := func(rr httpkit.Router) {
		routes(rr)
		b.Register(rr)
	}
	if b.Prefix == "" {
		r.Group(func(g httpkit.Router) {
			if len(b.Mw) > 0 {
				g.Use(b.Mw...)
			}
			mount(g)
		})
		return
	}
	httpkit.MountUnder(r, b.Prefix, b.Mw, mount)
}
