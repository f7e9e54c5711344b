// Package module wires the format endpoints into the API
package module

import (
	"github.com/simonljus/tidy-date/internal/modkit"
	"github.com/simonljus/tidy-date/internal/modkit/httpkit"
	"github.com/simonljus/tidy-date/internal/platform/net/middleware"

	formathttp "github.com/simonljus/tidy-date/internal/services/api/format/http"
	svc "github.com/simonljus/tidy-date/internal/services/api/format/service"
)

// Module implements the modkit.Module interface
type Module struct {
	built modkit.Built
	svc   svc.Service
}

// New constructs the format module around an already built service
func New(s svc.Service, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("format"),
		modkit.WithPrefix("/format"),
		modkit.WithMiddlewares(middleware.AllowContentType("application/json")),
	}, opts...)...)
	return &Module{built: b, svc: s}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.built.Mount(r, func(rr httpkit.Router) { formathttp.Register(rr, m.svc) })
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return m.built.Name }
