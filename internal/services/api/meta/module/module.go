// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"time"

	"github.com/simonljus/tidy-date/internal/core/version"
	"github.com/simonljus/tidy-date/internal/modkit"
	"github.com/simonljus/tidy-date/internal/modkit/httpkit"

	metahttp "github.com/simonljus/tidy-date/internal/services/api/meta/http"
)

// Module implements the modkit.Module interface
type Module struct {
	built     modkit.Built
	startedAt time.Time
}

// New constructs a meta module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	deps.Logger("meta").Debug().Str("prefix", b.Prefix).Msg("meta module built")
	return &Module{built: b, startedAt: time.Now()}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.built.Mount(r, func(rr httpkit.Router) {
		metahttp.Register(rr, metahttp.Deps{
			ServiceName: version.Info().Service,
			StartedAt:   m.startedAt,
		})
	})
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return m.built.Name }
