// Package api provides the HTTP API for the application
package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/simonljus/tidy-date/dateformat"
	"github.com/simonljus/tidy-date/internal/platform/config"
	"github.com/simonljus/tidy-date/internal/platform/logger"
	phttp "github.com/simonljus/tidy-date/internal/platform/net/http"
	"github.com/simonljus/tidy-date/internal/platform/net/middleware"

	"github.com/simonljus/tidy-date/internal/modkit"
	"github.com/simonljus/tidy-date/internal/modkit/httpkit"
	"github.com/simonljus/tidy-date/internal/modkit/swaggerkit"

	formatmod "github.com/simonljus/tidy-date/internal/services/api/format/module"
	formatsvc "github.com/simonljus/tidy-date/internal/services/api/format/service"
	metamod "github.com/simonljus/tidy-date/internal/services/api/meta/module"
)

// Options are the API options
type Options struct {
	Config config.Conf
	Logger *logger.Logger
	// Metrics backs both the collectors and /metrics; nil gets a private registry
	Metrics        *prometheus.Registry
	EnableProfiler bool
	EnableSwagger  bool
	CORSOrigins    []string
	MaxInFlight    int

	// Defaults apply to requests that leave a setting out
	Defaults      dateformat.Config
	DefaultLocale string
}

// Mount mounts the API service onto the given router. It fails only when the
// default formatter config is invalid
func Mount(r phttp.Router, opt Options) error {
	reg := opt.Metrics
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	// shared deps for modules
	deps := modkit.Deps{
		Log:     opt.Logger,
		Cfg:     opt.Config,
		Metrics: reg,
	}

	svc, err := formatsvc.New(formatsvc.Options{
		Defaults:      opt.Defaults,
		DefaultLocale: opt.DefaultLocale,
		Metrics:       deps.Registerer(),
	})
	if err != nil {
		return err
	}

	mods := []modkit.Module{
		metamod.New(deps),
		formatmod.New(svc),
	}

	// unversioned probes and ops endpoints
	r.Use(middleware.Heartbeat("/health"))
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)
	swaggerkit.Mount(r, opt.EnableSwagger)

	stack := httpkit.CommonStack(httpkit.StackOptions{
		CORSOrigins: opt.CORSOrigins,
		MaxInFlight: opt.MaxInFlight,
		Metrics:     middleware.NewHTTPMetrics(reg),
	})
	httpkit.MountAPIV1(r, stack, func(api httpkit.Router) {
		for _, m := range mods {
			m.MountRoutes(api)
			deps.Logger("api").Debug().Str("module", m.Name()).Msg("module mounted")
		}
	})
	return nil
}
