// @title         tidy-date API
// @version       0.1.0
// @description   Formats dates and date ranges as short human readable text

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/simonljus/tidy-date/dateformat"
	"github.com/simonljus/tidy-date/internal/platform/config"
	"github.com/simonljus/tidy-date/internal/platform/logger"
	phttp "github.com/simonljus/tidy-date/internal/platform/net/http"
	"github.com/simonljus/tidy-date/internal/platform/net/middleware"

	"github.com/simonljus/tidy-date/internal/services/api"
)

var ladder = []string{"year", "month", "day", "hour", "minute", "second"}

func main() {
	// bring up logging early
	logger.Init(logger.FromEnv())
	l := logger.Get()

	root := config.New().Prefix("TIDYDATE_")
	apiCfg := root.Prefix("API_") // TIDYDATE_API_*

	defaults, err := formatDefaults(root)
	if err != nil {
		l.Panic().Err(err).Msg("invalid formatter defaults")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	// http server (reads TIDYDATE_API_PORT / TIDYDATE_API_READ_HEADER_TIMEOUT)
	timeout := apiCfg.MayDuration("TIMEOUT", 5*time.Second)
	srv := phttp.NewServer(apiCfg, func(m *chi.Mux) { m.Use(middleware.Defaults(timeout)...) })

	if err := api.Mount(srv.Router(), api.Options{
		Config:         apiCfg,
		Logger:         l,
		Metrics:        reg,
		EnableProfiler: apiCfg.MayBool("PROFILER", false),
		EnableSwagger:  apiCfg.MayBool("SWAGGER", false),
		CORSOrigins:    apiCfg.MayCSV("CORS_ORIGINS", nil),
		MaxInFlight:    apiCfg.MayInt("MAX_IN_FLIGHT", 0),
		Defaults:       defaults,
		DefaultLocale:  root.MayString("DEFAULT_LOCALE", "en-US"),
	}); err != nil {
		l.Panic().Err(err).Msg("api.Mount failed")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.Run(gctx) })
	g.Go(func() error {
		<-gctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), apiCfg.MayDuration("SHUTDOWN_TIMEOUT", 10*time.Second))
		defer cancel()
		l.Info().Msg("shutting down")
		return srv.Shutdown(sctx)
	})

	// run
	if err := g.Wait(); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}

// formatDefaults reads the formatter config every request starts from.
// Unknown enum values panic in config; the result is validated by dateformat
func formatDefaults(c config.Conf) (dateformat.Config, error) {
	d := dateformat.DefaultConfig()

	date, err := dateformat.ParseResolution(c.MayEnum("DATE_RESOLUTION", d.DateResolution.String(), ladder...))
	if err != nil {
		return d, err
	}
	boundary, err := dateformat.ParseBoundary(c.MayEnum("BOUNDARY", d.Boundary.String(), "inclusive", "exclusive"))
	if err != nil {
		return d, err
	}

	opts := []dateformat.Option{
		dateformat.WithDateResolution(date),
		dateformat.WithBoundary(boundary),
		dateformat.WithOnlyIntl(c.MayBool("ONLY_INTL", d.OnlyIntl)),
		dateformat.WithLogger(logger.Named("config")),
	}
	// unset keeps the minute default, clamped quietly to coarser data
	if v := c.MayEnum("DISPLAY_RESOLUTION", "", ladder...); v != "" {
		display, err := dateformat.ParseResolution(v)
		if err != nil {
			return d, err
		}
		opts = append(opts, dateformat.WithDisplayResolution(display))
	}

	f, err := dateformat.New(opts...)
	if err != nil {
		return d, err
	}
	return f.Config(), nil
}
