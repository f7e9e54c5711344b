// Package http provides meta endpoints
package http

import (
	"net/http"
	"time"

	"github.com/simonljus/tidy-date/internal/core/intl"
	"github.com/simonljus/tidy-date/internal/core/version"
	"github.com/simonljus/tidy-date/internal/core/zone"
	"github.com/simonljus/tidy-date/internal/modkit/httpkit"
)

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	// Probe is the zone loaded by /ready to prove tzdata is reachable
	Probe string
	// Now is swapped in tests
	Now func() time.Time
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.Probe == "" {
		d.Probe = "Europe/Stockholm"
	}
	h := &handlers{deps: d}

	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
	httpkit.Get(r, "/locales", h.locales)
}

// ReadyCheck describes a single dependency check
type ReadyCheck struct {
	Name   string `json:"name"   example:"tzdata"`
	Status string `json:"status" example:"ok"` // ok fail
	Error  string `json:"error,omitempty" example:"unknown time zone Europe/Stockholm"`
}

// ReadyResponse summarizes readiness
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"` // ok fail
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2025-09-03T13:05:00Z"`
}

// ServiceResponse describes service info
type ServiceResponse struct {
	Name    string `json:"name"    example:"tidydate"`
	Started string `json:"started" example:"2025-09-03T13:00:00Z"`
	Uptime  int64  `json:"uptime"  example:"300"`
}

// LocalesResponse lists the locales with their own tables
type LocalesResponse struct {
	Locales  []string `json:"locales"  example:"en,en-GB,pt-BR"`
	Fallback string   `json:"fallback" example:"en"`
}

// @Summary Readiness probe
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse ok
// @Router /v1/meta/ready [get]
func (h *handlers) ready(_ *http.Request) (any, error) {
	tz := ReadyCheck{Name: "tzdata", Status: "ok"}
	if _, err := zone.Load(h.deps.Probe); err != nil {
		tz.Status, tz.Error = "fail", err.Error()
	}
	loc := ReadyCheck{Name: "locales", Status: "ok"}
	if len(intl.Default().Supported()) == 0 {
		loc.Status, loc.Error = "fail", "no locale tables loaded"
	}

	overall := "ok"
	if tz.Status != "ok" || loc.Status != "ok" {
		overall = "fail"
	}
	return ReadyResponse{
		Status: overall,
		Checks: []ReadyCheck{tz, loc},
		Now:    h.deps.Now().UTC().Format(time.RFC3339),
	}, nil
}

// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo ok
// @Router /v1/meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(), nil
}

// @Summary Service info and uptime
// @Tags Meta
// @Produce json
// @Success 200 {object} ServiceResponse ok
// @Router /v1/meta/service [get]
func (h *handlers) service(_ *http.Request) (any, error) {
	uptime := h.deps.Now().Sub(h.deps.StartedAt)
	return ServiceResponse{
		Name:    h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:  int64(uptime / time.Second),
	}, nil
}

// @Summary Supported locales
// @Tags Meta
// @Produce json
// @Success 200 {object} LocalesResponse ok
// @Router /v1/meta/locales [get]
func (h *handlers) locales(_ *http.Request) (any, error) {
	return LocalesResponse{
		Locales:  intl.Default().Supported(),
		Fallback: intl.Default().Resolve("").Tag(),
	}, nil
}
