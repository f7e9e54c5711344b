package modkit

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/simonljus/tidy-date/internal/platform/logger"
	phttp "github.com/simonljus/tidy-date/internal/platform/net/http"
)

// stub module that satisfies Module and records calls
type stub struct {
	mounted bool
	name    string
}

func (s *stub) MountRoutes(_ phttp.Router) { s.mounted = true }
func (s *stub) Name() string               { return s.name }

// compile-time assertion: stub implements Module
var _ Module = (*stub)(nil)

func TestBuilder_TypeSignatureAndUse(t *testing.T) {
	t.Parallel()

	var b Builder = func(_ Deps, opts ...Option) Module {
		return &stub{name: Build(opts...).Name}
	}

	m := b(Deps{}, WithName("format"))
	if m.Name() != "format" {
		t.Fatalf("Name = %q, want format", m.Name())
	}
	var r phttp.Router
	m.MountRoutes(r)
	if !m.(*stub).mounted {
		t.Fatal("expected MountRoutes to be called")
	}
}

func TestDeps_Fallbacks(t *testing.T) {
	t.Parallel()

	var d Deps
	if d.Logger("format") == nil {
		t.Fatal("fallback logger is nil")
	}
	// each fallback registry is private, so registering twice is fine
	c := prometheus.NewCounter(prometheus.CounterOpts{Name: "x_total", Help: "x"})
	if err := d.Registerer().Register(c); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if err := d.Registerer().Register(c); err != nil {
		t.Fatalf("second register: %v", err)
	}

	reg := prometheus.NewRegistry()
	l := logger.Named("custom")
	d = Deps{Log: l, Metrics: reg}
	if d.Logger("ignored") != l || d.Registerer() != reg {
		t.Fatal("explicit deps should win")
	}
}
