package modkit

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/simonljus/tidy-date/internal/platform/config"
	"github.com/simonljus/tidy-date/internal/platform/logger"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log     *logger.Logger
	Cfg     config.Conf
	Metrics prometheus.Registerer
}

// Logger returns d.Log or a component logger named after the module
func (d Deps) Logger(name string) *logger.Logger {
	if d.Log != nil {
		return d.Log
	}
	return logger.Named(name)
}

// Registerer returns d.Metrics or a throwaway registry so tests can build
// modules without colliding on the default registerer
func (d Deps) Registerer() prometheus.Registerer {
	if d.Metrics != nil {
		return d.Metrics
	}
	return prometheus.NewRegistry()
}
