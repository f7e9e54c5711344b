// Package http provides http transport for format
package http

import (
	stdhttp "net/http"

	"github.com/simonljus/tidy-date/internal/modkit/httpkit"
	"github.com/simonljus/tidy-date/internal/services/api/format/domain"
	svc "github.com/simonljus/tidy-date/internal/services/api/format/service"
)

// Register mounts format endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// single instant
	httpkit.PostJSON[domain.DateInput](r, "/date", h.date)

	// ranges, with and without today relative elision
	httpkit.PostJSON[domain.RangeInput](r, "/range", h.rangeFull)
	httpkit.PostJSON[domain.RangeInput](r, "/range-today", h.rangeToday)

	// classification only
	httpkit.PostJSON[domain.RangeInput](r, "/type", h.rangeType)
}

type handlers struct{ svc svc.Service }

// @Summary Format one instant
// @Tags Format
// @Accept json
// @Produce json
// @Param payload body domain.DateInput true "Instant"
// @Success 200 {object} domain.Formatted "ok"
// @Router /v1/format/date [post]
func (h *handlers) date(r *stdhttp.Request, in domain.DateInput) (any, error) {
	return h.svc.FormatDate(r.Context(), in)
}

// @Summary Format a range
// @Tags Format
// @Accept json
// @Produce json
// @Param payload body domain.RangeInput true "Range"
// @Success 200 {object} domain.Formatted "ok"
// @Router /v1/format/range [post]
func (h *handlers) rangeFull(r *stdhttp.Request, in domain.RangeInput) (any, error) {
	return h.svc.FormatRange(r.Context(), in)
}

// @Summary Format a range relative to today
// @Tags Format
// @Accept json
// @Produce json
// @Param payload body domain.RangeInput true "Range"
// @Success 200 {object} domain.Formatted "ok"
// @Router /v1/format/range-today [post]
func (h *handlers) rangeToday(r *stdhttp.Request, in domain.RangeInput) (any, error) {
	return h.svc.FormatRangeToday(r.Context(), in)
}

// @Summary Classify a range
// @Tags Format
// @Accept json
// @Produce json
// @Param payload body domain.RangeInput true "Range"
// @Success 200 {object} domain.Classified "ok"
// @Router /v1/format/type [post]
func (h *handlers) rangeType(r *stdhttp.Request, in domain.RangeInput) (any, error) {
	return h.svc.RangeType(r.Context(), in)
}
