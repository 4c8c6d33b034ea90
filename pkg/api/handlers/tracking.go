package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tjwaterman99/quicksplit-api/pkg/api/errors"
	"github.com/tjwaterman99/quicksplit-api/pkg/domain"
	"github.com/tjwaterman99/quicksplit-api/pkg/metrics"
	"github.com/tjwaterman99/quicksplit-api/pkg/models"
	"github.com/tjwaterman99/quicksplit-api/pkg/tracking"
)

// TrackingHandler handles the exposure/conversion write path
type TrackingHandler struct {
	tracking *tracking.Service
	metrics  *metrics.Metrics
}

// NewTrackingHandler creates a new tracking handler
func NewTrackingHandler(trackingService *tracking.Service, m *metrics.Metrics) *TrackingHandler {
	return &TrackingHandler{tracking: trackingService, metrics: m}
}

// CreateExposure records a subject entering a cohort
func (h *TrackingHandler) CreateExposure(c echo.Context) error {
	id, ok := userID(c)
	if !ok {
		return echo.ErrUnauthorized
	}

	var req models.CreateExposureRequest
	if err := bind(c, &req); err != nil {
		return errors.ValidationError(c, err)
	}
	scope, err := domain.ParseScope(req.Scope)
	if err != nil {
		return errors.ValidationError(c, err)
	}

	exposure, err := h.tracking.CreateExposure(c.Request().Context(), id, req.Experiment, req.Subject, req.Cohort, scope)
	if err != nil {
		return errors.Respond(c, err)
	}

	h.metrics.ExposuresRecorded.WithLabelValues(scope.String()).Inc()
	return c.JSON(http.StatusOK, exposure)
}

// CreateConversion records a conversion for an exposed subject
func (h *TrackingHandler) CreateConversion(c echo.Context) error {
	id, ok := userID(c)
	if !ok {
		return echo.ErrUnauthorized
	}

	var req models.CreateConversionRequest
	if err := bind(c, &req); err != nil {
		return errors.ValidationError(c, err)
	}
	scope, err := domain.ParseScope(req.Scope)
	if err != nil {
		return errors.ValidationError(c, err)
	}

	conversion, err := h.tracking.CreateConversion(c.Request().Context(), id, req.Experiment, req.Subject, scope, req.Value)
	if err != nil {
		return errors.Respond(c, err)
	}

	h.metrics.ConversionsRecorded.WithLabelValues(scope.String()).Inc()
	return c.JSON(http.StatusOK, conversion)
}
