package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tjwaterman99/quicksplit-api/pkg/api/errors"
	"github.com/tjwaterman99/quicksplit-api/pkg/domain"
	"github.com/tjwaterman99/quicksplit-api/pkg/experiments"
	"github.com/tjwaterman99/quicksplit-api/pkg/metrics"
	"github.com/tjwaterman99/quicksplit-api/pkg/models"
	"github.com/tjwaterman99/quicksplit-api/pkg/results"
)

// ResultHandler handles result computation and retrieval
type ResultHandler struct {
	experiments *experiments.Service
	results     *results.Service
	metrics     *metrics.Metrics
}

// NewResultHandler creates a new result handler
func NewResultHandler(experimentsService *experiments.Service, resultsService *results.Service, m *metrics.Metrics) *ResultHandler {
	return &ResultHandler{experiments: experimentsService, results: resultsService, metrics: m}
}

// Run recomputes the result snapshot for an experiment and scope
func (h *ResultHandler) Run(c echo.Context) error {
	id, ok := userID(c)
	if !ok {
		return echo.ErrUnauthorized
	}

	var req models.RunResultRequest
	if err := bind(c, &req); err != nil {
		return errors.ValidationError(c, err)
	}
	scope, err := domain.ParseScope(req.Scope)
	if err != nil {
		return errors.ValidationError(c, err)
	}

	exp, err := h.experiments.Get(c.Request().Context(), id, req.Experiment)
	if err != nil {
		return errors.Respond(c, err)
	}

	snapshot, err := h.results.Run(c.Request().Context(), exp, scope)
	if err != nil {
		return errors.Respond(c, err)
	}

	h.metrics.ResultsComputed.Inc()
	return c.JSON(http.StatusOK, snapshot)
}

// Last returns the most recently persisted snapshot
func (h *ResultHandler) Last(c echo.Context) error {
	id, ok := userID(c)
	if !ok {
		return echo.ErrUnauthorized
	}

	scope, err := domain.ParseScope(c.QueryParam("scope"))
	if err != nil {
		return errors.ValidationError(c, err)
	}

	exp, err := h.experiments.Get(c.Request().Context(), id, c.Param("name"))
	if err != nil {
		return errors.Respond(c, err)
	}

	snapshot, err := h.results.Last(c.Request().Context(), exp.ID, scope)
	if err != nil {
		return errors.Respond(c, err)
	}

	return c.JSON(http.StatusOK, snapshot)
}
