package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tjwaterman99/quicksplit-api/pkg/api/errors"
	"github.com/tjwaterman99/quicksplit-api/pkg/experiments"
	"github.com/tjwaterman99/quicksplit-api/pkg/metrics"
	"github.com/tjwaterman99/quicksplit-api/pkg/models"
)

// ExperimentHandler handles experiment lifecycle endpoints
type ExperimentHandler struct {
	experiments *experiments.Service
	metrics     *metrics.Metrics
}

// NewExperimentHandler creates a new experiment handler
func NewExperimentHandler(experimentsService *experiments.Service, m *metrics.Metrics) *ExperimentHandler {
	return &ExperimentHandler{experiments: experimentsService, metrics: m}
}

// Create creates a new experiment for the authenticated user
func (h *ExperimentHandler) Create(c echo.Context) error {
	id, ok := userID(c)
	if !ok {
		return echo.ErrUnauthorized
	}

	var req models.CreateExperimentRequest
	if err := bind(c, &req); err != nil {
		return errors.ValidationError(c, err)
	}

	exp, err := h.experiments.Create(c.Request().Context(), id, req.Name)
	if err != nil {
		return errors.Respond(c, err)
	}

	h.metrics.ExperimentsCreated.Inc()
	return c.JSON(http.StatusCreated, exp)
}

// List returns the user's experiments
func (h *ExperimentHandler) List(c echo.Context) error {
	id, ok := userID(c)
	if !ok {
		return echo.ErrUnauthorized
	}

	exps, err := h.experiments.List(c.Request().Context(), id)
	if err != nil {
		return errors.Respond(c, err)
	}

	return c.JSON(http.StatusOK, exps)
}

// Get returns one experiment by name
func (h *ExperimentHandler) Get(c echo.Context) error {
	id, ok := userID(c)
	if !ok {
		return echo.ErrUnauthorized
	}

	exp, err := h.experiments.Get(c.Request().Context(), id, c.Param("name"))
	if err != nil {
		return errors.Respond(c, err)
	}

	return c.JSON(http.StatusOK, exp)
}

// Activate turns an experiment on, evicting the least-recently
// activated one when the plan limit is reached
func (h *ExperimentHandler) Activate(c echo.Context) error {
	id, ok := userID(c)
	if !ok {
		return echo.ErrUnauthorized
	}

	exp, err := h.experiments.Get(c.Request().Context(), id, c.Param("name"))
	if err != nil {
		return errors.Respond(c, err)
	}

	exp, err = h.experiments.Activate(c.Request().Context(), exp.ID)
	if err != nil {
		return errors.Respond(c, err)
	}

	return c.JSON(http.StatusOK, exp)
}

// Deactivate turns an experiment off
func (h *ExperimentHandler) Deactivate(c echo.Context) error {
	id, ok := userID(c)
	if !ok {
		return echo.ErrUnauthorized
	}

	exp, err := h.experiments.Get(c.Request().Context(), id, c.Param("name"))
	if err != nil {
		return errors.Respond(c, err)
	}

	exp, err = h.experiments.Deactivate(c.Request().Context(), exp.ID)
	if err != nil {
		return errors.Respond(c, err)
	}

	return c.JSON(http.StatusOK, exp)
}
