package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tjwaterman99/quicksplit-api/pkg/analytics"
	"github.com/tjwaterman99/quicksplit-api/pkg/api/errors"
	"github.com/tjwaterman99/quicksplit-api/pkg/domain"
)

// AnalyticsHandler serves the recent-event feed and exposure summaries
type AnalyticsHandler struct {
	analytics *analytics.Service
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService *analytics.Service) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analyticsService}
}

// Recent returns the latest exposures and conversions for the current user
func (h *AnalyticsHandler) Recent(c echo.Context) error {
	id, ok := userID(c)
	if !ok {
		return echo.ErrUnauthorized
	}

	scopeParam := c.QueryParam("scope")
	if scopeParam == "" {
		scopeParam = domain.ScopeProduction.String()
	}
	scope, err := domain.ParseScope(scopeParam)
	if err != nil {
		return errors.ValidationError(c, err)
	}

	events, err := h.analytics.RecentEvents(c.Request().Context(), id, scope)
	if err != nil {
		return errors.Respond(c, err)
	}

	return c.JSON(http.StatusOK, events)
}

// ExposureSummaries returns per-day exposure and conversion rollups
func (h *AnalyticsHandler) ExposureSummaries(c echo.Context) error {
	id, ok := userID(c)
	if !ok {
		return echo.ErrUnauthorized
	}

	end := time.Now().UTC().Truncate(24 * time.Hour).Add(24 * time.Hour)
	start := end.AddDate(0, 0, -30)
	if v := c.QueryParam("start"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return errors.ValidationError(c, err)
		}
		start = t
	}
	if v := c.QueryParam("end"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return errors.ValidationError(c, err)
		}
		end = t.Add(24 * time.Hour)
	}

	summaries, err := h.analytics.ExposureSummaries(c.Request().Context(), id, start, end)
	if err != nil {
		return errors.Respond(c, err)
	}

	return c.JSON(http.StatusOK, summaries)
}
