package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tjwaterman99/quicksplit-api/pkg/database"
)

// HealthHandler handles liveness and readiness checks
type HealthHandler struct {
	db *database.Client
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *database.Client) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health returns the service health
func (h *HealthHandler) Health(c echo.Context) error {
	if err := h.db.Ping(c.Request().Context()); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]interface{}{
			"healthy": false,
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"healthy": true,
	})
}
