package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tjwaterman99/quicksplit-api/pkg/api/errors"
	"github.com/tjwaterman99/quicksplit-api/pkg/auth"
	"github.com/tjwaterman99/quicksplit-api/pkg/metrics"
	"github.com/tjwaterman99/quicksplit-api/pkg/models"
	"github.com/tjwaterman99/quicksplit-api/pkg/users"
)

// UserHandler handles registration, login, and the current-user view
type UserHandler struct {
	users              *users.Service
	metrics            *metrics.Metrics
	jwtSecret          string
	jwtExpirationHours int
}

// NewUserHandler creates a new user handler
func NewUserHandler(usersService *users.Service, m *metrics.Metrics, jwtSecret string, jwtExpirationHours int) *UserHandler {
	return &UserHandler{
		users:              usersService,
		metrics:            m,
		jwtSecret:          jwtSecret,
		jwtExpirationHours: jwtExpirationHours,
	}
}

// Register creates a new account and user, returning a token
func (h *UserHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := bind(c, &req); err != nil {
		return errors.ValidationError(c, err)
	}

	u, err := h.users.Register(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return errors.Respond(c, err)
	}

	token, err := auth.GenerateJWT(u.ID, u.AccountID, u.Email, h.jwtSecret, h.jwtExpirationHours)
	if err != nil {
		return errors.InternalError(c, err)
	}

	h.metrics.UsersRegistered.Inc()
	return c.JSON(http.StatusCreated, models.TokenResponse{Token: token})
}

// Login verifies credentials and returns a token
func (h *UserHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := bind(c, &req); err != nil {
		return errors.ValidationError(c, err)
	}

	u, err := h.users.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return errors.Respond(c, err)
	}

	token, err := auth.GenerateJWT(u.ID, u.AccountID, u.Email, h.jwtSecret, h.jwtExpirationHours)
	if err != nil {
		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, models.TokenResponse{Token: token})
}

// Me returns the authenticated user
func (h *UserHandler) Me(c echo.Context) error {
	id, ok := userID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "unauthorized",
			Message: "Authentication required",
		})
	}

	u, err := h.users.Get(c.Request().Context(), id)
	if err != nil {
		return errors.Respond(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"id":         u.ID,
		"email":      u.Email,
		"account_id": u.AccountID,
		"created_at": u.CreatedAt,
	})
}
