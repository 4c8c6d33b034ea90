package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/tjwaterman99/quicksplit-api/pkg/auth"
)

// Context keys set by JWTAuth for downstream handlers.
const (
	ContextUserID    = "user_id"
	ContextAccountID = "account_id"
	ContextEmail     = "email"
)

// JWTAuth returns middleware that requires a valid bearer token and
// places the tenant identity on the request context.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error":   "unauthorized",
					"message": "Missing authorization header",
				})
			}

			token := strings.TrimPrefix(header, "Bearer ")
			claims, err := auth.ValidateJWT(token, secret)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error":   "unauthorized",
					"message": "Invalid or expired token",
				})
			}

			c.Set(ContextUserID, claims.UserID)
			c.Set(ContextAccountID, claims.AccountID)
			c.Set(ContextEmail, claims.Email)
			return next(c)
		}
	}
}
