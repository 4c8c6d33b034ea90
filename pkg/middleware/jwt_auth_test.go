package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tjwaterman99/quicksplit-api/pkg/auth"
)

const testSecret = "test-secret-key-minimum-32-characters-long"

func runJWTAuth(t *testing.T, header string) (*httptest.ResponseRecorder, echo.Context) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/experiments", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := JWTAuth(testSecret)(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	require.NoError(t, handler(c))
	return rec, c
}

func TestJWTAuth(t *testing.T) {
	t.Run("Success - Valid bearer token", func(t *testing.T) {
		token, err := auth.GenerateJWT(42, 7, "user@example.com", testSecret, 1)
		require.NoError(t, err)

		rec, c := runJWTAuth(t, "Bearer "+token)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 42, c.Get(ContextUserID))
		assert.Equal(t, 7, c.Get(ContextAccountID))
		assert.Equal(t, "user@example.com", c.Get(ContextEmail))
	})

	t.Run("Failure - Missing header", func(t *testing.T) {
		rec, _ := runJWTAuth(t, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Failure - Malformed token", func(t *testing.T) {
		rec, _ := runJWTAuth(t, "Bearer not.a.token")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Failure - Wrong secret", func(t *testing.T) {
		token, err := auth.GenerateJWT(42, 7, "user@example.com", "another-secret-key-32-characters-xx", 1)
		require.NoError(t, err)

		rec, _ := runJWTAuth(t, "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
