package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tjwaterman99/quicksplit-api/ent"
	"github.com/tjwaterman99/quicksplit-api/ent/enttest"
	"github.com/tjwaterman99/quicksplit-api/pkg/domain"
	"github.com/tjwaterman99/quicksplit-api/pkg/experiments"
	"github.com/tjwaterman99/quicksplit-api/pkg/metrics"
	"github.com/tjwaterman99/quicksplit-api/pkg/models"
	"github.com/tjwaterman99/quicksplit-api/pkg/plans"
	"github.com/tjwaterman99/quicksplit-api/pkg/tracking"
	"github.com/tjwaterman99/quicksplit-api/pkg/users"
)

// promauto registers on the default registry, so the test binary shares
// one Metrics instance.
var testMetrics = metrics.New()

type testEnv struct {
	client *ent.Client
	echo   *echo.Echo
	userID int
}

func setupTestEnv(t *testing.T) *testEnv {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })

	ctx := context.Background()
	plansService := plans.NewService(client)
	require.NoError(t, plansService.Ensure(ctx))

	user, err := users.NewService(client, plansService).Register(ctx, "handler@example.com", "password123")
	require.NoError(t, err)

	e := echo.New()
	e.Validator = NewRequestValidator()

	return &testEnv{client: client, echo: e, userID: user.ID}
}

// request builds an authenticated JSON request context.
func (env *testEnv) request(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := env.echo.NewContext(req, rec)
	c.Set("user_id", env.userID)
	return c, rec
}

func TestTrackingHandler_CreateExposure(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	experimentsService := experiments.NewService(env.client, plans.NewService(env.client))
	_, err := experimentsService.Create(ctx, env.userID, "checkout")
	require.NoError(t, err)

	handler := NewTrackingHandler(tracking.NewService(env.client, plans.NewService(env.client)), testMetrics)

	t.Run("Success - Records exposure", func(t *testing.T) {
		c, rec := env.request(http.MethodPost, "/exposures",
			`{"experiment":"checkout","subject":"visitor-1","cohort":"control","scope":"production"}`)

		require.NoError(t, handler.CreateExposure(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "production", body["scope"])
	})

	t.Run("Failure - Missing cohort rejected", func(t *testing.T) {
		c, rec := env.request(http.MethodPost, "/exposures",
			`{"experiment":"checkout","subject":"visitor-1","scope":"production"}`)

		require.NoError(t, handler.CreateExposure(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Failure - Bad scope rejected", func(t *testing.T) {
		c, rec := env.request(http.MethodPost, "/exposures",
			`{"experiment":"checkout","subject":"visitor-1","cohort":"control","scope":"prod"}`)

		require.NoError(t, handler.CreateExposure(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Failure - Unknown experiment is 404", func(t *testing.T) {
		c, rec := env.request(http.MethodPost, "/exposures",
			`{"experiment":"ghost","subject":"visitor-1","cohort":"control","scope":"production"}`)

		require.NoError(t, handler.CreateExposure(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)

		var body models.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, domain.ErrCodeNotFound, body.Error)
	})
}

func TestTrackingHandler_CreateConversion(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	experimentsService := experiments.NewService(env.client, plans.NewService(env.client))
	_, err := experimentsService.Create(ctx, env.userID, "checkout")
	require.NoError(t, err)

	trackingService := tracking.NewService(env.client, plans.NewService(env.client))
	handler := NewTrackingHandler(trackingService, testMetrics)

	t.Run("Failure - Conversion without exposure", func(t *testing.T) {
		c, rec := env.request(http.MethodPost, "/conversions",
			`{"experiment":"checkout","subject":"visitor-1","scope":"production"}`)

		require.NoError(t, handler.CreateConversion(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Success - Conversion with value", func(t *testing.T) {
		_, err := trackingService.CreateExposure(ctx, env.userID, "checkout", "visitor-1", "control", domain.ScopeProduction)
		require.NoError(t, err)

		c, rec := env.request(http.MethodPost, "/conversions",
			`{"experiment":"checkout","subject":"visitor-1","scope":"production","value":25.5}`)

		require.NoError(t, handler.CreateConversion(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, 25.5, body["value"])
	})
}

func TestExperimentHandler_CreateAndGet(t *testing.T) {
	env := setupTestEnv(t)

	handler := NewExperimentHandler(experiments.NewService(env.client, plans.NewService(env.client)), testMetrics)

	t.Run("Success - Create", func(t *testing.T) {
		c, rec := env.request(http.MethodPost, "/experiments", `{"name":"landing-page"}`)
		require.NoError(t, handler.Create(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("Failure - Duplicate is 409", func(t *testing.T) {
		c, rec := env.request(http.MethodPost, "/experiments", `{"name":"landing-page"}`)
		require.NoError(t, handler.Create(c))
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("Success - Get by name", func(t *testing.T) {
		c, rec := env.request(http.MethodGet, "/experiments/landing-page", "")
		c.SetParamNames("name")
		c.SetParamValues("landing-page")

		require.NoError(t, handler.Get(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Failure - Unknown name is 404", func(t *testing.T) {
		c, rec := env.request(http.MethodGet, "/experiments/ghost", "")
		c.SetParamNames("name")
		c.SetParamValues("ghost")

		require.NoError(t, handler.Get(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestUserHandler_RegisterAndLogin(t *testing.T) {
	env := setupTestEnv(t)

	plansService := plans.NewService(env.client)
	handler := NewUserHandler(users.NewService(env.client, plansService), testMetrics, "test-secret-key-minimum-32-characters", 1)

	t.Run("Success - Register returns a token", func(t *testing.T) {
		c, rec := env.request(http.MethodPost, "/user",
			`{"email":"fresh@example.com","password":"password123"}`)

		require.NoError(t, handler.Register(c))
		assert.Equal(t, http.StatusCreated, rec.Code)

		var body models.TokenResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.NotEmpty(t, body.Token)
	})

	t.Run("Failure - Short password rejected", func(t *testing.T) {
		c, rec := env.request(http.MethodPost, "/user",
			`{"email":"short@example.com","password":"short"}`)

		require.NoError(t, handler.Register(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Success - Login", func(t *testing.T) {
		c, rec := env.request(http.MethodPost, "/login",
			`{"email":"fresh@example.com","password":"password123"}`)

		require.NoError(t, handler.Login(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Failure - Wrong password is 401", func(t *testing.T) {
		c, rec := env.request(http.MethodPost, "/login",
			`{"email":"fresh@example.com","password":"wrong-password"}`)

		require.NoError(t, handler.Login(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
