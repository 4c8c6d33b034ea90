package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tjwaterman99/quicksplit-api/pkg/domain"
	"github.com/tjwaterman99/quicksplit-api/pkg/models"
)

func respond(t *testing.T, err error) (*httptest.ResponseRecorder, models.ErrorResponse) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/exposures", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, Respond(c, err))

	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestRespond(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"Not found", domain.NewNotFoundError("experiment"), http.StatusNotFound, domain.ErrCodeNotFound},
		{"Duplicate name", domain.NewDuplicateNameError("checkout"), http.StatusConflict, domain.ErrCodeDuplicateName},
		{"Inactive experiment", domain.NewInactiveExperimentError("checkout"), http.StatusUnprocessableEntity, domain.ErrCodeInactiveExperiment},
		{"Capacity exceeded", domain.NewCapacityExceededError(5000), http.StatusUnprocessableEntity, domain.ErrCodeCapacityExceeded},
		{"Insufficient data", domain.NewInsufficientDataError(), http.StatusUnprocessableEntity, domain.ErrCodeInsufficientData},
		{"Validation", domain.NewValidationError("scope is required"), http.StatusBadRequest, domain.ErrCodeValidation},
		{"Unauthorized", domain.NewUnauthorizedError(), http.StatusUnauthorized, domain.ErrCodeUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, body := respond(t, tc.err)
			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, tc.wantCode, body.Error)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestRespond_WrappedDomainError(t *testing.T) {
	wrapped := fmt.Errorf("recording exposure: %w", domain.NewNotFoundError("subject"))

	rec, body := respond(t, wrapped)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, domain.ErrCodeNotFound, body.Error)
}

func TestRespond_UnknownErrorIsOpaque(t *testing.T) {
	rec, body := respond(t, fmt.Errorf("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, domain.ErrCodeInternal, body.Error)
	assert.NotContains(t, body.Message, "pq:", "driver details stay out of responses")
}
