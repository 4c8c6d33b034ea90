package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// RequestValidator adapts go-playground/validator to echo's Validator
// interface.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates a new request validator
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate validates the request payload
func (v *RequestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// bind decodes and validates the request body into req.
func bind(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return err
	}
	return c.Validate(req)
}

// userID extracts the authenticated tenant from the request context.
func userID(c echo.Context) (int, bool) {
	id, ok := c.Get("user_id").(int)
	return id, ok
}
