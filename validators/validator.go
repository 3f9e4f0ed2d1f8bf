package validators

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// RequestValidator adapts go-playground/validator to echo's Validator interface.
type RequestValidator struct {
	validator *validator.Validate
}

// NewValidator creates a RequestValidator backed by a shared Validate instance.
func NewValidator() *RequestValidator {
	return &RequestValidator{validator: validator.New()}
}

// Validate checks struct tags and maps failures to a 400 response.
func (v *RequestValidator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
