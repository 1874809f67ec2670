package handler // handler defines http handlers

import (
	"strconv" // strconv converts path parameters to numeric types

	"github.com/go-playground/validator/v10" // validator checks struct tags on request payloads
	"github.com/labstack/echo/v4"            // echo defines request context types
)

// Validator adapts go-playground/validator to echo's Validator
// interface so handlers can call c.Validate on bound payloads.
type Validator struct {
	validate *validator.Validate
}

// NewValidator constructs the request payload validator.
func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// parseID extracts the :id path parameter and converts it to uint64.
func parseID(c echo.Context) (uint64, error) { // begin parseID helper
	return strconv.ParseUint(c.Param("id"), 10, 64) // parse the decimal id from the URL
}

// detail builds the error body used by every failure response.
func detail(msg string) map[string]string {
	return map[string]string{"detail": msg}
}
