package validation

import (
	"fmt"
	"strings"

	"github.com/deppfellow/go-todos/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validatable is implemented by request payload types that know how to validate themselves.
//
// Typical pattern:
// - Define a request struct with validator tags (`validate:"required"`)
// - Implement Validate() error that runs validator.Struct(req)
type Validatable interface {
	Validate() error
}

// BindAndValidate binds request data into payload and validates it.
//
// Flow:
// 1) c.Bind(payload) populates the struct from path params and the JSON body.
// 2) payload.Validate() applies validation rules.
//
// Either failure is returned as a generic 500: the service treats bad
// input like any other failed statement and never echoes details back.
// The cause stays attached for the server-side log.
//
// payload must be a pointer to a struct.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		return errs.NewInternalServerError(fmt.Errorf("bind request: %w", err)).
			WithCode("REQUEST_BIND_FAILED")
	}

	if err := payload.Validate(); err != nil {
		return errs.NewInternalServerError(fmt.Errorf("validate request: %s: %w", describe(err), err)).
			WithCode("REQUEST_VALIDATION_FAILED")
	}

	return nil
}

// describe renders validator errors as "field: tag" pairs for logs.
func describe(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return "invalid request"
	}

	parts := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			parts = append(parts, field+" is required")
		default:
			if fe.Param() != "" {
				parts = append(parts, fmt.Sprintf("%s: %s:%s", field, fe.Tag(), fe.Param()))
			} else {
				parts = append(parts, fmt.Sprintf("%s: %s", field, fe.Tag()))
			}
		}
	}
	return strings.Join(parts, ", ")
}
