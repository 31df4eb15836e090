// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	playground "github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	domainerrors "backoffice/internal/domain/errors"
)

// RequestValidator validates request payloads against their struct tags.
type RequestValidator struct {
	validate *playground.Validate
}

// New creates a validator with struct-level required tags enabled.
func New() *RequestValidator {
	return &RequestValidator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator. Tag violations are reported as a
// validation failure rather than a bare 500.
func (v *RequestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed.WrapMessage(err.Error()), "request validation failed")
	}

	return nil
}
