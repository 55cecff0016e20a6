// Package validator adapts go-playground/validator to echo.
package validator

import (
	"reflect"
	"strings"

	"studio/internal/errors"

	"github.com/go-playground/validator/v10"
)

// EchoValidator implements echo.Validator.
type EchoValidator struct {
	validate *validator.Validate
}

// New returns a validator that reports fields by their JSON (or path param) names.
func New() *EchoValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" {
			name = fld.Tag.Get("param")
		}
		if name == "-" {
			return ""
		}

		return name
	})

	return &EchoValidator{validate: validate}
}

// Validate runs struct validation on i.
func (v *EchoValidator) Validate(i any) error {
	return v.validate.Struct(i)
}

// FieldErrors flattens validation errors into field → rule pairs. Other errors yield nil.
func FieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		out[fe.Field()] = rule
	}

	return out
}
