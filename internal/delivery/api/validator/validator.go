// Package validator adapts go-playground/validator to echo.
package validator

import (
	"reflect"
	"strings"

	"doorstep/internal/domain/entity"
	"doorstep/internal/errors"

	"github.com/go-playground/validator/v10"
)

// FieldError is one failed rule, keyed by the JSON field name.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// ValidationError lists every failed rule of a request.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+" failed on "+f.Rule)
	}

	return "validation failed: " + strings.Join(parts, ", ")
}

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates the validator with the domain rules registered:
//
//	mappanel  the value is one of the map panels
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	_ = v.RegisterValidation("mappanel", func(fl validator.FieldLevel) bool {
		return entity.MapPanel(fl.Field().String()).IsValid()
	})

	return &CustomValidator{validate: v}
}

// Validate checks a bound request. Rule failures are returned as a
// *ValidationError.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	fieldErrs, ok := errors.AsType[validator.ValidationErrors](err)
	if !ok {
		return errors.WithStack(err)
	}

	out := &ValidationError{Fields: make([]FieldError, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		out.Fields = append(out.Fields, FieldError{
			Field: trimRoot(fe.Namespace()),
			Rule:  fe.Tag(),
			Param: fe.Param(),
		})
	}

	return out
}

// trimRoot drops the struct name from a namespace such as
// "EventRequest.point.lat".
func trimRoot(ns string) string {
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}

	return ns
}
