// Package validation wraps go-playground/validator and converts its output
// into the per-field error payload the admin panel consumes.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError is a single validation failure keyed by the offending field.
type FieldError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report errors under the wire name, not the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})

	return v
}

// Struct validates s and returns one FieldError per failed rule, in
// declaration order. A nil slice means s passed validation.
func Struct(s interface{}) []FieldError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Code: "request", Message: err.Error()}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, e := range verrs {
		out = append(out, FieldError{Code: e.Field(), Message: message(e)})
	}
	return out
}

func message(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required", e.Field())
	case "min":
		return fmt.Sprintf("The %s must be at least %s", e.Field(), e.Param())
	case "max":
		return fmt.Sprintf("The %s may not be greater than %s", e.Field(), e.Param())
	case "gte":
		return fmt.Sprintf("The %s must be at least %s", e.Field(), e.Param())
	case "lte":
		return fmt.Sprintf("The %s may not be greater than %s", e.Field(), e.Param())
	case "oneof":
		return fmt.Sprintf("The %s must be one of: %s", e.Field(), e.Param())
	case "email":
		return fmt.Sprintf("The %s must be a valid email address", e.Field())
	default:
		return fmt.Sprintf("The %s is invalid", e.Field())
	}
}
