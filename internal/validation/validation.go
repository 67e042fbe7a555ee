// Package validation validates request payloads at the service
// boundary.
//
// It uses the validator library to enforce rules (required fields,
// email format) declared in struct tags, and converts validation
// failures into the field-level error format the API returns. Invalid
// input is rejected before any store access happens.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/fennelworks/catalog-api/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// validate is the shared validator instance used by request types.
// validator.Validate is safe for concurrent use and caches struct info.
var validate = validator.New()

// Struct runs tag-based validation on a request struct.
func Struct(v any) error {
	return validate.Struct(v)
}

// Validatable is implemented by request payload types that know how to
// validate themselves, typically by running validator.Struct on their
// own tags.
type Validatable interface {
	Validate() error
}

// CustomValidationError represents a single validation issue for a
// field, for rules that cannot be expressed via validator tags.
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors is a slice of custom validation errors that
// satisfies error.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

// BindAndValidate binds request data (body and path parameters) into
// payload and validates it.
//
// payload must be a pointer so Echo's Bind can populate it. Validation
// failures are returned as a 400 *errs.HTTPError with field-level
// errors.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		return errs.NewBadRequestError("Malformed request payload", false, nil, nil, nil)
	}

	if msg, fieldErrors := validateStruct(payload); fieldErrors != nil {
		return errs.NewBadRequestError(msg, true, nil, fieldErrors, nil)
	}

	return nil
}

// validateStruct calls v.Validate() and extracts field errors on failure.
func validateStruct(v Validatable) (string, []errs.FieldError) {
	if err := v.Validate(); err != nil {
		return extractValidationError(err)
	}
	return "", nil
}

func extractValidationError(err error) (string, []errs.FieldError) {
	var fieldErrors []errs.FieldError

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		var customErrors CustomValidationErrors
		if errors, isCustom := err.(CustomValidationErrors); isCustom {
			customErrors = errors
		} else {
			// Unknown error shape; surface it as a single generic failure.
			return "Validation failed", []errs.FieldError{{Field: "", Error: err.Error()}}
		}

		for _, cerr := range customErrors {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field: cerr.Field,
				Error: cerr.Message,
			})
		}
	}

	for _, verr := range validationErrors {
		field := strings.ToLower(verr.Field())
		var msg string

		switch verr.Tag() {
		case "required":
			msg = "is required"

		case "min":
			if verr.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must be at least %s characters", verr.Param())
			} else {
				msg = fmt.Sprintf("must be at least %s", verr.Param())
			}

		case "max":
			if verr.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must not exceed %s characters", verr.Param())
			} else {
				msg = fmt.Sprintf("must not exceed %s", verr.Param())
			}

		case "oneof":
			msg = fmt.Sprintf("must be one of: %s", verr.Param())

		case "email":
			msg = "must be a valid email address"

		case "gte":
			msg = fmt.Sprintf("must be greater than or equal to %s", verr.Param())

		case "uuid":
			msg = "must be a valid UUID"

		default:
			if verr.Param() != "" {
				msg = fmt.Sprintf("%s: %s:%s", field, verr.Tag(), verr.Param())
			} else {
				msg = fmt.Sprintf("%s: %s", field, verr.Tag())
			}
		}

		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: field,
			Error: msg,
		})
	}

	return "Validation failed", fieldErrors
}
