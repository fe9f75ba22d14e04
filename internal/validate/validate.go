// Package validate performs client-side validation of user input before any
// request is issued. A failed validation never reaches the network.
package validate

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// maxImageBytes is the client-side ceiling for product images. The backend
// is assumed to enforce its own limit; this check only saves the upload.
const maxImageBytes = 5 * 1024 * 1024

var v = validator.New()

// Error is a validation failure with a user-presentable message.
type Error struct {
	Message string
}

func (e *Error) Error() string { return e.Message }

// IsValidation reports whether err is a client-side validation error.
func IsValidation(err error) bool {
	var ve *Error
	return errors.As(err, &ve)
}

// Struct validates the `validate` tags on input and converts failures into
// a single human-readable Error.
func Struct(input any) error {
	err := v.Struct(input)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		msgs := make([]string, 0, len(ve))
		for _, fe := range ve {
			msgs = append(msgs, fieldError(fe))
		}
		return &Error{Message: strings.Join(msgs, "; ")}
	}
	return err
}

// Image checks the client-side constraints on a product image: must sniff
// as an image MIME type and stay under 5MB.
func Image(content []byte) error {
	if len(content) > maxImageBytes {
		return &Error{Message: "file size must be less than 5MB"}
	}
	if !strings.HasPrefix(http.DetectContentType(content), "image/") {
		return &Error{Message: "file must be an image"}
	}
	return nil
}

// fieldError converts a single ValidationError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "eqfield":
		return fmt.Sprintf("%s must match %s", field, strings.ToLower(fe.Param()))
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
