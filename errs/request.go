package errs

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	Unauthorized = NewApiErr(http.StatusUnauthorized, "unauthorized")
)

// Request & Input-Validation Errors
var (
	ErrMalformedPayload     = errors.New("malformed payload")
	ErrMissingRequiredField = errors.New("missing required field")
	ErrInvalidField         = errors.New("invalid field")
	ErrInvalidIdentifier    = errors.New("invalid identifier")
	ErrValidationFailed     = errors.New("validation failed")
)

// Authentication Errors
var (
	ErrMissingToken = errors.New("missing access token")
	ErrExpiredToken = errors.New("expired access token")
	ErrInvalidToken = errors.New("invalid access token")
)

func BadRequest(message string) *ApiErr {
	return NewApiErr(http.StatusBadRequest, message)
}

func NewMalformedPayloadError(payloadType string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrMalformedPayload,
		Details:    fmt.Sprintf("Malformed %s payload", payloadType),
		Cause:      cause,
		Field:      "payload",
	}
}

func NewMissingRequiredFieldError(fieldName string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrMissingRequiredField,
		Details:    fmt.Sprintf("Missing required field: %s", fieldName),
		Field:      fieldName,
	}
}

func NewInvalidFieldError(fieldName string, reason string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrInvalidField,
		Details:    fmt.Sprintf("Invalid field %s: %s", fieldName, reason),
		Field:      fieldName,
	}
}

// NewInvalidIdentifierError is returned when a path identifier fails to parse.
// Raised before any database round-trip so malformed client input yields a
// stable 400 rather than a driver error.
func NewInvalidIdentifierError(entity string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrInvalidIdentifier,
		Details:    fmt.Sprintf("Invalid %s ID", entity),
		Field:      "id",
	}
}

// NewValidationError carries field-level detail for a schema violation.
func NewValidationError(field, reason string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrValidationFailed,
		Details:    reason,
		Field:      field,
	}
}

func NewMissingTokenError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		err:        ErrMissingToken,
		Details:    "Missing access token",
		Field:      "authorization",
	}
}

func NewExpiredTokenError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		err:        ErrExpiredToken,
		Details:    "Access token has expired",
		Field:      "authorization",
	}
}

func NewInvalidTokenError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		err:        ErrInvalidToken,
		Details:    "Access token is invalid",
		Field:      "authorization",
	}
}

func IsInvalidIdentifier(err error) bool {
	return errors.Is(err, ErrInvalidIdentifier)
}

func IsValidationFailed(err error) bool {
	return errors.Is(err, ErrValidationFailed)
}
