package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Media & External-Service Errors
var (
	ErrUploadFailed       = errors.New("upload failed")
	ErrMediaDeleteFailed  = errors.New("media deletion failed")
	ErrConfigurationError = errors.New("server configuration error")
	ErrEmailDeliveryError = errors.New("email delivery failed")
)

// NewUploadFailedError covers both the media transfer and the subsequent
// metadata write; callers see a single 500-class outcome either way.
func NewUploadFailedError(what string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrUploadFailed,
		Details:    fmt.Sprintf("Failed to upload %s", what),
		Cause:      cause,
	}
}

func NewMediaDeleteError(key string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrMediaDeleteFailed,
		Details:    fmt.Sprintf("Failed to delete media object %q", key),
		Cause:      cause,
	}
}

// NewConfigurationError flags missing external credentials. Detected eagerly,
// before attempting an operation that would need them.
func NewConfigurationError(what string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrConfigurationError,
		Details:    fmt.Sprintf("Missing %s", what),
	}
}

func NewEmailDeliveryError(cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrEmailDeliveryError,
		Cause:      cause,
	}
}

func IsUploadFailed(err error) bool {
	return errors.Is(err, ErrUploadFailed)
}

func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrConfigurationError)
}
