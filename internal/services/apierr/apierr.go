package apierr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ValidationError reports a missing or malformed request field.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func NewValidation(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// NotFoundError reports a missing resource, either a local job id or a
// supplier product code that the catalog does not know.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// UpstreamError reports a non-success response from an external API. Message
// is extracted from the response body when the upstream provides one.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream error (%d): %s", e.StatusCode, e.Message)
}

// HTTPStatus maps an error to the response status the REST surface should
// return. Unexpected errors fall through to 500.
func HTTPStatus(err error) int {
	var verr *ValidationError
	var nferr *NotFoundError
	var uerr *UpstreamError

	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest
	case errors.As(err, &nferr):
		return http.StatusNotFound
	case errors.As(err, &uerr):
		if uerr.StatusCode == http.StatusUnauthorized {
			return http.StatusUnauthorized
		}
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// ExtractMessage pulls a human-readable error message out of an upstream
// response body, trying the common "error" and "message" keys before falling
// back to the supplied default.
func ExtractMessage(body []byte, fallback string) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	if len(body) > 0 {
		return string(body)
	}
	return fallback
}
