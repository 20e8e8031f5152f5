package services

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidResponse is the error returned by services when
	// a successful response from the backend could not be decoded
	ErrInvalidResponse = errors.New("response from backend could not be decoded")
)

// APIError is the error returned by services when the backend
// answers with a non-2xx status
type APIError struct {
	Status int
	// Detail is the detail field of the error body, empty when absent
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("backend responded with %d %s", e.Status, http.StatusText(e.Status))
	}
	return fmt.Sprintf("backend responded with %d: %s", e.Status, e.Detail)
}

// DetailOr returns the detail of the error, or fallback when the backend gave none
func (e *APIError) DetailOr(fallback string) string {
	if e.Detail == "" {
		return fallback
	}
	return e.Detail
}

// AsAPIError reports whether err was caused by a non-2xx backend response
func AsAPIError(err error) (*APIError, bool) {
	apiErr, ok := errors.Cause(err).(*APIError)
	return apiErr, ok
}
