// ABOUTME: Typed errors raised by the Inoreader gateway client
// ABOUTME: Builds on the shared BaseError type for codes and serialization

package inoreader

import (
	"fmt"

	"github.com/lexlapax/go-llms/pkg/errors"
)

// ErrMissingToken is returned when ClientLogin answers 200 but the body
// contains no Auth= line.
var ErrMissingToken = errors.NewErrorWithCode("inoreader_missing_token", "no auth token received").SetFatal(true)

// AuthenticationError is returned when the ClientLogin endpoint rejects the
// configured credentials.
type AuthenticationError struct {
	*errors.BaseError

	// StatusCode is the HTTP status returned by the auth endpoint.
	StatusCode int
}

// NewAuthenticationError creates an AuthenticationError for a failed login.
func NewAuthenticationError(statusCode int, body string) *AuthenticationError {
	base := errors.NewErrorWithCode("inoreader_auth_failed",
		fmt.Sprintf("authentication failed: %d - %s", statusCode, body)).SetFatal(true)
	return &AuthenticationError{BaseError: base, StatusCode: statusCode}
}

// APIRequestError is returned when any authenticated API call answers with a
// non-200 status. It carries the status and the raw response body.
type APIRequestError struct {
	*errors.BaseError

	StatusCode int
	Body       string
}

// NewAPIRequestError creates an APIRequestError from a failed API call.
func NewAPIRequestError(statusCode int, body string) *APIRequestError {
	base := errors.NewErrorWithCode("inoreader_request_failed",
		fmt.Sprintf("API request failed: %d - %s", statusCode, body))
	return &APIRequestError{BaseError: base, StatusCode: statusCode, Body: body}
}

// MalformedResponseError is returned when a JSON response body cannot be
// decoded. Missing keys inside an otherwise valid body are not an error;
// they are defaulted by the callers instead.
type MalformedResponseError struct {
	*errors.BaseError

	Endpoint string
}

// NewMalformedResponseError wraps a decode failure for the given endpoint.
func NewMalformedResponseError(endpoint string, cause error) *MalformedResponseError {
	base := errors.Wrap(cause, fmt.Sprintf("malformed response from %s", endpoint)).
		WithCode("inoreader_malformed_response")
	return &MalformedResponseError{BaseError: base, Endpoint: endpoint}
}
