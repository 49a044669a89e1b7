package capsdk

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/rovillalobos-slalom/capabilities/pkg/httpx"
)

// APIError is the error shape the capability service speaks: a JSON body of
// the form {"detail": "..."} with a non-2xx status code. It implements the
// error interface and is shared by the HTTP handlers (to write responses)
// and the SDK client (to represent failures).
type APIError struct {
	// StatusCode is the HTTP status code for this error.
	StatusCode int `json:"-"`

	// Detail is the human-readable error description.
	Detail string `json:"detail"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Detail)
}

// WriteError writes this APIError to an HTTP response writer.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.NoCache(w)
	httpx.WriteDetail(w, e.StatusCode, e.Detail)
}

// Predefined errors matching the responses the service produces.
var (
	// ErrIncorrectCredentials is returned by the login endpoint when the
	// email or password does not match.
	ErrIncorrectCredentials = &APIError{
		StatusCode: http.StatusUnauthorized,
		Detail:     "Incorrect email or password",
	}

	// ErrInvalidToken is returned when the access token is missing its
	// subject, malformed, expired, or signed with the wrong key.
	ErrInvalidToken = &APIError{
		StatusCode: http.StatusUnauthorized,
		Detail:     "Could not validate credentials",
	}

	// ErrUserNotFound is returned when a valid token refers to a user that
	// no longer exists.
	ErrUserNotFound = &APIError{
		StatusCode: http.StatusUnauthorized,
		Detail:     "User not found",
	}

	// ErrUserExists is returned when creating an account with a taken email.
	ErrUserExists = &APIError{
		StatusCode: http.StatusBadRequest,
		Detail:     "User already exists",
	}

	// ErrCapabilityNotFound is returned when the named capability is not in
	// the catalog.
	ErrCapabilityNotFound = &APIError{
		StatusCode: http.StatusNotFound,
		Detail:     "Capability not found",
	}

	// ErrAlreadyRegistered is returned when the consultant is already on the
	// capability's roster.
	ErrAlreadyRegistered = &APIError{
		StatusCode: http.StatusBadRequest,
		Detail:     "Consultant is already registered for this capability",
	}

	// ErrNotRegistered is returned when unregistering a consultant who is
	// not on the roster.
	ErrNotRegistered = &APIError{
		StatusCode: http.StatusBadRequest,
		Detail:     "Consultant is not registered for this capability",
	}

	// ErrRegisterSelfOnly is returned when a Consultant tries to register
	// an email other than their own.
	ErrRegisterSelfOnly = &APIError{
		StatusCode: http.StatusForbidden,
		Detail:     "Consultants can only register themselves",
	}

	// ErrInvalidRequest is returned when the request body cannot be parsed
	// or is missing required fields.
	ErrInvalidRequest = &APIError{
		StatusCode: http.StatusBadRequest,
		Detail:     "Invalid request body",
	}

	// ErrServerError is returned for unexpected internal failures.
	ErrServerError = &APIError{
		StatusCode: http.StatusInternalServerError,
		Detail:     "Internal server error",
	}
)

// NewAPIError creates an APIError with a custom status code and detail.
func NewAPIError(statusCode int, detail string) *APIError {
	return &APIError{StatusCode: statusCode, Detail: detail}
}

// parseErrorResponse turns a non-2xx HTTP response into a typed *APIError.
// It tries the service's {"detail"} shape first, then a {"message"} shape,
// and finally falls back to the bare status code. Returns nil for 2xx.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var detailResp struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &detailResp); err == nil && detailResp.Detail != "" {
		return &APIError{StatusCode: resp.StatusCode, Detail: detailResp.Detail}
	}

	var msgResp struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &msgResp); err == nil && msgResp.Message != "" {
		return &APIError{StatusCode: resp.StatusCode, Detail: msgResp.Message}
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Detail:     fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}

// decodeJSON decodes a JSON response into target, returning a typed
// *APIError when the status code does not match expectedStatus.
func decodeJSON(resp *http.Response, target any, expectedStatus int) error {
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != expectedStatus {
		return parseErrorResponse(resp, bodyBytes)
	}

	if err := json.Unmarshal(bodyBytes, target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
