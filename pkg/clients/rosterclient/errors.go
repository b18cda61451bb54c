package rosterclient

import "fmt"

// The gateway surfaces four distinct failure kinds. ValidationError and
// NotFoundError are client-correctable; NetworkError and ServerError are not.
// Callers match them with errors.As.

// ValidationError reports a payload the service (or the client-side check)
// rejected: a required field missing or malformed.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// NotFoundError reports that no record matched the requested identifier.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// ServerError reports a server-side failure status.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("server error (status %d)", e.StatusCode)
}

// NetworkError reports that the transport could not reach the service at all.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
