package apperrors

import "fmt"

// ErrNotFound represents an error when a requested resource is not found.
type ErrNotFound struct {
	Resource string
	ID       interface{}
}

// Error implements the error interface.
func (e *ErrNotFound) Error() string {
	if e.ID != nil {
		return fmt.Sprintf("%s with ID %v not found", e.Resource, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// Is allows for error checking with errors.Is().
func (e *ErrNotFound) Is(target error) bool {
	_, ok := target.(*ErrNotFound)
	return ok
}

// NewNotFoundError creates a new ErrNotFound.
func NewNotFoundError(resource string, id interface{}) *ErrNotFound {
	return &ErrNotFound{
		Resource: resource,
		ID:       id,
	}
}

// NewShowNotFoundError creates a specific error for when the catalog does not know a show.
func NewShowNotFoundError(showID int) *ErrNotFound {
	return &ErrNotFound{
		Resource: "show",
		ID:       showID,
	}
}

// ErrUpstreamStatus is returned when the catalog answers with a non-success status.
type ErrUpstreamStatus struct {
	Endpoint   string
	StatusCode int
}

// Error implements the error interface.
func (e *ErrUpstreamStatus) Error() string {
	return fmt.Sprintf("catalog endpoint %s returned status %d", e.Endpoint, e.StatusCode)
}

// Is allows for error checking with errors.Is().
func (e *ErrUpstreamStatus) Is(target error) bool {
	_, ok := target.(*ErrUpstreamStatus)
	return ok
}

// ErrMalformedPayload is returned when a catalog response cannot be decoded
// or lacks a field the normalized records depend on.
type ErrMalformedPayload struct {
	Endpoint string
	Reason   string
	Err      error
}

// Error implements the error interface.
func (e *ErrMalformedPayload) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed payload from %s: %s: %v", e.Endpoint, e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed payload from %s: %s", e.Endpoint, e.Reason)
}

// Unwrap exposes the decoding error, if any.
func (e *ErrMalformedPayload) Unwrap() error {
	return e.Err
}

// Is allows for error checking with errors.Is().
func (e *ErrMalformedPayload) Is(target error) bool {
	_, ok := target.(*ErrMalformedPayload)
	return ok
}

// NewMalformedPayloadError creates a new ErrMalformedPayload.
func NewMalformedPayloadError(endpoint, reason string, err error) *ErrMalformedPayload {
	return &ErrMalformedPayload{
		Endpoint: endpoint,
		Reason:   reason,
		Err:      err,
	}
}
