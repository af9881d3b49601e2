package commentum

import (
	"errors"
	"fmt"
)

// Error kinds. Every failure surfaced by the client wraps exactly one of
// these, so callers can classify with errors.Is without inspecting the
// message.
var (
	// ErrSessionExpired is returned when an authenticated call came back
	// 401. The provider's session has already been invalidated (memory and
	// durable store) by the time the caller sees this.
	ErrSessionExpired = errors.New("commentum: session expired")

	// ErrServerRejected is any other non-2xx response.
	ErrServerRejected = errors.New("commentum: server rejected request")

	// ErrMalformedResponse means the response body was not valid JSON.
	ErrMalformedResponse = errors.New("commentum: malformed response")

	// ErrTransport is a connection-level failure; no HTTP response was
	// received. Error.Status is 0 for this kind.
	ErrTransport = errors.New("commentum: transport failure")

	// ErrStore is a durable token store failure, scoped to the single
	// call that touched the store.
	ErrStore = errors.New("commentum: token store failure")
)

// Error is the normalized failure value for all client operations.
// Status is the literal HTTP status of the failing response, or 0 when no
// response was received.
type Error struct {
	Message string
	Status  int

	kind error
}

func (e *Error) Error() string {
	if e.Status == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (HTTP %d)", e.Message, e.Status)
}

// Unwrap returns the kind sentinel so errors.Is(err, ErrSessionExpired)
// and friends work on the wrapped value.
func (e *Error) Unwrap() error {
	return e.kind
}

func sessionExpiredError() *Error {
	return &Error{Message: "session expired", Status: 401, kind: ErrSessionExpired}
}

func serverError(message string, status int) *Error {
	if message == "" {
		message = fmt.Sprintf("request failed with status %d", status)
	}
	return &Error{Message: message, Status: status, kind: ErrServerRejected}
}

func malformedError(status int) *Error {
	return &Error{Message: "invalid response from server", Status: status, kind: ErrMalformedResponse}
}

func transportError(err error) *Error {
	return &Error{Message: err.Error(), Status: 0, kind: ErrTransport}
}

func storeError(err error) *Error {
	return &Error{Message: err.Error(), Status: 0, kind: ErrStore}
}
