package model

import "fmt"

// AuthErrorKind classifies why a register or login call was rejected.
type AuthErrorKind string

const (
	// AuthErrorInvalidCredentials means the server rejected the
	// identity/secret pair (authorization-class response to login).
	AuthErrorInvalidCredentials AuthErrorKind = "invalid_credentials"
	// AuthErrorGeneric is any other non-2xx rejection, carrying the
	// server-provided message when one was present.
	AuthErrorGeneric AuthErrorKind = "generic"
)

// AuthError is a server-side rejection of a register or login attempt.
// Message is the server's error text verbatim, or a generic fallback
// when the server gave none.
type AuthError struct {
	Kind    AuthErrorKind
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

// TransportError wraps a network failure, timeout, or malformed response.
// It is not classified further; the underlying cause is preserved.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ValidationError is a client-side pre-flight rejection of form input.
// It is raised before any network call and never sent to the server.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
