package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingCredentials is returned when the gateway username or password is not configured
	ErrMissingCredentials = errors.New("username and password are required")
	ErrInvalidConfig      = errors.New("invalid gateway configuration")
)

// TransportError is returned for every failure below the business layer: the gateway could not be
// reached, answered with a non-2xx status, or sent a body that is not the expected JSON.
type TransportError struct {
	Path       string
	HTTPStatus int
	RawBody    string
	Cause      error
}

func (e *TransportError) Error() string {
	if e.Cause != nil && e.HTTPStatus != 0 {
		return fmt.Sprintf("bank gateway %v: http %d: %v", e.Path, e.HTTPStatus, e.Cause)
	}
	if e.Cause != nil {
		return fmt.Sprintf("bank gateway %v: %v", e.Path, e.Cause)
	}
	return fmt.Sprintf("bank gateway %v: http error %d: %v", e.Path, e.HTTPStatus, e.RawBody)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

// IsHTTPError reports whether the gateway answered with a status outside 2xx.
func (e *TransportError) IsHTTPError() bool {
	return e.HTTPStatus != 0 && (e.HTTPStatus < 200 || e.HTTPStatus > 299)
}

func NewHTTPError(path string, status int, body string) error {
	return &TransportError{Path: path, HTTPStatus: status, RawBody: body}
}

func NewTransportError(path string, cause error) error {
	return &TransportError{Path: path, Cause: cause}
}

// AsTransportError unwraps err into a *TransportError when possible
func AsTransportError(err error) (*TransportError, bool) {
	var te *TransportError
	if errors.As(err, &te) {
		return te, true
	}
	return nil, false
}
