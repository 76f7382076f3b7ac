package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrUnprocessable       = errors.New("unprocessable entity")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	// ErrNetwork marks failures where no response was received.
	ErrNetwork = errors.New("network error")

	// ErrMalformedResponse marks 2xx responses whose body could not be decoded.
	ErrMalformedResponse = errors.New("malformed response")
)

// RequestError is the failure of a single backend call. StatusCode is 0 when
// no response was received. Message is the backend's own message when it
// sent one, otherwise the raw body or the transport error.
type RequestError struct {
	Op         string
	StatusCode int
	Message    string

	kind  error
	cause error
}

func (e *RequestError) Error() string {
	switch {
	case e.StatusCode == 0:
		return fmt.Sprintf("%s: %s: %s", e.Op, e.kind, e.Message)
	case e.Message == "":
		return fmt.Sprintf("%s: http %d", e.Op, e.StatusCode)
	default:
		return fmt.Sprintf("%s: http %d: %s", e.Op, e.StatusCode, e.Message)
	}
}

// Unwrap exposes the status sentinel and, for transport failures, the
// underlying error (e.g. context.DeadlineExceeded).
func (e *RequestError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.kind != nil {
		errs = append(errs, e.kind)
	}
	if e.cause != nil {
		errs = append(errs, e.cause)
	}
	return errs
}

// AsRequestError returns the *RequestError in err's chain, if any.
func AsRequestError(err error) (*RequestError, bool) {
	var re *RequestError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}
