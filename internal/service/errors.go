package service

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyToken is the cause of an AuthError when the backend accepted
	// the credentials but returned no token.
	ErrEmptyToken = errors.New("backend returned an empty token")

	// ErrPersistSession is the cause of an AuthError when the session could
	// not be written to the secure store.
	ErrPersistSession = errors.New("could not persist session")

	ErrCorruptSession = errors.New("persisted session is corrupt")
)

// AuthReason classifies an AuthError for user-facing messages.
type AuthReason int

const (
	// AuthReasonRejected covers every backend refusal without a more
	// specific reason.
	AuthReasonRejected AuthReason = iota
	AuthReasonInvalidCredentials
	AuthReasonAccountExists
	AuthReasonUnavailable
	AuthReasonMalformedResponse
	AuthReasonStorage
)

func (r AuthReason) String() string {
	switch r {
	case AuthReasonInvalidCredentials:
		return "invalid credentials"
	case AuthReasonAccountExists:
		return "account exists"
	case AuthReasonUnavailable:
		return "backend unavailable"
	case AuthReasonMalformedResponse:
		return "malformed response"
	case AuthReasonStorage:
		return "storage failure"
	default:
		return "rejected"
	}
}

// AuthError is the failure of Login or Register.
type AuthError struct {
	Op     string
	Reason AuthReason
	Err    error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("%s failed (%s): %v", e.Op, e.Reason, e.Err)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// AsAuthError returns the *AuthError in err's chain, if any.
func AsAuthError(err error) (*AuthError, bool) {
	var ae *AuthError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}
