// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/sparknest-admin/internal/adapter"
)

// newAuthError wraps a Login or Register failure and classifies it.
func newAuthError(op string, err error) *AuthError {
	return &AuthError{Op: op, Reason: authReason(err), Err: err}
}

func authReason(err error) AuthReason {
	switch {
	case errors.Is(err, adapter.ErrUnauthorized), errors.Is(err, adapter.ErrForbidden):
		return AuthReasonInvalidCredentials
	case errors.Is(err, adapter.ErrConflict):
		return AuthReasonAccountExists
	case errors.Is(err, adapter.ErrNetwork),
		errors.Is(err, adapter.ErrBadGateway),
		errors.Is(err, adapter.ErrServiceUnavailable):
		return AuthReasonUnavailable
	case errors.Is(err, adapter.ErrMalformedResponse), errors.Is(err, ErrEmptyToken):
		return AuthReasonMalformedResponse
	case errors.Is(err, ErrPersistSession):
		return AuthReasonStorage
	default:
		return AuthReasonRejected
	}
}
