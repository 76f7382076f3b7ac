// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/sparknest-admin/internal/adapter"
	"github.com/MKhiriev/sparknest-admin/internal/i18n"
	"github.com/MKhiriev/sparknest-admin/internal/service"
	"github.com/MKhiriev/sparknest-admin/internal/validators"
)

// humanizeError turns an error of the lower layers into a sentence for the
// status line.
func humanizeError(tr *i18n.Translator, err error) string {
	if err == nil {
		return ""
	}

	if authErr, ok := service.AsAuthError(err); ok {
		return authMessage(tr, authErr)
	}

	if fields := validators.FailedFields(err); len(fields) > 0 {
		return validationMessage(tr, err, fields)
	}

	if isServerUnavailable(err) {
		return tr.T("error.network")
	}

	if reqErr, ok := adapter.AsRequestError(err); ok && reqErr.Message != "" {
		return reqErr.Message
	}

	return err.Error()
}

func authMessage(tr *i18n.Translator, err *service.AuthError) string {
	switch err.Reason {
	case service.AuthReasonInvalidCredentials:
		return tr.T("auth.invalid_credentials")
	case service.AuthReasonAccountExists:
		return tr.T("auth.account_exists")
	case service.AuthReasonUnavailable:
		return tr.T("auth.unavailable")
	case service.AuthReasonMalformedResponse:
		return tr.T("auth.malformed")
	case service.AuthReasonStorage:
		return tr.T("auth.storage")
	}

	detail := err.Err.Error()
	if reqErr, ok := adapter.AsRequestError(err); ok && reqErr.Message != "" {
		detail = reqErr.Message
	}
	return tr.T("auth.rejected", detail)
}

func validationMessage(tr *i18n.Translator, err error, fields []string) string {
	switch {
	case errors.Is(err, validators.ErrPasswordMismatch):
		return tr.T("error.password_mismatch")
	case errors.Is(err, validators.ErrInvalidEmail):
		return tr.T("error.invalid_email")
	case errors.Is(err, validators.ErrUnknownIcon):
		return tr.T("error.unknown_icon", unknownIconValue(err))
	}

	labels := make([]string, 0, len(fields))
	for _, f := range fields {
		labels = append(labels, tr.T("field."+f))
	}
	return tr.T("error.required_fields_list", strings.Join(labels, ", "))
}

func isServerUnavailable(err error) bool {
	if errors.Is(err, adapter.ErrNetwork) {
		return true
	}

	s := strings.ToLower(err.Error())
	return strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded")
}

// unknownIconValue extracts the rejected name from the validator error,
// e.g. `"Bogus"`.
func unknownIconValue(err error) string {
	errs := []error{err}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		errs = joined.Unwrap()
	}
	for _, e := range errs {
		var fe *validators.FieldError
		if errors.As(e, &fe) && errors.Is(fe.Err, validators.ErrUnknownIcon) {
			if _, value, ok := strings.Cut(fe.Err.Error(), ": "); ok {
				return value
			}
			return fe.Field
		}
	}
	return ""
}
