// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user input before it is sent to the backend.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//   - FieldError: a failed rule bound to a field name, so forms can point at
//     the offending input. Several failures are joined with errors.Join.
//
// The backend validates again; these checks only spare a round trip.
package validators

import (
	"context"

	"github.com/MKhiriev/sparknest-admin/internal/icons"
)

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}

// IconChecker reports whether an icon name exists.
type IconChecker interface {
	Has(name icons.IconName) bool
}
