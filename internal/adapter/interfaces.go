// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the SparkNest admin
// client and the SparkNest REST backend.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from HTTP. Every call is a single request/response round trip: no
// retries, no batching, no caching.
//
// Non-2xx responses and network failures are returned as [*RequestError].
// The error unwraps to a status sentinel from errors.go so callers can use
// [errors.Is] (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/sparknest-admin/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the SparkNest backend.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to every request other than
	// Login and Register. An empty token disables the header.
	SetToken(token string)

	// HasToken reports whether a bearer token is currently set. The raw token
	// stays inside the adapter.
	HasToken() bool

	// Login posts the credentials to POST /auth/login and returns the token
	// and user from the response body. It does not store the token.
	Login(ctx context.Context, creds models.Credentials) (models.LoginResponse, error)

	// Register posts a new account to POST /auth/register and returns the
	// backend's message.
	Register(ctx context.Context, reg models.Registration) (string, error)

	// List fetches every record of kind via GET /admin/{kind}.
	List(ctx context.Context, kind models.ResourceKind) ([]models.Entity, error)

	// Create posts data to POST /admin/{kind} and returns the stored record.
	Create(ctx context.Context, kind models.ResourceKind, data models.Entity) (models.Entity, error)

	// Update replaces the record via PUT /admin/{kind}/{id} and returns the
	// stored record.
	Update(ctx context.Context, kind models.ResourceKind, id models.ID, data models.Entity) (models.Entity, error)

	// Delete removes the record via DELETE /admin/{kind}/{id}.
	Delete(ctx context.Context, kind models.ResourceKind, id models.ID) error

	// MarkRead acknowledges a contact message via
	// PATCH /admin/messages/{id}/read.
	MarkRead(ctx context.Context, id models.ID) error
}
