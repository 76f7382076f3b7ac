// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package fakebackend is an in-memory stand-in for the SparkNest REST
// backend. It serves the endpoints the admin client talks to
// (/auth/login, /auth/register, /admin/{resource}[/{id}],
// /admin/messages/{id}/read and the public /contact form) so the client can
// be exercised end to end without the real website.
//
// Tokens are HS256 JWTs, passwords are bcrypt hashes, records get numeric
// ids. Nothing is persisted.
package fakebackend
