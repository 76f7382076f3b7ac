// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Keys under which the session lives in the secure store. They match the keys
// of the mobile app so both clients read the same record layout.
const (
	SessionTokenKey = "userToken"
	SessionUserKey  = "userData"
)

// SessionState is the authentication state of the client.
type SessionState int

const (
	Anonymous SessionState = iota
	Authenticated
)

// String implements fmt.Stringer.
func (s SessionState) String() string {
	if s == Authenticated {
		return "authenticated"
	}
	return "anonymous"
}

// Session is the snapshot of the current identity. It never carries the raw
// token outside the session service.
type Session struct {
	State SessionState
	User  User

	// ExpiresAt is decoded from the token when it is a JWT with an exp claim.
	// Zero when unknown.
	ExpiresAt time.Time
}
