// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// defaultDisplayName is shown when the backend returned a user without a name.
const defaultDisplayName = "Admin"

// User is the administrator profile returned by the backend on login and
// persisted next to the bearer token under the "userData" key.
type User struct {
	// ID is the backend identifier of the account. The backend may send it
	// either as a number or as a string, see [ID].
	ID ID `json:"id,omitempty"`

	// Name is the display name of the administrator.
	Name string `json:"name"`

	// Email is the login identifier of the administrator.
	Email string `json:"email"`

	// Role is the optional backend role (e.g. "admin").
	Role string `json:"role,omitempty"`
}

// DisplayName returns the name to greet the user with on the dashboard.
func (u User) DisplayName() string {
	if name := strings.TrimSpace(u.Name); name != "" {
		return name
	}
	return defaultDisplayName
}
