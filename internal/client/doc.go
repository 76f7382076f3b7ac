// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client assembles the admin client runtime.
//
// [Runtime] wires configuration, the secure session store, the backend
// adapter and the services; both the terminal UI and sparknestctl are built
// on it. [App] adds the interactive terminal UI on top and owns the process
// lifecycle.
package client
