// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fakebackend

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/sparknest-admin/internal/utils"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler.
// Instead of chi's 405 it answers 404 with the API's JSON error body, which
// is what the website backend does for unknown method/path pairs.
//
// A request whose method turns out to be routed after all (chi.Mux.Match)
// is handed back to router.
//
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}

		utils.WriteError(w, msgNotFound, http.StatusNotFound)
	}
}
