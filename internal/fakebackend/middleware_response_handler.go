// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fakebackend

import "net/http"

// responseWriter records the status code and body size written through it
// so withLogging can report them after the handler returns.
//
// WriteHeader is forwarded to the wrapped writer at most once.
type responseWriter struct {
	http.ResponseWriter

	// status is zero until the first WriteHeader, explicit or implicit.
	status      int
	wroteHeader bool

	// size is the running total of body bytes.
	size int
}

func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

// Write implies WriteHeader(http.StatusOK) when no status was set.
func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (w *responseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
