package fakebackend

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/sparknest-admin/internal/utils"
)

const requestIDHeader = "X-Request-ID"

// withRequestID echoes the caller's X-Request-ID (or a new one) and puts a
// request-scoped logger carrying it into the context.
func (h *Handler) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = h.ids.Generate()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("request_id", requestID)
		})
		ctx = utils.WithRequestID(l.WithContext(ctx), requestID)

		w.Header().Set(requestIDHeader, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
