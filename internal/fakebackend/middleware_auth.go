package fakebackend

import (
	"context"
	"errors"
	"net/http"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/sparknest-admin/internal/logger"
	"github.com/MKhiriev/sparknest-admin/internal/utils"
)

// auth enforces a valid bearer JWT issued by this backend and stores its
// subject in the context under utils.UserIDCtxKey.
//
// Missing or malformed headers, expired tokens and bad signatures all end
// in 401 with a JSON message.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			log.Err(err).Send()
			utils.WriteError(w, msgUnauthorized, http.StatusUnauthorized)
			return
		}

		userID, err := utils.ValidateAndParseJWTToken(tokenString, h.signKey, h.issuer)
		if err != nil {
			switch {
			case errors.Is(err, jwt.ErrTokenExpired):
				log.Err(err).Msg("token expired")
				utils.WriteError(w, msgTokenExpired, http.StatusUnauthorized)
			default:
				log.Err(err).Msg("error occurred during parsing token")
				utils.WriteError(w, msgUnauthorized, http.StatusUnauthorized)
			}
			return
		}

		ctx := context.WithValue(r.Context(), utils.UserIDCtxKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
