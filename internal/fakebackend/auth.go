package fakebackend

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/sparknest-admin/internal/logger"
	"github.com/MKhiriev/sparknest-admin/internal/utils"
	"github.com/MKhiriev/sparknest-admin/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var profile models.Registration
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	if blank(profile.Name, profile.Email, profile.Password) {
		log.Warn().Msg("invalid data provided")
		utils.WriteError(w, msgMissingFields, http.StatusBadRequest)
		return
	}

	user, err := h.store.register(profile.Name, profile.Email, profile.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailTaken):
			log.Err(err).Msg("email already registered")
			utils.WriteError(w, msgEmailTaken, http.StatusConflict)
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			utils.WriteError(w, msgInternal, http.StatusInternalServerError)
		}
		return
	}

	log.Debug().Str("user_id", string(user.ID)).Msg("user registered")
	_, _ = utils.WriteJSON(w, models.RegisterResponse{Message: msgAccountCreated}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	if blank(credentials.Email, credentials.Password) {
		utils.WriteError(w, msgMissingFields, http.StatusBadRequest)
		return
	}

	user, err := h.store.authenticate(credentials.Email, credentials.Password)
	if err != nil {
		log.Err(err).Msg("no user was found/wrong password")
		utils.WriteError(w, msgInvalidCredentials, http.StatusUnauthorized)
		return
	}

	token, err := utils.GenerateJWTToken(h.issuer, string(user.ID), h.tokenTTL, h.signKey)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteError(w, msgInternal, http.StatusInternalServerError)
		return
	}

	log.Debug().Str("user_id", string(user.ID)).Msg("user successfully logged in")
	_, _ = utils.WriteJSON(w, models.LoginResponse{Token: token, User: user}, http.StatusOK)
}

func blank(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}
