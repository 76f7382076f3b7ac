package fakebackend

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/sparknest-admin/internal/logger"
	"github.com/MKhiriev/sparknest-admin/internal/utils"
	"github.com/MKhiriev/sparknest-admin/models"
)

// kindFromRequest reads the {kind} path segment. Only the exact wire names
// are routed; aliases are a client-side convenience.
func kindFromRequest(r *http.Request) (models.ResourceKind, bool) {
	kind := models.ResourceKind(chi.URLParam(r, "kind"))
	return kind, kind.Valid()
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	kind, ok := kindFromRequest(r)
	if !ok {
		utils.WriteError(w, msgUnknownResource, http.StatusNotFound)
		return
	}

	_, _ = utils.WriteJSON(w, h.store.list(kind), http.StatusOK)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	kind, ok := kindFromRequest(r)
	if !ok {
		utils.WriteError(w, msgUnknownResource, http.StatusNotFound)
		return
	}

	data, ok := decodeEntity(w, r)
	if !ok {
		return
	}

	created := h.store.create(kind, data)
	log.Debug().Str("resource", string(kind)).Str("id", string(created.ID())).Msg("record created")
	_, _ = utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	kind, ok := kindFromRequest(r)
	if !ok {
		utils.WriteError(w, msgUnknownResource, http.StatusNotFound)
		return
	}

	data, ok := decodeEntity(w, r)
	if !ok {
		return
	}

	updated, err := h.store.update(kind, models.ID(chi.URLParam(r, "id")), data)
	if err != nil {
		h.writeStoreError(w, r, err)
		return
	}

	log.Debug().Str("resource", string(kind)).Str("id", string(updated.ID())).Msg("record updated")
	_, _ = utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	kind, ok := kindFromRequest(r)
	if !ok {
		utils.WriteError(w, msgUnknownResource, http.StatusNotFound)
		return
	}

	if err := h.store.delete(kind, models.ID(chi.URLParam(r, "id"))); err != nil {
		h.writeStoreError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, utils.ErrorBody{Message: msgDeleted}, http.StatusOK)
}

func (h *Handler) markRead(w http.ResponseWriter, r *http.Request) {
	if err := h.store.markRead(models.ID(chi.URLParam(r, "id"))); err != nil {
		h.writeStoreError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, utils.ErrorBody{Message: msgMessageRead}, http.StatusOK)
}

// contact is the website's public contact form; it is how messages reach
// the admin inbox.
func (h *Handler) contact(w http.ResponseWriter, r *http.Request) {
	data, ok := decodeEntity(w, r)
	if !ok {
		return
	}

	if blank(data.String(models.FieldName), data.String(models.FieldEmail), data.String(models.FieldContent)) {
		utils.WriteError(w, msgMissingFields, http.StatusBadRequest)
		return
	}

	delete(data, models.FieldRead)
	h.store.create(models.Messages, data)
	_, _ = utils.WriteJSON(w, utils.ErrorBody{Message: msgMessageSent}, http.StatusCreated)
}

func decodeEntity(w http.ResponseWriter, r *http.Request) (models.Entity, bool) {
	var data models.Entity
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil || data == nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, msgInvalidJSON, http.StatusBadRequest)
		return nil, false
	}
	return data, true
}

func (h *Handler) writeStoreError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	switch {
	case errors.Is(err, ErrRecordNotFound):
		log.Err(err).Str("id", chi.URLParam(r, "id")).Send()
		utils.WriteError(w, msgNotFound, http.StatusNotFound)
	default:
		log.Err(err).Msg("unexpected store error")
		utils.WriteError(w, msgInternal, http.StatusInternalServerError)
	}
}
