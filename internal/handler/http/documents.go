// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-collections-keeper/internal/app"
	"github.com/MKhiriev/go-collections-keeper/internal/logger"
	"github.com/MKhiriev/go-collections-keeper/internal/service"
	"github.com/MKhiriev/go-collections-keeper/internal/utils"
	"github.com/MKhiriev/go-collections-keeper/models"
)

func (h *Handler) addDocument(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	collection := chi.URLParam(r, "collection")

	var doc models.Document
	if err := utils.ReadJSON(r, &doc); err != nil {
		log.Err(err).Str("func", "*Handler.addDocument").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	id, err := h.services.DocumentService.Add(r.Context(), collection, doc)
	if err != nil {
		h.writeError(w, r, "*Handler.addDocument", err)
		return
	}

	w.Header().Set("Location", path.Join(r.URL.Path, id))
	utils.WriteJSON(w, models.AddDocumentResponse{ID: id}, http.StatusCreated)
}

func (h *Handler) setDocument(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	collection, id := chi.URLParam(r, "collection"), chi.URLParam(r, "id")

	var doc models.Document
	if err := utils.ReadJSON(r, &doc); err != nil {
		log.Err(err).Str("func", "*Handler.setDocument").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if err := h.services.DocumentService.Set(r.Context(), collection, id, doc); err != nil {
		h.writeError(w, r, "*Handler.setDocument", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) updateDocument(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	collection, id := chi.URLParam(r, "collection"), chi.URLParam(r, "id")

	patch, err := io.ReadAll(r.Body)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateDocument").Msg("failed to read request body")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	doc, err := h.services.DocumentService.Update(r.Context(), collection, id, models.JSONData(patch))
	if err != nil {
		h.writeError(w, r, "*Handler.updateDocument", err)
		return
	}

	utils.WriteJSON(w, doc, http.StatusOK)
}

func (h *Handler) deleteDocument(w http.ResponseWriter, r *http.Request) {
	collection, id := chi.URLParam(r, "collection"), chi.URLParam(r, "id")

	if err := h.services.DocumentService.Delete(r.Context(), collection, id); err != nil {
		h.writeError(w, r, "*Handler.deleteDocument", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getDocument(w http.ResponseWriter, r *http.Request) {
	collection, id := chi.URLParam(r, "collection"), chi.URLParam(r, "id")

	doc, err := h.services.DocumentService.Get(r.Context(), collection, id)
	if err != nil {
		h.writeError(w, r, "*Handler.getDocument", err)
		return
	}

	utils.WriteJSON(w, doc, http.StatusOK)
}

func (h *Handler) listDocuments(w http.ResponseWriter, r *http.Request) {
	collection := chi.URLParam(r, "collection")
	query := models.DocumentQuery{
		Owner:      r.URL.Query().Get("owner"),
		ClientID:   r.URL.Query().Get("client_id"),
		DateBefore: r.URL.Query().Get("date_before"),
	}

	docs, err := h.services.DocumentService.List(r.Context(), collection, query)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDataProvided) {
			err = fmt.Errorf("%w: %w", errInvalidFilter, err)
		}
		h.writeError(w, r, "*Handler.listDocuments", err)
		return
	}

	utils.WriteJSON(w, models.DocumentsResponse{Documents: docs, Length: len(docs)}, http.StatusOK)
}

func (h *Handler) batchDeleteDocuments(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	collection := chi.URLParam(r, "collection")

	var req models.BatchDeleteRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		log.Err(err).Str("func", "*Handler.batchDeleteDocuments").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	deleted, err := h.services.DocumentService.BatchDelete(r.Context(), collection, req)
	if err != nil {
		h.writeError(w, r, "*Handler.batchDeleteDocuments", err)
		return
	}

	utils.WriteJSON(w, models.BatchDeleteResponse{Deleted: deleted}, http.StatusOK)
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, fn string, err error) {
	status := statusFromError(err)
	event := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Str("func", fn).Int("status", status).Msg("request failed")

	http.Error(w, messageFromError(err), status)
}
