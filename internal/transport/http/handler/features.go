package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/portal360/admin-api/internal/application/feature"
	"github.com/portal360/admin-api/internal/domain"
)

// FeatureHandler handles feature-toggle endpoints.
type FeatureHandler struct {
	svc feature.Service
}

func NewFeatureHandler(svc feature.Service) *FeatureHandler { return &FeatureHandler{svc: svc} }

func (h *FeatureHandler) List(w http.ResponseWriter, r *http.Request) {
	features, err := h.svc.List(r.Context())
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, features)
}

func (h *FeatureHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input domain.FeatureInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	created, err := h.svc.Create(r.Context(), input)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *FeatureHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	var req domain.ToggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	f, err := h.svc.Toggle(r.Context(), chi.URLParam(r, "id"), req.Active)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, f)
}
