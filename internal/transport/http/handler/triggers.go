package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/portal360/admin-api/internal/application/trigger"
	"github.com/portal360/admin-api/internal/domain"
	"github.com/portal360/admin-api/internal/pkg/validate"
	"github.com/portal360/admin-api/internal/timing"
)

// TriggerHandler handles email-trigger endpoints.
type TriggerHandler struct {
	svc trigger.Service
}

func NewTriggerHandler(svc trigger.Service) *TriggerHandler {
	return &TriggerHandler{svc: svc}
}

func (h *TriggerHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	triggers, err := h.svc.List(r.Context())
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, triggers)
}

func (h *TriggerHandler) Get(w http.ResponseWriter, r *http.Request) {
	t, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (h *TriggerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input domain.EmailTriggerInput
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

func (h *TriggerHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input domain.EmailTriggerInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	updated, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// Delete is a hard delete; triggers have no recycle bin.
func (h *TriggerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "trigger deleted"})
}

func (h *TriggerHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	var req domain.ToggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	t, err := h.svc.Toggle(r.Context(), chi.URLParam(r, "id"), req.Active)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (h *TriggerHandler) SendTest(w http.ResponseWriter, r *http.Request) {
	var req domain.TriggerTestSendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.svc.SendTest(r.Context(), chi.URLParam(r, "id"), req.To); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "test email sent"})
}

// TimingOptions returns the fixed menu of timing codes with display labels,
// in menu order.
func (h *TriggerHandler) TimingOptions(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, timing.Menu())
}
