package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/portal360/admin-api/internal/application/content"
	"github.com/portal360/admin-api/internal/domain"
	"github.com/portal360/admin-api/internal/transport/http/middleware"
)

// maxUploadBytes caps content-asset uploads at 25 MiB.
const maxUploadBytes = 25 << 20

// ContentHandler handles website content-asset endpoints.
type ContentHandler struct {
	svc content.Service
}

func NewContentHandler(svc content.Service) *ContentHandler { return &ContentHandler{svc: svc} }

// Upload accepts a multipart form with a "file" part and an optional
// "section" field.
func (h *ContentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "file part required")
		return
	}
	defer file.Close()

	var uploaderID string
	if claims, ok := middleware.ClaimsFromContext(r.Context()); ok {
		uploaderID = claims.UserID
	}

	asset, err := h.svc.Upload(r.Context(), content.UploadInput{
		Reader:      file,
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Section:     r.FormValue("section"),
		UploaderID:  uploaderID,
	})
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, asset)
}

// Get returns the asset metadata plus a short-lived download URL.
func (h *ContentHandler) Get(w http.ResponseWriter, r *http.Request) {
	asset, url, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		*domain.ContentAsset
		URL string `json:"url"`
	}{asset, url})
}

func (h *ContentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "asset deleted"})
}
