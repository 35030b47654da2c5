package http

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tgusarov/notekeep/internal/logger"
	"github.com/tgusarov/notekeep/models"
)

// maxUploadMemory bounds how much of a multipart upload is held in memory
// before spilling to disk.
const maxUploadMemory = 32 << 20

// fallbackContentType is served when an image was stored without a declared
// content type.
const fallbackContentType = "application/octet-stream"

func (h *Handler) uploadImage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		log.Err(err).Str("func", "*Handler.uploadImage").Msg("invalid multipart body")
		h.writeError(w, r, ErrMissingFilePart)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.writeError(w, r, ErrMissingFilePart)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	contentType := header.Header.Get("Content-Type")

	imageID, err := h.services.ImageService.UploadImage(r.Context(), header.Filename, contentType, data)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, models.ImageUploadResponse{ImageID: imageID}, http.StatusOK)
}

func (h *Handler) downloadImage(w http.ResponseWriter, r *http.Request) {
	imageID := chi.URLParam(r, "imageID")

	image, err := h.services.ImageService.DownloadImage(r.Context(), imageID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	contentType := image.ContentType
	if contentType == "" {
		contentType = fallbackContentType
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(image.Data)
}
