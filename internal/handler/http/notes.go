package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tgusarov/notekeep/internal/logger"
	"github.com/tgusarov/notekeep/models"
)

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.NoteCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.createNote").Msg("invalid JSON was passed")
		h.writeError(w, r, ErrInvalidJSONBody)
		return
	}

	if req.Title == nil {
		h.writeError(w, r, ErrMissingTitle)
		return
	}
	if req.Content == nil {
		h.writeError(w, r, ErrMissingContent)
		return
	}

	note, err := h.services.NoteService.CreateNote(r.Context(), *req.Title, *req.Content, req.Images)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, models.NewNoteResponse(note), http.StatusOK)
}

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.services.NoteService.GetAllNotes(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, models.NewNoteResponses(notes), http.StatusOK)
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	noteID := chi.URLParam(r, "noteID")

	note, err := h.services.NoteService.GetNote(r.Context(), noteID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, models.NewNoteResponse(note), http.StatusOK)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	noteID := chi.URLParam(r, "noteID")

	var req models.NoteUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.updateNote").Msg("invalid JSON was passed")
		h.writeError(w, r, ErrInvalidJSONBody)
		return
	}

	note, err := h.services.NoteService.UpdateNote(r.Context(), noteID, req.Title, req.Content)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, models.NewNoteResponse(note), http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	noteID := chi.URLParam(r, "noteID")

	if err := h.services.NoteService.DeleteNote(r.Context(), noteID); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) appendImages(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	noteID := chi.URLParam(r, "noteID")

	var req models.ImagesAppendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.appendImages").Msg("invalid JSON was passed")
		h.writeError(w, r, ErrInvalidJSONBody)
		return
	}

	if len(req.ImageIDs) == 0 {
		h.writeError(w, r, ErrEmptyImageIDs)
		return
	}

	note, err := h.services.NoteService.AppendImages(r.Context(), noteID, req.ImageIDs)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, models.NewNoteResponse(note), http.StatusOK)
}
