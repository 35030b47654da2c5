package http

import (
	"encoding/json"
	"net/http"

	"github.com/tgusarov/notekeep/internal/logger"
	"github.com/tgusarov/notekeep/models"
)

// writeJSON serializes data and writes it with the given status code.
// Marshaling failures degrade to a plain 500.
func writeJSON(w http.ResponseWriter, data any, statusCode int) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_, _ = w.Write(jsonData)
}

// writeError maps err onto its status code and writes the client-visible
// message payload.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Msg("request failed")
	}

	writeJSON(w, models.MessageResponse{Message: messageFromError(err)}, status)
}
