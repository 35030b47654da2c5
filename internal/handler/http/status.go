package http

import (
	"net/http"

	"github.com/tgusarov/notekeep/models"
)

// status answers GET /test with a fixed liveness message.
func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, models.MessageResponse{Message: "notekeep connected to MongoDB!"}, http.StatusOK)
}
