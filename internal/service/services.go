// Package service is the thin orchestration layer between the HTTP handlers
// and the store. It keeps the transport decoupled from persistence so either
// side can be mocked in tests; business rules beyond delegation are
// deliberately absent (validation is the API layer's job).
package service

import (
	"github.com/tgusarov/notekeep/internal/logger"
	"github.com/tgusarov/notekeep/internal/store"
)

// Services bundles all service implementations handed to the handlers.
type Services struct {
	NoteService  NoteService
	ImageService ImageService
}

// NewServices wires all services on top of the given repositories.
func NewServices(repositories *store.Repositories, logger *logger.Logger) *Services {
	return &Services{
		NoteService:  NewNoteService(repositories.NoteRepository, logger),
		ImageService: NewImageService(repositories.ImageStorage, logger),
	}
}
