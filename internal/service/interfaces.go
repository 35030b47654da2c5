package service

import (
	"context"

	"github.com/tgusarov/notekeep/models"
)

// NoteService orchestrates note operations for the transport layer.
// Payload validation lives in the handlers; absence surfaces as the store's
// sentinel errors.
type NoteService interface {
	CreateNote(ctx context.Context, title, content string, images []string) (models.Note, error)
	GetAllNotes(ctx context.Context) ([]models.Note, error)
	GetNote(ctx context.Context, id string) (models.Note, error)
	UpdateNote(ctx context.Context, id string, title, content *string) (models.Note, error)
	DeleteNote(ctx context.Context, id string) error
	AppendImages(ctx context.Context, id string, imageIDs []string) (models.Note, error)
}

// ImageService orchestrates image blob operations for the transport layer.
type ImageService interface {
	UploadImage(ctx context.Context, filename, contentType string, data []byte) (string, error)
	DownloadImage(ctx context.Context, id string) (models.Image, error)
}
