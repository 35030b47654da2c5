package adapter

import (
	"context"

	"github.com/tgusarov/notekeep/models"
)

// NotesClient is the typed client for the notekeep REST API. It mirrors the
// HTTP surface one method per endpoint; absence surfaces as [ErrNotFound]
// and rejected payloads as [ErrValidation].
type NotesClient interface {
	Ping(ctx context.Context) (string, error)
	CreateNote(ctx context.Context, title, content string) (models.NoteResponse, error)
	ListNotes(ctx context.Context) ([]models.NoteResponse, error)
	GetNote(ctx context.Context, id string) (models.NoteResponse, error)
	UpdateNote(ctx context.Context, id string, title, content *string) (models.NoteResponse, error)
	DeleteNote(ctx context.Context, id string) error
	AppendImages(ctx context.Context, id string, imageIDs []string) (models.NoteResponse, error)
	UploadImage(ctx context.Context, filename, contentType string, data []byte) (string, error)
	DownloadImage(ctx context.Context, id string) (models.Image, error)
}
