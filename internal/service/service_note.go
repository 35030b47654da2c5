package service

import (
	"context"

	"github.com/tgusarov/notekeep/internal/logger"
	"github.com/tgusarov/notekeep/internal/store"
	"github.com/tgusarov/notekeep/models"
)

type noteService struct {
	noteRepository store.NoteRepository

	logger *logger.Logger
}

// NewNoteService constructs a [NoteService] delegating to the given
// repository.
func NewNoteService(noteRepository store.NoteRepository, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		logger:         logger,
	}
}

func (s *noteService) CreateNote(ctx context.Context, title, content string, images []string) (models.Note, error) {
	return s.noteRepository.Create(ctx, title, content, images)
}

func (s *noteService) GetAllNotes(ctx context.Context) ([]models.Note, error) {
	return s.noteRepository.GetAll(ctx)
}

func (s *noteService) GetNote(ctx context.Context, id string) (models.Note, error) {
	return s.noteRepository.Get(ctx, id)
}

func (s *noteService) UpdateNote(ctx context.Context, id string, title, content *string) (models.Note, error) {
	return s.noteRepository.Update(ctx, id, title, content)
}

func (s *noteService) DeleteNote(ctx context.Context, id string) error {
	return s.noteRepository.Delete(ctx, id)
}

func (s *noteService) AppendImages(ctx context.Context, id string, imageIDs []string) (models.Note, error) {
	return s.noteRepository.AppendImages(ctx, id, imageIDs)
}
