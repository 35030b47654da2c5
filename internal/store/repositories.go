package store

import "github.com/tgusarov/notekeep/internal/logger"

// Repositories bundles all persistence-layer implementations handed to the
// service layer.
type Repositories struct {
	NoteRepository NoteRepository
	ImageStorage   ImageStorage
}

// NewRepositories wires all repositories on top of a single shared gateway.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		NoteRepository: NewNoteRepository(db, logger),
		ImageStorage:   NewImageFileStorage(db, logger),
	}
}
