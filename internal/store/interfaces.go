package store

import (
	"context"

	"github.com/tgusarov/notekeep/models"
)

// NoteRepository is the persistence contract for notes.
//
// All id parameters are external hex strings; implementations translate them
// to the store-native identifier and return [ErrNoteNotFound] both for
// malformed ids and for well-formed ids that match no document.
type NoteRepository interface {
	// Create inserts a new note with both timestamps set to the same
	// instant and returns it with its assigned id.
	Create(ctx context.Context, title, content string, images []string) (models.Note, error)

	// GetAll returns every note ordered by updated_at descending.
	GetAll(ctx context.Context) ([]models.Note, error)

	// Get returns the note with the given id.
	Get(ctx context.Context, id string) (models.Note, error)

	// Update replaces only the non-nil fields, refreshes updated_at, and
	// returns the post-update note.
	Update(ctx context.Context, id string, title, content *string) (models.Note, error)

	// Delete removes the note with the given id.
	Delete(ctx context.Context, id string) error

	// AppendImages adds the given image ids to the note's image set with
	// duplicate suppression, refreshes updated_at, and returns the
	// refreshed note.
	AppendImages(ctx context.Context, id string, imageIDs []string) (models.Note, error)
}

// ImageStorage is the persistence contract for image blobs.
type ImageStorage interface {
	// Save stores the blob with its declared content type and original
	// filename as metadata, returning the assigned id as a hex string.
	Save(ctx context.Context, filename, contentType string, data []byte) (string, error)

	// Load reads the blob with the given id back out, together with its
	// stored metadata. Malformed and unknown ids both yield
	// [ErrImageNotFound].
	Load(ctx context.Context, id string) (models.Image, error)
}
