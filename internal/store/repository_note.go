package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tgusarov/notekeep/internal/logger"
	"github.com/tgusarov/notekeep/models"
)

// noteRepository is the MongoDB-backed implementation of [NoteRepository].
// It executes all note CRUD operations against the notes collection through
// the embedded [*DB] gateway.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that database interactions are traced with
// structured fields (note id, image counts, etc.).
type noteRepository struct {
	*DB
	logger *logger.Logger
}

// NewNoteRepository constructs a [NoteRepository] backed by the provided
// gateway and logger.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	return &noteRepository{
		DB:     db,
		logger: logger,
	}
}

// Create inserts a new note document with created_at and updated_at set to
// the same instant and returns the note including its store-assigned id.
// Client-supplied image ids go through the same duplicate suppression as
// AppendImages; a nil slice is stored as an empty array so clients never
// see null.
func (p *noteRepository) Create(ctx context.Context, title, content string, images []string) (models.Note, error) {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	note := models.Note{
		Title:     title,
		Content:   content,
		Images:    dedupImages(images),
		CreatedAt: now,
		UpdatedAt: now,
	}

	result, err := p.Notes().InsertOne(ctx, note)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.Create").
			Msg("failed to insert note document")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		log.Error().
			Str("func", "noteRepository.Create").
			Msg("inserted id has unexpected type")
		return models.Note{}, fmt.Errorf("%w: unexpected inserted id type %T", ErrDecodingDocument, result.InsertedID)
	}

	note.ID = oid
	return note, nil
}

// GetAll returns every note ordered by updated_at descending, most recently
// touched first.
func (p *noteRepository) GetAll(ctx context.Context) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	cursor, err := p.Notes().Find(ctx, bson.D{}, buildListOptions())
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.GetAll").
			Msg("failed to execute query for listing notes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	notes := make([]models.Note, 0, 50)
	if err := cursor.All(ctx, &notes); err != nil {
		log.Err(err).
			Str("func", "noteRepository.GetAll").
			Msg("failed to decode note documents")
		return nil, fmt.Errorf("%w: %w", ErrDecodingDocument, err)
	}

	return notes, nil
}

// Get returns the note with the given external id. Malformed ids and absent
// documents both yield [ErrNoteNotFound].
func (p *noteRepository) Get(ctx context.Context, id string) (models.Note, error) {
	log := logger.FromContext(ctx)

	oid, err := objectIDFromHex(id, ErrNoteNotFound)
	if err != nil {
		return models.Note{}, err
	}

	var note models.Note
	err = p.Notes().FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&note)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Note{}, ErrNoteNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.Get").
			Str("note_id", id).
			Msg("failed to fetch note document")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return note, nil
}

// Update applies only the non-nil fields, always refreshes updated_at, and
// returns the post-update document.
func (p *noteRepository) Update(ctx context.Context, id string, title, content *string) (models.Note, error) {
	log := logger.FromContext(ctx)

	oid, err := objectIDFromHex(id, ErrNoteNotFound)
	if err != nil {
		return models.Note{}, err
	}

	update := buildNoteUpdate(title, content, time.Now().UTC())
	updateOpts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var note models.Note
	err = p.Notes().
		FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: oid}}, update, updateOpts).
		Decode(&note)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Note{}, ErrNoteNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.Update").
			Str("note_id", id).
			Msg("failed to update note document")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return note, nil
}

// Delete removes exactly one note. [ErrNoteNotFound] is returned when the id
// is malformed or no document was removed.
func (p *noteRepository) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	oid, err := objectIDFromHex(id, ErrNoteNotFound)
	if err != nil {
		return err
	}

	result, err := p.Notes().DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.Delete").
			Str("note_id", id).
			Msg("failed to delete note document")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if result.DeletedCount == 0 {
		return ErrNoteNotFound
	}

	return nil
}

// AppendImages adds the given image ids to the note's image set in a single
// atomic update: $addToSet with $each suppresses duplicates while $set
// refreshes updated_at. The post-append document is returned.
func (p *noteRepository) AppendImages(ctx context.Context, id string, imageIDs []string) (models.Note, error) {
	log := logger.FromContext(ctx)

	oid, err := objectIDFromHex(id, ErrNoteNotFound)
	if err != nil {
		return models.Note{}, err
	}

	update := buildImagesAppend(imageIDs, time.Now().UTC())
	updateOpts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var note models.Note
	err = p.Notes().
		FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: oid}}, update, updateOpts).
		Decode(&note)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Note{}, ErrNoteNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.AppendImages").
			Str("note_id", id).
			Int("image_ids count", len(imageIDs)).
			Msg("failed to append image references")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return note, nil
}

// objectIDFromHex translates an external string id into the store-native
// identifier. Translation failure collapses into notFound, so callers never
// learn whether an id was malformed or merely absent.
func objectIDFromHex(id string, notFound error) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, notFound
	}

	return oid, nil
}

// dedupImages drops repeated image ids while keeping the first occurrence
// of each, so an inserted note satisfies the same no-duplicates guarantee
// that $addToSet gives appends. nil becomes an empty slice.
func dedupImages(images []string) []string {
	deduped := make([]string, 0, len(images))
	seen := make(map[string]struct{}, len(images))
	for _, id := range images {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		deduped = append(deduped, id)
	}

	return deduped
}

// buildListOptions builds the find options for GetAll: notes with the most
// recent activity come first.
func buildListOptions() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "updated_at", Value: -1}})
}

// buildNoteUpdate builds the $set document for a partial update: updated_at
// is always refreshed, title and content only when non-nil. An omitted field
// and an explicit JSON null both arrive here as nil and are skipped.
func buildNoteUpdate(title, content *string, now time.Time) bson.D {
	set := bson.D{{Key: "updated_at", Value: now}}
	if title != nil {
		set = append(set, bson.E{Key: "title", Value: *title})
	}
	if content != nil {
		set = append(set, bson.E{Key: "content", Value: *content})
	}

	return bson.D{{Key: "$set", Value: set}}
}

// buildImagesAppend builds the combined $addToSet + $set update used by
// AppendImages.
func buildImagesAppend(imageIDs []string, now time.Time) bson.D {
	return bson.D{
		{Key: "$addToSet", Value: bson.D{
			{Key: "images", Value: bson.D{{Key: "$each", Value: imageIDs}}},
		}},
		{Key: "$set", Value: bson.D{{Key: "updated_at", Value: now}}},
	}
}
