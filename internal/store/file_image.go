package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tgusarov/notekeep/internal/logger"
	"github.com/tgusarov/notekeep/models"
)

// imageFileStorage is the GridFS-backed implementation of [ImageStorage].
// Uploaded blobs are chunked into the bucket of the same database that holds
// the notes collection; the declared content type travels in the file's
// metadata document, the original filename in the file name field.
//
// Blobs have a lifecycle independent from notes: deleting a note does not
// touch the files its images field references.
type imageFileStorage struct {
	*DB
	logger *logger.Logger
}

// NewImageFileStorage constructs an [ImageStorage] backed by the gateway's
// GridFS bucket.
func NewImageFileStorage(db *DB, logger *logger.Logger) ImageStorage {
	return &imageFileStorage{
		DB:     db,
		logger: logger,
	}
}

// imageMetadata is the metadata document stored alongside each uploaded file.
type imageMetadata struct {
	ContentType string `bson:"contentType"`
}

// Save uploads the blob and returns the assigned file id as a hex string.
func (p *imageFileStorage) Save(ctx context.Context, filename, contentType string, data []byte) (string, error) {
	log := logger.FromContext(ctx)

	uploadOpts := options.GridFSUpload().
		SetMetadata(imageMetadata{ContentType: contentType})

	fileID, err := p.Bucket().UploadFromStream(filename, bytes.NewReader(data), uploadOpts)
	if err != nil {
		log.Err(err).
			Str("func", "imageFileStorage.Save").
			Str("filename", filename).
			Int("size", len(data)).
			Msg("failed to upload image to bucket")
		return "", fmt.Errorf("%w: %w", ErrSavingFile, err)
	}

	return fileID.Hex(), nil
}

// Load reads the blob with the given id back out of the bucket. A malformed
// id and a missing file both yield [ErrImageNotFound].
func (p *imageFileStorage) Load(ctx context.Context, id string) (models.Image, error) {
	log := logger.FromContext(ctx)

	oid, err := objectIDFromHex(id, ErrImageNotFound)
	if err != nil {
		return models.Image{}, err
	}

	stream, err := p.Bucket().OpenDownloadStream(oid)
	if errors.Is(err, gridfs.ErrFileNotFound) {
		return models.Image{}, ErrImageNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "imageFileStorage.Load").
			Str("image_id", id).
			Msg("failed to open download stream")
		return models.Image{}, fmt.Errorf("%w: %w", ErrLoadingFile, err)
	}
	defer stream.Close()

	data, err := io.ReadAll(stream)
	if err != nil {
		log.Err(err).
			Str("func", "imageFileStorage.Load").
			Str("image_id", id).
			Msg("failed to read image bytes")
		return models.Image{}, fmt.Errorf("%w: %w", ErrLoadingFile, err)
	}

	file := stream.GetFile()

	return models.Image{
		Data:        data,
		ContentType: contentTypeFromFile(file),
		Filename:    file.Name,
	}, nil
}

// contentTypeFromFile extracts the declared content type from the stored
// metadata document. Returns "" when the file carries no usable metadata;
// the handler falls back to application/octet-stream in that case.
func contentTypeFromFile(file *gridfs.File) string {
	if len(file.Metadata) == 0 {
		return ""
	}

	var meta imageMetadata
	if err := bson.Unmarshal(file.Metadata, &meta); err != nil {
		return ""
	}

	return meta.ContentType
}
