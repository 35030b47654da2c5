package store

import "errors"

// Sentinel errors of the persistence layer. Callers match them with
// [errors.Is]; the HTTP layer maps them to status codes.
var (
	// ErrMissingMongoConfig indicates that no connection target could be
	// resolved from configuration. Treated as fatal at startup.
	ErrMissingMongoConfig = errors.New("missing MongoDB configuration")

	// ErrConnectingToDatabase indicates that the initial connection or ping
	// to the database failed.
	ErrConnectingToDatabase = errors.New("error connecting to database")

	// ErrNoteNotFound is returned when a note id is malformed or no note
	// with that id exists. The two cases are intentionally collapsed.
	ErrNoteNotFound = errors.New("note not found")

	// ErrImageNotFound is returned when an image id is malformed or no
	// stored file with that id exists.
	ErrImageNotFound = errors.New("image not found")

	// ErrExecutingQuery wraps driver failures of collection operations.
	ErrExecutingQuery = errors.New("error executing query")

	// ErrDecodingDocument wraps failures to decode a stored document into
	// its model type.
	ErrDecodingDocument = errors.New("error decoding document")

	// ErrSavingFile wraps failures to upload a blob into the image bucket.
	ErrSavingFile = errors.New("error saving file")

	// ErrLoadingFile wraps failures to read a blob back out of the bucket.
	ErrLoadingFile = errors.New("error loading file")
)
