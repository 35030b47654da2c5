package http

import "errors"

// Validation errors produced by the handlers themselves before any service
// call. All of them map to 422 Unprocessable Entity.
var (
	// ErrInvalidJSONBody is returned when a request body cannot be decoded.
	ErrInvalidJSONBody = errors.New("invalid JSON was passed")

	// ErrMissingTitle is returned when a note creation body omits `title`.
	ErrMissingTitle = errors.New("field `title` is required")

	// ErrMissingContent is returned when a note creation body omits `content`.
	ErrMissingContent = errors.New("field `content` is required")

	// ErrEmptyImageIDs is returned when an image append body carries an
	// empty or missing `image_ids` list.
	ErrEmptyImageIDs = errors.New("image_ids cannot be empty")

	// ErrMissingFilePart is returned when an upload request carries no
	// multipart `file` field.
	ErrMissingFilePart = errors.New("multipart field `file` is required")
)
