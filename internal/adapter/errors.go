package adapter

import "errors"

// Errors returned by [NotesClient] implementations. Match with [errors.Is].
var (
	// ErrNotFound is returned when the server answers 404 — the note or
	// image does not exist (or its id is malformed; the server does not
	// distinguish the two).
	ErrNotFound = errors.New("not found on server")

	// ErrValidation is returned when the server rejects the payload (422).
	ErrValidation = errors.New("request rejected by server")

	// ErrServerFailure is returned for any other non-success response.
	ErrServerFailure = errors.New("server failure")
)
