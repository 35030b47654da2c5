package http

import (
	"errors"
	"net/http"

	"github.com/tgusarov/notekeep/internal/store"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSONBody: http.StatusUnprocessableEntity,
	ErrMissingTitle:    http.StatusUnprocessableEntity,
	ErrMissingContent:  http.StatusUnprocessableEntity,
	ErrEmptyImageIDs:   http.StatusUnprocessableEntity,
	ErrMissingFilePart: http.StatusUnprocessableEntity,

	store.ErrNoteNotFound:  http.StatusNotFound,
	store.ErrImageNotFound: http.StatusNotFound,

	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrDecodingDocument: http.StatusInternalServerError,
	store.ErrSavingFile:       http.StatusInternalServerError,
	store.ErrLoadingFile:      http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError chooses the client-visible detail for err. Not-found is a
// uniform message regardless of cause, validation errors echo their own
// text, and everything else collapses into a generic server error so driver
// internals never leak out.
func messageFromError(err error) string {
	switch {
	case errors.Is(err, store.ErrNoteNotFound):
		return "Note not found"
	case errors.Is(err, store.ErrImageNotFound):
		return "Image not found"
	case statusFromError(err) == http.StatusUnprocessableEntity:
		return err.Error()
	default:
		return "internal server error"
	}
}
