package models

import "time"

// NoteResponse is the note shape returned to API clients. The store-native
// ObjectID never leaks out: ID is always the hex string form. Timestamps
// marshal as RFC 3339.
type NoteResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Images    []string  `json:"images"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewNoteResponse converts a stored note into its wire form.
// A nil Images slice becomes an empty one so clients always see a JSON array.
func NewNoteResponse(note Note) NoteResponse {
	images := note.Images
	if images == nil {
		images = []string{}
	}

	return NoteResponse{
		ID:        note.ID.Hex(),
		Title:     note.Title,
		Content:   note.Content,
		Images:    images,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}

// NewNoteResponses converts a list of stored notes, preserving order.
func NewNoteResponses(notes []Note) []NoteResponse {
	responses := make([]NoteResponse, 0, len(notes))
	for _, note := range notes {
		responses = append(responses, NewNoteResponse(note))
	}

	return responses
}

// ImageUploadResponse is the body returned by POST /upload-image.
type ImageUploadResponse struct {
	ImageID string `json:"image_id"`
}

// MessageResponse is a generic message payload, used by GET /test and by
// error responses that carry a human-readable detail.
type MessageResponse struct {
	Message string `json:"message"`
}
