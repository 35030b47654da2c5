package models

// NoteCreateRequest is the body of POST /notes.
//
// Title and Content are pointers so that an absent field can be told apart
// from an empty string: absence is a validation error, an empty string is a
// legal value.
type NoteCreateRequest struct {
	Title   *string  `json:"title"`
	Content *string  `json:"content"`
	Images  []string `json:"images,omitempty"`
}

// NoteUpdateRequest is the body of PATCH /notes/{id}.
//
// A nil field is left untouched. A field sent as JSON null decodes to nil as
// well, so "omitted" and "explicit null" are deliberately indistinguishable:
// this endpoint cannot clear a field to empty, only replace it.
type NoteUpdateRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// ImagesAppendRequest is the body of POST /notes/{id}/images.
// ImageIDs must be non-empty; the handler rejects an empty batch.
type ImagesAppendRequest struct {
	ImageIDs []string `json:"image_ids"`
}
