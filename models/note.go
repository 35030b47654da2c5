package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Note is the persisted note document as stored in the "notes" collection.
//
// ID is assigned by the store on insert and is immutable afterwards.
// Images holds GridFS file ids (hex strings) attached to the note; the
// collection-level $addToSet semantics guarantee it never contains
// duplicates. CreatedAt is set once at insert time; UpdatedAt is refreshed
// on every successful mutation, including image appends.
type Note struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Title     string             `bson:"title"`
	Content   string             `bson:"content"`
	Images    []string           `bson:"images"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

// Image is a blob loaded from the image bucket together with the metadata
// recorded at upload time.
type Image struct {
	// Data is the raw uploaded payload.
	Data []byte

	// ContentType is the content type declared by the uploader.
	// Empty when the upload carried no contentType metadata.
	ContentType string

	// Filename is the original file name supplied at upload time.
	Filename string
}
