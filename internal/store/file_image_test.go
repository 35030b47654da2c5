package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
)

func TestContentTypeFromFile_WithMetadata(t *testing.T) {
	raw, err := bson.Marshal(imageMetadata{ContentType: "image/png"})
	require.NoError(t, err)

	file := &gridfs.File{Name: "cat.png", Metadata: raw}

	assert.Equal(t, "image/png", contentTypeFromFile(file))
}

func TestContentTypeFromFile_NoMetadata(t *testing.T) {
	file := &gridfs.File{Name: "cat.png"}

	assert.Equal(t, "", contentTypeFromFile(file))
}

func TestContentTypeFromFile_MetadataWithoutContentType(t *testing.T) {
	raw, err := bson.Marshal(bson.D{{Key: "something", Value: "else"}})
	require.NoError(t, err)

	file := &gridfs.File{Metadata: raw}

	assert.Equal(t, "", contentTypeFromFile(file))
}
