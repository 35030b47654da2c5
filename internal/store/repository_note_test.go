package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ─────────────────────────────────────────────
// objectIDFromHex — the id translation boundary
// ─────────────────────────────────────────────

func TestObjectIDFromHex_Valid(t *testing.T) {
	want := primitive.NewObjectID()

	got, err := objectIDFromHex(want.Hex(), ErrNoteNotFound)
	require.NoError(t, err)

	assert.Equal(t, want, got)
}

// Malformed ids collapse into the caller's not-found sentinel, so the
// repository never distinguishes bad syntax from absence.
func TestObjectIDFromHex_MalformedCollapsesToNotFound(t *testing.T) {
	tests := []struct {
		name string
		id   string
	}{
		{name: "empty", id: ""},
		{name: "too short", id: "abc"},
		{name: "not hex", id: "zzzzzzzzzzzzzzzzzzzzzzzz"},
		{name: "almost valid", id: "507f1f77bcf86cd79943901"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := objectIDFromHex(tt.id, ErrNoteNotFound)
			assert.ErrorIs(t, err, ErrNoteNotFound)
		})
	}
}

func TestObjectIDFromHex_SentinelIsCallerChosen(t *testing.T) {
	_, err := objectIDFromHex("bogus", ErrImageNotFound)
	assert.ErrorIs(t, err, ErrImageNotFound)
}

// ─────────────────────────────────────────────
// buildNoteUpdate — partial update construction
// ─────────────────────────────────────────────

func setDocument(t *testing.T, update bson.D) bson.D {
	t.Helper()

	require.Len(t, update, 1)
	require.Equal(t, "$set", update[0].Key)

	set, ok := update[0].Value.(bson.D)
	require.True(t, ok)

	return set
}

func TestBuildNoteUpdate_AlwaysRefreshesUpdatedAt(t *testing.T) {
	now := time.Now().UTC()

	set := setDocument(t, buildNoteUpdate(nil, nil, now))

	require.Len(t, set, 1)
	assert.Equal(t, "updated_at", set[0].Key)
	assert.Equal(t, now, set[0].Value)
}

func TestBuildNoteUpdate_TitleOnly(t *testing.T) {
	title := "new title"

	set := setDocument(t, buildNoteUpdate(&title, nil, time.Now().UTC()))

	require.Len(t, set, 2)
	assert.Equal(t, "title", set[1].Key)
	assert.Equal(t, "new title", set[1].Value)
}

func TestBuildNoteUpdate_ContentOnly(t *testing.T) {
	content := "new content"

	set := setDocument(t, buildNoteUpdate(nil, &content, time.Now().UTC()))

	require.Len(t, set, 2)
	assert.Equal(t, "content", set[1].Key)
	assert.Equal(t, "new content", set[1].Value)
}

func TestBuildNoteUpdate_BothFields(t *testing.T) {
	title, content := "t", "c"

	set := setDocument(t, buildNoteUpdate(&title, &content, time.Now().UTC()))

	assert.Len(t, set, 3)
}

// An empty string is a legal replacement value, distinct from nil.
func TestBuildNoteUpdate_EmptyStringIsSet(t *testing.T) {
	empty := ""

	set := setDocument(t, buildNoteUpdate(&empty, nil, time.Now().UTC()))

	require.Len(t, set, 2)
	assert.Equal(t, "title", set[1].Key)
	assert.Equal(t, "", set[1].Value)
}

// ─────────────────────────────────────────────
// buildImagesAppend — atomic append construction
// ─────────────────────────────────────────────

func TestBuildImagesAppend_AddToSetWithEach(t *testing.T) {
	now := time.Now().UTC()
	ids := []string{"img-1", "img-2"}

	update := buildImagesAppend(ids, now)
	require.Len(t, update, 2)

	require.Equal(t, "$addToSet", update[0].Key)
	addToSet, ok := update[0].Value.(bson.D)
	require.True(t, ok)
	require.Len(t, addToSet, 1)
	require.Equal(t, "images", addToSet[0].Key)

	each, ok := addToSet[0].Value.(bson.D)
	require.True(t, ok)
	require.Equal(t, "$each", each[0].Key)
	assert.Equal(t, ids, each[0].Value)
}

func TestBuildImagesAppend_RefreshesUpdatedAt(t *testing.T) {
	now := time.Now().UTC()

	update := buildImagesAppend([]string{"img-1"}, now)
	require.Len(t, update, 2)

	require.Equal(t, "$set", update[1].Key)
	set, ok := update[1].Value.(bson.D)
	require.True(t, ok)
	require.Len(t, set, 1)
	assert.Equal(t, "updated_at", set[0].Key)
	assert.Equal(t, now, set[0].Value)
}

// ─────────────────────────────────────────────
// dedupImages — duplicate suppression at insert
// ─────────────────────────────────────────────

// Inserted notes must satisfy the same no-duplicates guarantee that
// $addToSet gives appends, even when the client repeats ids in the payload.
func TestDedupImages_RepeatedIDsCollapse(t *testing.T) {
	got := dedupImages([]string{"img-1", "img-1", "img-1"})

	assert.Equal(t, []string{"img-1"}, got)
}

func TestDedupImages_KeepsFirstOccurrenceOrder(t *testing.T) {
	got := dedupImages([]string{"b", "a", "b", "c", "a"})

	assert.Equal(t, []string{"b", "a", "c"}, got)
}

func TestDedupImages_NilBecomesEmptySlice(t *testing.T) {
	got := dedupImages(nil)

	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestDedupImages_UniqueInputUnchanged(t *testing.T) {
	got := dedupImages([]string{"a", "b", "c"})

	assert.Equal(t, []string{"a", "b", "c"}, got)
}

// ─────────────────────────────────────────────
// buildListOptions — listing order
// ─────────────────────────────────────────────

func TestBuildListOptions_SortsByUpdatedAtDescending(t *testing.T) {
	opts := buildListOptions()

	require.NotNil(t, opts.Sort)
	assert.Equal(t, bson.D{{Key: "updated_at", Value: -1}}, opts.Sort)
}
