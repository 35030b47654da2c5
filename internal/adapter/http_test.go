package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tgusarov/notekeep/internal/logger"
	"github.com/tgusarov/notekeep/models"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newClientFor(t *testing.T, handler http.HandlerFunc) NotesClient {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewNotesClient(srv.URL, 5*time.Second, logger.Nop())
	require.NoError(t, err)
	return client
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ─────────────────────────────────────────────
// normalizeBaseURL
// ─────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "full URL kept", raw: "http://localhost:8000", want: "http://localhost:8000"},
		{name: "https kept", raw: "https://notes.example.com", want: "https://notes.example.com"},
		{name: "bare host gets http scheme", raw: "localhost:8000", want: "http://localhost:8000"},
		{name: "trailing slash trimmed", raw: "http://localhost:8000/", want: "http://localhost:8000"},
		{name: "surrounding spaces trimmed", raw: "  localhost:8000  ", want: "http://localhost:8000"},
		{name: "empty fails", raw: "", wantErr: true},
		{name: "blank fails", raw: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ─────────────────────────────────────────────
// Round trips against a stub server
// ─────────────────────────────────────────────

func TestPing(t *testing.T) {
	client := newClientFor(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/test", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.MessageResponse{Message: "pong"})
	})

	message, err := client.Ping(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "pong", message)
}

func TestCreateNote_SendsBothFields(t *testing.T) {
	client := newClientFor(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/notes", r.URL.Path)

		var req models.NoteCreateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotNil(t, req.Title)
		require.NotNil(t, req.Content)
		assert.Equal(t, "t", *req.Title)
		assert.Equal(t, "c", *req.Content)

		writeJSON(t, w, http.StatusOK, models.NoteResponse{ID: "abc", Title: "t", Content: "c", Images: []string{}})
	})

	note, err := client.CreateNote(context.Background(), "t", "c")

	require.NoError(t, err)
	assert.Equal(t, "abc", note.ID)
}

func TestListNotes(t *testing.T) {
	client := newClientFor(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/notes", r.URL.Path)
		writeJSON(t, w, http.StatusOK, []models.NoteResponse{{ID: "a"}, {ID: "b"}})
	})

	notes, err := client.ListNotes(context.Background())

	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "a", notes[0].ID)
}

func TestGetNote_NotFound(t *testing.T) {
	client := newClientFor(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusNotFound, models.MessageResponse{Message: "Note not found"})
	})

	_, err := client.GetNote(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "Note not found")
}

func TestUpdateNote_OmitsUntouchedFields(t *testing.T) {
	title := "new title"
	client := newClientFor(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)

		var req models.NoteUpdateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotNil(t, req.Title)
		assert.Equal(t, "new title", *req.Title)
		assert.Nil(t, req.Content)

		writeJSON(t, w, http.StatusOK, models.NoteResponse{ID: "abc", Title: "new title"})
	})

	note, err := client.UpdateNote(context.Background(), "abc", &title, nil)

	require.NoError(t, err)
	assert.Equal(t, "new title", note.Title)
}

func TestDeleteNote(t *testing.T) {
	client := newClientFor(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/notes/abc", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	assert.NoError(t, client.DeleteNote(context.Background(), "abc"))
}

func TestAppendImages_ValidationError(t *testing.T) {
	client := newClientFor(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnprocessableEntity, models.MessageResponse{Message: "image_ids cannot be empty"})
	})

	_, err := client.AppendImages(context.Background(), "abc", nil)

	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "image_ids")
}

func TestUploadImage_MultipartFilePart(t *testing.T) {
	payload := []byte("fake image bytes")

	client := newClientFor(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/upload-image", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()

		assert.Equal(t, "cat.png", header.Filename)
		assert.Equal(t, "image/png", header.Header.Get("Content-Type"))

		writeJSON(t, w, http.StatusOK, models.ImageUploadResponse{ImageID: "img-1"})
	})

	imageID, err := client.UploadImage(context.Background(), "cat.png", "image/png", payload)

	require.NoError(t, err)
	assert.Equal(t, "img-1", imageID)
}

func TestDownloadImage(t *testing.T) {
	payload := []byte{0x89, 'P', 'N', 'G'}

	client := newClientFor(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/image/img-1", r.URL.Path)
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(payload)
	})

	image, err := client.DownloadImage(context.Background(), "img-1")

	require.NoError(t, err)
	assert.Equal(t, payload, image.Data)
	assert.Equal(t, "image/png", image.ContentType)
}

func TestDownloadImage_NotFound(t *testing.T) {
	client := newClientFor(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusNotFound, models.MessageResponse{Message: "Image not found"})
	})

	_, err := client.DownloadImage(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestServerFailureMapping(t *testing.T) {
	client := newClientFor(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusInternalServerError, models.MessageResponse{Message: "internal server error"})
	})

	_, err := client.ListNotes(context.Background())

	assert.ErrorIs(t, err, ErrServerFailure)
	assert.Contains(t, err.Error(), "status 500")
}
