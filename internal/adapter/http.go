// Package adapter provides the HTTP/REST client for the notekeep API, used
// by the notecli binary and integration-style tests.
package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/tgusarov/notekeep/internal/logger"
	"github.com/tgusarov/notekeep/models"
)

type httpNotesClient struct {
	client *resty.Client

	logger *logger.Logger
}

// NewNotesClient constructs a REST implementation of [NotesClient].
// It normalises and validates baseURL (a bare host:port gets an http://
// scheme) and configures the underlying client with the request timeout.
func NewNotesClient(baseURL string, timeout time.Duration, logger *logger.Logger) (NotesClient, error) {
	normalized, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	client := resty.New().
		SetBaseURL(normalized).
		SetTimeout(timeout)

	return &httpNotesClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (c *httpNotesClient) Ping(ctx context.Context) (string, error) {
	var message models.MessageResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&message).
		Get("/test")
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrServerFailure, err)
	}
	if err := responseError(resp); err != nil {
		return "", err
	}

	return message.Message, nil
}

func (c *httpNotesClient) CreateNote(ctx context.Context, title, content string) (models.NoteResponse, error) {
	var note models.NoteResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(models.NoteCreateRequest{Title: &title, Content: &content}).
		SetResult(&note).
		Post("/notes")
	if err != nil {
		return models.NoteResponse{}, fmt.Errorf("%w: %w", ErrServerFailure, err)
	}
	if err := responseError(resp); err != nil {
		return models.NoteResponse{}, err
	}

	return note, nil
}

func (c *httpNotesClient) ListNotes(ctx context.Context) ([]models.NoteResponse, error) {
	var notes []models.NoteResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&notes).
		Get("/notes")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrServerFailure, err)
	}
	if err := responseError(resp); err != nil {
		return nil, err
	}

	return notes, nil
}

func (c *httpNotesClient) GetNote(ctx context.Context, id string) (models.NoteResponse, error) {
	var note models.NoteResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&note).
		Get("/notes/" + url.PathEscape(id))
	if err != nil {
		return models.NoteResponse{}, fmt.Errorf("%w: %w", ErrServerFailure, err)
	}
	if err := responseError(resp); err != nil {
		return models.NoteResponse{}, err
	}

	return note, nil
}

func (c *httpNotesClient) UpdateNote(ctx context.Context, id string, title, content *string) (models.NoteResponse, error) {
	var note models.NoteResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(models.NoteUpdateRequest{Title: title, Content: content}).
		SetResult(&note).
		Patch("/notes/" + url.PathEscape(id))
	if err != nil {
		return models.NoteResponse{}, fmt.Errorf("%w: %w", ErrServerFailure, err)
	}
	if err := responseError(resp); err != nil {
		return models.NoteResponse{}, err
	}

	return note, nil
}

func (c *httpNotesClient) DeleteNote(ctx context.Context, id string) error {
	resp, err := c.client.R().
		SetContext(ctx).
		Delete("/notes/" + url.PathEscape(id))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrServerFailure, err)
	}

	return responseError(resp)
}

func (c *httpNotesClient) AppendImages(ctx context.Context, id string, imageIDs []string) (models.NoteResponse, error) {
	var note models.NoteResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(models.ImagesAppendRequest{ImageIDs: imageIDs}).
		SetResult(&note).
		Post("/notes/" + url.PathEscape(id) + "/images")
	if err != nil {
		return models.NoteResponse{}, fmt.Errorf("%w: %w", ErrServerFailure, err)
	}
	if err := responseError(resp); err != nil {
		return models.NoteResponse{}, err
	}

	return note, nil
}

func (c *httpNotesClient) UploadImage(ctx context.Context, filename, contentType string, data []byte) (string, error) {
	var upload models.ImageUploadResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetMultipartField("file", filename, contentType, bytes.NewReader(data)).
		SetResult(&upload).
		Post("/upload-image")
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrServerFailure, err)
	}
	if err := responseError(resp); err != nil {
		return "", err
	}

	return upload.ImageID, nil
}

func (c *httpNotesClient) DownloadImage(ctx context.Context, id string) (models.Image, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		Get("/image/" + url.PathEscape(id))
	if err != nil {
		return models.Image{}, fmt.Errorf("%w: %w", ErrServerFailure, err)
	}
	if err := responseError(resp); err != nil {
		return models.Image{}, err
	}

	return models.Image{
		Data:        resp.Body(),
		ContentType: resp.Header().Get("Content-Type"),
	}, nil
}

// responseError translates a non-success response into the adapter's
// sentinel errors, attaching the server's message detail when present.
func responseError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	detail := serverMessage(resp.Body())

	switch resp.StatusCode() {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, detail)
	case http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", ErrValidation, detail)
	default:
		return fmt.Errorf("%w: status %d: %s", ErrServerFailure, resp.StatusCode(), detail)
	}
}

func serverMessage(body []byte) string {
	var message models.MessageResponse
	if err := json.Unmarshal(body, &message); err != nil || message.Message == "" {
		return string(body)
	}

	return message.Message
}
