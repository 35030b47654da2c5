package service

import (
	"context"

	"github.com/tgusarov/notekeep/internal/logger"
	"github.com/tgusarov/notekeep/internal/store"
	"github.com/tgusarov/notekeep/models"
)

type imageService struct {
	imageStorage store.ImageStorage

	logger *logger.Logger
}

// NewImageService constructs an [ImageService] delegating to the given blob
// storage.
func NewImageService(imageStorage store.ImageStorage, logger *logger.Logger) ImageService {
	return &imageService{
		imageStorage: imageStorage,
		logger:       logger,
	}
}

func (s *imageService) UploadImage(ctx context.Context, filename, contentType string, data []byte) (string, error) {
	return s.imageStorage.Save(ctx, filename, contentType, data)
}

func (s *imageService) DownloadImage(ctx context.Context, id string) (models.Image, error) {
	return s.imageStorage.Load(ctx, id)
}
