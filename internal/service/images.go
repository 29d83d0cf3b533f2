package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"portfolio/internal/storage"
)

// ImageService uploads post images and returns the URL to store in
// featuredImageUrl.
type ImageService interface {
	Upload(ctx context.Context, fileName string, file io.Reader, size int64) (string, error)
	Delete(ctx context.Context, imageURL string) error
}

type imageService struct {
	storage storage.Storage
	logger  *slog.Logger
}

func NewImageService(storage storage.Storage, logger *slog.Logger) ImageService {
	return &imageService{storage: storage, logger: logger}
}

func (s *imageService) Upload(ctx context.Context, fileName string, file io.Reader, size int64) (string, error) {
	if s.storage == nil {
		return "", ErrNoStorage
	}

	objectName, url, err := s.storage.UploadImage(ctx, fileName, file, size)
	if err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}

	s.logger.Info("image uploaded", "object", objectName)
	return url, nil
}

func (s *imageService) Delete(ctx context.Context, imageURL string) error {
	if s.storage == nil {
		return ErrNoStorage
	}

	objectName, ok := s.storage.ObjectNameFromURL(imageURL)
	if !ok {
		return fmt.Errorf("%w: image url not served by this bucket", ErrInvalidInput)
	}

	if err := s.storage.DeleteImage(ctx, objectName); err != nil {
		return fmt.Errorf("delete image: %w", err)
	}
	return nil
}
