package service

import (
	"context"

	"github.com/MKhiriev/go-room-design/internal/logger"
	"github.com/MKhiriev/go-room-design/internal/store"
	"github.com/MKhiriev/go-room-design/models"
)

type fileService struct {
	fileStorage store.FileStorage
	logger      *logger.Logger
}

func NewFileService(fileStorage store.FileStorage, logger *logger.Logger) FileService {
	return &fileService{
		fileStorage: fileStorage,
		logger:      logger,
	}
}

func (s *fileService) Upload(ctx context.Context, upload models.Upload) (string, error) {
	url, err := s.fileStorage.Save(ctx, upload.Folder, upload.Filename, upload.Content, upload.Size, upload.ContentType)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*fileService.Upload").
			Str("folder", upload.Folder).
			Str("filename", upload.Filename).
			Msg("error saving upload")
		return "", unexpectedError(msgStorageFailed, err)
	}

	return url, nil
}

func (s *fileService) Delete(ctx context.Context, url string) error {
	if err := s.fileStorage.Delete(ctx, url); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*fileService.Delete").
			Str("url", url).
			Msg("error deleting upload")
		return unexpectedError(msgStorageFailed, err)
	}

	return nil
}
