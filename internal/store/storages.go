package store

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-room-design/internal/config"
	"github.com/MKhiriev/go-room-design/internal/logger"
)

// Storages aggregates every persistence dependency of the service layer.
type Storages struct {
	AccountRepository   AccountRepository
	ModelRepository     ModelRepository
	RoomRepository      RoomRepository
	RoomModelRepository RoomModelRepository
	FileStorage         FileStorage

	// MediaHandler serves locally stored files. It is nil for the s3 backend.
	MediaHandler http.Handler

	db *DB
}

// NewStorages connects to the database, applies migrations and builds the
// repositories together with the configured file storage backend.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	storages := NewStoragesFromDB(db, log)

	switch cfg.Files.Backend {
	case config.FilesBackendS3:
		files, err := NewS3FileStorage(ctx, cfg.Files, log)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		storages.FileStorage = files
	default:
		files, err := NewLocalFileStorage(cfg.Files.LocalDir, cfg.Files.BaseURL, log)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		storages.FileStorage = files
		storages.MediaHandler = files.Handler()
	}

	return storages, nil
}

// NewStoragesFromDB builds the repositories over an open connection. File
// storage is left for the caller to set.
func NewStoragesFromDB(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		AccountRepository:   NewAccountRepository(db, log),
		ModelRepository:     NewModelRepository(db, log),
		RoomRepository:      NewRoomRepository(db, log),
		RoomModelRepository: NewRoomModelRepository(db, log),
		db:                  db,
	}
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
