package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"strings"

	"github.com/spf13/afero"

	"github.com/MKhiriev/go-room-design/internal/logger"
)

// MediaPrefix is the URL path under which locally stored files are served.
const MediaPrefix = "/media/"

// LocalFileStorage stores uploads on an afero filesystem rooted at the
// configured directory and serves them back over HTTP.
type LocalFileStorage struct {
	fs      afero.Fs
	baseURL string
	newID   func() string
	logger  *logger.Logger
}

// NewLocalFileStorage jails the OS filesystem at dir.
func NewLocalFileStorage(dir, baseURL string, log *logger.Logger) (*LocalFileStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating media directory: %w", err)
	}
	return NewLocalFileStorageFs(afero.NewBasePathFs(afero.NewOsFs(), dir), baseURL, log), nil
}

// NewLocalFileStorageFs wraps an arbitrary afero filesystem.
func NewLocalFileStorageFs(fs afero.Fs, baseURL string, log *logger.Logger) *LocalFileStorage {
	return &LocalFileStorage{
		fs:      fs,
		baseURL: strings.TrimRight(baseURL, "/"),
		newID:   newObjectID,
		logger:  log,
	}
}

// Save writes content under a fresh key and returns "<baseURL>/media/<key>".
func (s *LocalFileStorage) Save(ctx context.Context, folder, filename string, content io.Reader, _ int64, _ string) (string, error) {
	log := logger.FromContext(ctx)

	key := objectKey(folder, filename, s.newID)
	name := "/" + key
	if err := s.fs.MkdirAll(path.Dir(name), 0o755); err != nil {
		log.Err(err).Str("func", "*LocalFileStorage.Save").Str("key", key).Msg("error creating folder")
		return "", fmt.Errorf("error creating folder: %w", err)
	}

	file, err := s.fs.Create(name)
	if err != nil {
		log.Err(err).Str("func", "*LocalFileStorage.Save").Str("key", key).Msg("error creating file")
		return "", fmt.Errorf("error creating file: %w", err)
	}
	defer file.Close()

	if _, err = io.Copy(file, content); err != nil {
		log.Err(err).Str("func", "*LocalFileStorage.Save").Str("key", key).Msg("error writing file")
		_ = s.fs.Remove(name)
		return "", fmt.Errorf("error writing file: %w", err)
	}

	return s.baseURL + MediaPrefix + key, nil
}

// Delete removes the file stored under url.
func (s *LocalFileStorage) Delete(ctx context.Context, url string) error {
	key, ok := strings.CutPrefix(url, s.baseURL+MediaPrefix)
	if !ok || key == "" {
		return fmt.Errorf("%w: %s", ErrForeignFileURL, url)
	}

	err := s.fs.Remove(path.Clean("/" + key))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.FromContext(ctx).Err(err).Str("func", "*LocalFileStorage.Delete").Str("key", key).Msg("error removing file")
		return fmt.Errorf("error removing file: %w", err)
	}

	return nil
}

// Handler serves stored files. It expects the media prefix to be stripped
// from the request path already.
func (s *LocalFileStorage) Handler() http.Handler {
	return http.FileServer(afero.NewHttpFs(s.fs))
}
