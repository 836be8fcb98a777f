package http

import (
	"context"
	"net/http"
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-room-design/internal/config"
	"github.com/MKhiriev/go-room-design/internal/logger"
	"github.com/MKhiriev/go-room-design/internal/service"
	"github.com/MKhiriev/go-room-design/internal/store"
	"github.com/MKhiriev/go-room-design/models"
)

// newMediaRouter wires a real file service over an in-memory filesystem.
func newMediaRouter(t *testing.T) (http.Handler, *serviceMocks, afero.Fs) {
	t.Helper()

	fs := afero.NewMemMapFs()
	m, services := newServiceMocks(t)
	services.FileService = service.NewFileService(store.NewLocalFileStorageFs(fs, "http://localhost:8080", logger.Nop()), logger.Nop())

	h := NewHandler(services, config.Server{MaxUploadSize: 1 << 20}, nil, logger.Nop())
	return h.Init(), m, fs
}

func storedFiles(t *testing.T, fs afero.Fs) []string {
	t.Helper()

	var files []string
	err := afero.Walk(fs, "/", func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			files = append(files, path)
		}
		return nil
	})
	require.NoError(t, err)
	return files
}

func TestAddRoom_CreateFailsRemovesUpload(t *testing.T) {
	router, m, fs := newMediaRouter(t)
	m.expectActor("ghost", false)
	m.rooms.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, models.NewRoom) (models.Room, error) {
		assert.Len(t, storedFiles(t, fs), 1)
		return models.Room{}, domainError(service.ErrNotFound, "User not found")
	})

	rr := serve(router, postMultipart(t, "/rooms/add/", map[string]string{
		"userid":      "ghost",
		"name":        "Living",
		"description": "first floor",
	}, map[string]string{"room_file": "living.glb"}))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "User not found", decodeBody[models.ErrorResponse](t, rr).Error)
	assert.Empty(t, storedFiles(t, fs))
}

func TestAddModel_CreateFailsRemovesUploads(t *testing.T) {
	router, m, fs := newMediaRouter(t)
	expectAdmin(m)
	m.catalog.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, models.NewModel) (models.Model, error) {
		assert.Len(t, storedFiles(t, fs), 2)
		return models.Model{}, domainError(service.ErrConflict, "Model already exists")
	})

	rr := serve(router, postMultipart(t, "/models/add/", map[string]string{
		"userid":      "admin",
		"name":        "Chair",
		"description": "wooden",
	}, map[string]string{"model_file": "chair.glb", "img": "chair.png"}))

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Empty(t, storedFiles(t, fs))
}

func TestAddRoom_CreateSucceedsKeepsUpload(t *testing.T) {
	router, m, fs := newMediaRouter(t)
	m.expectActor("u1", false)
	m.rooms.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.Room{ID: "r1", Name: "Living"}, nil)

	rr := serve(router, postMultipart(t, "/rooms/add/", map[string]string{
		"userid":      "u1",
		"name":        "Living",
		"description": "first floor",
	}, map[string]string{"room_file": "living.glb"}))

	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	files := storedFiles(t, fs)
	require.Len(t, files, 1)

	data, err := afero.ReadFile(fs, files[0])
	require.NoError(t, err)
	assert.Equal(t, "content of living.glb", string(data))
}
