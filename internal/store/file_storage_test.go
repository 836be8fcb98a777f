package store

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-room-design/internal/config"
	"github.com/MKhiriev/go-room-design/internal/logger"
)

func fixedID() string { return "0001" }

func TestSanitizeFilename(t *testing.T) {
	tests := map[string]string{
		"chair.glb":             "chair.glb",
		"../../etc/passwd":      "passwd",
		`C:\models\My Sofa.glb`: "My_Sofa.glb",
		"":                      "file",
		"..":                    "file",
		"крісло.obj":            "obj",
	}

	for in, want := range tests {
		assert.Equal(t, want, sanitizeFilename(in), in)
	}
}

func TestObjectKey(t *testing.T) {
	assert.Equal(t, "models/0001_chair.glb", objectKey(FolderModels, "chair.glb", fixedID))
	assert.Equal(t, "rooms/0001_den.glb", objectKey("/rooms", "den.glb", fixedID))
	assert.Equal(t, "0001_x.png", objectKey("", "x.png", fixedID))
}

func TestLocalFileStorage_SaveAndServe(t *testing.T) {
	fs := afero.NewMemMapFs()
	storage := NewLocalFileStorageFs(fs, "http://localhost:8080/", logger.Nop())
	storage.newID = fixedID

	url, err := storage.Save(context.Background(), FolderModels, "chair.glb", strings.NewReader("glTF"), 4, "model/gltf-binary")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/media/models/0001_chair.glb", url)

	data, err := afero.ReadFile(fs, "/models/0001_chair.glb")
	require.NoError(t, err)
	assert.Equal(t, "glTF", string(data))

	srv := httptest.NewServer(http.StripPrefix("/media", storage.Handler()))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/media/models/0001_chair.glb")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "glTF", string(body))
}

func TestLocalFileStorage_ReadOnlyFs(t *testing.T) {
	storage := NewLocalFileStorageFs(afero.NewReadOnlyFs(afero.NewMemMapFs()), "", logger.Nop())

	_, err := storage.Save(context.Background(), FolderRooms, "den.glb", strings.NewReader("x"), 1, "")
	require.Error(t, err)
}

type fakeS3Client struct {
	putFn    func(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	deleteFn func(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

func (f *fakeS3Client) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.putFn != nil {
		return f.putFn(ctx, params, optFns...)
	}
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3Client) DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, params, optFns...)
	}
	return &s3.DeleteObjectOutput{}, nil
}

func TestS3FileStorage_Save(t *testing.T) {
	var got *s3.PutObjectInput
	client := &fakeS3Client{putFn: func(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		got = params
		return &s3.PutObjectOutput{}, nil
	}}

	cfg := config.Files{S3: config.S3{Bucket: "assets", Region: "eu-central-1", Endpoint: "http://127.0.0.1:9000", UsePathStyle: true}}
	storage := newS3FileStorage(client, cfg, logger.Nop())
	storage.newID = fixedID

	url, err := storage.Save(context.Background(), FolderModelImages, "chair.png", strings.NewReader("png"), 3, "image/png")
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:9000/assets/model_images/0001_chair.png", url)

	require.NotNil(t, got)
	assert.Equal(t, "assets", aws.ToString(got.Bucket))
	assert.Equal(t, "model_images/0001_chair.png", aws.ToString(got.Key))
	assert.Equal(t, int64(3), aws.ToInt64(got.ContentLength))
	assert.Equal(t, "image/png", aws.ToString(got.ContentType))
}

func TestS3FileStorage_SaveError(t *testing.T) {
	client := &fakeS3Client{putFn: func(context.Context, *s3.PutObjectInput, ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		return nil, errors.New("access denied")
	}}
	storage := newS3FileStorage(client, config.Files{S3: config.S3{Bucket: "assets", Region: "us-east-1"}}, logger.Nop())

	_, err := storage.Save(context.Background(), FolderRooms, "den.glb", strings.NewReader("x"), 1, "")
	require.Error(t, err)
}

func TestLocalFileStorage_Delete(t *testing.T) {
	fs := afero.NewMemMapFs()
	storage := NewLocalFileStorageFs(fs, "http://localhost:8080", logger.Nop())
	ctx := context.Background()

	url, err := storage.Save(ctx, FolderRooms, "den.glb", strings.NewReader("glTF"), 4, "")
	require.NoError(t, err)

	require.NoError(t, storage.Delete(ctx, url))
	entries, err := afero.ReadDir(fs, "/rooms")
	require.NoError(t, err)
	assert.Empty(t, entries)

	// already gone
	require.NoError(t, storage.Delete(ctx, url))

	err = storage.Delete(ctx, "http://elsewhere/media/rooms/x.glb")
	require.ErrorIs(t, err, ErrForeignFileURL)
}

func TestS3FileStorage_Delete(t *testing.T) {
	var got *s3.DeleteObjectInput
	client := &fakeS3Client{deleteFn: func(_ context.Context, params *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
		got = params
		return &s3.DeleteObjectOutput{}, nil
	}}
	cfg := config.Files{S3: config.S3{Bucket: "assets", Region: "eu-central-1", Endpoint: "http://127.0.0.1:9000", UsePathStyle: true}}
	storage := newS3FileStorage(client, cfg, logger.Nop())

	require.NoError(t, storage.Delete(context.Background(), "http://127.0.0.1:9000/assets/rooms/0001_den.glb"))
	require.NotNil(t, got)
	assert.Equal(t, "assets", aws.ToString(got.Bucket))
	assert.Equal(t, "rooms/0001_den.glb", aws.ToString(got.Key))

	err := storage.Delete(context.Background(), "https://other.example.com/rooms/0001_den.glb")
	require.ErrorIs(t, err, ErrForeignFileURL)

	client.deleteFn = func(context.Context, *s3.DeleteObjectInput, ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
		return nil, errors.New("access denied")
	}
	require.Error(t, storage.Delete(context.Background(), "http://127.0.0.1:9000/assets/rooms/0001_den.glb"))
}

func TestS3BaseURL(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Files
		want string
	}{
		{
			name: "explicit base url",
			cfg:  config.Files{BaseURL: "https://cdn.example.com/", S3: config.S3{Bucket: "b"}},
			want: "https://cdn.example.com",
		},
		{
			name: "path style endpoint",
			cfg:  config.Files{S3: config.S3{Bucket: "b", Endpoint: "http://minio:9000/", UsePathStyle: true}},
			want: "http://minio:9000/b",
		},
		{
			name: "virtual hosted endpoint",
			cfg:  config.Files{S3: config.S3{Bucket: "b", Endpoint: "https://storage.example.com"}},
			want: "https://b.storage.example.com",
		},
		{
			name: "aws",
			cfg:  config.Files{S3: config.S3{Bucket: "b", Region: "eu-west-1"}},
			want: "https://b.s3.eu-west-1.amazonaws.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s3BaseURL(tt.cfg))
		})
	}
}
