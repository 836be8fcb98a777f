package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"app": {
			"token_sign_key": "jwt_secret",
			"token_issuer": "test_issuer",
			"token_duration": "1h",
			"password_hash_cost": 11,
			"search_min_similarity": 0.7,
			"search_fallback_limit": 250,
			"log_level": "error",
			"version": "0.1.0"
		},
		"server": {
			"http_address": "localhost:8080",
			"request_timeout": "30s",
			"max_upload_size": 4096,
			"allowed_origins": ["http://editor.test"]
		},
		"storage": {
			"db": { "dsn": "sqlite://rooms.db" },
			"files": {
				"backend": "s3",
				"local_dir": "/var/media",
				"base_url": "http://cdn.test",
				"s3": {
					"bucket": "rooms",
					"region": "eu-west-1",
					"endpoint": "http://minio:9000",
					"access_key_id": "ak",
					"secret_access_key": "sk",
					"use_path_style": true
				}
			}
		}
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 11, cfg.App.PasswordHashCost)
	assert.InDelta(t, 0.7, cfg.App.SearchMinSimilarity, 1e-9)
	assert.Equal(t, uint64(250), cfg.App.SearchFallbackLimit)
	assert.Equal(t, "error", cfg.App.LogLevel)
	assert.Equal(t, "0.1.0", cfg.App.Version)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, int64(4096), cfg.Server.MaxUploadSize)
	assert.Equal(t, []string{"http://editor.test"}, cfg.Server.AllowedOrigins)

	assert.Equal(t, "sqlite://rooms.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "s3", cfg.Storage.Files.Backend)
	assert.Equal(t, "/var/media", cfg.Storage.Files.LocalDir)
	assert.Equal(t, "http://cdn.test", cfg.Storage.Files.BaseURL)
	assert.Equal(t, S3{
		Bucket:          "rooms",
		Region:          "eu-west-1",
		Endpoint:        "http://minio:9000",
		AccessKeyID:     "ak",
		SecretAccessKey: "sk",
		UsePathStyle:    true,
	}, cfg.Storage.Files.S3)

	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	// Act
	cfg, err := parseJSON("definitely-does-not-exist.json")

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{ this is not json }`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "bad_duration.json")

	jsonBody := `{
		"app": { "token_duration": "not-a-duration" }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_EmptyObject(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(p, []byte(`{}`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, StructuredConfig{}, *cfg)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{name: "string", input: `"90s"`, expected: 90 * time.Second},
		{name: "nanoseconds", input: `1000000000`, expected: time.Second},
		{name: "bad string", input: `"soon"`, wantErr: true},
		{name: "bool", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalJSON([]byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(90 * time.Minute).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1h30m0s"`, string(b))
}
