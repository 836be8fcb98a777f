// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the room
// design server. It is populated by merging defaults, environment variables
// (optionally seeded from a .env file), command-line flags, and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token, hashing and search settings.
	App App `envPrefix:"APP_"`

	// Storage holds the relational database and uploaded-file settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the HTTP listener settings.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the secret used to sign and verify session JWTs.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long an issued token stays valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// PasswordHashCost is the bcrypt cost used for new password digests.
	// Env: APP_PASSWORD_HASH_COST
	PasswordHashCost int `env:"PASSWORD_HASH_COST"`

	// SearchMinSimilarity is the default minimum score a model name must
	// reach to be returned by the fuzzy search.
	// Env: APP_SEARCH_MIN_SIMILARITY
	SearchMinSimilarity float64 `env:"SEARCH_MIN_SIMILARITY"`

	// SearchFallbackLimit bounds the candidate set scanned when no model
	// name contains the search token.
	// Env: APP_SEARCH_FALLBACK_LIMIT
	SearchFallbackLimit uint64 `env:"SEARCH_FALLBACK_LIMIT"`

	// LogLevel is the minimum level written by the server logger.
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// Version is reported by the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Files holds the uploaded-asset storage settings.
	Files Files `envPrefix:"FILES_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the driver by scheme: "postgres://" or "postgresql://"
	// open PostgreSQL through pgx, "sqlite://" or "file:" open SQLite.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// File storage backends.
const (
	FilesBackendLocal = "local"
	FilesBackendS3    = "s3"
)

// Files holds settings for uploaded 3D models, preview images and room files.
type Files struct {
	// Backend is either "local" or "s3".
	// Env: STORAGE_FILES_BACKEND
	Backend string `env:"BACKEND"`

	// LocalDir is the root directory used by the local backend.
	// Env: STORAGE_FILES_LOCAL_DIR
	LocalDir string `env:"LOCAL_DIR"`

	// BaseURL is prepended to stored keys by the local backend
	// (e.g. "http://localhost:8080").
	// Env: STORAGE_FILES_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// S3 holds the object storage settings for the s3 backend.
	S3 S3 `envPrefix:"S3_"`
}

// S3 holds connection settings for an S3-compatible object store.
type S3 struct {
	Bucket          string `env:"BUCKET" json:"bucket"`
	Region          string `env:"REGION" json:"region"`
	Endpoint        string `env:"ENDPOINT" json:"endpoint"`
	AccessKeyID     string `env:"ACCESS_KEY_ID" json:"access_key_id"`
	SecretAccessKey string `env:"SECRET_ACCESS_KEY" json:"secret_access_key"`
	UsePathStyle    bool   `env:"USE_PATH_STYLE" json:"use_path_style"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address in "host:port" form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration of a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// MaxUploadSize limits multipart request bodies, in bytes.
	// Env: SERVER_MAX_UPLOAD_SIZE
	MaxUploadSize int64 `env:"MAX_UPLOAD_SIZE"`

	// AllowedOrigins lists the CORS origins of the browser editor.
	// Env: SERVER_ALLOWED_ORIGINS (comma separated)
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// sources in priority order (last source wins for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables (a .env file in the working directory is loaded
//     first without overriding variables that are already set)
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv(".env").
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
