// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or one of the ErrInvalid*
// sentinels wrapped with the offending setting otherwise.
func (cfg *StructuredConfig) validate() error {
	if err := cfg.Storage.validate(); err != nil {
		return err
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 || cfg.Server.MaxUploadSize <= 0 {
		return ErrInvalidServerConfigs
	}

	switch {
	case cfg.App.TokenSignKey == "":
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	case cfg.App.TokenDuration <= 0:
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	case cfg.App.PasswordHashCost < 4 || cfg.App.PasswordHashCost > 31:
		return fmt.Errorf("%w: password hash cost must be in range 4..31", ErrInvalidAppConfigs)
	case cfg.App.SearchMinSimilarity <= 0 || cfg.App.SearchMinSimilarity > 1:
		return fmt.Errorf("%w: search min similarity must be in range (0, 1]", ErrInvalidAppConfigs)
	}

	return nil
}

func (s Storage) validate() error {
	dsn := s.DB.DSN
	if dsn == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}
	if !isPostgresDSN(dsn) && !isSQLiteDSN(dsn) {
		return fmt.Errorf("%w: unsupported DSN scheme", ErrInvalidStorageConfigs)
	}

	switch s.Files.Backend {
	case FilesBackendLocal:
		if s.Files.LocalDir == "" {
			return fmt.Errorf("%w: local files directory is required", ErrInvalidStorageConfigs)
		}
	case FilesBackendS3:
		if s.Files.S3.Bucket == "" || s.Files.S3.Region == "" {
			return fmt.Errorf("%w: s3 bucket and region are required", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown files backend %q", ErrInvalidStorageConfigs, s.Files.Backend)
	}

	return nil
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

func isSQLiteDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "sqlite://") || strings.HasPrefix(dsn, "file:")
}
