package config

import "time"

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:         "go-room-design",
			TokenDuration:       24 * time.Hour,
			PasswordHashCost:    10,
			SearchMinSimilarity: 0.6,
			SearchFallbackLimit: 1000,
			LogLevel:            "debug",
		},
		Storage: Storage{
			Files: Files{
				Backend:  FilesBackendLocal,
				LocalDir: "media",
			},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
			MaxUploadSize:  64 << 20,
		},
	}
}
