package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	SessionSecret string
	GinMode       string

	// Object storage
	StorageType     string // "local" or "s3"
	StoragePath     string // local: directory files are written to
	StorageBaseURL  string // public URL prefix for stored files
	StorageBucket   string // s3: bucket name
	StorageRegion   string // s3: region ("auto" for R2)
	StorageEndpoint string // s3: custom endpoint (Cloudflare R2, MinIO)
	StorageAccess   string
	StorageSecret   string
}

func Load() *Config {
	// Missing .env is fine; real environment variables take over.
	_ = godotenv.Load()

	return &Config{
		Port:          getEnv("PORT", "8080"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "3306"),
		DBUser:        getEnv("DB_USER", "showcase"),
		DBPassword:    getEnv("DB_PASSWORD", "showcase"),
		DBName:        getEnv("DB_NAME", "showcase"),
		SessionSecret: getEnv("SESSION_SECRET", "default-secret-key-change-me"),
		GinMode:       getEnv("GIN_MODE", "debug"),

		StorageType:     getEnv("STORAGE_TYPE", "local"),
		StoragePath:     getEnv("STORAGE_PATH", "./data/uploads"),
		StorageBaseURL:  getEnv("STORAGE_BASE_URL", ""),
		StorageBucket:   getEnv("STORAGE_BUCKET", "works"),
		StorageRegion:   getEnv("STORAGE_REGION", "auto"),
		StorageEndpoint: getEnv("STORAGE_ENDPOINT", ""),
		StorageAccess:   getEnv("STORAGE_ACCESS_KEY", ""),
		StorageSecret:   getEnv("STORAGE_SECRET_KEY", ""),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
