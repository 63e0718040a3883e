package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Supported VECTOR_STORE values.
const (
	VectorStoreQdrant = "qdrant"
	VectorStoreMilvus = "milvus"
)

// Config holds all configuration for the application.
type Config struct {
	DBPath             string
	EmbeddingBaseURL   string
	EmbeddingAPIKey    string
	EmbeddingModelName string
	EmbeddingBatchSize int
	SegmentInterval    int
	VectorStore        string
	VectorSize         int
	VectorCollection   string
	VectorMaxBatchSize int
	QdrantURL          string
	MilvusAddress      string
	IngestReplace      bool
	APIPort            string
	LogLevel           slog.Level
	LogFormat          string
}

// Load reads configuration from environment variables and returns a Config struct.
// It applies defaults for optional fields and validates required fields.
// If a .env file exists in the current directory or project root, it will be loaded automatically.
// Environment variables already set take precedence over .env file values.
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	// Walk up to find a project-level .env
	wd, err := os.Getwd()
	if err == nil {
		dir := wd
		for i := 0; i < 5; i++ { // Limit search depth
			envPath := filepath.Join(dir, ".env")
			if _, err := os.Stat(envPath); err == nil {
				_ = godotenv.Load(envPath)
				break
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break // Reached filesystem root
			}
			dir = parent
		}
	}

	cfg := &Config{
		DBPath:             getEnv("DB_PATH", "./data/subtitles.db"),
		EmbeddingBaseURL:   getEnv("EMBEDDING_BASE_URL", "http://localhost:8081/v1"),
		EmbeddingAPIKey:    getEnv("EMBEDDING_API_KEY", "dummy-key"),
		EmbeddingModelName: getEnv("EMBEDDING_MODEL", "text-embedding-3-small"),
		VectorStore:        strings.ToLower(getEnv("VECTOR_STORE", VectorStoreQdrant)),
		VectorCollection:   getEnv("VECTOR_COLLECTION", "subEmbeddings"),
		QdrantURL:          getEnv("QDRANT_URL", "http://localhost:6333"),
		MilvusAddress:      getEnv("MILVUS_ADDRESS", "localhost:19530"),
		APIPort:            getEnv("API_PORT", "9000"),
		LogFormat:          strings.ToLower(getEnv("LOG_FORMAT", "text")),
	}

	// VECTOR_SIZE must match the output size of the embedding model.
	// Changing it requires recreating the collection.
	if getEnv("VECTOR_SIZE", "") == "" {
		return nil, fmt.Errorf("VECTOR_SIZE is required")
	}
	if cfg.VectorSize, err = getEnvInt("VECTOR_SIZE", 0); err != nil {
		return nil, err
	}
	if cfg.EmbeddingBatchSize, err = getEnvInt("EMBEDDING_BATCH_SIZE", 100); err != nil {
		return nil, err
	}
	if cfg.SegmentInterval, err = getEnvInt("SEGMENT_INTERVAL", 10); err != nil {
		return nil, err
	}
	if cfg.VectorMaxBatchSize, err = getEnvInt("VECTOR_MAX_BATCH_SIZE", 5461); err != nil {
		return nil, err
	}

	if cfg.IngestReplace, err = getEnvBool("INGEST_REPLACE", false); err != nil {
		return nil, err
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("LOG_LEVEL is invalid: %w", err)
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("LOG_FORMAT must be text or json, got %q", cfg.LogFormat)
	}

	if cfg.VectorStore != VectorStoreQdrant && cfg.VectorStore != VectorStoreMilvus {
		return nil, fmt.Errorf("VECTOR_STORE must be %s or %s, got %q", VectorStoreQdrant, VectorStoreMilvus, cfg.VectorStore)
	}

	// Create the data directory if it doesn't exist
	dataDir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt parses a positive integer environment variable.
func getEnvInt(key string, defaultValue int) (int, error) {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be a valid integer: %w", key, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%s must be greater than 0", key)
	}
	return n, nil
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean: %w", key, err)
	}
	return b, nil
}
