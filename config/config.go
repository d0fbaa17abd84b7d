package config

import (
	"os"
	"strconv"
)

type Config struct {
	InputDir          string
	OutputDir         string
	CollectionWorkers int
	DocumentWorkers   int
	EmbeddingURL      string
	SynonymPath       string
}

func Load() (*Config, error) {
	collectionWorkers, err := getEnvInt("COLLECTION_WORKERS", 3)
	if err != nil {
		return nil, err
	}
	documentWorkers, err := getEnvInt("DOCUMENT_WORKERS", 2)
	if err != nil {
		return nil, err
	}

	return &Config{
		InputDir:          getEnv("INPUT_DIR", "./input"),
		OutputDir:         getEnv("OUTPUT_DIR", "./output"),
		CollectionWorkers: collectionWorkers,
		DocumentWorkers:   documentWorkers,
		EmbeddingURL:      getEnv("EMBEDDING_URL", ""),
		SynonymPath:       getEnv("SYNONYM_PATH", ""),
	}, nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getEnvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	return strconv.Atoi(value)
}
