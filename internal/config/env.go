package config

import (
	"os"
	"strconv"
)

type Config struct {
	DifyAPIKey       string
	DifyBaseURL      string
	Host             string
	Port             string
	MaxStoredAnswers int
}

func Load() *Config {
	return &Config{
		DifyAPIKey:       os.Getenv("DIFY_API_KEY"),
		DifyBaseURL:      getEnv("DIFY_BASE_URL", "https://api.dify.ai/v1"),
		Host:             getEnv("HOST", "0.0.0.0"),
		Port:             getEnv("PORT", "8000"),
		MaxStoredAnswers: getEnvInt("QUIZ_STORE_MAX_ENTRIES", 0),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return value
}
