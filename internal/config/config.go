// ABOUTME: Centralized configuration for the movienight recommendation service
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the recommendation service
type Config struct {
	// OpenAI settings
	OpenAIKey      string
	ChatModel      string
	EmbeddingModel string
	Timeout        time.Duration
	MaxRetries     int
	RetryDelay     time.Duration

	// Catalog store settings
	DBPath          string
	VectorDimension int

	// Retrieval settings
	SimilarityThreshold float64
	MatchCount          int

	// Explanation settings
	MaxTokens   int
	Temperature float64

	// Boundary settings
	HTTPAddr      string
	TemplatesFile string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		OpenAIKey:           os.Getenv("OPENAI_API_KEY"),
		ChatModel:           getEnv("MOVIENIGHT_CHAT_MODEL", "gpt-4o-mini"),
		EmbeddingModel:      getEnv("MOVIENIGHT_EMBEDDING_MODEL", "text-embedding-3-small"),
		Timeout:             getEnvDuration("OPENAI_TIMEOUT", 30*time.Second),
		MaxRetries:          getEnvInt("OPENAI_MAX_RETRIES", 3),
		RetryDelay:          getEnvDuration("OPENAI_RETRY_DELAY", 2*time.Second),
		DBPath:              getEnv("MOVIENIGHT_DB", "movienight.db"),
		VectorDimension:     getEnvInt("MOVIENIGHT_VECTOR_DIMENSION", 1536),
		SimilarityThreshold: getEnvFloat("MOVIENIGHT_SIMILARITY_THRESHOLD", 0),
		MatchCount:          getEnvInt("MOVIENIGHT_MATCH_COUNT", 3),
		MaxTokens:           getEnvInt("MOVIENIGHT_MAX_TOKENS", 150),
		Temperature:         getEnvFloat("MOVIENIGHT_TEMPERATURE", 0.7),
		HTTPAddr:            getEnv("MOVIENIGHT_ADDR", ":8000"),
		TemplatesFile:       os.Getenv("MOVIENIGHT_TEMPLATES_FILE"),
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.SimilarityThreshold < -1 || c.SimilarityThreshold > 1 {
		return fmt.Errorf("MOVIENIGHT_SIMILARITY_THRESHOLD must be -1 to 1, got %f", c.SimilarityThreshold)
	}
	if c.MatchCount <= 0 {
		return fmt.Errorf("MOVIENIGHT_MATCH_COUNT must be positive, got %d", c.MatchCount)
	}
	if c.MaxRetries < 0 || c.MaxRetries > 10 {
		return fmt.Errorf("OPENAI_MAX_RETRIES must be 0-10, got %d", c.MaxRetries)
	}
	if c.VectorDimension <= 0 {
		return fmt.Errorf("MOVIENIGHT_VECTOR_DIMENSION must be positive, got %d", c.VectorDimension)
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("MOVIENIGHT_TEMPERATURE must be 0-2, got %f", c.Temperature)
	}
	if c.MaxTokens <= 0 {
		return fmt.Errorf("MOVIENIGHT_MAX_TOKENS must be positive, got %d", c.MaxTokens)
	}
	return nil
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
