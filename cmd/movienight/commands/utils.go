// ABOUTME: Shared construction helpers for CLI commands
// ABOUTME: Builds the configured pipeline components used by serve, mcp, and recommend
package commands

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/rasheed1306/movienight/internal/config"
	"github.com/rasheed1306/movienight/internal/core"
	"github.com/rasheed1306/movienight/internal/llm"
	"github.com/rasheed1306/movienight/internal/prompts"
	"github.com/rasheed1306/movienight/internal/store"
)

// loadConfig loads .env (if present) and the environment configuration
func loadConfig() (*config.Config, error) {
	if err := godotenv.Load(); err != nil && verbose {
		log.Printf("No .env file found (this is okay for production): %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	return cfg, nil
}

// newOpenAIClient builds the LLM client from configuration
func newOpenAIClient(cfg *config.Config) (*llm.Client, error) {
	if cfg.OpenAIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is not set")
	}

	return llm.NewClientWithConfig(&llm.ClientConfig{
		APIKey:         cfg.OpenAIKey,
		ChatModel:      cfg.ChatModel,
		EmbeddingModel: cfg.EmbeddingModel,
		Timeout:        cfg.Timeout,
		MaxRetries:     cfg.MaxRetries,
		RetryDelay:     cfg.RetryDelay,
		MaxTokens:      cfg.MaxTokens,
		Temperature:    float32(cfg.Temperature),
	})
}

// newRegistry builds the template registry, including any configured
// templates file
func newRegistry(cfg *config.Config) (*prompts.Registry, error) {
	if cfg.TemplatesFile != "" {
		return prompts.NewRegistryWithFile(cfg.TemplatesFile)
	}
	return prompts.NewRegistry()
}

// buildRecommender assembles the full pipeline. The returned catalog must
// be closed by the caller.
func buildRecommender(cfg *config.Config) (*core.Recommender, *store.Catalog, error) {
	client, err := newOpenAIClient(cfg)
	if err != nil {
		return nil, nil, err
	}

	registry, err := newRegistry(cfg)
	if err != nil {
		return nil, nil, err
	}

	catalog, err := store.Open(cfg.DBPath, cfg.VectorDimension)
	if err != nil {
		return nil, nil, err
	}

	recommender := core.NewRecommender(client, client, catalog, registry, core.Options{
		SimilarityThreshold: cfg.SimilarityThreshold,
		MatchCount:          cfg.MatchCount,
	})
	return recommender, catalog, nil
}

// truncate shortens a string to maxLen, adding "..." if truncated
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return string(runes[:maxLen-3]) + "..."
}
