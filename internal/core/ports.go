// ABOUTME: Provider interfaces consumed by the recommendation core
// ABOUTME: Constructor-injected so tests can substitute fakes
package core

import (
	"context"

	"github.com/rasheed1306/movienight/internal/models"
)

// Embedder turns a text string into a fixed-length vector. One outbound
// call per invocation.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

// Completer sends a single-turn prompt to a text-generation provider.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// CatalogStore is the vector-indexed movie catalog. SimilaritySearch is
// the only operation that consults the raw embedding space; GetByIDs is
// the batched hydration lookup.
type CatalogStore interface {
	SimilaritySearch(query []float64, threshold float64, limit int) ([]models.MatchCandidate, error)
	GetByIDs(ids []string) ([]models.Movie, error)
}
