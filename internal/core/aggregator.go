// ABOUTME: Aggregates per-user preference text into one group query vector
// ABOUTME: Concurrent embedding fan-out joined into an element-wise mean
package core

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/rasheed1306/movienight/internal/models"
)

// Aggregator turns a group preference record into a single query vector.
type Aggregator struct {
	embedder Embedder
}

// NewAggregator creates an Aggregator backed by the given embedder.
func NewAggregator(embedder Embedder) *Aggregator {
	return &Aggregator{embedder: embedder}
}

// Aggregate embeds every user's combined answer text concurrently and
// returns the element-wise mean of the per-user vectors. The result is
// all-or-nothing: any failed embedding fails the whole aggregation, so one
// slow or broken member never silently skews the mean. The first failure
// cancels the remaining in-flight calls.
func (a *Aggregator) Aggregate(ctx context.Context, prefs models.PreferenceRecord) ([]float64, error) {
	if len(prefs) == 0 {
		return nil, &AggregationError{Err: ErrNoPreferences}
	}
	if err := prefs.Validate(); err != nil {
		return nil, &AggregationError{Err: err}
	}

	vectors := make([][]float64, len(prefs))
	g, gctx := errgroup.WithContext(ctx)
	for i, user := range prefs {
		g.Go(func() error {
			vector, err := a.embedder.Embed(gctx, user.CombinedText())
			if err != nil {
				return &EmbeddingError{Err: err}
			}
			vectors[i] = vector
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, &AggregationError{Err: err}
	}

	mean, err := models.MeanVector(vectors)
	if err != nil {
		return nil, &AggregationError{Err: err}
	}
	return mean, nil
}
