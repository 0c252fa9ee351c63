// ABOUTME: Two-phase similarity retrieval: coarse vector search then hydration
// ABOUTME: Reconciles candidates with full records by ID and re-ranks by score
package core

import (
	"sort"

	"github.com/rasheed1306/movienight/internal/models"
)

// Retriever runs the two-phase retrieval protocol against the catalog.
type Retriever struct {
	store CatalogStore
}

// NewRetriever creates a Retriever over the given catalog store.
func NewRetriever(store CatalogStore) *Retriever {
	return &Retriever{store: store}
}

// Retrieve asks the store for up to limit candidates scoring at or above
// threshold, hydrates them with one batched lookup, and returns the
// results sorted by score descending. Scores are matched to records by ID,
// never by position; candidates whose record vanished between the two
// phases are dropped silently. Zero matches yields an empty list, not an
// error.
func (r *Retriever) Retrieve(query []float64, threshold float64, limit int) ([]models.RankedResult, error) {
	candidates, err := r.store.SimilaritySearch(query, threshold, limit)
	if err != nil {
		return nil, &RetrievalError{Err: err}
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	// Dedupe IDs, keeping the first (highest) score for each
	scores := make(map[string]float64, len(candidates))
	ids := make([]string, 0, len(candidates))
	for _, cand := range candidates {
		if _, seen := scores[cand.ID]; seen {
			continue
		}
		scores[cand.ID] = cand.Score
		ids = append(ids, cand.ID)
	}

	movies, err := r.store.GetByIDs(ids)
	if err != nil {
		return nil, &RetrievalError{Err: err}
	}

	results := make([]models.RankedResult, 0, len(movies))
	for _, movie := range movies {
		score, ok := scores[movie.ID]
		if !ok {
			continue
		}
		results = append(results, models.RankedResult{
			ID:          movie.ID,
			Title:       movie.Title,
			Description: movie.Description,
			Content:     movie.Content,
			Score:       score,
		})
	}

	// Stable sort so equal scores keep store-returned order
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}
