// ABOUTME: Catalog and retrieval models for movie recommendation
// ABOUTME: Defines Movie, MatchCandidate, and RankedResult structures
package models

// Movie is a persisted catalog entry. Title is the natural key used for
// upsert, Content is the full original text blob the embedding was
// computed from.
type Movie struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	Embedding   []float64 `json:"embedding,omitempty"`
}

// MatchCandidate is a coarse similarity-search hit: a catalog ID with its
// similarity score (higher is more similar). Not persisted.
type MatchCandidate struct {
	ID    string  `json:"id"`
	Score float64 `json:"score"`
}

// RankedResult is a hydrated match returned to callers. Only the
// top-ranked result of a recommendation carries an explanation.
type RankedResult struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Content     string  `json:"content"`
	Score       float64 `json:"similarity"`
	Explanation string  `json:"explanation,omitempty"`
}
