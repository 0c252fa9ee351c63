// ABOUTME: Tests for the bbolt catalog store
// ABOUTME: Covers upsert idempotence, similarity search, and batched hydration
package store

import (
	"math"
	"path/filepath"
	"testing"

	"go.etcd.io/bbolt"

	"github.com/rasheed1306/movienight/internal/models"
)

func openTestCatalog(t *testing.T, dimension int) *Catalog {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.db")
	c, err := Open(path, dimension)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestCatalog_UpsertAndSearch(t *testing.T) {
	c := openTestCatalog(t, 3)

	movies := []models.Movie{
		{Title: "Alpha", Description: "first", Content: "Alpha: first", Embedding: []float64{1, 0, 0}},
		{Title: "Beta", Description: "second", Content: "Beta: second", Embedding: []float64{0, 1, 0}},
		{Title: "Gamma", Description: "third", Content: "Gamma: third", Embedding: []float64{0.9, 0.1, 0}},
	}
	if err := c.Upsert(movies); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	n, err := c.Count()
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if n != 3 {
		t.Fatalf("Count = %d, want 3", n)
	}

	results, err := c.SimilaritySearch([]float64{0.95, 0.05, 0}, 0.5, 10)
	if err != nil {
		t.Fatalf("SimilaritySearch failed: %v", err)
	}

	// Alpha and Gamma are close to the query, Beta is nearly orthogonal
	if len(results) != 2 {
		t.Fatalf("expected 2 results above threshold 0.5, got %d", len(results))
	}
	for i := 1; i < len(results); i++ {
		if results[i].Score > results[i-1].Score {
			t.Errorf("results not sorted descending: %v", results)
		}
	}
}

func TestCatalog_SearchRespectsThresholdAndLimit(t *testing.T) {
	c := openTestCatalog(t, 2)

	if err := c.Upsert([]models.Movie{
		{Title: "A", Embedding: []float64{1, 0}},
		{Title: "B", Embedding: []float64{0.8, 0.6}},
		{Title: "C", Embedding: []float64{0, 1}},
	}); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	results, err := c.SimilaritySearch([]float64{1, 0}, 0.7, 1)
	if err != nil {
		t.Fatalf("SimilaritySearch failed: %v", err)
	}

	if len(results) != 1 {
		t.Fatalf("limit 1 should cap results, got %d", len(results))
	}
	if results[0].Score < 0.7 {
		t.Errorf("result score %f below threshold", results[0].Score)
	}
	if math.Abs(results[0].Score-1.0) > 1e-9 {
		t.Errorf("top result score = %f, want 1.0 (exact match)", results[0].Score)
	}
}

func TestCatalog_SearchNoMatchesIsEmptyNotError(t *testing.T) {
	c := openTestCatalog(t, 2)

	if err := c.Upsert([]models.Movie{
		{Title: "A", Embedding: []float64{0, 1}},
	}); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	results, err := c.SimilaritySearch([]float64{1, 0}, 0.9, 5)
	if err != nil {
		t.Fatalf("SimilaritySearch failed: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected no matches, got %v", results)
	}
}

func TestCatalog_UpsertIsIdempotentOnTitle(t *testing.T) {
	c := openTestCatalog(t, 2)

	if err := c.Upsert([]models.Movie{
		{Title: "Same", Description: "v1", Embedding: []float64{1, 0}},
	}); err != nil {
		t.Fatalf("first Upsert failed: %v", err)
	}

	first, err := c.SimilaritySearch([]float64{1, 0}, 0, 1)
	if err != nil || len(first) != 1 {
		t.Fatalf("search after first upsert: results=%v err=%v", first, err)
	}

	// Re-ingesting the same title must update in place, not duplicate
	if err := c.Upsert([]models.Movie{
		{Title: "Same", Description: "v2", Embedding: []float64{0, 1}},
	}); err != nil {
		t.Fatalf("second Upsert failed: %v", err)
	}

	n, err := c.Count()
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if n != 1 {
		t.Fatalf("Count = %d after re-upsert, want 1", n)
	}

	movies, err := c.GetByIDs([]string{first[0].ID})
	if err != nil {
		t.Fatalf("GetByIDs failed: %v", err)
	}
	if len(movies) != 1 {
		t.Fatalf("expected the original ID to survive re-upsert, got %d records", len(movies))
	}
	if movies[0].Description != "v2" {
		t.Errorf("Description = %q, want updated value v2", movies[0].Description)
	}
}

func TestCatalog_UpsertValidatesDimension(t *testing.T) {
	c := openTestCatalog(t, 3)

	err := c.Upsert([]models.Movie{
		{Title: "Wrong", Embedding: []float64{1, 0}},
	})
	if err == nil {
		t.Error("expected dimension validation error, got nil")
	}
}

func TestCatalog_GetByIDsSkipsUnknown(t *testing.T) {
	c := openTestCatalog(t, 2)

	if err := c.Upsert([]models.Movie{
		{Title: "Known", Embedding: []float64{1, 0}},
	}); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	candidates, err := c.SimilaritySearch([]float64{1, 0}, 0, 1)
	if err != nil || len(candidates) != 1 {
		t.Fatalf("search: candidates=%v err=%v", candidates, err)
	}

	movies, err := c.GetByIDs([]string{candidates[0].ID, "no-such-id"})
	if err != nil {
		t.Fatalf("GetByIDs failed: %v", err)
	}
	if len(movies) != 1 {
		t.Fatalf("expected 1 record (unknown ID skipped), got %d", len(movies))
	}
	if movies[0].Title != "Known" {
		t.Errorf("Title = %q, want Known", movies[0].Title)
	}
}

func TestCatalog_GetByIDsSkipsCorruptRecords(t *testing.T) {
	c := openTestCatalog(t, 2)

	if err := c.Upsert([]models.Movie{
		{Title: "Good", Embedding: []float64{1, 0}},
	}); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	candidates, err := c.SimilaritySearch([]float64{1, 0}, 0, 1)
	if err != nil || len(candidates) != 1 {
		t.Fatalf("search: candidates=%v err=%v", candidates, err)
	}

	// Plant an undecodable record alongside the good one
	err = c.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketMovies).Put([]byte("corrupt-id"), []byte("{not json"))
	})
	if err != nil {
		t.Fatalf("planting corrupt record failed: %v", err)
	}

	// Hydration skips the corrupt record the same way the search scan does
	movies, err := c.GetByIDs([]string{candidates[0].ID, "corrupt-id"})
	if err != nil {
		t.Fatalf("GetByIDs failed: %v", err)
	}
	if len(movies) != 1 {
		t.Fatalf("expected 1 record (corrupt record skipped), got %d", len(movies))
	}
	if movies[0].Title != "Good" {
		t.Errorf("Title = %q, want Good", movies[0].Title)
	}
}

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name     string
		a        []float64
		b        []float64
		expected float64
	}{
		{"identical", []float64{1, 0, 0}, []float64{1, 0, 0}, 1.0},
		{"orthogonal", []float64{1, 0, 0}, []float64{0, 1, 0}, 0.0},
		{"opposite", []float64{1, 0, 0}, []float64{-1, 0, 0}, -1.0},
		{"length mismatch", []float64{1, 0}, []float64{1, 0, 0}, 0.0},
		{"zero vector", []float64{0, 0}, []float64{1, 0}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cosineSimilarity(tt.a, tt.b)
			if math.Abs(got-tt.expected) > 0.001 {
				t.Errorf("cosineSimilarity = %f, want %f", got, tt.expected)
			}
		})
	}
}
