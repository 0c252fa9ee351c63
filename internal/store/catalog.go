// ABOUTME: bbolt-backed movie catalog with cosine similarity search
// ABOUTME: Title is the natural key, so re-seeding the same catalog is idempotent
package store

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"

	"github.com/google/uuid"
	"go.etcd.io/bbolt"

	"github.com/rasheed1306/movienight/internal/models"
)

var (
	bucketMovies = []byte("movies")
	bucketTitles = []byte("titles")
)

// Catalog stores movie records and their embeddings in a local bbolt file.
// Similarity search is brute-force cosine over all records, which is fine
// at catalog scale (tens to low thousands of titles).
type Catalog struct {
	db        *bbolt.DB
	dimension int
}

// Open opens (or creates) the catalog database at path. dimension is the
// embedding dimensionality enforced on upsert; 0 disables the check.
func Open(path string, dimension int) (*Catalog, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("opening catalog db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketMovies, bucketTitles} {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return fmt.Errorf("creating bucket %s: %w", b, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Catalog{db: db, dimension: dimension}, nil
}

// Close closes the underlying database.
func (c *Catalog) Close() error {
	return c.db.Close()
}

// Upsert writes the given movies in one transaction. A movie whose title
// already exists keeps the existing record's ID; new titles get a fresh
// UUID unless the record carries one.
func (c *Catalog) Upsert(movies []models.Movie) error {
	return c.db.Update(func(tx *bbolt.Tx) error {
		moviesBkt := tx.Bucket(bucketMovies)
		titlesBkt := tx.Bucket(bucketTitles)

		for i := range movies {
			movie := movies[i]
			if movie.Title == "" {
				return fmt.Errorf("movie %d has an empty title", i)
			}
			if c.dimension > 0 && len(movie.Embedding) != c.dimension {
				return fmt.Errorf("movie %q: invalid embedding dimension: expected %d, got %d",
					movie.Title, c.dimension, len(movie.Embedding))
			}

			if existing := titlesBkt.Get([]byte(movie.Title)); existing != nil {
				movie.ID = string(existing)
			} else if movie.ID == "" {
				movie.ID = uuid.NewString()
			}

			data, err := json.Marshal(movie)
			if err != nil {
				return fmt.Errorf("encoding movie %q: %w", movie.Title, err)
			}
			if err := moviesBkt.Put([]byte(movie.ID), data); err != nil {
				return err
			}
			if err := titlesBkt.Put([]byte(movie.Title), []byte(movie.ID)); err != nil {
				return err
			}
		}
		return nil
	})
}

// SimilaritySearch returns up to limit candidate IDs whose stored embedding
// has cosine similarity to query at or above threshold, sorted by score
// descending. Zero matches is an empty result, not an error.
func (c *Catalog) SimilaritySearch(query []float64, threshold float64, limit int) ([]models.MatchCandidate, error) {
	if limit <= 0 {
		return nil, nil
	}

	var candidates []models.MatchCandidate
	err := c.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketMovies).ForEach(func(k, v []byte) error {
			var movie models.Movie
			if err := json.Unmarshal(v, &movie); err != nil {
				// Skip corrupted entries rather than failing the search
				return nil
			}

			score := cosineSimilarity(query, movie.Embedding)
			if score >= threshold {
				candidates = append(candidates, models.MatchCandidate{ID: movie.ID, Score: score})
			}
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("similarity search: %w", err)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates, nil
}

// GetByIDs fetches full records for the given IDs in one read transaction.
// Unknown IDs and undecodable records are skipped, not errored; callers
// reconcile by ID.
func (c *Catalog) GetByIDs(ids []string) ([]models.Movie, error) {
	var movies []models.Movie
	err := c.db.View(func(tx *bbolt.Tx) error {
		bkt := tx.Bucket(bucketMovies)
		for _, id := range ids {
			data := bkt.Get([]byte(id))
			if data == nil {
				continue
			}
			var movie models.Movie
			if err := json.Unmarshal(data, &movie); err != nil {
				// Skip corrupted entries, same as the search scan
				continue
			}
			movies = append(movies, movie)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return movies, nil
}

// Count returns the number of catalog records.
func (c *Catalog) Count() (int, error) {
	var n int
	err := c.db.View(func(tx *bbolt.Tx) error {
		n = tx.Bucket(bucketMovies).Stats().KeyN
		return nil
	})
	return n, err
}

// cosineSimilarity calculates cosine similarity between two vectors
func cosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0.0
	}

	var dotProduct, normA, normB float64
	for i := range a {
		dotProduct += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0.0
	}

	return dotProduct / (math.Sqrt(normA) * math.Sqrt(normB))
}
