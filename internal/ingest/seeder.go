// ABOUTME: Batch catalog seeding: embed every entry, then one upsert
// ABOUTME: One-time ingestion job, not a runtime path of the recommender
package ingest

import (
	"context"
	"fmt"
	"io"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"

	"github.com/rasheed1306/movienight/internal/core"
	"github.com/rasheed1306/movienight/internal/models"
)

// embedConcurrency bounds in-flight embedding calls during seeding.
const embedConcurrency = 4

// Upserter is the catalog write surface used by seeding only.
type Upserter interface {
	Upsert(movies []models.Movie) error
}

// Seeder embeds catalog entries and writes them to the store.
type Seeder struct {
	embedder core.Embedder
	store    Upserter
	progress io.Writer
}

// NewSeeder creates a Seeder. progress receives a progress bar during
// embedding; pass io.Discard to silence it.
func NewSeeder(embedder core.Embedder, store Upserter, progress io.Writer) *Seeder {
	if progress == nil {
		progress = io.Discard
	}
	return &Seeder{embedder: embedder, store: store, progress: progress}
}

// Seed parses every entry, embeds each entry's full content, and upserts
// the batch in one call. Title conflicts update in place, so re-seeding
// the same catalog is idempotent. Returns the number of records written.
func (s *Seeder) Seed(ctx context.Context, entries []string) (int, error) {
	movies := make([]models.Movie, len(entries))
	for i, raw := range entries {
		movie, err := ParseCatalogEntry(raw)
		if err != nil {
			return 0, err
		}
		movies[i] = movie
	}

	bar := progressbar.NewOptions(len(movies),
		progressbar.OptionSetWriter(s.progress),
		progressbar.OptionSetDescription("embedding catalog"),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(embedConcurrency)
	for i := range movies {
		g.Go(func() error {
			vector, err := s.embedder.Embed(gctx, movies[i].Content)
			if err != nil {
				return fmt.Errorf("embedding %q: %w", movies[i].Title, err)
			}
			movies[i].Embedding = vector
			_ = bar.Add(1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	if err := s.store.Upsert(movies); err != nil {
		return 0, fmt.Errorf("upserting catalog: %w", err)
	}
	return len(movies), nil
}
