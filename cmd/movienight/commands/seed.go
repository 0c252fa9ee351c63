// ABOUTME: Seed command ingests the movie catalog into the vector store
// ABOUTME: One-time batch job: embed every entry, upsert on title conflict
package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rasheed1306/movienight/internal/ingest"
	"github.com/rasheed1306/movienight/internal/store"
)

var seedFile string

// NewSeedCmd creates the seed command
func NewSeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Embed and ingest the movie catalog",
		Long: `Embed and ingest the movie catalog.

Reads a YAML list of catalog entries in "Title (runtime): Description"
form, embeds each entry's full text, and upserts the batch into the
catalog database. Titles are the natural key, so re-running seed with
the same catalog updates records in place instead of duplicating them.`,
		RunE: runSeed,
		Example: `  movienight seed
  movienight seed --file my-catalog.yaml`,
	}

	cmd.Flags().StringVar(&seedFile, "file", "data/catalog.yaml", "Catalog YAML file to ingest")

	return cmd
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	entries, err := ingest.LoadCatalog(seedFile)
	if err != nil {
		return err
	}

	client, err := newOpenAIClient(cfg)
	if err != nil {
		return err
	}

	catalog, err := store.Open(cfg.DBPath, cfg.VectorDimension)
	if err != nil {
		return err
	}
	defer catalog.Close()

	var progress io.Writer = os.Stderr
	if quiet {
		progress = io.Discard
	}

	seeder := ingest.NewSeeder(client, catalog, progress)
	n, err := seeder.Seed(cmd.Context(), entries)
	if err != nil {
		return err
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "\nSeeded %d movies into %s\n", n, cfg.DBPath)
	}
	return nil
}
