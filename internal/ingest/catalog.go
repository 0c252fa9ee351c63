// ABOUTME: Catalog entry parsing and YAML catalog file loading
// ABOUTME: Entries use the "Title (runtime): Description" one-line format
package ingest

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rasheed1306/movienight/internal/models"
)

// ParseCatalogEntry splits a raw catalog line into a Movie. The title is
// the text before the first "(", the description follows the first ":",
// and the full raw line is kept as Content for embedding.
func ParseCatalogEntry(raw string) (models.Movie, error) {
	titlePart, description, ok := strings.Cut(raw, ":")
	if !ok {
		return models.Movie{}, fmt.Errorf("catalog entry %q has no \":\" separator", raw)
	}

	title, _, _ := strings.Cut(titlePart, "(")
	title = strings.TrimSpace(title)
	if title == "" {
		return models.Movie{}, fmt.Errorf("catalog entry %q has an empty title", raw)
	}

	return models.Movie{
		Title:       title,
		Description: strings.TrimSpace(description),
		Content:     raw,
	}, nil
}

// LoadCatalog reads a YAML file containing a list of raw catalog entries.
func LoadCatalog(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}

	var entries []string
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing catalog file: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("catalog file %s has no entries", path)
	}
	return entries, nil
}
