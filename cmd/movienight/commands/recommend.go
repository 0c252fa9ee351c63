// ABOUTME: One-shot recommend command reading group preferences from a file
// ABOUTME: Prints the ranked results as a table or JSON
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rasheed1306/movienight/internal/models"
)

var (
	recommendTemplate string
	recommendJSON     bool
)

// NewRecommendCmd creates the recommend command
func NewRecommendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recommend <preferences.json|->",
		Short: "Recommend movies for a group",
		Long: `Recommend movies for a group.

Reads a JSON object mapping member names to their question/answer
pairs, runs the recommendation pipeline, and prints the ranked
results. The top result includes a generated explanation. Use "-" to
read from stdin.

Example preferences file:
  {
    "Ahmed": {"What's your mood for tonight?": "Light & uplifting"},
    "Ammu":  {"What's your mood for tonight?": "Dark & intense"}
  }`,
		Args: cobra.ExactArgs(1),
		RunE: runRecommend,
		Example: `  movienight recommend group.json
  cat group.json | movienight recommend -
  movienight recommend --template conversational --json group.json`,
	}

	cmd.Flags().StringVar(&recommendTemplate, "template", "", "Explanation template name")
	cmd.Flags().BoolVar(&recommendJSON, "json", false, "Print results as JSON")

	return cmd
}

func runRecommend(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	prefs, err := readPreferences(args[0])
	if err != nil {
		return err
	}

	recommender, catalog, err := buildRecommender(cfg)
	if err != nil {
		return err
	}
	defer catalog.Close()

	results, err := recommender.Recommend(cmd.Context(), prefs, recommendTemplate)
	if err != nil {
		return err
	}

	if recommendJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No matches found.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SCORE\tTITLE\tDESCRIPTION")
	for _, result := range results {
		fmt.Fprintf(w, "%.3f\t%s\t%s\n", result.Score, result.Title, truncate(result.Description, 60))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if results[0].Explanation != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "\nWhy %s: %s\n", results[0].Title, results[0].Explanation)
	}
	return nil
}

func readPreferences(path string) (models.PreferenceRecord, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading preferences: %w", err)
	}

	var prefs models.PreferenceRecord
	if err := json.Unmarshal(data, &prefs); err != nil {
		return nil, fmt.Errorf("parsing preferences: %w", err)
	}
	if err := prefs.Validate(); err != nil {
		return nil, err
	}
	return prefs, nil
}
