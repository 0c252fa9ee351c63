// ABOUTME: Root CLI command with global flags and subcommand wiring
// ABOUTME: Entry point for serve, mcp, seed, recommend, templates, version
package commands

import (
	"github.com/spf13/cobra"
)

var (
	verbose bool
	quiet   bool
)

// NewRootCmd creates the root command with all subcommands attached
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "movienight",
		Short: "Group movie recommendations from combined preference embeddings",
		Long: `movienight recommends a movie for a small group.

Each member's quiz answers are embedded and averaged into one semantic
query, the closest catalog matches are retrieved by vector similarity,
and the top pick gets a generated explanation of why the group will
love it.

Requires OPENAI_API_KEY (read from the environment or a .env file)
and a seeded catalog database; run "movienight seed" first.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress informational output")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	cmd.AddCommand(
		NewServeCmd(),
		NewMCPCmd(),
		NewSeedCmd(),
		NewRecommendCmd(),
		NewTemplatesCmd(),
		NewVersionCmd(),
	)

	return cmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
