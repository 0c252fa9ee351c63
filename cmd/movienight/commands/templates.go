// ABOUTME: Templates command listing the available explanation templates
// ABOUTME: Marks the default template used when none is requested
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rasheed1306/movienight/internal/prompts"
)

// NewTemplatesCmd creates the templates command
func NewTemplatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List explanation templates",
		Long:  `List the explanation templates available for the recommend command.`,
		RunE:  runTemplates,
	}
}

func runTemplates(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	registry, err := newRegistry(cfg)
	if err != nil {
		return err
	}

	for _, name := range registry.Names() {
		if name == prompts.DefaultName {
			fmt.Fprintf(cmd.OutOrStdout(), "%s (default)\n", name)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
	}
	return nil
}
