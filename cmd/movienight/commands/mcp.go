// ABOUTME: MCP command starts Model Context Protocol server
// ABOUTME: Enables LLM agents to request group recommendations via stdio
package commands

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/rasheed1306/movienight/internal/mcp"
)

// NewMCPCmd creates the MCP command
func NewMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server for LLM agents",
		Long: `Start MCP server for LLM agents.

Runs movienight as an MCP (Model Context Protocol) server over stdio,
exposing the recommend_movie and list_templates tools.`,
		RunE: runMCP,
		Example: `  # Start MCP server (typically launched by the agent host)
  movienight mcp

  # Configure in the agent host's MCP config:
  # {
  #   "mcpServers": {
  #     "movienight": {
  #       "command": "movienight",
  #       "args": ["mcp"]
  #     }
  #   }
  # }`,
	}

	return cmd
}

// runMCP starts the MCP server
func runMCP(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	recommender, catalog, err := buildRecommender(cfg)
	if err != nil {
		return err
	}

	server := mcpserver.NewMCPServer(
		"movienight",
		versionInfo.Version,
	)
	mcp.RegisterTools(server, recommender)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !quiet {
		log.Println("movienight MCP server starting on stdio...")
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- mcpserver.ServeStdio(server)
	}()

	select {
	case <-ctx.Done():
		if !quiet {
			log.Println("Shutdown signal received, gracefully shutting down...")
		}
		if err := catalog.Close(); err != nil {
			log.Printf("Warning: Error closing catalog: %v", err)
		}
		if !quiet {
			log.Println("Shutdown complete")
		}
	case err := <-serverErr:
		catalog.Close()
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}

	return nil
}
