// ABOUTME: Serve command runs the HTTP recommendation API
// ABOUTME: Graceful shutdown on SIGINT/SIGTERM with a drain timeout
package commands

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rasheed1306/movienight/internal/httpapi"
)

var serveAddr string

// NewServeCmd creates the serve command
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP recommendation API",
		Long: `Start the HTTP recommendation API.

Endpoints:
  POST /recommend   {"preferences": {"Name": {"Question?": "Answer"}}, "template": "default"}
  GET  /templates   available explanation templates
  GET  /health      liveness check`,
		RunE: runServe,
		Example: `  movienight serve
  movienight serve --addr :9000`,
	}

	cmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides MOVIENIGHT_ADDR)")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.HTTPAddr = serveAddr
	}

	recommender, catalog, err := buildRecommender(cfg)
	if err != nil {
		return err
	}
	defer catalog.Close()

	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: httpapi.NewServer(recommender).Router(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.ListenAndServe()
	}()

	if !quiet {
		log.Printf("movienight API listening on %s", cfg.HTTPAddr)
	}

	select {
	case <-ctx.Done():
		if !quiet {
			log.Println("Shutdown signal received, gracefully shutting down...")
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down server: %w", err)
		}
		if !quiet {
			log.Println("Shutdown complete")
		}
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
	}

	return nil
}
