package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"path/filepath"
	"time"

	"github.com/rovira-studio/atelier/internal/catalog"
	"github.com/rovira-studio/atelier/internal/config"
	"github.com/rovira-studio/atelier/internal/geocode"
	"github.com/rovira-studio/atelier/internal/handlers"
	"github.com/rovira-studio/atelier/internal/i18n"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var port string
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the portfolio web server",
		Long: `Starts the portfolio site on the specified port.

The catalogue is built once at startup from the content directory; edit the
content tree and restart to publish changes.`,
		Example: `  # Start server on default port 8484
  atelier serve

  # Start server on custom port with an explicit config
  atelier serve --port 3000 --config atelier.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			works, err := catalog.NewLoader(cfg.ContentDir, cfg.Priority).Load()
			if err != nil {
				return err
			}

			bio, err := i18n.LoadCorpus(filepath.Join(cfg.ContentDir, "bio.yaml"))
			if err != nil {
				return err
			}
			workshop, err := i18n.LoadCorpus(filepath.Join(cfg.ContentDir, "workshop.yaml"))
			if err != nil {
				return err
			}

			resolver := geocode.NewResolver(
				geocode.NewClient(cfg.Geocoder.Endpoint, cfg.Geocoder.UserAgent),
				geocode.OpenCache(cfg.CacheFile),
				time.Duration(cfg.Geocoder.Delay),
			)

			handler := handlers.New(cfg, works, resolver, bio, workshop)

			// Set up routes
			mux := http.NewServeMux()
			mux.HandleFunc("/", handler.HandleHome)
			mux.HandleFunc("/bio", handler.HandleBio)
			mux.HandleFunc("/workshop", handler.HandleWorkshop)
			mux.HandleFunc("/works", handler.HandleWorks)
			mux.HandleFunc("/api/config", handler.HandleConfig)
			mux.HandleFunc("/api/works", handler.HandleWorksAPI)
			mux.HandleFunc("/api/works/", handler.HandleWorkDetail)
			mux.HandleFunc("/api/map", handler.HandleMap)
			mux.HandleFunc("/api/timeline", handler.HandleTimeline)
			mux.HandleFunc("/api/state", handler.HandleState)
			mux.HandleFunc("/api/state/carousel/next", handler.HandleCarouselNext)
			mux.HandleFunc("/api/state/carousel/prev", handler.HandleCarouselPrev)
			mux.HandleFunc("/static/", handler.HandleStatic)
			mux.HandleFunc("/media/", handler.HandleMedia)
			mux.HandleFunc("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
				if _, err := w.Write([]byte("OK")); err != nil {
					slog.Error("Unable to write healthcheck", "err", err)
				}
			})

			addr := ":" + port
			server := &http.Server{
				Addr:    addr,
				Handler: mux,
			}

			// Start server in goroutine
			serverErr := make(chan error, 1)
			go func() {
				slog.Info("Portfolio site available", "addr", addr, "url", "http://localhost"+addr, "works", len(works))
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
			}()

			// Wait for context cancellation (Ctrl+C) or server error
			select {
			case <-cmd.Context().Done():
				slog.Info("Shutting down server...")
				// Give server 5 seconds to shut down gracefully
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil {
					slog.Error("Server shutdown failed", "err", err)
					return err
				}
				slog.Info("Server stopped")
				return nil
			case err := <-serverErr:
				return err
			}
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "8484", "Port to listen on")
	cmd.Flags().StringVarP(&configPath, "config", "c", "atelier.yaml", "Path to site config")

	return cmd
}
