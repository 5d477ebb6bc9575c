package catalogcmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rovira-studio/atelier/internal/geocode"
	"github.com/spf13/cobra"
)

// NewGeocodeCmd creates the geocode command
func NewGeocodeCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "geocode",
		Short: "Warm the geocode cache for every work with an address",
		Long: `Resolves every work's address or city against the geocoding service,
sequentially and politely, and persists the results to the cache file. Run
this before publishing so the map view never waits on the network.`,
		Example: `  # Warm the cache
  atelier catalog geocode`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, works, err := loadCatalogue(configPath)
			if err != nil {
				return err
			}

			// Create a context that gets canceled on an interrupt signal (Ctrl+C)
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			cache := geocode.OpenCache(cfg.CacheFile)
			resolver := geocode.NewResolver(
				geocode.NewClient(cfg.Geocoder.Endpoint, cfg.Geocoder.UserAgent),
				cache,
				time.Duration(cfg.Geocoder.Delay),
			)

			placed := 0
			for _, w := range works {
				if w.Place() != "" {
					placed++
				}
			}

			located := resolver.ResolveAll(ctx, works)

			fmt.Printf("Resolved %d of %d placed works (%d total works), cache now holds %d entries\n",
				len(located), placed, len(works), cache.Len())
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "atelier.yaml", "Path to site config")

	return cmd
}
