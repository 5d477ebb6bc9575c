package catalogcmd

import (
	"fmt"

	"github.com/rovira-studio/atelier/internal/catalog"
	"github.com/rovira-studio/atelier/internal/config"
	"github.com/rovira-studio/atelier/internal/models"
)

// loadCatalogue loads the site config and builds the ordered catalogue, the
// shared first step of every catalogue subcommand.
func loadCatalogue(configPath string) (*config.Config, []*models.WorkItem, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	works, err := catalog.NewLoader(cfg.ContentDir, cfg.Priority).Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load catalogue: %w", err)
	}
	return cfg, works, nil
}
