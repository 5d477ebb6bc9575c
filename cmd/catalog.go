package cmd

import (
	"github.com/rovira-studio/atelier/internal/catalogcmd"
	"github.com/spf13/cobra"
)

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Works catalogue tools",
		Long: `Tools for working with the works catalogue outside the web server.

Supports listing the ordered catalogue, exporting it to JSONL, CSV or
Parquet, warming the geocode cache ahead of publishing, and drafting
descriptive text for works that have none.`,
	}

	// Add catalog subcommands
	cmd.AddCommand(catalogcmd.NewListCmd())
	cmd.AddCommand(catalogcmd.NewExportCmd())
	cmd.AddCommand(catalogcmd.NewGeocodeCmd())
	cmd.AddCommand(catalogcmd.NewDescribeCmd())

	return cmd
}
