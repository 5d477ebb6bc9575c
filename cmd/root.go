package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "atelier",
		Short: "Portfolio site server and catalogue tools for the Rovira studio",
		Long: `Atelier serves the studio's portfolio site — home, biography, workshop and
the works catalogue with its grid, list, map and timeline views — and ships
CLI tools for inspecting, exporting and geocoding the catalogue.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
	}

	// Add subcommands
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newCatalogCmd())

	return cmd
}
