package catalogcmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/rovira-studio/atelier/internal/export"
	"github.com/spf13/cobra"
)

// NewExportCmd creates the export command
func NewExportCmd() *cobra.Command {
	var configPath string
	var output string
	var format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the catalogue to JSONL, CSV or Parquet",
		Long: `Exports the ordered catalogue as flat records. The format is taken from
the output file extension unless --format is given explicitly.`,
		Example: `  # Export to CSV
  atelier catalog export --output works.csv

  # Export to Parquet
  atelier catalog export --output works.parquet

  # Force JSONL regardless of extension
  atelier catalog export --output works.dat --format jsonl`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				return fmt.Errorf("--output is required")
			}

			_, works, err := loadCatalogue(configPath)
			if err != nil {
				return err
			}

			if format == "" {
				format = export.DetectFormat(output)
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			defer f.Close()

			if err := export.Write(f, works, format); err != nil {
				return err
			}

			slog.Info("Catalogue exported", "output", output, "format", format, "works", len(works))
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "atelier.yaml", "Path to site config")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (required)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Export format: jsonl, csv or parquet (default: by extension)")

	_ = cmd.MarkFlagRequired("output")

	return cmd
}
