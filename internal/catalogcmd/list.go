package catalogcmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/rovira-studio/atelier/internal/i18n"
	"github.com/spf13/cobra"
)

// NewListCmd creates the list command
func NewListCmd() *cobra.Command {
	var configPath string
	var locale string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the ordered catalogue",
		Long: `Prints every retained work in catalogue order: priority-listed works
first, then the rest by descending year.`,
		Example: `  # List the catalogue
  atelier catalog list

  # List with English month names
  atelier catalog list --locale en`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, works, err := loadCatalogue(configPath)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "SLUG\tNAME\tCITY\tDATE\tIMAGES")
			for _, w := range works {
				date := ""
				if w.Year > 0 {
					date = fmt.Sprintf("%d", w.Year)
					if w.Month > 0 {
						date = i18n.MonthName(w.Month, locale) + " " + date
					}
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\n", w.Slug, w.Name, w.City, date, len(w.Album))
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "atelier.yaml", "Path to site config")
	cmd.Flags().StringVar(&locale, "locale", i18n.LocaleCA, "Locale for month names")

	return cmd
}
