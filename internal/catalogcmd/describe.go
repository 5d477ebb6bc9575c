package catalogcmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rovira-studio/atelier/internal/gemini"
	"github.com/rovira-studio/atelier/internal/i18n"
	"github.com/rovira-studio/atelier/internal/models"
	"github.com/rovira-studio/atelier/internal/ollama"
	"github.com/rovira-studio/atelier/internal/providers"
	"github.com/spf13/cobra"
)

// NewDescribeCmd creates the describe command
func NewDescribeCmd() *cobra.Command {
	var configPath string
	var providerName string
	var model string
	var locale string
	var temperature float64

	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Draft descriptive text for works that have none",
		Long: `Generates draft descriptions for every work missing one in the given
locale, using an LLM provider. Drafts are printed to stdout for the artist
to review and copy into the work's metadata — the content tree is never
modified.`,
		Example: `  # Draft Catalan descriptions with Gemini
  atelier catalog describe --provider gemini --model gemini-2.0-flash

  # Draft English descriptions with a local Ollama model
  atelier catalog describe --provider ollama --model llama3.2 --locale en`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var provider providers.Provider
			switch providerName {
			case "gemini":
				provider = gemini.New()
			case "ollama":
				provider = ollama.New()
			default:
				return fmt.Errorf("unsupported provider: %s (supported: gemini, ollama)", providerName)
			}

			_, works, err := loadCatalogue(configPath)
			if err != nil {
				return err
			}

			// Create a context that gets canceled on an interrupt signal (Ctrl+C)
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			drafted := 0
			for _, w := range works {
				if w.Description[locale] != "" {
					continue
				}

				draft, err := provider.GenerateText(ctx, providers.Config{
					Model:       model,
					Temperature: temperature,
					Prompt:      describePrompt(w, locale),
				})
				if err != nil {
					return fmt.Errorf("failed to draft description for %s: %w", w.Slug, err)
				}

				fmt.Printf("--- %s (%s)\n%s\n\n", w.Slug, locale, strings.TrimSpace(draft))
				drafted++
			}

			fmt.Printf("Drafted %d descriptions\n", drafted)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "atelier.yaml", "Path to site config")
	cmd.Flags().StringVar(&providerName, "provider", "gemini", "LLM provider: gemini or ollama")
	cmd.Flags().StringVar(&model, "model", "gemini-2.0-flash", "Model name")
	cmd.Flags().StringVar(&locale, "locale", i18n.LocaleCA, "Locale to draft in")
	cmd.Flags().Float64Var(&temperature, "temperature", 0.7, "Sampling temperature")

	return cmd
}

func describePrompt(w *models.WorkItem, locale string) string {
	language := "Catalan"
	if locale == i18n.LocaleEN {
		language = "English"
	}

	var sb strings.Builder
	sb.WriteString("Write a short, warm gallery-style description (2-3 sentences, ")
	sb.WriteString(language)
	sb.WriteString(") of a sculpture titled \"")
	sb.WriteString(w.Name)
	sb.WriteString("\"")
	if w.City != "" {
		sb.WriteString(", installed in ")
		sb.WriteString(w.City)
	}
	if w.Year > 0 {
		fmt.Fprintf(&sb, " in %d", w.Year)
	}
	sb.WriteString(". Plain prose only, no markdown.")
	return sb.String()
}
