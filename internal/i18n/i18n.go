package i18n

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Supported locales. Catalan is the site's primary language.
const (
	LocaleCA = "ca"
	LocaleEN = "en"
)

var monthNames = map[string][]string{
	LocaleCA: {
		"gener", "febrer", "març", "abril", "maig", "juny",
		"juliol", "agost", "setembre", "octubre", "novembre", "desembre",
	},
	LocaleEN: {
		"january", "february", "march", "april", "may", "june",
		"july", "august", "september", "october", "november", "december",
	},
}

// ParseMonth resolves a month given as a number ("5"), a Catalan name
// ("maig") or an English name ("May"), case-insensitively. It returns 0 for
// anything it does not recognize.
func ParseMonth(s string) int {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0
	}

	if n, err := strconv.Atoi(s); err == nil {
		if n >= 1 && n <= 12 {
			return n
		}
		return 0
	}

	for _, names := range monthNames {
		for i, name := range names {
			if name == s {
				return i + 1
			}
		}
	}
	return 0
}

// MonthName renders month m (1-12) in the given locale. Unknown locales fall
// back to Catalan; out-of-range months render empty.
func MonthName(m int, locale string) string {
	if m < 1 || m > 12 {
		return ""
	}
	names, ok := monthNames[locale]
	if !ok {
		names = monthNames[LocaleCA]
	}
	return names[m-1]
}

// Corpus is an ordered list of paragraphs per locale, used for the biography
// and workshop pages.
type Corpus map[string][]string

// Paragraphs returns the corpus text for locale, falling back to Catalan
// when the locale has no entry.
func (c Corpus) Paragraphs(locale string) []string {
	if ps, ok := c[locale]; ok && len(ps) > 0 {
		return ps
	}
	return c[LocaleCA]
}

// LoadCorpus reads a paragraph corpus from a YAML file shaped as
// {locale: [paragraph, ...]}. A missing file yields an empty corpus.
func LoadCorpus(path string) (Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Corpus{}, nil
		}
		return nil, fmt.Errorf("failed to read corpus %s: %w", path, err)
	}

	var corpus Corpus
	if err := yaml.Unmarshal(data, &corpus); err != nil {
		return nil, fmt.Errorf("failed to parse corpus %s: %w", path, err)
	}
	return corpus, nil
}
