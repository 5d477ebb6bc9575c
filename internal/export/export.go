// Package export writes the catalogue out as JSONL, CSV or Parquet, for
// backups and for feeding print/press workflows.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/parquet-go/parquet-go"
	"github.com/rovira-studio/atelier/internal/models"
)

// Record is the flat per-work export row.
type Record struct {
	Slug       string `json:"slug" parquet:"slug"`
	Name       string `json:"name" parquet:"name"`
	City       string `json:"city" parquet:"city"`
	Address    string `json:"address" parquet:"address"`
	Year       int32  `json:"year" parquet:"year"`
	Month      int32  `json:"month" parquet:"month"`
	ImageCount int32  `json:"image_count" parquet:"image_count"`
}

// Formats supported by Write.
const (
	FormatJSONL   = "jsonl"
	FormatCSV     = "csv"
	FormatParquet = "parquet"
)

// DetectFormat maps a file extension to an export format, defaulting to
// JSONL for unknown extensions.
func DetectFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV
	case ".parquet":
		return FormatParquet
	default:
		return FormatJSONL
	}
}

// Write exports the catalogue to w in the given format, preserving the
// catalogue's order.
func Write(w io.Writer, works []*models.WorkItem, format string) error {
	records := toRecords(works)

	switch format {
	case FormatJSONL:
		return writeJSONL(w, records)
	case FormatCSV:
		return writeCSV(w, records)
	case FormatParquet:
		return writeParquet(w, records)
	default:
		return fmt.Errorf("unsupported export format: %s (supported: jsonl, csv, parquet)", format)
	}
}

func toRecords(works []*models.WorkItem) []Record {
	records := make([]Record, 0, len(works))
	for _, w := range works {
		records = append(records, Record{
			Slug:       w.Slug,
			Name:       w.Name,
			City:       w.City,
			Address:    w.Address,
			Year:       int32(w.Year),
			Month:      int32(w.Month),
			ImageCount: int32(len(w.Album)),
		})
	}
	return records
}

func writeJSONL(w io.Writer, records []Record) error {
	enc := json.NewEncoder(w)
	for _, r := range records {
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("failed to encode record %s: %w", r.Slug, err)
		}
	}
	return nil
}

func writeCSV(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"slug", "name", "city", "address", "year", "month", "image_count"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, r := range records {
		row := []string{
			r.Slug,
			r.Name,
			r.City,
			r.Address,
			strconv.Itoa(int(r.Year)),
			strconv.Itoa(int(r.Month)),
			strconv.Itoa(int(r.ImageCount)),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row %s: %w", r.Slug, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func writeParquet(w io.Writer, records []Record) error {
	pw := parquet.NewGenericWriter[Record](w)

	n, err := pw.Write(records)
	if err != nil {
		return fmt.Errorf("failed to write parquet rows: %w", err)
	}
	slog.Debug("Wrote parquet rows", "rows", n)

	if err := pw.Close(); err != nil {
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}
	return nil
}
