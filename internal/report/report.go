// Package report exports the issue list: a row-oriented rendering for the
// terminal and a downloadable CSV or Parquet file, one row per issue.
package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/parquet-go/parquet-go"

	"github.com/gyeh/billscrub/internal/model"
)

// Header is the export column order, matching the Issue record fields.
var Header = []string{"Client", "Note", "Date", "Issue", "Detail"}

// Write exports issues to path, choosing the format by extension:
// .parquet for Parquet, anything else CSV.
func Write(path string, issues []model.Issue) error {
	if strings.EqualFold(filepath.Ext(path), ".parquet") {
		return WriteParquet(path, issues)
	}
	return WriteCSV(path, issues)
}

// WriteCSV writes the issue list as CSV with a header row.
func WriteCSV(path string, issues []model.Issue) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(Header); err != nil {
		f.Close()
		return fmt.Errorf("write report header: %w", err)
	}
	for _, is := range issues {
		note := ""
		if is.Note > 0 {
			note = strconv.Itoa(is.Note)
		}
		if err := w.Write([]string{is.Client, note, is.Date, string(is.Kind), is.Detail}); err != nil {
			f.Close()
			return fmt.Errorf("write report row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flush report: %w", err)
	}
	return f.Close()
}

// WriteParquet writes the issue list as a Parquet file using the Issue
// struct's parquet schema.
func WriteParquet(path string, issues []model.Issue) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}

	w := parquet.NewGenericWriter[model.Issue](f)
	if len(issues) > 0 {
		if _, err := w.Write(issues); err != nil {
			f.Close()
			return fmt.Errorf("write report rows: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		f.Close()
		return fmt.Errorf("close report writer: %w", err)
	}
	return f.Close()
}
