package pdftext

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// contentFile matches the per-page content dump names pdfcpu writes,
// e.g. "notes_Content_page_3.txt".
var contentFile = regexp.MustCompile(`_page_(\d+)\D*$`)

// Pages extracts per-page plain text from the document at path. PDF input
// runs through pdfcpu content extraction followed by a literal-string
// scrape of each page's content stream; there is no layout or font-encoding
// awareness, which is a known scope limit of this auditor. Pages that yield
// no text contribute an empty string, never an error.
//
// Plain-text files are accepted directly, treated as form-feed separated
// pages.
func Pages(path string) ([]string, error) {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return pdfPages(path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read notes file: %w", err)
	}
	return strings.Split(string(data), "\f"), nil
}

func pdfPages(path string) ([]string, error) {
	pageCount, err := api.PageCountFile(path)
	if err != nil {
		return nil, fmt.Errorf("page count: %w", err)
	}

	tempDir, err := os.MkdirTemp("", "billscrub-notes-*")
	if err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(tempDir)

	if err := api.ExtractContentFile(path, tempDir, nil, nil); err != nil {
		return nil, fmt.Errorf("extract content: %w", err)
	}

	pages := make([]string, pageCount)
	entries, err := os.ReadDir(tempDir)
	if err != nil {
		return nil, fmt.Errorf("read temp dir: %w", err)
	}
	for _, ent := range entries {
		nr, ok := pageNumber(ent.Name())
		if !ok || nr < 1 || nr > pageCount {
			continue
		}
		data, err := os.ReadFile(filepath.Join(tempDir, ent.Name()))
		if err != nil {
			// Extraction gap: the page contributes nothing.
			continue
		}
		pages[nr-1] = ScrapeText(string(data))
	}
	return pages, nil
}

func pageNumber(name string) (int, bool) {
	m := contentFile.FindStringSubmatch(name)
	if m == nil {
		return 0, false
	}
	nr, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return nr, true
}
