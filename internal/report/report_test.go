package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/gyeh/billscrub/internal/model"
)

func sampleIssues() []model.Issue {
	return []model.Issue{
		{Client: "Avery Jones", Date: "2025-03-03", Kind: model.KindSessionTooLong, Detail: "97153 lasted 5 hrs"},
		{Client: "", Note: 2, Date: "Note 2", Kind: model.KindMissingTaxID, Detail: ""},
	}
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "issues.csv")
	if err := WriteCSV(path, sampleIssues()); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want header + 2", len(records))
	}
	if !reflect.DeepEqual(records[0], Header) {
		t.Errorf("header = %v", records[0])
	}
	want1 := []string{"Avery Jones", "", "2025-03-03", "Session > 4 Hours", "97153 lasted 5 hrs"}
	if !reflect.DeepEqual(records[1], want1) {
		t.Errorf("row 1 = %v, want %v", records[1], want1)
	}
	// Note index renders only when set.
	if records[2][1] != "2" {
		t.Errorf("note column = %q, want \"2\"", records[2][1])
	}
}

func TestWriteCSV_EmptyIssueList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "issues.csv")
	if err := WriteCSV(path, nil); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "Client,Note,Date,Issue,Detail\n" {
		t.Errorf("empty report = %q", data)
	}
}

func TestWrite_DispatchesParquetByExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "issues.parquet")
	if err := Write(path, sampleIssues()); err != nil {
		t.Fatalf("Write: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Error("parquet report is empty")
	}
}
