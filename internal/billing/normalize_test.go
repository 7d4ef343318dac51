package billing

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/gyeh/billscrub/internal/model"
	"github.com/gyeh/billscrub/internal/tableread"
)

func normalizeTable(t *testing.T, table *tableread.Table) (*Result, error) {
	t.Helper()
	return Normalize(table, zerolog.Nop(), true)
}

func TestNormalize_TrimsColumnWhitespace(t *testing.T) {
	table := &tableread.Table{
		Columns: []string{"  Client Name ", "Provider Name", " ProcedureCode", "DateOfService", "TimeWorkedFrom", "TimeWorkedTo", "TimeWorkedInHours", "DriveTimeInMinutes"},
		Rows: [][]string{
			{"Avery Jones", "Dana Smith", "97153", "2025-03-03", "2025-03-03 09:00", "2025-03-03 10:00", "1", "5"},
		},
	}
	res, err := normalizeTable(t, table)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if len(res.Rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(res.Rows))
	}
	r := res.Rows[0]
	if r.Client != "Avery Jones" || r.ProcedureCode != 97153 {
		t.Errorf("row not read through padded headers: %+v", r)
	}
	if r.DateOnly != "2025-03-03" {
		t.Errorf("DateOnly = %q", r.DateOnly)
	}
	if r.Supervised {
		t.Error("Supervised must start false")
	}
}

func TestNormalize_DropsUnparseableProcedureCodes(t *testing.T) {
	table := &tableread.Table{
		Columns: []string{"Client Name", "Provider Name", "ProcedureCode", "DateOfService", "TimeWorkedFrom", "TimeWorkedTo", "TimeWorkedInHours", "DriveTimeInMinutes"},
		Rows: [][]string{
			{"A", "P", "97153", "2025-03-03", "2025-03-03 09:00", "2025-03-03 10:00", "1", "0"},
			{"A", "P", "97153 Jersey", "2025-03-03", "2025-03-03 09:00", "2025-03-03 10:00", "1", "0"},
			{"A", "P", "", "2025-03-03", "2025-03-03 09:00", "2025-03-03 10:00", "1", "0"},
			{"A", "P", "97155.0", "2025-03-03", "2025-03-03 09:00", "2025-03-03 10:00", "1", "0"},
		},
	}
	res, err := normalizeTable(t, table)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if res.RowsRead != 4 || res.RowsDropped != 2 {
		t.Errorf("read=%d dropped=%d, want 4/2", res.RowsRead, res.RowsDropped)
	}
	if len(res.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(res.Rows))
	}
	if res.Rows[1].ProcedureCode != 97155 {
		t.Errorf("float-coded row parsed as %d, want 97155", res.Rows[1].ProcedureCode)
	}
}

func TestNormalize_SynthesizesNamesWithSpaceJoin(t *testing.T) {
	table := &tableread.Table{
		Columns: []string{"ClientFirstName", "ClientLastName", "ProviderFirstName", "ProviderLastName", "ProcedureCode", "DateOfService", "TimeWorkedFrom", "TimeWorkedTo", "TimeWorkedInHours", "DriveTimeInMinutes"},
		Rows: [][]string{
			{"Avery", "Jones", "Dana", "Smith", "97153", "2025-03-03", "2025-03-03 09:00", "2025-03-03 10:00", "1", "0"},
			{"", "Jones", "Dana", "", "97153", "2025-03-03", "2025-03-03 09:00", "2025-03-03 10:00", "1", "0"},
		},
	}
	res, err := normalizeTable(t, table)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if got := res.Rows[0].Client; got != "Avery Jones" {
		t.Errorf("client = %q", got)
	}
	// Missing parts keep the single-space join.
	if got := res.Rows[1].Client; got != " Jones" {
		t.Errorf("client with missing first name = %q, want %q", got, " Jones")
	}
	if got := res.Rows[1].Provider; got != "Dana " {
		t.Errorf("provider with missing last name = %q, want %q", got, "Dana ")
	}
}

func TestNormalize_CombinedNameColumnWins(t *testing.T) {
	table := &tableread.Table{
		Columns: []string{"Client Name", "ClientFirstName", "ClientLastName", "Provider Name", "ProcedureCode", "DateOfService", "TimeWorkedFrom", "TimeWorkedTo", "TimeWorkedInHours", "DriveTimeInMinutes"},
		Rows: [][]string{
			{"Combined Name", "Avery", "Jones", "P", "97153", "2025-03-03", "2025-03-03 09:00", "2025-03-03 10:00", "1", "0"},
		},
	}
	res, err := normalizeTable(t, table)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if got := res.Rows[0].Client; got != "Combined Name" {
		t.Errorf("client = %q, want combined column value", got)
	}
}

func TestNormalize_DateErrorFailsFast(t *testing.T) {
	table := &tableread.Table{
		Columns: []string{"Client Name", "Provider Name", "ProcedureCode", "DateOfService", "TimeWorkedFrom", "TimeWorkedTo", "TimeWorkedInHours", "DriveTimeInMinutes"},
		Rows: [][]string{
			{"A", "P", "97153", "2025-03-03", "2025-03-03 09:00", "2025-03-03 10:00", "1", "0"},
			{"A", "P", "97153", "not a date", "2025-03-03 09:00", "2025-03-03 10:00", "1", "0"},
		},
	}
	res, err := normalizeTable(t, table)
	if res != nil {
		t.Errorf("expected no result on date error, got %d rows", len(res.Rows))
	}
	var de *DateError
	if !errors.As(err, &de) {
		t.Fatalf("expected *DateError, got %v", err)
	}
	if de.Column != model.ColDateOfService || de.Row != 2 {
		t.Errorf("DateError = %+v", de)
	}
	issue := de.Issue()
	if issue.Kind != model.KindDateError {
		t.Errorf("issue kind = %q", issue.Kind)
	}
}

func TestNormalize_MalformedOptionalFieldsDoNotAbort(t *testing.T) {
	table := &tableread.Table{
		Columns: []string{"Client Name", "Provider Name", "ProcedureCode", "DateOfService", "TimeWorkedFrom", "TimeWorkedTo", "TimeWorkedInHours", "DriveTimeInMinutes"},
		Rows: [][]string{
			{"A", "P", "97153", "2025-03-03", "2025-03-03 09:00", "2025-03-03 10:00", "garbage", ""},
		},
	}
	res, err := normalizeTable(t, table)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	r := res.Rows[0]
	if !r.WorkedHours.IsZero() || !r.DriveTimeMinutes.IsZero() {
		t.Errorf("malformed numerics should zero out: hours=%s drive=%s", r.WorkedHours, r.DriveTimeMinutes)
	}
}

func TestCoerceCode(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"97153", 97153, true},
		{" 97153 ", 97153, true},
		{"97153.0", 97153, true},
		{"97153.5", 0, false},
		{"97153 Jersey", 0, false},
		{"", 0, false},
		{"ADJUSTMENT", 0, false},
	}
	for _, tc := range cases {
		got, ok := coerceCode(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("coerceCode(%q) = (%d, %v), want (%d, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}
