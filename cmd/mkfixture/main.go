// mkfixture creates a small synthetic billing table (and optionally a note
// document) with known seeded violations, for demos and manual testing.
// Usage: go run ./cmd/mkfixture --out testdata/billing.csv --rows 50 --notes testdata/notes.txt
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	goparquet "github.com/parquet-go/parquet-go"

	"github.com/gyeh/billscrub/internal/model"
)

func main() {
	out := flag.String("out", "testdata/billing.csv", "output billing table (.csv or .parquet)")
	rows := flag.Int("rows", 50, "total rows to output (padding with clean rows)")
	notesOut := flag.String("notes", "", "optional note document output (.txt)")
	seed := flag.Int64("seed", 1, "rng seed for padding rows")
	flag.Parse()

	fixture := seededRows()
	fixture = append(fixture, padRows(*rows-len(fixture), rand.New(rand.NewSource(*seed)))...)

	var err error
	if strings.EqualFold(filepath.Ext(*out), ".parquet") {
		err = writeParquet(*out, fixture)
	} else {
		err = writeCSV(*out, fixture)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "write billing fixture: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d billing rows to %s\n", len(fixture), *out)

	if *notesOut != "" {
		if err := os.WriteFile(*notesOut, []byte(noteFixture), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "write note fixture: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote note fixture to %s\n", *notesOut)
	}
}

func sptr(s string) *string { return &s }

func mk(client, provider string, code, date, from, to, hours, drive, loc, locDesc string) model.RawBillingRow {
	return model.RawBillingRow{
		ClientName:          sptr(client),
		ProviderName:        sptr(provider),
		ProcedureCode:       sptr(code),
		DateOfService:       sptr(date),
		TimeWorkedFrom:      sptr(date + " " + from),
		TimeWorkedTo:        sptr(date + " " + to),
		TimeWorkedInHours:   sptr(hours),
		DriveTimeInMinutes:  sptr(drive),
		LocationCode:        sptr(loc),
		LocationDescription: sptr(locDesc),
	}
}

// seededRows returns rows triggering one instance of each billing rule.
func seededRows() []model.RawBillingRow {
	return []model.RawBillingRow{
		// Session over four hours.
		mk("Avery Jones", "Dana Smith", "97153", "2025-03-03", "09:00", "14:00", "5", "10", "12", "Home"),
		// Supervision over two hours, with a proper overlap underneath.
		mk("Avery Jones", "Lee Supervisor", "97155", "2025-03-04", "10:00", "12:30", "2.5", "0", "12", "Home"),
		mk("Avery Jones", "Dana Smith", "97153", "2025-03-04", "10:30", "13:00", "2.5", "15", "12", "Home"),
		// Forbidden location by code and by description.
		mk("Avery Jones", "Dana Smith", "97153", "2025-03-05", "09:00", "11:00", "2", "5", "03", "Clinic"),
		mk("Avery Jones", "Dana Smith", "97153", "2025-03-06", "09:00", "11:00", "2", "5", "11", "Middle School"),
		// High travel time.
		mk("Avery Jones", "Dana Smith", "97156", "2025-03-07", "09:00", "10:00", "1", "75", "12", "Home"),
		// Conflict: direct care plus family intervention same day.
		mk("Blake Rivera", "Dana Smith", "97153", "2025-03-03", "09:00", "11:00", "2", "0", "12", "Home"),
		mk("Blake Rivera", "Sam Trainer", "96167", "2025-03-03", "13:00", "14:00", "1", "0", "12", "Home"),
		// Duplicate base plus a sequence error: base starts after add-on.
		mk("Blake Rivera", "Sam Trainer", "96158", "2025-03-10", "10:00", "11:00", "1", "0", "12", "Home"),
		mk("Blake Rivera", "Sam Trainer", "96158", "2025-03-10", "12:00", "13:00", "1", "0", "12", "Home"),
		mk("Blake Rivera", "Sam Trainer", "96159", "2025-03-10", "08:30", "09:30", "1", "0", "12", "Home"),
		// Orphaned add-on.
		mk("Blake Rivera", "Sam Trainer", "96165", "2025-03-11", "09:00", "10:00", "1", "0", "12", "Home"),
		// Supervision with no overlapping direct care.
		mk("Casey Nguyen", "Lee Supervisor", "97155", "2025-03-12", "09:00", "10:00", "1", "0", "12", "Home"),
		mk("Casey Nguyen", "Pat Provider", "97153", "2025-03-12", "10:00", "12:00", "2", "0", "12", "Home"),
		// Unparseable procedure code: dropped before any rule runs.
		mk("Casey Nguyen", "Pat Provider", "ADJUSTMENT", "2025-03-12", "12:00", "12:30", "0.5", "0", "12", "Home"),
	}
}

// padRows generates clean rows so rule counts stay stable as the file grows.
func padRows(n int, rng *rand.Rand) []model.RawBillingRow {
	if n <= 0 {
		return nil
	}
	clients := []string{"Drew Patel", "Emery Lopez", "Finley Kim"}
	providers := []string{"Dana Smith", "Pat Provider"}
	out := make([]model.RawBillingRow, 0, n)
	for i := 0; i < n; i++ {
		day := 3 + rng.Intn(25)
		date := fmt.Sprintf("2025-03-%02d", day)
		client := clients[rng.Intn(len(clients))]
		out = append(out,
			mk(client, providers[rng.Intn(len(providers))], "97156", date, "09:00", "10:00", "1", "10", "12", "Home"))
	}
	return out
}

func writeCSV(path string, rows []model.RawBillingRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	cols := []string{
		model.ColClientName, model.ColProviderName, model.ColProcedureCode,
		model.ColDateOfService, model.ColTimeWorkedFrom, model.ColTimeWorkedTo,
		model.ColTimeWorkedInHours, model.ColDriveTimeInMinutes,
		model.ColLocationCode, model.ColLocationDescription,
	}
	w := csv.NewWriter(f)
	if err := w.Write(cols); err != nil {
		return err
	}
	for i := range rows {
		cells := rows[i].Cells()
		record := make([]string, len(cols))
		for j, col := range cols {
			if v := cells[col]; v != nil {
				record[j] = *v
			}
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func writeParquet(path string, rows []model.RawBillingRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	writer := goparquet.NewGenericWriter[model.RawBillingRow](f)
	if _, err := writer.Write(rows); err != nil {
		f.Close()
		return err
	}
	if err := writer.Close(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

const noteFixture = `Cover page for the week of March 3.
Activity Statement
Goal Summary
Tax ID: 12-3456789
Service code 97153 for Avery Jones.
Session participants: ☑ Caregiver ☐ Sibling
Dana added a data point of 4 to Eye Contact for Avery.
Dana added a data point of 2 to Turn Taking for Avery.
Signed On: 2025-03-03
Activity Statement
Goal Summary
Activities that were used: matching, imitation.
Session participants: ☐ Caregiver
Dana added a data point of 3 to Eye Contact for Avery.
Dana added a data point of 1 to Eye Contact for Avery.
Activity Statement
Billing appendix without note markers.
`
