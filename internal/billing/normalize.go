package billing

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/gyeh/billscrub/internal/model"
	"github.com/gyeh/billscrub/internal/tableread"
)

// Timestamp formats seen in practice-management exports, tried in order.
var timeFormats = []string{
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"1/2/2006 3:04:05 PM",
	"1/2/2006 3:04 PM",
	"01/02/2006 15:04:05",
	"01/02/2006 15:04",
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
	"01-02-2006",
	"2006/01/02",
}

// DateError is the fatal parse failure for the three timestamp columns.
// It aborts the run: the entire output degenerates to a single "Date Error"
// issue rather than a partial issue list.
type DateError struct {
	Column string
	Value  string
	Row    int // 1-based data row
}

func (e *DateError) Error() string {
	return fmt.Sprintf("Date Error: cannot parse %s %q at row %d", e.Column, e.Value, e.Row)
}

// Issue converts the failure into the single diagnostic issue the run
// returns in place of its issue list.
func (e *DateError) Issue() model.Issue {
	return model.Issue{Kind: model.KindDateError, Detail: e.Error()}
}

// Result is the output of normalization: the canonical row set plus the
// read/drop counts for the run summary.
type Result struct {
	Rows        []model.BillingRow
	RowsRead    int64
	RowsDropped int64
}

// Normalize converts a raw billing table into the canonical row set the
// rule engine requires.
//
// Rows whose procedure code cannot be coerced to an integer are dropped
// from the audit entirely; they are logged (unless muted) and counted, but
// never reported as issues. Failure to parse any of the timestamp columns
// returns a *DateError and no rows. Other malformed or missing optional
// fields become zero values and never abort.
func Normalize(t *tableread.Table, log zerolog.Logger, quietDrops bool) (*Result, error) {
	res := &Result{}

	for i := range t.Rows {
		res.RowsRead++
		rowNum := i + 1

		code, ok := coerceCode(t.Cell(i, model.ColProcedureCode))
		if !ok {
			res.RowsDropped++
			if !quietDrops {
				log.Warn().
					Int("row", rowNum).
					Str("procedure_code", t.Cell(i, model.ColProcedureCode)).
					Msg("row dropped: unparseable procedure code")
			}
			continue
		}

		start, ok := parseTimestamp(t.Cell(i, model.ColTimeWorkedFrom))
		if !ok {
			return nil, &DateError{Column: model.ColTimeWorkedFrom, Value: t.Cell(i, model.ColTimeWorkedFrom), Row: rowNum}
		}
		end, ok := parseTimestamp(t.Cell(i, model.ColTimeWorkedTo))
		if !ok {
			return nil, &DateError{Column: model.ColTimeWorkedTo, Value: t.Cell(i, model.ColTimeWorkedTo), Row: rowNum}
		}
		dos, ok := parseTimestamp(t.Cell(i, model.ColDateOfService))
		if !ok {
			return nil, &DateError{Column: model.ColDateOfService, Value: t.Cell(i, model.ColDateOfService), Row: rowNum}
		}

		res.Rows = append(res.Rows, model.BillingRow{
			Client:              identity(t, i, model.ColClientName, model.ColClientFirstName, model.ColClientLastName),
			Provider:            identity(t, i, model.ColProviderName, model.ColProviderFirstName, model.ColProviderLastName),
			ProcedureCode:       code,
			DateOfService:       dos,
			Start:               start,
			End:                 end,
			DateOnly:            dos.Format("2006-01-02"),
			WorkedHours:         parseDecimal(t.Cell(i, model.ColTimeWorkedInHours)),
			DriveTimeMinutes:    parseDecimal(t.Cell(i, model.ColDriveTimeInMinutes)),
			LocationCode:        strings.TrimSpace(t.Cell(i, model.ColLocationCode)),
			LocationDescription: t.Cell(i, model.ColLocationDescription),
		})
	}

	return res, nil
}

// identity returns the combined name column when present, otherwise
// synthesizes "First Last" from the component columns. A missing part is an
// empty string and the single-space join is kept as-is, so a row with only
// a last name yields " Last".
func identity(t *tableread.Table, row int, combined, first, last string) string {
	if t.Has(combined) {
		return t.Cell(row, combined)
	}
	return t.Cell(row, first) + " " + t.Cell(row, last)
}

// coerceCode parses a procedure code the way a spreadsheet import would:
// plain integer text, or float text with an integral value ("97153.0").
func coerceCode(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && f == math.Trunc(f) {
		return int(f), true
	}
	return 0, false
}

// parseTimestamp tries each known format in order.
func parseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timeFormats {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// parseDecimal returns zero for anything unparseable; malformed numeric
// fields are treated as absent, not fatal.
func parseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}
