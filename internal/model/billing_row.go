package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Raw billing table column names. Header whitespace is trimmed before
// these are matched.
const (
	ColClientName          = "Client Name"
	ColClientFirstName     = "ClientFirstName"
	ColClientLastName      = "ClientLastName"
	ColProviderName        = "Provider Name"
	ColProviderFirstName   = "ProviderFirstName"
	ColProviderLastName    = "ProviderLastName"
	ColProcedureCode       = "ProcedureCode"
	ColDateOfService       = "DateOfService"
	ColTimeWorkedFrom      = "TimeWorkedFrom"
	ColTimeWorkedTo        = "TimeWorkedTo"
	ColTimeWorkedInHours   = "TimeWorkedInHours"
	ColDriveTimeInMinutes  = "DriveTimeInMinutes"
	ColLocationCode        = "LocationCode"
	ColLocationDescription = "LocationDescription"
)

// RequiredColumns lists the columns every billing table must carry. Client
// and provider identity are handled separately: either the combined name
// column or both first/last components must be present.
var RequiredColumns = []string{
	ColProcedureCode,
	ColDateOfService,
	ColTimeWorkedFrom,
	ColTimeWorkedTo,
	ColTimeWorkedInHours,
	ColDriveTimeInMinutes,
}

// RawBillingRow mirrors the raw billing table schema for Parquet-format
// inputs and fixtures. Every column is carried as optional text; typing
// happens in the normalizer, exactly as for CSV input.
type RawBillingRow struct {
	ClientName          *string `parquet:"Client Name,optional"`
	ClientFirstName     *string `parquet:"ClientFirstName,optional"`
	ClientLastName      *string `parquet:"ClientLastName,optional"`
	ProviderName        *string `parquet:"Provider Name,optional"`
	ProviderFirstName   *string `parquet:"ProviderFirstName,optional"`
	ProviderLastName    *string `parquet:"ProviderLastName,optional"`
	ProcedureCode       *string `parquet:"ProcedureCode,optional"`
	DateOfService       *string `parquet:"DateOfService,optional"`
	TimeWorkedFrom      *string `parquet:"TimeWorkedFrom,optional"`
	TimeWorkedTo        *string `parquet:"TimeWorkedTo,optional"`
	TimeWorkedInHours   *string `parquet:"TimeWorkedInHours,optional"`
	DriveTimeInMinutes  *string `parquet:"DriveTimeInMinutes,optional"`
	LocationCode        *string `parquet:"LocationCode,optional"`
	LocationDescription *string `parquet:"LocationDescription,optional"`
}

// Cells returns a column-name → value map for all raw columns.
func (r *RawBillingRow) Cells() map[string]*string {
	return map[string]*string{
		ColClientName:          r.ClientName,
		ColClientFirstName:     r.ClientFirstName,
		ColClientLastName:      r.ClientLastName,
		ColProviderName:        r.ProviderName,
		ColProviderFirstName:   r.ProviderFirstName,
		ColProviderLastName:    r.ProviderLastName,
		ColProcedureCode:       r.ProcedureCode,
		ColDateOfService:       r.DateOfService,
		ColTimeWorkedFrom:      r.TimeWorkedFrom,
		ColTimeWorkedTo:        r.TimeWorkedTo,
		ColTimeWorkedInHours:   r.TimeWorkedInHours,
		ColDriveTimeInMinutes:  r.DriveTimeInMinutes,
		ColLocationCode:        r.LocationCode,
		ColLocationDescription: r.LocationDescription,
	}
}

// BillingRow is the normalized representation of one billed service line,
// ready for rule evaluation. Rows are constructed once per run and mutated
// only by the overlap pass, which records supervised rows by index rather
// than writing the struct in place.
type BillingRow struct {
	Client   string
	Provider string

	ProcedureCode int

	DateOfService time.Time
	Start         time.Time
	End           time.Time
	DateOnly      string // calendar date of DateOfService, YYYY-MM-DD

	WorkedHours      decimal.Decimal
	DriveTimeMinutes decimal.Decimal

	LocationCode        string
	LocationDescription string

	Supervised bool
}
