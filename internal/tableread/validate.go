package tableread

import (
	"fmt"

	"github.com/gyeh/billscrub/internal/model"
)

// Validate checks that the table carries every required billing column plus
// a usable client and provider identity: either the combined name column or
// both first/last name components. Absence of any of these is a fatal input
// error; no rule runs against a table that fails here.
func Validate(t *Table) error {
	for _, col := range model.RequiredColumns {
		if !t.Has(col) {
			return fmt.Errorf("missing required column: %s", col)
		}
	}
	if !t.Has(model.ColClientName) &&
		!(t.Has(model.ColClientFirstName) && t.Has(model.ColClientLastName)) {
		return fmt.Errorf("missing client identity: need %q or %q and %q columns",
			model.ColClientName, model.ColClientFirstName, model.ColClientLastName)
	}
	if !t.Has(model.ColProviderName) &&
		!(t.Has(model.ColProviderFirstName) && t.Has(model.ColProviderLastName)) {
		return fmt.Errorf("missing provider identity: need %q or %q and %q columns",
			model.ColProviderName, model.ColProviderFirstName, model.ColProviderLastName)
	}
	return nil
}
