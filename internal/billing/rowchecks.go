package billing

import (
	"fmt"
	"strings"

	"github.com/gyeh/billscrub/internal/model"
)

// rowChecks evaluates the per-row rules in input order. Each rule is
// independent of every other row.
func (e *Engine) rowChecks(rows []model.BillingRow) []model.Issue {
	var issues []model.Issue
	for i := range rows {
		r := &rows[i]

		if r.WorkedHours.GreaterThan(e.catalog.MaxSessionHours) {
			issues = append(issues, model.Issue{
				Client: r.Client,
				Date:   r.DateOnly,
				Kind:   model.KindSessionTooLong,
				Detail: fmt.Sprintf("%d lasted %s hrs", r.ProcedureCode, r.WorkedHours),
			})
		}

		if r.ProcedureCode == e.catalog.Supervision && r.WorkedHours.GreaterThan(e.catalog.MaxSupervisionHours) {
			issues = append(issues, model.Issue{
				Client: r.Client,
				Date:   r.DateOnly,
				Kind:   model.KindSupervisionTooLong,
				Detail: fmt.Sprintf("%s hrs", r.WorkedHours),
			})
		}

		if e.catalog.ForbiddenLocation(r.LocationCode, r.LocationDescription) {
			issues = append(issues, model.Issue{
				Client: r.Client,
				Date:   r.DateOnly,
				Kind:   model.KindForbiddenLocation,
				Detail: fmt.Sprintf("%s %s", r.LocationCode, strings.ToLower(r.LocationDescription)),
			})
		}

		if r.DriveTimeMinutes.GreaterThan(e.catalog.HighDriveTimeMinutes) {
			issues = append(issues, model.Issue{
				Client: r.Client,
				Date:   r.DateOnly,
				Kind:   model.KindHighTravelTime,
				Detail: fmt.Sprintf("%s mins", r.DriveTimeMinutes),
			})
		}
	}
	return issues
}
