package billing

import (
	"fmt"

	"github.com/gyeh/billscrub/internal/model"
)

// overlapChecks runs the supervision-overlap pass. For every row billing a
// supervising code, it looks for same-client target-code rows whose time
// interval strictly overlaps: touching endpoints do not count.
//
// The returned set holds the indices of target rows overlapped by a
// supervision (97155) session; the batch pass consumes it as an explicit
// argument rather than reading mutated rows.
func (e *Engine) overlapChecks(rows []model.BillingRow) ([]model.Issue, map[int]bool) {
	supervised := make(map[int]bool)
	var issues []model.Issue

	for _, pair := range e.catalog.SupervisionPairs {
		for i := range rows {
			sup := &rows[i]
			if sup.ProcedureCode != pair.Supervising {
				continue
			}

			found := false
			for j := range rows {
				t := &rows[j]
				if t.ProcedureCode != pair.Target || t.Client != sup.Client {
					continue
				}
				// Open-interval intersection.
				if t.Start.Before(sup.End) && t.End.After(sup.Start) {
					found = true
					if pair.Supervising == e.catalog.Supervision {
						supervised[j] = true
					}
				}
			}

			if !found {
				issues = append(issues, model.Issue{
					Client: sup.Client,
					Date:   sup.DateOnly,
					Kind:   model.KindNoOverlap(pair.Supervising),
					Detail: fmt.Sprintf("No concurrent %d", pair.Target),
				})
			}
		}
	}
	return issues, supervised
}
