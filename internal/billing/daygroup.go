package billing

import (
	"fmt"
	"sort"
	"time"

	"github.com/gyeh/billscrub/internal/model"
)

type groupKey struct {
	client string
	date   string
}

// dayGroupChecks evaluates the same-day rules over (client, date) groups.
// Groups are visited in sorted key order (client, then date) so the issue
// list is stable regardless of input order within a day.
func (e *Engine) dayGroupChecks(rows []model.BillingRow) []model.Issue {
	groups := make(map[groupKey][]int)
	for i := range rows {
		k := groupKey{client: rows[i].Client, date: rows[i].DateOnly}
		groups[k] = append(groups[k], i)
	}

	keys := make([]groupKey, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(a, b int) bool {
		if keys[a].client != keys[b].client {
			return keys[a].client < keys[b].client
		}
		return keys[a].date < keys[b].date
	})

	var issues []model.Issue
	for _, k := range keys {
		idxs := groups[k]

		counts := make(map[int]int)
		for _, i := range idxs {
			counts[rows[i].ProcedureCode]++
		}

		// Direct care cannot share a day with family-intervention codes.
		if counts[e.catalog.DirectCare] > 0 && hasConflict(e, counts) {
			issues = append(issues, model.Issue{
				Client: k.client,
				Date:   k.date,
				Kind:   model.KindDirectFamilyConflict,
				Detail: fmt.Sprintf("Cannot bill %d + Family same day", e.catalog.DirectCare),
			})
		}

		for _, p := range e.catalog.AddonPairs {
			if counts[p.Base] > 1 {
				issues = append(issues, model.Issue{
					Client: k.client,
					Date:   k.date,
					Kind:   model.KindDuplicateBase(p.Base),
					Detail: "Billed multiple times",
				})
			}
		}

		for _, p := range e.catalog.AddonPairs {
			if counts[p.Addon] == 0 {
				continue
			}
			if counts[p.Base] == 0 {
				issues = append(issues, model.Issue{
					Client: k.client,
					Date:   k.date,
					Kind:   model.KindOrphanedAddon(p.Addon),
					Detail: "No Base Code",
				})
				continue
			}
			// Base must start at or before its add-on.
			if earliestStart(rows, idxs, p.Base).After(earliestStart(rows, idxs, p.Addon)) {
				issues = append(issues, model.Issue{
					Client: k.client,
					Date:   k.date,
					Kind:   model.KindSequenceError,
					Detail: fmt.Sprintf("Base %d started AFTER Add-on", p.Base),
				})
			}
		}
	}
	return issues
}

func hasConflict(e *Engine, counts map[int]int) bool {
	for _, c := range e.catalog.ConflictCodes {
		if counts[c] > 0 {
			return true
		}
	}
	return false
}

// earliestStart returns the minimum start time among the group's rows with
// the given code. Callers only invoke it for codes present in the group.
func earliestStart(rows []model.BillingRow, idxs []int, code int) time.Time {
	var min time.Time
	for _, i := range idxs {
		if rows[i].ProcedureCode != code {
			continue
		}
		if min.IsZero() || rows[i].Start.Before(min) {
			min = rows[i].Start
		}
	}
	return min
}
