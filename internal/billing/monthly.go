package billing

import (
	"fmt"
	"sort"

	"github.com/gyeh/billscrub/internal/model"
)

// batchChecks evaluates the per-client aggregate rules over the whole
// uploaded batch. One run is one reporting period, so these issues carry
// the literal "Monthly" date label. Clients are visited in sorted order;
// providers in first-appearance order within each client's rows.
func (e *Engine) batchChecks(rows []model.BillingRow, supervised map[int]bool) []model.Issue {
	byClient := make(map[string][]int)
	for i := range rows {
		byClient[rows[i].Client] = append(byClient[rows[i].Client], i)
	}

	clients := make([]string, 0, len(byClient))
	for c := range byClient {
		clients = append(clients, c)
	}
	sort.Strings(clients)

	var issues []model.Issue
	for _, client := range clients {
		idxs := byClient[client]

		hasParentTraining := false
		for _, i := range idxs {
			if e.catalog.IsParentTraining(rows[i].ProcedureCode) {
				hasParentTraining = true
				break
			}
		}
		if !hasParentTraining {
			issues = append(issues, model.Issue{
				Client: client,
				Date:   model.MonthlyLabel,
				Kind:   model.KindMissingParentTraining,
				Detail: "None this month",
			})
		}

		// Every provider billing direct care for this client needs at least
		// one supervised session.
		var providers []string
		seen := make(map[string]bool)
		for _, i := range idxs {
			if rows[i].ProcedureCode == e.catalog.DirectCare && !seen[rows[i].Provider] {
				seen[rows[i].Provider] = true
				providers = append(providers, rows[i].Provider)
			}
		}

		for _, provider := range providers {
			anySupervised := false
			for _, i := range idxs {
				if rows[i].Provider == provider && rows[i].ProcedureCode == e.catalog.DirectCare && supervised[i] {
					anySupervised = true
					break
				}
			}
			if !anySupervised {
				issues = append(issues, model.Issue{
					Client: client,
					Date:   model.MonthlyLabel,
					Kind:   model.KindNeverSupervised,
					Detail: fmt.Sprintf("Provider %s had no overlap", provider),
				})
			}
		}
	}
	return issues
}
