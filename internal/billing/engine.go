package billing

import (
	"github.com/gyeh/billscrub/internal/model"
	"github.com/gyeh/billscrub/internal/rules"
)

// Engine evaluates the billing compliance rules over a normalized row set.
// It holds only the injected rule catalog; all runtime state lives on the
// stack of Run, so a single Engine is safe to reuse across runs.
type Engine struct {
	catalog rules.Catalog
}

// NewEngine returns an engine bound to the given rule catalog.
func NewEngine(catalog rules.Catalog) *Engine {
	return &Engine{catalog: catalog}
}

// Run executes all passes in order: per-row checks, client/day group
// checks, supervision-overlap checks, then batch-aggregate checks. The
// order is pinned because the issue list order is part of the contract;
// running twice over the same rows yields identical lists.
//
// The overlap pass does not flip Supervised in place mid-run. It returns
// the set of supervised row indices, which the aggregate pass consumes
// explicitly; Run applies the flag to the rows afterwards so callers see
// the derived state.
func (e *Engine) Run(rows []model.BillingRow) []model.Issue {
	issues := e.rowChecks(rows)
	issues = append(issues, e.dayGroupChecks(rows)...)

	overlapIssues, supervised := e.overlapChecks(rows)
	issues = append(issues, overlapIssues...)
	issues = append(issues, e.batchChecks(rows, supervised)...)

	for i := range supervised {
		rows[i].Supervised = true
	}
	return issues
}
