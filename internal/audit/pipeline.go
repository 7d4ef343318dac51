package audit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gyeh/billscrub/internal/billing"
	"github.com/gyeh/billscrub/internal/config"
	"github.com/gyeh/billscrub/internal/model"
	"github.com/gyeh/billscrub/internal/report"
	"github.com/gyeh/billscrub/internal/rules"
	"github.com/gyeh/billscrub/internal/tableread"
)

// PipelineError wraps an error with the phase where it occurred.
type PipelineError struct {
	Phase string
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Phase, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// RunBilling executes the billing audit pipeline: read → normalize →
// evaluate → export. A date parse failure is not a pipeline error: per the
// fail-fast contract the run completes with a single "Date Error" issue in
// place of the rule findings.
func RunBilling(ctx context.Context, log zerolog.Logger, cfg *config.Config, catalog rules.Catalog) (*model.AuditSummary, []model.Issue, error) {
	totalStart := time.Now()
	summary := &model.AuditSummary{
		RunID:    uuid.New().String(),
		FilePath: cfg.FilePath,
	}

	// Phase 1: Read & validate columns
	log.Info().Str("file", cfg.FilePath).Msg("reading billing table")
	readStart := time.Now()
	table, err := tableread.Open(cfg.FilePath)
	if err != nil {
		return nil, nil, &PipelineError{Phase: "read", Err: err}
	}
	if err := tableread.Validate(table); err != nil {
		return nil, nil, &PipelineError{Phase: "read", Err: err}
	}
	summary.DurationRead = time.Since(readStart)

	// Phase 2: Normalize
	normStart := time.Now()
	var issues []model.Issue
	res, err := billing.Normalize(table, log, cfg.QuietDrops)
	if err != nil {
		var de *billing.DateError
		if !errors.As(err, &de) {
			return nil, nil, &PipelineError{Phase: "normalize", Err: err}
		}
		log.Warn().Str("column", de.Column).Int("row", de.Row).Msg("date parse failed, aborting rule evaluation")
		summary.RowsRead = int64(len(table.Rows))
		issues = []model.Issue{de.Issue()}
	} else {
		summary.RowsRead = res.RowsRead
		summary.RowsDropped = res.RowsDropped
		summary.RowsAudited = int64(len(res.Rows))
		summary.DurationNormalize = time.Since(normStart)

		// Phase 3: Evaluate
		evalStart := time.Now()
		engine := billing.NewEngine(catalog)
		issues = engine.Run(res.Rows)
		summary.DurationEvaluate = time.Since(evalStart)
	}
	summary.IssueCount = len(issues)

	// Phase 4: Export
	if cfg.OutPath != "" {
		exportStart := time.Now()
		if err := report.Write(cfg.OutPath, issues); err != nil {
			return nil, nil, &PipelineError{Phase: "export", Err: err}
		}
		summary.DurationExport = time.Since(exportStart)
		log.Info().Str("out", cfg.OutPath).Msg("report exported")
	}

	summary.DurationTotal = time.Since(totalStart)
	log.Info().
		Str("run_id", summary.RunID).
		Int64("rows_read", summary.RowsRead).
		Int64("rows_dropped", summary.RowsDropped).
		Int64("rows_audited", summary.RowsAudited).
		Int("issues", summary.IssueCount).
		Str("total_duration", summary.DurationTotal.String()).
		Msg("billing audit complete")

	return summary, issues, nil
}
