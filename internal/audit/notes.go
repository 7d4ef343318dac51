package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gyeh/billscrub/internal/config"
	"github.com/gyeh/billscrub/internal/model"
	"github.com/gyeh/billscrub/internal/notes"
	"github.com/gyeh/billscrub/internal/pdftext"
	"github.com/gyeh/billscrub/internal/report"
	"github.com/gyeh/billscrub/internal/rules"
)

// RunNotes executes the session-note audit pipeline: extract → segment →
// evaluate → export.
func RunNotes(ctx context.Context, log zerolog.Logger, cfg *config.Config, catalog rules.Catalog) (*model.AuditSummary, []model.Issue, error) {
	totalStart := time.Now()
	summary := &model.AuditSummary{
		RunID:    uuid.New().String(),
		FilePath: cfg.FilePath,
	}

	// Phase 1: Extract page text
	log.Info().Str("file", cfg.FilePath).Msg("extracting note text")
	readStart := time.Now()
	pages, err := pdftext.Pages(cfg.FilePath)
	if err != nil {
		return nil, nil, &PipelineError{Phase: "extract", Err: err}
	}
	summary.PagesRead = len(pages)
	summary.DurationRead = time.Since(readStart)

	// Phase 2: Segment
	segStart := time.Now()
	segs := notes.Segment(pages)
	summary.SegmentsFound = len(segs)
	summary.DurationNormalize = time.Since(segStart)

	// Phase 3: Evaluate
	evalStart := time.Now()
	engine := notes.NewEngine(catalog)
	issues, skipped := engine.Run(segs)
	summary.SegmentsSkipped = len(skipped)
	summary.IssueCount = len(issues)
	summary.DurationEvaluate = time.Since(evalStart)

	if !cfg.QuietDrops {
		for _, idx := range skipped {
			log.Warn().Int("segment", idx).Msg("segment skipped: no note markers")
		}
	}

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
		Int("pages", summary.PagesRead).
		Int("segments", summary.SegmentsFound).
		Int("segments_skipped", summary.SegmentsSkipped).
		Int("issues", summary.IssueCount).
		Str("total_duration", summary.DurationTotal.String()).
		Msg("note audit complete")

	return summary, issues, nil
}
