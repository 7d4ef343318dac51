package model

import "time"

// AuditSummary captures metrics from a single audit run.
type AuditSummary struct {
	RunID    string
	FilePath string

	// Billing metrics
	RowsRead    int64
	RowsDropped int64 // unparseable procedure code
	RowsAudited int64

	// Note metrics
	PagesRead       int
	SegmentsFound   int
	SegmentsSkipped int // text without note markers

	IssueCount int

	DurationRead      time.Duration
	DurationNormalize time.Duration
	DurationEvaluate  time.Duration
	DurationExport    time.Duration
	DurationTotal     time.Duration
}
