package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/billscrub/internal/audit"
	"github.com/gyeh/billscrub/internal/exitcode"
	"github.com/gyeh/billscrub/internal/logging"
)

var notesCmd = &cobra.Command{
	Use:   "notes",
	Short: "Audit a session-note document (PDF or plain text)",
	RunE:  runNotes,
}

func init() {
	f := notesCmd.Flags()
	f.StringVar(&cfg.FilePath, "file", "", "Path to note document (required)")
	f.StringVar(&cfg.OutPath, "out", "", "Export issue report to this path (.csv or .parquet)")
	_ = notesCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(notesCmd)
}

func runNotes(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)
	ctx := context.Background()

	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}
	catalog, err := loadCatalog()
	if err != nil {
		log.Error().Err(err).Msg("rules load failed")
		os.Exit(exitcode.UsageError)
	}

	summary, issues, err := audit.RunNotes(ctx, log, &cfg, catalog)
	if err != nil {
		if pe, ok := err.(*audit.PipelineError); ok {
			log.Error().Err(pe.Err).Str("phase", pe.Phase).Msg("note audit failed")
			switch pe.Phase {
			case "extract":
				os.Exit(exitcode.ParseError)
			case "export":
				os.Exit(exitcode.ExportError)
			default:
				os.Exit(exitcode.AuditError)
			}
		}
		log.Error().Err(err).Msg("note audit failed")
		os.Exit(exitcode.AuditError)
	}

	printIssues(issues)
	fmt.Printf("Audit complete: %d notes checked (%d segments skipped), %d issues (%.1fs)\n",
		summary.SegmentsFound-summary.SegmentsSkipped, summary.SegmentsSkipped,
		summary.IssueCount, summary.DurationTotal.Seconds())
	return nil
}
