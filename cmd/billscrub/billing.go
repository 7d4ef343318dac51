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

var billingCmd = &cobra.Command{
	Use:   "billing",
	Short: "Audit a billing table (CSV or Parquet)",
	RunE:  runBilling,
}

func init() {
	f := billingCmd.Flags()
	f.StringVar(&cfg.FilePath, "file", "", "Path to billing table (required)")
	f.StringVar(&cfg.OutPath, "out", "", "Export issue report to this path (.csv or .parquet)")
	_ = billingCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(billingCmd)
}

func runBilling(cmd *cobra.Command, args []string) error {
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

	summary, issues, err := audit.RunBilling(ctx, log, &cfg, catalog)
	if err != nil {
		if pe, ok := err.(*audit.PipelineError); ok {
			log.Error().Err(pe.Err).Str("phase", pe.Phase).Msg("billing audit failed")
			switch pe.Phase {
			case "read":
				os.Exit(exitcode.ValidationError)
			case "export":
				os.Exit(exitcode.ExportError)
			default:
				os.Exit(exitcode.AuditError)
			}
		}
		log.Error().Err(err).Msg("billing audit failed")
		os.Exit(exitcode.AuditError)
	}

	printIssues(issues)
	fmt.Printf("Audit complete: %d rows audited, %d dropped, %d issues (%.1fs)\n",
		summary.RowsAudited, summary.RowsDropped, summary.IssueCount, summary.DurationTotal.Seconds())
	return nil
}
