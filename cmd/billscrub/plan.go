package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/gyeh/billscrub/internal/audit"
	"github.com/gyeh/billscrub/internal/billing"
	"github.com/gyeh/billscrub/internal/exitcode"
	"github.com/gyeh/billscrub/internal/logging"
	"github.com/gyeh/billscrub/internal/tableread"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Dry-run validation and stats for a billing table (no audit)",
	RunE:  runPlan,
}

func init() {
	planCmd.Flags().StringVar(&cfg.FilePath, "file", "", "Path to billing table (required)")
	_ = planCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)

	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	sha, err := audit.FileHash(cfg.FilePath)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash file")
		os.Exit(exitcode.ValidationError)
	}

	stat, err := os.Stat(cfg.FilePath)
	if err != nil {
		log.Error().Err(err).Msg("failed to stat file")
		os.Exit(exitcode.ValidationError)
	}

	table, err := tableread.Open(cfg.FilePath)
	if err != nil {
		log.Error().Err(err).Msg("failed to open billing table")
		os.Exit(exitcode.ValidationError)
	}
	if err := tableread.Validate(table); err != nil {
		log.Error().Err(err).Msg("column validation failed")
		os.Exit(exitcode.ValidationError)
	}

	res, err := billing.Normalize(table, log, true)
	if err != nil {
		log.Error().Err(err).Msg("normalization failed")
		os.Exit(exitcode.ParseError)
	}

	clients := make(map[string]bool)
	codeCounts := make(map[int]int64)
	for i := range res.Rows {
		clients[res.Rows[i].Client] = true
		codeCounts[res.Rows[i].ProcedureCode]++
	}
	codes := make([]int, 0, len(codeCounts))
	for code := range codeCounts {
		codes = append(codes, code)
	}
	sort.Ints(codes)

	fmt.Println("=== billscrub plan ===")
	fmt.Printf("File:       %s\n", cfg.FilePath)
	fmt.Printf("SHA-256:    %s\n", sha)
	fmt.Printf("Size:       %d bytes\n", stat.Size())
	fmt.Printf("Total rows: %d\n", res.RowsRead)
	fmt.Printf("Dropped:    %d (unparseable procedure code)\n", res.RowsDropped)
	fmt.Printf("Clients:    %d\n", len(clients))
	fmt.Println()
	fmt.Println("Procedure code distribution:")
	for _, code := range codes {
		fmt.Printf("  %-8d %6d rows\n", code, codeCounts[code])
	}
	fmt.Println("\nColumn validation: OK")

	return nil
}
