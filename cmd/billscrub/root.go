package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/billscrub/internal/config"
	"github.com/gyeh/billscrub/internal/exitcode"
	"github.com/gyeh/billscrub/internal/rules"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "billscrub",
	Short: "ABA billing & session-note compliance auditor",
	Long:  "Audits ABA therapy billing tables (CSV/Parquet) and session-note documents (PDF/text) against a fixed compliance rule set, flagging issues for human review.",
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.RulesPath, "rules", "", "YAML file with rule threshold overrides")
	pf.StringVar(&cfg.LogFormat, "log-format", "text", "Log format: text or json")
	pf.BoolVar(&cfg.QuietDrops, "quiet-drops", false, "Mute warnings for dropped rows and skipped note segments")
}

// loadCatalog builds the rule catalog, applying file overrides when set.
func loadCatalog() (rules.Catalog, error) {
	catalog := rules.Default()
	if cfg.RulesPath != "" {
		if err := catalog.LoadFromFile(cfg.RulesPath); err != nil {
			return rules.Catalog{}, err
		}
	}
	return catalog, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitcode.UsageError)
	}
}
