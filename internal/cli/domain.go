package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var domainTimeout time.Duration

// domainCmd represents the domain command
var domainCmd = &cobra.Command{
	Use:   "domain <domain>",
	Short: "Summarize a domain across all entities",
	Long: `Domain scores every entity of the realm within one domain, in parallel,
and prints them in directory order with their colors.

Entities without an analysis are listed as "not yet analyzed". Malformed
records are skipped and reported as diagnostics on stderr.

Example:
  civicscore domain tree-preservation
  civicscore domain tree-preservation --workers 10 --format json`,
	Args: cobra.ExactArgs(1),
	RunE: runDomain,
}

func init() {
	rootCmd.AddCommand(domainCmd)
	domainCmd.Flags().DurationVar(&domainTimeout, "timeout", 5*time.Minute, "total timeout for the summary")
}

func runDomain(cmd *cobra.Command, args []string) error {
	domainID := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	eng, err := newEngine(cfg, newLogger(cfg))
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), domainTimeout)
	defer cancel()

	summary, err := eng.GenerateDomainSummary(ctx, domainID)
	if err != nil {
		return fmt.Errorf("summary failed: %w", err)
	}

	for _, d := range summary.Diagnostics {
		fmt.Fprintf(cmd.ErrOrStderr(), "✗ %s: %s\n", d.EntityID, d.Message)
	}

	if cfg.Output.Format == "json" {
		return writeJSON(cmd.OutOrStdout(), summary)
	}
	renderDomainSummary(cmd.OutOrStdout(), cfg.Realm, summary)
	return nil
}
