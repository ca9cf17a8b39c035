package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ppiankov/civicscore/internal/normalize"
)

var entityTimeout time.Duration

// entityCmd represents the entity command
var entityCmd = &cobra.Command{
	Use:   "entity <domain> <entity>",
	Short: "Score one entity within a domain",
	Long: `Entity loads the domain's questions and the entity's analysis, normalizes
the analysis and prints the weighted breakdown:
- every question of the domain, answered or not
- per-question weight, score and weighted score
- overall score on a 0-10 scale

Example:
  civicscore entity tree-preservation springfield
  civicscore entity tree-preservation springfield --format json`,
	Args: cobra.ExactArgs(2),
	RunE: runEntity,
}

func init() {
	rootCmd.AddCommand(entityCmd)
	entityCmd.Flags().DurationVar(&entityTimeout, "timeout", 30*time.Second, "overall timeout")
}

func runEntity(cmd *cobra.Command, args []string) error {
	domainID, entityID := args[0], args[1]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	eng, err := newEngine(cfg, newLogger(cfg))
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), entityTimeout)
	defer cancel()

	result, err := eng.CalculateEntityScore(ctx, domainID, entityID)
	if err != nil {
		if normalize.IsNormalizationError(err) {
			return fmt.Errorf("analysis for %s/%s is malformed: %w", domainID, entityID, err)
		}
		return fmt.Errorf("score failed: %w", err)
	}

	if result == nil {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s has not yet been analyzed for %s %s\n",
			capitalize(cfg.Realm.EntityTerm), entityID, cfg.Realm.DomainTerm, domainID)
		return nil
	}

	if cfg.Output.Format == "json" {
		return writeJSON(cmd.OutOrStdout(), result)
	}
	renderEntityScore(cmd.OutOrStdout(), cfg.Realm, result)
	return nil
}
