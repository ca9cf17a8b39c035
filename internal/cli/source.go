package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ppiankov/civicscore/internal/model"
)

var sourceType string

// sourceCmd represents the source command
var sourceCmd = &cobra.Command{
	Use:   "source <domain> <entity>",
	Short: "Resolve the source document for an entity",
	Long: `Source looks up the entity's source catalogue and selects the document
matching the realm's document type. Historical aliases are honoured
(statute also matches ordinance and code) before falling back to the
legacy sourceUrl/policyUrl fields.

Example:
  civicscore source tree-preservation springfield
  civicscore source anti-bullying district-12 --type policy`,
	Args: cobra.ExactArgs(2),
	RunE: runSource,
}

func init() {
	rootCmd.AddCommand(sourceCmd)
	sourceCmd.Flags().StringVar(&sourceType, "type", "", "document type to resolve (default: realm document type)")
}

func runSource(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if sourceType != "" {
		dt, ok := model.ParseDocumentType(sourceType)
		if !ok {
			return fmt.Errorf("unknown document type %q (want statute or policy)", sourceType)
		}
		cfg.Realm.DocumentType = dt
	}

	eng, err := newEngine(cfg, newLogger(cfg))
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	src, err := eng.ResolveEntitySource(ctx, args[0], args[1])
	if err != nil {
		return fmt.Errorf("resolve source: %w", err)
	}
	if src == nil {
		fmt.Fprintf(cmd.OutOrStdout(), "No %s source recorded for %s\n", cfg.Realm.DocumentType, args[1])
		return nil
	}

	if cfg.Output.Format == "json" {
		return writeJSON(cmd.OutOrStdout(), src)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", src.Type, src.URL)
	if src.Title != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "  title: %s\n", src.Title)
	}
	if src.DownloadedAt != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "  downloaded: %s\n", src.DownloadedAt.Format(time.RFC3339))
	}
	return nil
}
