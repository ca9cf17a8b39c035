package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ppiankov/civicscore/internal/normalize"
)

// normalizeCmd represents the normalize command
var normalizeCmd = &cobra.Command{
	Use:   "normalize <file>",
	Short: "Print the canonical form of a raw analysis record",
	Long: `Normalize reads an analysis record written by any pipeline generation
and prints its canonical JSON form. Running it on its own output is a no-op.

Example:
  civicscore normalize data/trees/analysis/springfield.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read record: %w", err)
		}

		analysis, err := normalize.Analysis(data)
		if err != nil {
			return err
		}
		return writeJSON(cmd.OutOrStdout(), analysis)
	},
}

func init() {
	rootCmd.AddCommand(normalizeCmd)
}
