package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ppiankov/civicscore/internal/score"
)

var colorMax float64

// colorCmd represents the color command
var colorCmd = &cobra.Command{
	Use:   "color <score>",
	Short: "Print the gradient color for a score",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid score %q: %w", args[0], err)
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		gradient, err := score.NewGradient(cfg.Colors.Low, cfg.Colors.High, cfg.Colors.Neutral)
		if err != nil {
			return err
		}

		c := gradient.Color(value, colorMax)
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", c.String(), c.Hex())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(colorCmd)
	colorCmd.Flags().Float64Var(&colorMax, "max", score.DefaultMax, "top of the score scale")
}
