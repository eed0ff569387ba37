package cmd

import (
	"github.com/spf13/cobra"

	"github.com/arcanaland/diced/internal/dice"
	"github.com/arcanaland/diced/internal/render"
)

// rollCmd represents the roll command
var rollCmd = &cobra.Command{
	Use:   "roll DICE...",
	Short: "Roll dice",
	Long: `Roll dice written as QUANTITYdSIZE with an optional modifier added to
each die, e.g. 1d20, 3d6+2 or 2d8-1.`,
	Example: `  diced roll 1d20
  diced roll 4d6 --sum
  diced roll 2d20+3 --crit --count`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dies, err := dice.Parse(args)
		if err != nil {
			return err
		}

		opts := render.RollOptions{Crit: cfg.Roll.Crit}
		if cmd.Flags().Changed("crit") {
			opts.Crit, _ = cmd.Flags().GetBool("crit")
		}
		opts.Count, _ = cmd.Flags().GetBool("count")
		opts.Sum, _ = cmd.Flags().GetBool("sum")

		rng := newRNG(cmd)
		for _, d := range dies {
			logger.Debug("rolling", "die", d.String())
			render.Roll(cmd.OutOrStdout(), d.Roll(rng), opts)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(rollCmd)

	rollCmd.Flags().Bool("crit", false, "Color critical successes and fails")
	rollCmd.Flags().Bool("count", false, "Count the number of critical successes and fails")
	rollCmd.Flags().Bool("sum", false, "Add up all of the rolls")
}
