package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/arcanaland/diced/internal/deck"
	"github.com/arcanaland/diced/internal/render"
)

// drawCmd represents the draw command group
var drawCmd = &cobra.Command{
	Use:   "draw",
	Short: "Draw cards from a deck",
	Long: `Draw cards from a freshly shuffled deck.

Cards are drawn destructively by default: each card is removed before the
next one is picked. With --nondestructive the hand is sampled from a copy.
Either way no card appears twice in one hand.`,
}

// drawTraditionalCmd represents the draw traditional command
var drawTraditionalCmd = &cobra.Command{
	Use:   "traditional [amount]",
	Short: "Draw from a traditional deck of playing cards",
	Example: `  diced draw traditional
  diced draw traditional 5 --no-jokers
  diced draw traditional 3 --from ./poker-night.toml`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		jokers := cfg.Draw.Jokers
		if cmd.Flags().Changed("no-jokers") {
			noJokers, _ := cmd.Flags().GetBool("no-jokers")
			jokers = !noJokers
		}
		return runDraw(cmd, args, deck.Shape{Kind: deck.KindTraditional, Jokers: jokers})
	},
}

// drawTarotCmd represents the draw tarot command
var drawTarotCmd = &cobra.Command{
	Use:   "tarot [amount]",
	Short: "Draw from a tarot deck, optionally including the minor arcana",
	Example: `  diced draw tarot
  diced draw tarot 3 --include-minor
  diced draw tarot 10 --nondestructive --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		includeMinor := cfg.Draw.IncludeMinor
		if cmd.Flags().Changed("include-minor") {
			includeMinor, _ = cmd.Flags().GetBool("include-minor")
		}
		return runDraw(cmd, args, deck.Shape{Kind: deck.KindTarot, IncludeMinor: includeMinor})
	},
}

func runDraw(cmd *cobra.Command, args []string, shape deck.Shape) error {
	amount, err := parseAmount(args)
	if err != nil {
		return err
	}
	nondestructive := cfg.Draw.Nondestructive
	if cmd.Flags().Changed("nondestructive") {
		nondestructive, _ = cmd.Flags().GetBool("nondestructive")
	}
	req := deck.Request{Amount: amount, Destructive: !nondestructive}
	rng := newRNG(cmd)

	var hand []fmt.Stringer
	if from, _ := cmd.Flags().GetString("from"); from != "" {
		f, err := deck.LoadFile(from)
		if err != nil {
			return err
		}
		if f.Kind != shape.Kind {
			return fmt.Errorf("%w: %s holds %s cards", deck.ErrKindMismatch, from, f.Kind)
		}
		logger.Debug("drawing from deck file", "path", from, "name", f.Name, "amount", amount, "destructive", req.Destructive)
		hand, err = f.Deal(req, rng)
		if err != nil {
			return err
		}
	} else {
		logger.Debug("drawing", "deck", shape, "amount", amount, "destructive", req.Destructive)
		hand, err = deck.Deal(shape, req, rng)
		if err != nil {
			return err
		}
	}

	render.Hand(cmd.OutOrStdout(), hand)
	return nil
}

// parseAmount reads the optional amount argument, falling back to the
// configured default.
func parseAmount(args []string) (int, error) {
	if len(args) == 0 {
		return cfg.Draw.Amount, nil
	}
	n, err := strconv.ParseUint(args[0], 10, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: want a whole number from 0 to 255", args[0])
	}
	return int(n), nil
}

func init() {
	RootCmd.AddCommand(drawCmd)
	drawCmd.AddCommand(drawTraditionalCmd)
	drawCmd.AddCommand(drawTarotCmd)

	for _, c := range []*cobra.Command{drawTraditionalCmd, drawTarotCmd} {
		c.Flags().Bool("nondestructive", false, "Draw nondestructively")
		c.Flags().String("from", "", "Draw from a hand-assembled deck file instead of the canonical deck")
	}
	drawTraditionalCmd.Flags().Bool("no-jokers", false, "Use a deck without jokers")
	drawTarotCmd.Flags().Bool("include-minor", false, "Include the minor arcana")
}
