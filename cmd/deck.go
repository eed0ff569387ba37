package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arcanaland/diced/internal/card"
	"github.com/arcanaland/diced/internal/deck"
	"github.com/arcanaland/diced/internal/render"
	"github.com/arcanaland/diced/internal/tarot"
)

var shapeHelp = strings.Join(deck.ShapeNames(), ", ")

// deckCmd represents the deck command group
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Inspect and export the built-in decks",
	Long: `Commands for inspecting the built-in decks and exporting them as deck files.

Deck shapes: ` + shapeHelp,
}

// deckListCmd represents the deck ls command
var deckListCmd = &cobra.Command{
	Use:   "ls [shape]",
	Short: "List the cards of a deck in order",
	Example: `  diced deck ls traditional --suit hearts
  diced deck ls traditional-no-jokers --card-color black
  diced deck ls tarot --suit cups
  diced deck ls tarot --arcana major`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := "traditional"
		if len(args) == 1 {
			name = args[0]
		}
		shape, err := deck.ParseShape(name)
		if err != nil {
			return err
		}

		suit, _ := cmd.Flags().GetString("suit")
		var items []string
		switch shape.Kind {
		case deck.KindTraditional:
			colorName, _ := cmd.Flags().GetString("card-color")
			items, err = listTraditional(shape, suit, colorName)
		case deck.KindTarot:
			arcana, _ := cmd.Flags().GetString("arcana")
			items, err = listTarot(shape, suit, arcana)
		}
		if err != nil {
			return err
		}

		if len(items) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No cards match.")
			return nil
		}
		render.Columns(cmd.OutOrStdout(), items, render.TerminalWidth())
		return nil
	},
}

func listTraditional(shape deck.Shape, suitName, colorName string) ([]string, error) {
	d := deck.Traditional(shape.Jokers)
	if suitName != "" {
		suit, err := card.ParseSuit(suitName)
		if err != nil {
			return nil, err
		}
		d = d.Filter(func(c card.Card) bool { return c.Suit() == suit })
	}
	if colorName != "" {
		want, err := card.ParseColor(colorName)
		if err != nil {
			return nil, err
		}
		d = d.Filter(func(c card.Card) bool { return c.Color() == want })
	}

	var items []string
	for c := range d.Drain() {
		items = append(items, render.Card(c))
	}
	return items, nil
}

func listTarot(shape deck.Shape, suitName, arcana string) ([]string, error) {
	d := deck.Tarot(shape.IncludeMinor)
	if suitName != "" {
		suit, err := tarot.ParseSuit(suitName)
		if err != nil {
			return nil, err
		}
		d = d.Filter(func(c tarot.Card) bool {
			s, ok := c.Suit()
			return ok && s == suit
		})
	}
	switch strings.ToLower(arcana) {
	case "":
	case "major":
		d = d.Filter(tarot.Card.IsMajor)
	case "minor":
		d = d.Filter(func(c tarot.Card) bool { return !c.IsMajor() })
	default:
		return nil, fmt.Errorf("invalid arcana %q (want major or minor)", arcana)
	}

	var items []string
	for c := range d.Drain() {
		items = append(items, render.Card(c))
	}
	return items, nil
}

// deckExportCmd represents the deck export command
var deckExportCmd = &cobra.Command{
	Use:   "export <shape>",
	Short: "Write a built-in deck as a deck file",
	Long: `Export writes a built-in deck in the deck file format, ready to be
edited into a hand-assembled deck and drawn from with --from.`,
	Example: `  diced deck export traditional -o poker-night.toml
  diced deck export tarot-major --name "Majors only"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		shape, err := deck.ParseShape(args[0])
		if err != nil {
			return err
		}
		name, _ := cmd.Flags().GetString("name")
		if name == "" {
			name = shape.String()
		}

		var w io.Writer = cmd.OutOrStdout()
		output, _ := cmd.Flags().GetString("output")
		if output != "" {
			file, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("error creating deck file: %w", err)
			}
			defer file.Close()
			w = file
		}

		if err := deck.Export(w, name, shape); err != nil {
			return err
		}
		if output != "" {
			fmt.Fprintln(cmd.OutOrStdout(), "Deck file written to:", output)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(deckCmd)
	deckCmd.AddCommand(deckListCmd)
	deckCmd.AddCommand(deckExportCmd)

	deckListCmd.Flags().String("suit", "", "Only list cards of this suit")
	deckListCmd.Flags().String("card-color", "", "Only list red or black cards (traditional decks)")
	deckListCmd.Flags().String("arcana", "", "Only list major or minor arcana (tarot decks)")

	deckExportCmd.Flags().StringP("output", "o", "", "Write to this file instead of stdout")
	deckExportCmd.Flags().String("name", "", "Name recorded in the deck file (default: the shape)")
}
