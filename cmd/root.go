package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/arcanaland/diced/internal/config"
	"github.com/arcanaland/diced/internal/random"
	"github.com/arcanaland/diced/internal/render"
)

var (
	cfg    *config.Config
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "diced",
	Short: "Dice roller and card drawer",
	Long: `Diced rolls notated dice and draws cards from simulated decks:
a traditional playing deck with or without jokers, or a tarot deck with
or without the minor arcana.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded

		if cmd.Flags().Changed("color") {
			cfg.Color, _ = cmd.Flags().GetString("color")
		}
		if err := render.SetColorMode(cfg.Color); err != nil {
			return err
		}

		level, err := config.ParseLogLevel(cfg.LogLevel)
		if err != nil {
			return err
		}
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		logger.Debug("config loaded", "path", configPath, "color", cfg.Color)
		return nil
	},
}

func init() {
	RootCmd.PersistentFlags().String("config", "", "Path to the config file (default $XDG_CONFIG_HOME/diced/config.toml)")
	RootCmd.PersistentFlags().Uint64("seed", 0, "Seed the random source for reproducible draws and rolls")
	RootCmd.PersistentFlags().String("color", config.ColorAuto, "Color output: auto, always or never")
	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug information to stderr")

	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// newRNG returns a seeded source when --seed was given and the global source
// otherwise.
func newRNG(cmd *cobra.Command) random.RNG {
	if !cmd.Flags().Changed("seed") {
		return random.Global
	}
	seed, _ := cmd.Flags().GetUint64("seed")
	logger.Debug("using seeded random source", "seed", seed)
	return random.New(seed)
}
