package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/xonecas/pydocstring/internal/config"
)

var (
	verbose    bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "pydocstring [flags] <source-or-path> [row] [column]",
	Short: "Generate a Python docstring skeleton",
	Long: `pydocstring finds the function, class or module enclosing a cursor
position in Python source and prints a docstring skeleton for it in the
Google, Numpy or reST style.

The first argument is a path when a file exists there, "-" for standard
input, and Python source text otherwise. The cursor defaults to the end of
the last non-blank line.`,
	Version:       version,
	Args:          cobra.RangeArgs(1, 3),
	RunE:          runGenerate,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging on stderr")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.config/pydocstring/config.toml)")
	addSourceFlags(rootCmd)
	rootCmd.Flags().StringVarP(&formatter, "formatter", "f", "", "Docstring style: google, numpy or reST")
	rootCmd.Flags().BoolVar(&color, "color", false, "Highlight the output")

	rootCmd.AddCommand(factsCmd)
	rootCmd.AddCommand(stylesCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig reads the configuration and sets up logging from it.
func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	setupLogging(cfg.Level())
	log.Debug().Str("path", path).Str("formatter", cfg.Formatter).Str("strategy", cfg.Strategy).Msg("config loaded")
	return cfg, nil
}

func setupLogging(level zerolog.Level) {
	if verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true}).With().Timestamp().Logger()
}
